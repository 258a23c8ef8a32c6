package argbind

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/argbind/env"
	"github.com/napalu/argbind/i18n"
	"github.com/napalu/argbind/input"
	"github.com/napalu/argbind/internal/convert"
	"github.com/napalu/argbind/internal/subst"
	"github.com/napalu/argbind/types"
	"github.com/napalu/argbind/types/orderedmap"
	"golang.org/x/text/language"
)

// LanguageEnvVar selects the message language when no language is configured explicitly
const LanguageEnvVar = "ARGBIND_LANG"

// Exit codes returned by Registry.Run
const (
	ExitOK       = 0   // ExitOK signals success
	ExitFailure  = 1   // ExitFailure signals that the invoked command failed
	ExitMisuse   = 2   // ExitMisuse signals a bind error such as an unknown option or a missing argument
	ExitNotFound = 127 // ExitNotFound signals an unknown command
)

// ConfigureRegistryFunc is used when defining Registry options
type ConfigureRegistryFunc func(r *Registry, err *error)

// ConfigureParameterFunc is used when defining Parameter options
type ConfigureParameterFunc func(p *Parameter, err *error)

// InvokeFunc receives the bound values of a Signature, one per top-level parameter in declaration order
type InvokeFunc func(ctx context.Context, args []any) error

// BuildFunc constructs the value of an option group from the values bound to its members,
// one per member in declaration order
type BuildFunc func(values []any) (any, error)

// ConvertFunc converts a raw token into a value of a custom type
type ConvertFunc = convert.ConvertFunc

// LessFunc orders values of a custom type so they can be collected into sorted sets
type LessFunc = convert.LessFunc

// MissingPolicy decides how a ${name} placeholder without a value is expanded in defaults
type MissingPolicy = subst.Policy

const (
	MissingEmpty = subst.MissingEmpty // MissingEmpty replaces the placeholder with the empty string
	MissingError = subst.MissingError // MissingError fails the bind
	MissingKeep  = subst.MissingKeep  // MissingKeep leaves the placeholder verbatim
)

// OverloadPolicy decides which error is reported when no overload of a command binds
type OverloadPolicy int

const (
	// LastError reports the failure of the last candidate tried
	LastError OverloadPolicy = iota
	// AggregateErrors reports the failures of every candidate
	AggregateErrors
)

// NameConversionFunc converts a field name to a command/flag name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-command-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_command_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myCommandName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "mycommandname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultCommandNameConverter NameConversionFunc = ToKebabCase
	DefaultFlagNameConverter    NameConversionFunc = ToLowerCamel
)

// Parameter describes one parameter of a Signature
type Parameter struct {
	Kind types.Kind
	// Name is the option key. For members of a group the group prefixes are prepended.
	Name string
	// Field is converted into Name by the flag name converter when Name is empty
	Field string
	// Label names a positional parameter in usage output
	Label       string
	Description string
	Type        types.ValueType
	// Container is empty for scalars. A non-empty Container makes the parameter listable.
	Container types.Container
	Required  bool
	// Default is the authored default value; nil means none
	Default *string
	// Nullable binds a missing value to nil instead of the zero value or the empty list
	Nullable bool
	// Enum holds the constants accepted by types.Enum
	Enum   []string
	Secure types.Secure
	// Inject selects the value of a types.KindInjected parameter
	Inject types.Injectable
	Group  *Group
}

// Group describes the members of a types.KindGroup parameter
type Group struct {
	// Prefix is prepended to the names of every member option, including members of nested groups
	Prefix string
	// Nilable binds the group to nil when none of its members received a value
	Nilable bool
	Members []*Parameter
	Build   BuildFunc
}

// Signature is one compiled overload of a command
type Signature struct {
	// Name is the command name. When empty it is derived from Field.
	Name        string
	Field       string
	Description string
	Params      []*Parameter
	Invoke      InvokeFunc

	nodes       []*node
	options     *orderedmap.OrderedMap[string, *node]
	positionals int
}

// node is a compiled Parameter. Options carry their fully prefixed name and encoded default.
type node struct {
	param    *Parameter
	name     string
	def      *string
	children []*node
}

// Binder binds raw argument vectors to a Signature
type Binder struct {
	converters *convert.Registry
	resolver   env.Resolver
	policy     subst.Policy
	terminal   input.TerminalReader
	prompt     string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	logger     *slog.Logger
}

// Resolver selects the overload of a command which binds an argument vector
type Resolver struct {
	binder *Binder
	policy OverloadPolicy
	logger *slog.Logger
}

// Registry holds commands and dispatches argument vectors to them
type Registry struct {
	commands             *orderedmap.OrderedMap[string, []*Signature]
	binder               *Binder
	overloadPolicy       OverloadPolicy
	commandNameConverter NameConversionFunc
	flagNameConverter    NameConversionFunc
	bundle               *i18n.Bundle
	language             language.Tag
	languageSet          bool
	pending              []*Signature
	logger               *slog.Logger
}
