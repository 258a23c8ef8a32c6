package argbind

import (
	"io"
	"log/slog"

	"github.com/napalu/argbind/env"
	"github.com/napalu/argbind/input"
	"github.com/napalu/argbind/types"
	"golang.org/x/text/language"
)

// WithCommand registers signatures. Signatures sharing a command name are overloads.
//
// Configuration example:
//
//	registry, err := NewRegistry(
//		WithCommand(countTo, countBetween),
//		WithOverloadPolicy(AggregateErrors),
//		WithLogger(slog.Default()))
func WithCommand(sigs ...*Signature) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.pending = append(r.pending, sigs...)
	}
}

// WithResolver sets the property source used to expand ${name} placeholders in defaults. It is also
// bound to types.Environment parameters and consulted for LanguageEnvVar.
func WithResolver(resolver env.Resolver) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.binder.SetResolver(resolver)
	}
}

// WithMissingPolicy sets how placeholders without a value are expanded. Defaults to MissingEmpty.
func WithMissingPolicy(policy MissingPolicy) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.binder.SetMissingPolicy(policy)
	}
}

// WithOverloadPolicy sets which error is reported when no overload binds. Defaults to LastError.
func WithOverloadPolicy(policy OverloadPolicy) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.overloadPolicy = policy
	}
}

// WithConverter registers the converter of a custom value type. less may be nil when the type
// has no natural order.
func WithConverter(vt types.ValueType, fn ConvertFunc, less LessFunc) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		*err = r.binder.RegisterConverter(vt, fn, less)
	}
}

// WithTypedConverter registers the converter of a custom value type producing T. Listable
// parameters of the type are collected into slices of T.
func WithTypedConverter[T any](vt types.ValueType, fn func(raw string) (T, error), less func(x, y T) bool) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		*err = RegisterTypedConverter(r.binder, vt, fn, less)
	}
}

// WithLogger sets the structured logger. Records are emitted at debug level.
func WithLogger(logger *slog.Logger) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.SetLogger(logger)
	}
}

// WithStdin sets the reader bound to types.Stdin parameters
func WithStdin(reader io.Reader) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.binder.SetStdin(reader)
	}
}

// WithStdout sets the writer bound to types.Stdout parameters
func WithStdout(writer io.Writer) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.SetStdout(writer)
	}
}

// WithStderr sets the writer receiving errors and usage output
func WithStderr(writer io.Writer) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.SetStderr(writer)
	}
}

// WithTerminalReader sets the terminal used to read secure options
func WithTerminalReader(t input.TerminalReader) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.binder.SetTerminalReader(t)
	}
}

// WithCommandNameConverter sets the converter deriving command names from signature fields
func WithCommandNameConverter(converter NameConversionFunc) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		if converter != nil {
			r.commandNameConverter = converter
		}
	}
}

// WithFlagNameConverter sets the converter deriving option names from parameter fields
func WithFlagNameConverter(converter NameConversionFunc) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		if converter != nil {
			r.flagNameConverter = converter
		}
	}
}

// WithLanguage selects the language of usage text and error messages
func WithLanguage(lang language.Tag) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		*err = r.SetLanguage(lang)
	}
}
