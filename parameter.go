package argbind

import (
	"github.com/napalu/argbind/internal/convert"
	"github.com/napalu/argbind/types"
)

// NewOption returns a named option parameter. The type defaults to types.String.
func NewOption(name string, configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(&Parameter{Kind: types.KindOption, Name: name, Type: types.String}, configs)
}

// NewPositional returns a positional parameter. The type defaults to types.String.
func NewPositional(configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(&Parameter{Kind: types.KindPositional, Type: types.String}, configs)
}

// NewGroup returns an option group whose value is produced by build from the values of its members
func NewGroup(build BuildFunc, configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(&Parameter{Kind: types.KindGroup, Group: &Group{Build: build}}, configs)
}

// NewInjected returns a parameter bound to a framework-provided value
func NewInjected(what types.Injectable) *Parameter {
	return &Parameter{Kind: types.KindInjected, Inject: what}
}

func newParameter(p *Parameter, configs []ConfigureParameterFunc) *Parameter {
	var err error
	for _, config := range configs {
		config(p, &err)
	}
	return p
}

// Set configures the Parameter with the provided ConfigureParameterFunc(s) and returns the first error
func (p *Parameter) Set(configs ...ConfigureParameterFunc) error {
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// IsListable reports whether the parameter collects several values
func (p *Parameter) IsListable() bool {
	return p.Container != types.NoContainer
}

func (p *Parameter) target() convert.Target {
	return convert.Target{Type: p.Type, Nullable: p.Nullable, Enum: p.Enum}
}

func (p *Parameter) displayName() string {
	if p.Label != "" {
		return p.Label
	}
	if p.Name != "" {
		return p.Name
	}
	if p.Field != "" {
		return p.Field
	}
	return string(p.Type)
}
