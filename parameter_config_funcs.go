package argbind

import "github.com/napalu/argbind/types"

// WithType sets the scalar type, or the element type of a listable parameter
func WithType(vt types.ValueType) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Type = vt
	}
}

// WithContainer makes the parameter listable. The elements are collected into c.
func WithContainer(c types.Container) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Container = c
	}
}

// WithListOf is shorthand for WithContainer(c) and WithType(vt)
func WithListOf(c types.Container, vt types.ValueType) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Container = c
		p.Type = vt
	}
}

// WithDefault sets the authored default value. Placeholders of the form ${name} are expanded at bind time.
// The default of a listable parameter is split on NUL, tab or comma, in that order of precedence.
func WithDefault(value string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Default = &value
	}
}

// WithRequired when true, the option must have a value after defaulting
func WithRequired(required bool) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Required = required
	}
}

// WithNullable when true, a missing value binds to nil
func WithNullable(nullable bool) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Nullable = nullable
	}
}

// WithEnum makes the parameter an enum accepting exactly the given constants
func WithEnum(values ...string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Type = types.Enum
		p.Enum = values
	}
}

// WithDescription the description is shown next to the parameter in usage output
func WithDescription(description string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Description = description
	}
}

// WithLabel names a positional parameter in usage output
func WithLabel(label string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Label = label
	}
}

// WithField derives the option name from a Go field name using the flag name converter.
// An explicit name passed to NewOption takes precedence.
func WithField(field string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Field = field
	}
}

// WithSecure reads the option from the terminal without echo when it has no value.
// An empty prompt displays the default password prompt.
func WithSecure(prompt string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Secure = types.Secure{IsSecure: true, Prompt: prompt}
	}
}

// WithPrefix sets the prefix prepended to the names of a group's member options
func WithPrefix(prefix string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		if p.Group == nil {
			p.Group = &Group{}
		}
		p.Group.Prefix = prefix
	}
}

// WithNilable when true, a group none of whose members received a value binds to nil
func WithNilable(nilable bool) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		if p.Group == nil {
			p.Group = &Group{}
		}
		p.Group.Nilable = nilable
	}
}

// WithMembers appends members to a group
func WithMembers(members ...*Parameter) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		if p.Group == nil {
			p.Group = &Group{}
		}
		p.Group.Members = append(p.Group.Members, members...)
	}
}
