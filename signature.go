package argbind

import (
	"github.com/napalu/argbind/errs"
	"github.com/napalu/argbind/internal/split"
	"github.com/napalu/argbind/types"
	"github.com/napalu/argbind/types/orderedmap"
)

// NewSignature compiles a signature of the command name. Parameters are bound in declaration
// order; definition errors such as duplicate option names are returned immediately.
//
// Example:
//
//	sig, err := NewSignature("copy",
//		NewOption("force", WithType(types.Bool)),
//		NewPositional(WithLabel("src")),
//		NewPositional(WithLabel("dst")))
func NewSignature(name string, params ...*Parameter) (*Signature, error) {
	s := &Signature{Name: name, Params: params}
	if err := s.compile(DefaultFlagNameConverter); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFieldSignature compiles a signature whose command name is derived from field by the
// command name converter of the Registry it is added to
func NewFieldSignature(field string, params ...*Parameter) (*Signature, error) {
	s := &Signature{Field: field, Params: params}
	if err := s.compile(DefaultFlagNameConverter); err != nil {
		return nil, err
	}
	return s, nil
}

// Handle sets the function invoked with the bound values and returns the signature
func (s *Signature) Handle(fn InvokeFunc) *Signature {
	s.Invoke = fn
	return s
}

// PositionalCount returns the number of positional parameters, including those of groups
func (s *Signature) PositionalCount() int {
	return s.positionals
}

// OptionNames returns the fully prefixed option names in declaration order
func (s *Signature) OptionNames() []string {
	if s.options == nil {
		return nil
	}
	return s.options.Keys()
}

// clone returns a copy of s compiled with the given flag name converter
func (s *Signature) clone(flagNameConverter NameConversionFunc) (*Signature, error) {
	c := &Signature{
		Name:        s.Name,
		Field:       s.Field,
		Description: s.Description,
		Params:      s.Params,
		Invoke:      s.Invoke,
	}
	if err := c.compile(flagNameConverter); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Signature) compile(flagNameConverter NameConversionFunc) error {
	if flagNameConverter == nil {
		flagNameConverter = DefaultFlagNameConverter
	}
	s.options = orderedmap.NewOrderedMap[string, *node]()
	s.positionals = 0

	nodes, err := s.compileParams(s.Params, "", flagNameConverter)
	if err != nil {
		return err
	}
	s.nodes = nodes

	return nil
}

func (s *Signature) compileParams(params []*Parameter, prefix string, flagNameConverter NameConversionFunc) ([]*node, error) {
	nodes := make([]*node, 0, len(params))
	for i, p := range params {
		if p == nil {
			return nil, errs.ErrNilParameter.WithArgs(i)
		}
		n := &node{param: p}

		switch p.Kind {
		case types.KindPositional:
			if p.Default != nil {
				return nil, errs.ErrDefaultOnPositional.WithArgs(p.displayName())
			}
			if p.Required {
				return nil, errs.ErrRequiredOnPositional.WithArgs(p.displayName())
			}
			if err := checkType(p, p.displayName()); err != nil {
				return nil, err
			}
			s.positionals++
		case types.KindOption:
			name := p.Name
			if name == "" && p.Field != "" {
				name = flagNameConverter(p.Field)
			}
			if name == "" {
				return nil, errs.ErrEmptyOptionName.WithArgs(i)
			}
			n.name = prefix + name
			if s.options.Has(n.name) {
				return nil, errs.ErrDuplicateOptionName.WithArgs(n.name)
			}
			if p.Required && p.Default != nil {
				return nil, errs.ErrRequiredWithDefault.WithArgs(n.name)
			}
			if err := checkType(p, n.name); err != nil {
				return nil, err
			}
			n.def = encodeDefault(p)
			s.options.Set(n.name, n)
		case types.KindGroup:
			if p.Group == nil || p.Group.Build == nil {
				return nil, errs.ErrGroupWithoutBuilder.WithArgs(p.displayName())
			}
			children, err := s.compileParams(p.Group.Members, prefix+p.Group.Prefix, flagNameConverter)
			if err != nil {
				return nil, err
			}
			n.children = children
		case types.KindInjected:
		default:
			return nil, errs.ErrInvalidParameterKind.WithArgs(i, p.Kind)
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

func checkType(p *Parameter, label string) error {
	if p.Type == "" {
		if p.IsListable() {
			return errs.ErrMissingElementType.WithArgs(label)
		}
		return errs.ErrMissingType.WithArgs(label)
	}
	if p.Type == types.Enum && len(p.Enum) == 0 {
		return errs.ErrEnumWithoutValues.WithArgs(label)
	}
	return nil
}

// encodeDefault stores list defaults pre-split behind the list marker. A listable option
// without an authored default defaults to the empty list unless it is nullable.
func encodeDefault(p *Parameter) *string {
	if !p.IsListable() {
		return p.Default
	}
	if p.Default == nil && p.Nullable {
		return nil
	}
	encoded := split.EncodeList(p.Default)
	return &encoded
}
