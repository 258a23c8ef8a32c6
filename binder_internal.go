package argbind

import (
	"errors"
	"sort"
	"strings"

	"github.com/napalu/argbind/errs"
	"github.com/napalu/argbind/input"
	"github.com/napalu/argbind/internal/split"
	"github.com/napalu/argbind/internal/subst"
	"github.com/napalu/argbind/types"
	"github.com/napalu/argbind/types/queue"
)

const (
	optionPrefix = "--"
	endOfOptions = "--"
	flagShortcut = "true"
)

// parsedArguments is the per-bind state: the queue of positional tokens and the raw value of
// every known option after defaulting. A nil value means the option has no value.
// A listable option supplied more than once is stored list-encoded, one element per occurrence.
type parsedArguments struct {
	positionals *queue.Q[string]
	supplied    map[string]string
	occurrences map[string][]string
	values      map[string]*string
	unknown     []string
	duplicates  []string
}

// secrets holds the values read for secure options during one dispatch, keyed by option name.
// A nil value records that reading failed.
type secrets map[string]*string

func (b *Binder) bind(sig *Signature, args []string, prompted secrets) ([]any, error) {
	parsed := b.tokenize(sig, args)

	if err := b.applyDefaults(sig, parsed); err != nil {
		return nil, err
	}

	if len(parsed.unknown) == 0 && len(parsed.duplicates) == 0 {
		if err := b.promptSecure(sig, parsed, prompted); err != nil {
			return nil, err
		}
	}

	if err := validate(sig, parsed); err != nil {
		return nil, err
	}

	values, _, err := b.resolve(sig.nodes, parsed)
	if err != nil {
		return nil, err
	}

	if parsed.positionals.Len() > 0 {
		return nil, errs.ErrExcessArguments.WithArgs(strings.Join(parsed.positionals.Drain(), " "))
	}
	if len(parsed.values) > 0 {
		leftover := make([]string, 0, len(parsed.values))
		for name := range parsed.values {
			leftover = append(leftover, optionPrefix+name)
		}
		sort.Strings(leftover)
		return nil, errs.ErrUnknownOption.WithArgs(strings.Join(leftover, ", "))
	}

	return values, nil
}

// tokenize separates option tokens from positional tokens and coalesces repeated options.
// Listable options accumulate their occurrences; a repeated scalar option is a duplicate.
func (b *Binder) tokenize(sig *Signature, args []string) *parsedArguments {
	parsed := &parsedArguments{
		positionals: queue.New[string](),
		supplied:    make(map[string]string),
		occurrences: make(map[string][]string),
		values:      make(map[string]*string),
	}

	optionsEnded := false
	for _, arg := range args {
		if optionsEnded || !strings.HasPrefix(arg, optionPrefix) {
			parsed.positionals.Enqueue(arg)
			continue
		}
		if arg == endOfOptions {
			optionsEnded = true
			continue
		}

		name, value, found := strings.Cut(arg[len(optionPrefix):], "=")
		if !found {
			value = flagShortcut
		}

		n, known := sig.options.Get(name)
		if !known {
			parsed.unknown = appendUnique(parsed.unknown, optionPrefix+name)
			continue
		}
		if n.param.IsListable() {
			occurrences := append(parsed.occurrences[name], value)
			parsed.occurrences[name] = occurrences
			if len(occurrences) == 1 {
				parsed.supplied[name] = value
			} else {
				parsed.supplied[name] = split.Encode(occurrences)
			}
			continue
		}
		if _, seen := parsed.supplied[name]; seen {
			parsed.duplicates = appendUnique(parsed.duplicates, optionPrefix+name)
			continue
		}
		parsed.supplied[name] = value
	}

	return parsed
}

// applyDefaults overlays supplied values on the compiled defaults. Only defaults are expanded.
func (b *Binder) applyDefaults(sig *Signature, parsed *parsedArguments) error {
	for it := sig.options.Front(); it != nil; it = it.Next() {
		name, n := *it.Key, it.Value
		if v, ok := parsed.supplied[name]; ok {
			parsed.values[name] = &v
			continue
		}
		if n.def == nil {
			parsed.values[name] = nil
			continue
		}
		if !subst.HasPlaceholder(*n.def) {
			parsed.values[name] = n.def
			continue
		}
		expanded, err := subst.Format(*n.def, b.resolver, b.policy)
		if err != nil {
			return err
		}
		parsed.values[name] = &expanded
	}

	return nil
}

func (b *Binder) promptSecure(sig *Signature, parsed *parsedArguments, prompted secrets) error {
	for it := sig.options.Front(); it != nil; it = it.Next() {
		name, n := *it.Key, it.Value
		if !n.param.Secure.IsSecure || parsed.values[name] != nil {
			continue
		}
		if value, ok := prompted[name]; ok {
			if value != nil {
				v := *value
				parsed.values[name] = &v
			}
			continue
		}
		prompt := n.param.Secure.Prompt
		if prompt == "" {
			prompt = b.prompt
		}
		value, err := input.GetSecureString(prompt, b.stderr, b.terminal)
		if err != nil {
			if errors.Is(err, errs.ErrNotAttachedToTerminal) || errors.Is(err, errs.ErrEmptyInput) {
				b.logger.Debug("secure option left without value", "option", name, "reason", err)
				prompted[name] = nil
				continue
			}
			return err
		}
		prompted[name] = &value
		v := value
		parsed.values[name] = &v
	}

	return nil
}

// validate reports unknown options, then missing required options, then duplicates. Each
// error lists every offending option.
func validate(sig *Signature, parsed *parsedArguments) error {
	switch len(parsed.unknown) {
	case 0:
	case 1:
		return errs.ErrUnknownOption.WithArgs(parsed.unknown[0])
	default:
		return errs.ErrUnknownOptions.WithArgs(strings.Join(parsed.unknown, ", "))
	}

	var missing []string
	for it := sig.options.Front(); it != nil; it = it.Next() {
		if it.Value.param.Required && parsed.values[*it.Key] == nil {
			missing = append(missing, optionPrefix+*it.Key)
		}
	}
	if len(missing) > 0 {
		return errs.ErrRequiredOptionMissing.WithArgs(strings.Join(missing, ", "))
	}

	if len(parsed.duplicates) > 0 {
		return errs.ErrDuplicateOption.WithArgs(strings.Join(parsed.duplicates, ", "))
	}

	return nil
}

// resolve binds nodes in declaration order. touched reports whether any option below nodes was
// supplied or any positional consumed a token.
func (b *Binder) resolve(nodes []*node, parsed *parsedArguments) (values []any, touched bool, err error) {
	values = make([]any, 0, len(nodes))
	for _, n := range nodes {
		var v any
		switch n.param.Kind {
		case types.KindOption:
			raw := parsed.values[n.name]
			delete(parsed.values, n.name)
			if _, ok := parsed.supplied[n.name]; ok {
				touched = true
			}
			source := "[" + optionPrefix + n.name + "]"
			switch {
			case n.param.IsListable() && raw == nil:
			case n.param.IsListable():
				v, err = b.collect(n.param, split.Split(*raw), source)
			default:
				v, err = b.converters.Convert(raw, n.param.target(), source)
			}
		case types.KindPositional:
			var consumed bool
			v, consumed, err = b.resolvePositional(n.param, parsed)
			touched = touched || consumed
		case types.KindGroup:
			v, touched, err = b.resolveGroup(n, parsed, touched)
		case types.KindInjected:
			v = b.inject(n.param.Inject)
		}
		if err != nil {
			return nil, false, err
		}
		values = append(values, v)
	}

	return values, touched, nil
}

func (b *Binder) resolvePositional(p *Parameter, parsed *parsedArguments) (any, bool, error) {
	source := "[" + string(p.Type) + "]"
	if p.IsListable() {
		tokens := parsed.positionals.Drain()
		v, err := b.collect(p, tokens, source)
		return v, len(tokens) > 0, err
	}

	token, ok := parsed.positionals.Dequeue()
	if !ok {
		return nil, false, errs.ErrMissingArgument.WithArgs(p.Type)
	}
	v, err := b.converters.Convert(&token, p.target(), source)
	return v, true, err
}

func (b *Binder) resolveGroup(n *node, parsed *parsedArguments, touched bool) (any, bool, error) {
	members, groupTouched, err := b.resolve(n.children, parsed)
	if err != nil {
		return nil, touched, err
	}
	touched = touched || groupTouched
	if !groupTouched && n.param.Group.Nilable {
		return nil, touched, nil
	}

	v, err := n.param.Group.Build(members)
	if err != nil {
		return nil, touched, errs.ErrGroupBuild.WithArgs(n.param.displayName()).Wrap(err)
	}
	return v, touched, nil
}

func (b *Binder) inject(what types.Injectable) any {
	switch what {
	case types.Stdin:
		return b.stdin
	case types.Stdout:
		return b.stdout
	case types.Stderr:
		return b.stderr
	case types.Environment:
		return b.resolver
	}
	return nil
}

func appendUnique(list []string, s string) []string {
	for _, e := range list {
		if e == s {
			return list
		}
	}
	return append(list, s)
}
