package argbind

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/argbind/errs"
	"github.com/napalu/argbind/types"
)

// Usage renders a one-line synopsis of sig, for example
//
//	copy [--force] [--exclude=<string>...] <src> <dst>
func Usage(sig *Signature) string {
	parts := []string{sig.Name}
	parts = appendUsage(parts, sig.nodes)
	return strings.Join(parts, " ")
}

func appendUsage(parts []string, nodes []*node) []string {
	for _, n := range nodes {
		p := n.param
		switch p.Kind {
		case types.KindOption:
			token := optionPrefix + n.name
			if p.Type != types.Bool || p.IsListable() {
				token += "=" + valueHint(p)
			}
			if p.IsListable() {
				token += "..."
			}
			if !p.Required {
				token = "[" + token + "]"
			}
			parts = append(parts, token)
		case types.KindPositional:
			token := "<" + p.displayName() + ">"
			if p.IsListable() {
				token = "[" + token + "...]"
			}
			parts = append(parts, token)
		case types.KindGroup:
			parts = appendUsage(parts, n.children)
		}
	}
	return parts
}

func valueHint(p *Parameter) string {
	if p.Type == types.Enum {
		return "<" + strings.Join(p.Enum, "|") + ">"
	}
	return "<" + string(p.Type) + ">"
}

// Usage renders the synopsis of every overload of the command name
func (r *Registry) Usage(name string) string {
	sigs, ok := r.commands.Get(name)
	if !ok {
		return ""
	}

	usage := r.bundle.TL(r.language, errs.MsgUsageKey)
	or := r.bundle.TL(r.language, errs.MsgOrKey)
	indent := len([]rune(usage)) - len([]rune(or)) - 1
	if indent < 0 {
		indent = 0
	}

	var sb strings.Builder
	for i, sig := range sigs {
		if i == 0 {
			fmt.Fprintf(&sb, "%s %s\n", usage, Usage(sig))
			continue
		}
		fmt.Fprintf(&sb, "%s%s: %s\n", strings.Repeat(" ", indent), or, Usage(sig))
	}
	return sb.String()
}

// PrintUsage writes the synopsis of the command name to w, followed by one line per described
// or required option
func (r *Registry) PrintUsage(w io.Writer, name string) {
	_, _ = io.WriteString(w, r.Usage(name))

	sigs, _ := r.commands.Get(name)
	seen := make(map[string]struct{})
	for _, sig := range sigs {
		for it := sig.options.Front(); it != nil; it = it.Next() {
			p := it.Value.param
			if _, ok := seen[*it.Key]; ok || (p.Description == "" && !p.Required && p.Default == nil) {
				continue
			}
			seen[*it.Key] = struct{}{}
			_, _ = fmt.Fprintf(w, "  %s%s\t%s%s\n", optionPrefix, *it.Key, p.Description, r.optionNote(p))
		}
	}
}

func (r *Registry) optionNote(p *Parameter) string {
	switch {
	case p.Required:
		return " (" + r.bundle.TL(r.language, errs.MsgRequiredKey) + ")"
	case p.Default != nil:
		return " (" + r.bundle.TL(r.language, errs.MsgDefaultsToKey) + " " + *p.Default + ")"
	}
	return ""
}

// PrintCommands writes the synopsis of every registered command to w
func (r *Registry) PrintCommands(w io.Writer) {
	_, _ = fmt.Fprintln(w, r.bundle.TL(r.language, errs.MsgCommandsKey))
	for it := r.commands.Front(); it != nil; it = it.Next() {
		for _, sig := range it.Value {
			_, _ = fmt.Fprintf(w, "  %s", Usage(sig))
			if sig.Description != "" {
				_, _ = fmt.Fprintf(w, "\t%s", sig.Description)
			}
			_, _ = fmt.Fprintln(w)
		}
	}
}
