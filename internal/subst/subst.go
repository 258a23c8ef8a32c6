// Package subst expands ${name} placeholders in default values.
package subst

import (
	"regexp"
	"strings"

	"github.com/napalu/argbind/errs"
)

// Policy decides what happens to a placeholder whose key is not defined
type Policy int

const (
	// MissingEmpty replaces an undefined placeholder with the empty string
	MissingEmpty Policy = iota
	// MissingError fails with errs.ErrUnresolvedPlaceholder
	MissingError
	// MissingKeep leaves an undefined placeholder verbatim
	MissingKeep
)

func (p Policy) String() string {
	switch p {
	case MissingEmpty:
		return "empty"
	case MissingError:
		return "error"
	case MissingKeep:
		return "keep"
	default:
		return "unknown"
	}
}

// Lookuper is the property source consulted during expansion. env.Resolver satisfies it.
type Lookuper interface {
	Lookup(key string) (string, bool)
}

var placeholder = regexp.MustCompile(`\$\{([\w.]+)}`)

// HasPlaceholder reports whether s contains at least one placeholder
func HasPlaceholder(s string) bool {
	return placeholder.MatchString(s)
}

// Format replaces every ${key} in template with the value of key, expanding
// placeholders inside values recursively. A key met again while it is still being
// expanded fails with errs.ErrCircularReference.
func Format(template string, props Lookuper, policy Policy) (string, error) {
	return expand(template, props, policy, nil)
}

func expand(template string, props Lookuper, policy Policy, chain []string) (string, error) {
	matches := placeholder.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(template[last:m[0]])
		last = m[1]
		key := template[m[2]:m[3]]

		for _, active := range chain {
			if active == key {
				return "", errs.ErrCircularReference.WithArgs(strings.Join(append(chain, key), " -> "))
			}
		}

		var value string
		var ok bool
		if props != nil {
			value, ok = props.Lookup(key)
		}
		if !ok {
			switch policy {
			case MissingError:
				return "", errs.ErrUnresolvedPlaceholder.WithArgs(template[m[0]:m[1]])
			case MissingKeep:
				sb.WriteString(template[m[0]:m[1]])
			}
			continue
		}

		next := make([]string, len(chain), len(chain)+1)
		copy(next, chain)
		resolved, err := expand(value, props, policy, append(next, key))
		if err != nil {
			return "", err
		}
		sb.WriteString(resolved)
	}
	sb.WriteString(template[last:])

	return sb.String(), nil
}
