// Package env provides the property sources consulted when default values are expanded.
package env

import (
	"os"
	"sort"
	"sync"
)

// Resolver defines an interface for environment and property resolution.
type Resolver interface {
	// Get returns the value of the property named by the key.
	// It returns an empty string if the property is not present.
	Get(key string) string

	// Lookup returns the value of the property named by the key and whether it is present.
	Lookup(key string) (string, bool)

	// Set sets the value of the property named by the key.
	Set(key, value string) error

	// Environ returns a slice of strings in the form "key=value", similar to os.Environ.
	Environ() []string
}

// DefaultEnvResolver is the default implementation of the Resolver interface
// that encapsulates environment resolution using the os package.
type DefaultEnvResolver struct{}

// Get returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Get(key string) string {
	return os.Getenv(key)
}

// Lookup returns the value of the environment variable and whether it is set.
func (r *DefaultEnvResolver) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set sets the value of the environment variable identified by key.
func (r *DefaultEnvResolver) Set(key, value string) error {
	return os.Setenv(key, value)
}

// Environ returns a copy of strings representing the environment, as "key=value" pairs.
func (r *DefaultEnvResolver) Environ() []string {
	return os.Environ()
}

// MapResolver is an in-process property map. It is safe for concurrent use.
type MapResolver struct {
	mu    sync.RWMutex
	props map[string]string
}

// NewMapResolver returns a MapResolver seeded with a copy of props
func NewMapResolver(props map[string]string) *MapResolver {
	m := &MapResolver{props: make(map[string]string, len(props))}
	for k, v := range props {
		m.props[k] = v
	}
	return m
}

func (m *MapResolver) Get(key string) string {
	v, _ := m.Lookup(key)
	return v
}

func (m *MapResolver) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.props[key]
	return v, ok
}

func (m *MapResolver) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.props[key] = value
	return nil
}

// Environ returns the properties sorted by key
func (m *MapResolver) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.props))
	for k, v := range m.props {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// LayeredResolver consults its layers in order; the first layer holding a key wins.
// Set writes to the first layer.
type LayeredResolver struct {
	layers []Resolver
}

// NewLayeredResolver returns a resolver over layers, highest precedence first
func NewLayeredResolver(layers ...Resolver) *LayeredResolver {
	return &LayeredResolver{layers: layers}
}

func (l *LayeredResolver) Get(key string) string {
	v, _ := l.Lookup(key)
	return v
}

func (l *LayeredResolver) Lookup(key string) (string, bool) {
	for _, layer := range l.layers {
		if v, ok := layer.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

func (l *LayeredResolver) Set(key, value string) error {
	if len(l.layers) == 0 {
		return nil
	}
	return l.layers[0].Set(key, value)
}

// Environ returns one entry per distinct key, taking the value of the highest-precedence layer
func (l *LayeredResolver) Environ() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, layer := range l.layers {
		for _, kv := range layer.Environ() {
			key := kv
			for i := 0; i < len(kv); i++ {
				if kv[i] == '=' {
					key = kv[:i]
					break
				}
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, kv)
		}
	}
	return out
}
