// Package convert turns raw command-line tokens into typed values.
//
// A Registry maps a types.ValueType to a conversion function. The built-in table covers
// the primitive types plus durations, times, UUIDs, URLs, file paths and enums; further
// types are added with Register or RegisterTyped.
package convert

import (
	"errors"
	"net/url"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/napalu/argbind/errs"
	"github.com/napalu/argbind/types"
)

// ConvertFunc converts a raw token into a value
type ConvertFunc func(raw string) (any, error)

// LessFunc orders two values produced by the same ConvertFunc
type LessFunc func(a, b any) bool

// Target describes the value a token is converted into
type Target struct {
	Type types.ValueType
	// Nullable makes a missing value of a primitive type convert to nil instead of its zero value
	Nullable bool
	// Enum holds the constants accepted by types.Enum
	Enum []string
}

// RegisterOption configures a registration
type RegisterOption func(e *entry)

// WithLess gives the registered type a natural order so it can be collected into sorted sets
func WithLess(less LessFunc) RegisterOption {
	return func(e *entry) {
		e.less = less
	}
}

type entry struct {
	convert ConvertFunc
	less    LessFunc
	goType  reflect.Type
}

// Registry is a converter table keyed by value type. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	converters map[types.ValueType]entry
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// New returns a Registry holding the built-in converters
func New() *Registry {
	r := &Registry{converters: make(map[types.ValueType]entry)}
	for vt, e := range builtins() {
		r.converters[vt] = e
	}
	return r
}

// Register adds or replaces the converter for vt
func (r *Registry) Register(vt types.ValueType, fn ConvertFunc, opts ...RegisterOption) error {
	if fn == nil {
		return errs.ErrNilConverter.WithArgs(vt)
	}
	e := entry{convert: fn, goType: anyType}
	for _, opt := range opts {
		opt(&e)
	}

	r.mu.Lock()
	r.converters[vt] = e
	r.mu.Unlock()

	return nil
}

// RegisterTyped registers a typed converter. less may be nil when T has no natural order.
func RegisterTyped[T any](r *Registry, vt types.ValueType, fn func(raw string) (T, error), less func(a, b T) bool) error {
	if fn == nil {
		return errs.ErrNilConverter.WithArgs(vt)
	}
	e := typed(fn, less)
	r.mu.Lock()
	r.converters[vt] = e
	r.mu.Unlock()

	return nil
}

// Has reports whether a converter is registered for vt
func (r *Registry) Has(vt types.ValueType) bool {
	_, ok := r.lookup(vt)
	return ok
}

// GoType returns the Go type produced for vt, or the empty interface type for untyped registrations
func (r *Registry) GoType(vt types.ValueType) (reflect.Type, bool) {
	e, ok := r.lookup(vt)
	if !ok {
		return nil, false
	}
	return e.goType, true
}

// Less returns the natural order of the target's values. Enum constants are ordered by declaration.
func (r *Registry) Less(target Target) (LessFunc, bool) {
	if target.Type == types.Enum {
		rank := make(map[string]int, len(target.Enum))
		for i, c := range target.Enum {
			rank[c] = i
		}
		return func(a, b any) bool {
			return rank[a.(string)] < rank[b.(string)]
		}, true
	}
	e, ok := r.lookup(target.Type)
	if !ok || e.less == nil {
		return nil, false
	}
	return e.less, true
}

// Convert converts raw into a value of target.Type. A nil raw yields nil, except for
// non-nullable primitive types which yield their zero value. source labels the value in
// error messages, e.g. "[--port]" or "[int]".
func (r *Registry) Convert(raw *string, target Target, source string) (any, error) {
	e, ok := r.lookup(target.Type)
	if !ok {
		return nil, errs.ErrUnsupportedType.WithArgs(source, target.Type)
	}

	if raw == nil {
		if target.Type.IsPrimitive() && !target.Nullable {
			return reflect.Zero(e.goType).Interface(), nil
		}
		return nil, nil
	}

	if target.Type == types.Enum {
		for _, c := range target.Enum {
			if c == *raw {
				return c, nil
			}
		}
		return nil, errs.ErrConversion.WithArgs(source, *raw, target.Type).
			Wrap(errs.ErrInvalidEnumValue.WithArgs(strings.Join(target.Enum, ", ")))
	}

	v, err := e.convert(*raw)
	if err != nil {
		convErr := errs.ErrConversion.WithArgs(source, *raw, target.Type)
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrSyntax {
			return nil, convErr
		}
		return nil, convErr.Wrap(err)
	}

	return v, nil
}

func (r *Registry) lookup(vt types.ValueType) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.converters[vt]
	return e, ok
}

func typed[T any](fn func(string) (T, error), less func(a, b T) bool) entry {
	e := entry{
		convert: func(raw string) (any, error) {
			v, err := fn(raw)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		goType: reflect.TypeOf((*T)(nil)).Elem(),
	}
	if less != nil {
		e.less = func(a, b any) bool {
			return less(a.(T), b.(T))
		}
	}
	return e
}

type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

func lessOf[T ordered](a, b T) bool {
	return a < b
}

func parseInt[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bits)
		return T(v), err
	}
}

func parseUint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bits)
		return T(v), err
	}
}

func builtins() map[types.ValueType]entry {
	return map[types.ValueType]entry{
		types.String: typed(func(s string) (string, error) { return s, nil }, lessOf[string]),
		types.File:   typed(func(s string) (string, error) { return filepath.Clean(s), nil }, lessOf[string]),
		types.Enum:   typed(func(s string) (string, error) { return s, nil }, lessOf[string]),
		// only the exact token "true" is true; nothing else fails
		types.Bool: typed(func(s string) (bool, error) { return s == "true", nil }, func(a, b bool) bool { return !a && b }),
		types.Char: typed(func(s string) (rune, error) {
			if s == "" {
				return 0, nil
			}
			r, _ := utf8.DecodeRuneInString(s)
			return r, nil
		}, lessOf[rune]),
		types.Int:     typed(parseInt[int](strconv.IntSize), lessOf[int]),
		types.Int8:    typed(parseInt[int8](8), lessOf[int8]),
		types.Int16:   typed(parseInt[int16](16), lessOf[int16]),
		types.Int32:   typed(parseInt[int32](32), lessOf[int32]),
		types.Int64:   typed(parseInt[int64](64), lessOf[int64]),
		types.Uint:    typed(parseUint[uint](strconv.IntSize), lessOf[uint]),
		types.Uint8:   typed(parseUint[uint8](8), lessOf[uint8]),
		types.Uint16:  typed(parseUint[uint16](16), lessOf[uint16]),
		types.Uint32:  typed(parseUint[uint32](32), lessOf[uint32]),
		types.Uint64:  typed(parseUint[uint64](64), lessOf[uint64]),
		types.Float32: typed(func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		}, lessOf[float32]),
		types.Float64: typed(func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}, lessOf[float64]),
		types.Complex128: typed(func(s string) (complex128, error) {
			return strconv.ParseComplex(s, 128)
		}, nil),
		types.Duration: typed(time.ParseDuration, lessOf[time.Duration]),
		types.Time: typed(func(s string) (time.Time, error) {
			return dateparse.ParseAny(s)
		}, func(a, b time.Time) bool { return a.Before(b) }),
		types.UUID: typed(uuid.Parse, func(a, b uuid.UUID) bool { return a.String() < b.String() }),
		types.URL:  typed(url.Parse, nil),
	}
}
