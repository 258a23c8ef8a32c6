package types

// Kind classifies a signature parameter
type Kind int

const (
	KindPositional Kind = iota // KindPositional is identified by its position on the command line
	KindOption                 // KindOption is introduced by --name or --name=value
	KindGroup                  // KindGroup is a structured parameter whose members are bound recursively
	KindInjected               // KindInjected receives a framework-provided value and consumes no tokens
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindOption:
		return "option"
	case KindGroup:
		return "group"
	case KindInjected:
		return "injected"
	}
	return "unknown"
}

// ValueType identifies the scalar type of a parameter or of the elements of a listable parameter.
// Built-in type tags are declared below; custom tags are plain strings registered with a converter registry.
type ValueType string

const (
	String     ValueType = "string"
	Bool       ValueType = "bool"
	Char       ValueType = "char"
	Int        ValueType = "int"
	Int8       ValueType = "int8"
	Int16      ValueType = "int16"
	Int32      ValueType = "int32"
	Int64      ValueType = "int64"
	Uint       ValueType = "uint"
	Uint8      ValueType = "uint8"
	Uint16     ValueType = "uint16"
	Uint32     ValueType = "uint32"
	Uint64     ValueType = "uint64"
	Float32    ValueType = "float32"
	Float64    ValueType = "float64"
	Complex128 ValueType = "complex128"
	Duration   ValueType = "duration"
	Time       ValueType = "time"
	UUID       ValueType = "uuid"
	URL        ValueType = "url"
	File       ValueType = "file"
	Enum       ValueType = "enum"
)

// IsPrimitive reports whether the type falls back to a zero value instead of nil when no value is present
func (v ValueType) IsPrimitive() bool {
	switch v {
	case Bool, Char, Int, Int8, Int16, Int32, Int64, Uint, Uint8, Uint16, Uint32, Uint64, Float32, Float64, Complex128:
		return true
	}
	return false
}

// Container identifies how a listable parameter collects its elements. The empty Container denotes a scalar.
type Container string

const (
	NoContainer Container = ""
	Array       Container = "array"       // Array produces a typed slice
	List        Container = "list"        // List produces a typed slice
	OrderedSet  Container = "ordered-set" // OrderedSet produces an insertion-stable set
	SortedSet   Container = "sorted-set"  // SortedSet produces a naturally ordered set
	Deque       Container = "deque"       // Deque produces a double-ended queue
)

// Injectable names a framework-provided value bound to a KindInjected parameter
type Injectable int

const (
	Stdin       Injectable = iota // Stdin binds an io.Reader
	Stdout                        // Stdout binds an io.Writer
	Stderr                        // Stderr binds an io.Writer
	Environment                   // Environment binds an env.Resolver
)

// String returns the string representation of an Injectable
func (i Injectable) String() string {
	switch i {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	case Environment:
		return "environment"
	}
	return "unknown"
}

// Secure set IsSecure to true to solicit non-echoed user input from stdin when an option has no value.
// If Prompt is empty a "password: " prompt will be displayed.
type Secure struct {
	IsSecure bool
	Prompt   string
}
