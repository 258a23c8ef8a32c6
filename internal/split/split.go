// Package split encodes and splits default values of listable parameters.
//
// A list default is stored behind a leading NUL marker so that "no default", "empty list"
// and "scalar default" stay distinguishable. Elements of an encoded list are separated by NUL,
// which is also how repeated occurrences of a listable option are collected.
package split

import "strings"

const (
	// Marker prefixes an encoded list default
	Marker = "\x00"
	// Separator separates elements of an encoded or accumulated list
	Separator = "\x00"
)

// EmptyList is the encoding of a list default without elements
const EmptyList = Marker

// IsList reports whether encoded carries the list marker
func IsList(encoded string) bool {
	return strings.HasPrefix(encoded, Marker)
}

// Split turns encoded into its elements. A marker-prefixed value is split strictly on
// Separator; anything else is split on the first separator present in the order
// NUL, tab, comma, falling back to a single element.
func Split(encoded string) []string {
	if IsList(encoded) {
		rest := encoded[len(Marker):]
		if rest == "" {
			return []string{}
		}
		return strings.Split(rest, Separator)
	}

	for _, sep := range []string{Separator, "\t", ","} {
		if strings.Contains(encoded, sep) {
			return strings.Split(encoded, sep)
		}
	}

	return []string{encoded}
}

// EncodeList pre-splits an authored default and stores it behind the marker.
// A nil default encodes as the empty list.
func EncodeList(authored *string) string {
	if authored == nil {
		return EmptyList
	}
	return Encode(Split(*authored))
}

// Encode stores elems behind the marker. Empty elements are kept, except that a lone empty
// element encodes as EmptyList.
func Encode(elems []string) string {
	return Marker + Join(elems)
}

// Join concatenates elements with Separator without adding the marker
func Join(elems []string) string {
	return strings.Join(elems, Separator)
}
