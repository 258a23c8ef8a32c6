// Package container holds the set types produced for listable parameters.
package container

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// OrderedSet is an insertion-stable set. Adding an element that is already present keeps its position.
type OrderedSet struct {
	m *orderedmap.OrderedMap
}

// NewOrderedSet returns an OrderedSet holding items in first-seen order
func NewOrderedSet(items ...any) *OrderedSet {
	s := &OrderedSet{m: orderedmap.New()}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether it was not yet present
func (s *OrderedSet) Add(item any) bool {
	if _, present := s.m.Get(item); present {
		return false
	}
	s.m.Set(item, struct{}{})
	return true
}

// Contains reports whether item is in the set
func (s *OrderedSet) Contains(item any) bool {
	_, present := s.m.Get(item)
	return present
}

// Remove deletes item and reports whether it was present
func (s *OrderedSet) Remove(item any) bool {
	_, present := s.m.Delete(item)
	return present
}

// Len returns the number of elements
func (s *OrderedSet) Len() int {
	return s.m.Len()
}

// Items returns the elements in insertion order
func (s *OrderedSet) Items() []any {
	items := make([]any, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, pair.Key)
	}
	return items
}
