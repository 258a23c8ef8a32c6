package container

import (
	"github.com/tidwall/btree"
)

// SortedSet keeps its elements in the order given by its less function and drops duplicates.
// Two elements are duplicates when neither is less than the other.
type SortedSet struct {
	tree *btree.BTreeG[any]
}

// NewSortedSet returns a SortedSet ordered by less
func NewSortedSet(less func(a, b any) bool, items ...any) *SortedSet {
	s := &SortedSet{tree: btree.NewBTreeG[any](less)}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether it was not yet present
func (s *SortedSet) Add(item any) bool {
	if _, present := s.tree.Get(item); present {
		return false
	}
	s.tree.Set(item)
	return true
}

// Contains reports whether item is in the set
func (s *SortedSet) Contains(item any) bool {
	_, present := s.tree.Get(item)
	return present
}

// Remove deletes item and reports whether it was present
func (s *SortedSet) Remove(item any) bool {
	_, present := s.tree.Delete(item)
	return present
}

// Len returns the number of elements
func (s *SortedSet) Len() int {
	return s.tree.Len()
}

// Items returns the elements in ascending order
func (s *SortedSet) Items() []any {
	return s.tree.Items()
}

// Min returns the smallest element
func (s *SortedSet) Min() (any, bool) {
	return s.tree.Min()
}

// Max returns the largest element
func (s *SortedSet) Max() (any, bool) {
	return s.tree.Max()
}
