package orderedmap

/*
	Ordered map implementation
	based on
	https://medium.com/swlh/ordered-maps-for-go-using-generics-875ef3816c71
	Keys are iterated in insertion order; Set on an existing key keeps its original position.
*/
import (
	"container/list"
)

// Iterator starting at OrderedMap.Front
type Iterator[K comparable, V any] struct {
	e     *list.Element
	Key   *K
	Value V
}

// OrderedMap definition data is stored in insertion order
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

func newIterator[K comparable, V any](e *list.Element) *Iterator[K, V] {
	if e == nil {
		return nil
	}
	kv := e.Value.(*keyValue[K, V])

	return &Iterator[K, V]{e: e, Key: &kv.key, Value: kv.value}
}

// Next returns an iterator positioned on the next pair or nil when no more pairs can be iterated on
func (n *Iterator[K, V]) Next() *Iterator[K, V] {
	return newIterator[K, V](n.e.Next())
}

// NewOrderedMap creates a new OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set will store a key-value pair. If the key already exists,
// its value is replaced and its position is retained
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value.(*keyValue[K, V]).value = val
		return
	}
	o.store[key] = o.keys.PushBack(&keyValue[K, V]{key: key, value: val})
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}
	return e.Value.(*keyValue[K, V]).value, true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Take returns the value associated with key and removes the pair
func (o *OrderedMap[K, V]) Take(key K) (V, bool) {
	val, exists := o.Get(key)
	if exists {
		o.Delete(key)
	}
	return val, exists
}

// Delete will remove the key and its associated value.
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}

	o.keys.Remove(e)
	delete(o.store, key)
}

// Len returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Len() int {
	return o.keys.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.keys.Len())
	for e := o.keys.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(*keyValue[K, V]).key)
	}
	return keys
}

// Clone returns a shallow copy preserving insertion order
func (o *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	c := NewOrderedMap[K, V]()
	for e := o.keys.Front(); e != nil; e = e.Next() {
		kv := e.Value.(*keyValue[K, V])
		c.Set(kv.key, kv.value)
	}
	return c
}

// Front returns an iterator pointing to the oldest (inserted-first) pair
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	return newIterator[K, V](o.keys.Front())
}
