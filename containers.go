package argbind

import (
	"reflect"

	"github.com/ef-ds/deque"
	"github.com/napalu/argbind/errs"
	"github.com/napalu/argbind/types"
	"github.com/napalu/argbind/types/container"
)

// collect converts elems and gathers them into the container declared by p:
//
//	types.Array, types.List  []T where T is the Go type of the element converter
//	types.OrderedSet         *container.OrderedSet
//	types.SortedSet          *container.SortedSet
//	types.Deque              *deque.Deque
func (b *Binder) collect(p *Parameter, elems []string, source string) (any, error) {
	switch p.Container {
	case types.Array, types.List, types.OrderedSet, types.SortedSet, types.Deque:
	default:
		return nil, errs.ErrUnsupportedContainer.WithArgs(source, p.Container)
	}
	if !b.converters.Has(p.Type) {
		return nil, errs.ErrUnsupportedType.WithArgs(source, p.Type)
	}

	target := p.target()
	target.Nullable = false
	values := make([]any, 0, len(elems))
	for i := range elems {
		v, err := b.converters.Convert(&elems[i], target, source)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	switch p.Container {
	case types.OrderedSet:
		return container.NewOrderedSet(values...), nil
	case types.SortedSet:
		less, ok := b.converters.Less(target)
		if !ok {
			return nil, errs.ErrUnsupportedContainer.WithArgs(source, p.Container).
				Wrap(errs.ErrUnorderedElements.WithArgs(p.Type))
		}
		return container.NewSortedSet(less, values...), nil
	case types.Deque:
		d := deque.New()
		for _, v := range values {
			d.PushBack(v)
		}
		return d, nil
	default:
		return b.typedSlice(p.Type, values, source)
	}
}

func (b *Binder) typedSlice(vt types.ValueType, values []any, source string) (any, error) {
	elemType, ok := b.converters.GoType(vt)
	if !ok {
		return nil, errs.ErrUnsupportedType.WithArgs(source, vt)
	}
	slice := reflect.MakeSlice(reflect.SliceOf(elemType), 0, len(values))
	for _, v := range values {
		if v == nil {
			slice = reflect.Append(slice, reflect.Zero(elemType))
			continue
		}
		slice = reflect.Append(slice, reflect.ValueOf(v))
	}
	return slice.Interface(), nil
}
