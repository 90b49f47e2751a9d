package gomap

import (
	"iter"
	"slices"
)

// ContainerKind is the kind of Go container a collection shape
// materializes into. Only ReadOnlySequence, MutableList and
// MutableUnorderedCollection can be materialization targets.
type ContainerKind int

const (
	ReadOnlySequence           ContainerKind = iota // []T
	MutableList                                     // *List[T]
	MutableUnorderedCollection                      // *Bag[T]
	FixedArray
	UntypedEnumerable
	CustomCollection
)

var containerKindNames = map[ContainerKind]string{
	ReadOnlySequence:           "ReadOnlySequence",
	MutableList:                "MutableList",
	MutableUnorderedCollection: "MutableUnorderedCollection",
	FixedArray:                 "FixedArray",
	UntypedEnumerable:          "UntypedEnumerable",
	CustomCollection:           "CustomCollection",
}

func (k ContainerKind) String() string {
	if s, ok := containerKindNames[k]; ok {
		return s
	}
	return "ContainerKind(?)"
}

func (k ContainerKind) Supported() bool {
	switch k {
	case ReadOnlySequence, MutableList, MutableUnorderedCollection:
		return true
	default:
		return false
	}
}

// CollectionShape materializes collection values element by element.
type CollectionShape struct {
	elem     Shape
	kind     ContainerKind
	build    func(elems []any) (any, error)
	appendTo func(container any, elems []any) (bool, error)
}

func (*CollectionShape) isShape() {}

func (s *CollectionShape) String() string {
	return s.kind.String() + "<" + s.elem.String() + ">"
}

func (s *CollectionShape) Kind() ContainerKind {
	return s.kind
}

func (s *CollectionShape) Elem() Shape {
	return s.elem
}

// Collection returns the shape of a container of T whose elements have
// shape elem. T may be an interface type implemented by the native types of
// several structured shapes, for collections of derived types.
func Collection[T any](elem Shape, kind ContainerKind) *CollectionShape {
	s := &CollectionShape{elem: elem, kind: kind}
	switch kind {
	case ReadOnlySequence:
		s.build = func(elems []any) (any, error) {
			return typed[T](elems)
		}
	case MutableList:
		s.build = func(elems []any) (any, error) {
			ts, err := typed[T](elems)
			if err != nil {
				return nil, err
			}
			return &List[T]{items: ts}, nil
		}
		s.appendTo = func(c any, elems []any) (bool, error) {
			l, ok := c.(*List[T])
			if !ok || l == nil {
				return false, nil
			}
			ts, err := typed[T](elems)
			if err != nil {
				return true, err
			}
			l.items = append(l.items, ts...)
			return true, nil
		}
	case MutableUnorderedCollection:
		s.build = func(elems []any) (any, error) {
			ts, err := typed[T](elems)
			if err != nil {
				return nil, err
			}
			return &Bag[T]{items: ts}, nil
		}
		s.appendTo = func(c any, elems []any) (bool, error) {
			b, ok := c.(*Bag[T])
			if !ok || b == nil {
				return false, nil
			}
			ts, err := typed[T](elems)
			if err != nil {
				return true, err
			}
			b.items = append(b.items, ts...)
			return true, nil
		}
	}
	return s
}

func typed[T any](elems []any) ([]T, error) {
	res := make([]T, len(elems))
	for i, x := range elems {
		if x == nil {
			continue
		}
		t, ok := x.(T)
		if !ok {
			return nil, newError(ErrTypeMismatch, "element %d is %T, not %s", i, x, typeName[T]())
		}
		res[i] = t
	}
	return res, nil
}

// List is an ordered, growable container.
type List[T any] struct {
	items []T
}

func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: items}
}

func (l *List[T]) Add(x T) {
	l.items = append(l.items, x)
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) At(i int) T {
	return l.items[i]
}

func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Bag is an unordered container. It keeps insertion order internally but
// callers must not depend on it.
type Bag[T any] struct {
	items []T
}

func NewBag[T any](items ...T) *Bag[T] {
	return &Bag[T]{items: items}
}

func (b *Bag[T]) Add(x T) {
	b.items = append(b.items, x)
}

func (b *Bag[T]) Len() int {
	return len(b.items)
}

func (b *Bag[T]) Items() []T {
	return slices.Clone(b.items)
}

func (b *Bag[T]) All() iter.Seq[T] {
	return slices.Values(b.items)
}
