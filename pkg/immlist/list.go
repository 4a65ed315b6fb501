// Package immlist provides a persistent singly linked list.
//
// The nil *List[T] is the empty list for every element type, so an empty
// list costs no allocation and is shared by everyone. Lists are never
// modified after construction; operations that would change a list return
// a new one that may share its tail with the original.
package immlist

import (
	"fmt"
	"iter"
	"strings"
)

// List is one cell of a persistent list. A nil *List is the empty list.
type List[T any] struct {
	head T
	tail *List[T]
}

// Nil returns the empty list.
func Nil[T any]() *List[T] {
	return nil
}

// Of builds a list holding xs in order.
func Of[T any](xs ...T) *List[T] {
	var l *List[T]
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.Prepend(xs[i])
	}
	return l
}

// From is Of for an existing slice.
func From[T any](xs []T) *List[T] {
	return Of(xs...)
}

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// NonEmpty reports whether l has at least one element.
func (l *List[T]) NonEmpty() bool {
	return l != nil
}

// Head returns the first element, or the zero value for the empty list.
func (l *List[T]) Head() T {
	if l == nil {
		var zero T
		return zero
	}
	return l.head
}

// Tail returns the list without its first element. The tail of the empty
// list is the empty list.
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	n := 0
	for ; l != nil; l = l.tail {
		n++
	}
	return n
}

// Prepend returns a list with x in front of l. O(1).
func (l *List[T]) Prepend(x T) *List[T] {
	return &List[T]{head: x, tail: l}
}

// PrependList returns xs followed by l.
func (l *List[T]) PrependList(xs *List[T]) *List[T] {
	if xs == nil {
		return l
	}
	if l == nil {
		return xs
	}
	out := l
	for it := xs.Reverse(); it != nil; it = it.tail {
		out = out.Prepend(it.head)
	}
	return out
}

// Append returns l followed by x. O(n).
func (l *List[T]) Append(x T) *List[T] {
	return l.AppendList(Of(x))
}

// AppendList returns l followed by xs.
func (l *List[T]) AppendList(xs *List[T]) *List[T] {
	return xs.PrependList(l)
}

// Reverse returns the elements of l in reverse order.
func (l *List[T]) Reverse() *List[T] {
	if l == nil || l.tail == nil {
		return l
	}
	var out *List[T]
	for ; l != nil; l = l.tail {
		out = out.Prepend(l.head)
	}
	return out
}

// Last returns the final element, or the zero value for the empty list.
func (l *List[T]) Last() T {
	var last T
	for ; l != nil; l = l.tail {
		last = l.head
	}
	return last
}

// Get returns the element at index i. It panics if i is out of range.
func (l *List[T]) Get(i int) T {
	it := l
	for n := i; it != nil && n > 0; n-- {
		it = it.tail
	}
	if it == nil || i < 0 {
		panic(fmt.Sprintf("immlist: index %d out of range [0:%d]", i, l.Len()))
	}
	return it.head
}

// Slice copies the elements into a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for ; l != nil; l = l.tail {
		out = append(out, l.head)
	}
	return out
}

// All iterates over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l; it != nil; it = it.tail {
			if !yield(it.head) {
				return
			}
		}
	}
}

// Format renders the elements joined by sep.
func (l *List[T]) Format(sep string) string {
	var sb strings.Builder
	for it := l; it != nil; it = it.tail {
		if it != l {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, it.head)
	}
	return sb.String()
}

// String renders the list as comma separated elements.
func (l *List[T]) String() string {
	return l.Format(",")
}

// Contains reports whether x is an element of l.
func Contains[T comparable](l *List[T], x T) bool {
	for ; l != nil; l = l.tail {
		if l.head == x {
			return true
		}
	}
	return false
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied element comparison.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	for a != nil && b != nil {
		if a == b {
			return true
		}
		if !eq(a.head, b.head) {
			return false
		}
		a, b = a.tail, b.tail
	}
	return a == nil && b == nil
}

// Map returns a list with f applied to every element.
func Map[T, U any](l *List[T], f func(T) U) *List[U] {
	var out *List[U]
	for it := l.Reverse(); it != nil; it = it.tail {
		out = out.Prepend(f(it.head))
	}
	return out
}

// Buffer collects elements in order and hands them out as a List. The
// zero Buffer is empty and ready to use.
type Buffer[T any] struct {
	xs []T
}

// Append adds x at the end. Amortized O(1).
func (b *Buffer[T]) Append(x T) {
	b.xs = append(b.xs, x)
}

// AppendList adds every element of l at the end.
func (b *Buffer[T]) AppendList(l *List[T]) {
	for ; l != nil; l = l.tail {
		b.xs = append(b.xs, l.head)
	}
}

// Len returns the number of collected elements.
func (b *Buffer[T]) Len() int {
	return len(b.xs)
}

// IsEmpty reports whether nothing has been collected.
func (b *Buffer[T]) IsEmpty() bool {
	return len(b.xs) == 0
}

// List returns the collected elements as a list. The buffer stays usable;
// later appends do not affect lists already returned.
func (b *Buffer[T]) List() *List[T] {
	return From(b.xs)
}
