// Package datastruct holds an ordered, singly-linked sequence and its cursors.
//
// The zero value of LinkedList is an empty list ready for use:
//
//	var l datastruct.LinkedList[string]
//	l.PushBack("a")
//	l.PushBack("b")
//	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
//		v, _ := it.Value()
//		...
//	}
//
// The package provides no internal synchronisation.
package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrEmpty           errorkit.Error = "list is empty"
	ErrIndexOutOfRange errorkit.Error = "index out of range"

	ErrEndOfList         errorkit.Error = "cursor is at the end of the list"
	ErrCursorInvalidated errorkit.Error = "cursor was invalidated by a structural change of the list"
)

type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Values() iter.Seq[T]
	Sizer
}

// Sequence is the index addressable surface of an ordered list.
type Sequence[T any] interface {
	List[T]
	PushFront(v T)
	PushBack(v T)
	PopFront() (T, bool)
	PopBack() (T, bool)
	Front() (T, error)
	Back() (T, error)
	Lookup(index int) (T, bool)
	Set(index int, v T) bool
	Insert(index int, v T) error
	Remove(index int) bool
	FindFunc(fn func(T) bool) int
	Clear()
}

type Sizer interface {
	Len() int
	IsEmpty() bool
}
