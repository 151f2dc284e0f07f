package datastruct

import (
	"fmt"
	"iter"
	"strings"
)

// LinkedList is an ordered, singly-linked sequence.
//
// Both ends are reachable in constant time, except PopBack,
// which has to walk from the head to find the new tail.
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
	// generation changes on every structural mutation,
	// and cursors taken before the change are rejected by Cursor.Value.
	generation uint64
}

type llElem[T any] struct {
	data T
	next *llElem[T]
}

var _ Sequence[int] = &LinkedList[int]{}

// Len returns the number of elements in the list.
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.Len() == 0
}

// PushFront adds v as the new first element.
func (ll *LinkedList[T]) PushFront(v T) {
	elem := &llElem[T]{data: v, next: ll.head}
	ll.head = elem
	if ll.tail == nil {
		ll.tail = elem
	}
	ll.length++
	ll.generation++
}

// PushBack adds v as the new last element.
func (ll *LinkedList[T]) PushBack(v T) {
	elem := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = elem
	} else {
		ll.tail.next = elem
	}
	ll.tail = elem
	ll.length++
	ll.generation++
}

// Append pushes every value to the back of the list, in order.
func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.PushBack(v)
	}
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		ll.PushFront(vs[i])
	}
}

// PopFront removes the first element and returns it.
// On an empty list it does nothing and reports false.
func (ll *LinkedList[T]) PopFront() (T, bool) {
	first := ll.head
	if first == nil {
		var zero T
		return zero, false
	}
	ll.head = first.next
	first.next = nil
	if ll.head == nil {
		ll.tail = nil
	}
	ll.length--
	ll.generation++
	return first.data, true
}

// PopBack removes the last element and returns it.
// On an empty list it does nothing and reports false.
func (ll *LinkedList[T]) PopBack() (T, bool) {
	last := ll.tail
	if last == nil {
		var zero T
		return zero, false
	}
	if ll.head == last {
		ll.head = nil
		ll.tail = nil
	} else {
		prev := ll.head
		for prev.next != last {
			prev = prev.next
		}
		prev.next = nil
		ll.tail = prev
	}
	ll.length--
	ll.generation++
	return last.data, true
}

func (ll *LinkedList[T]) Front() (T, error) {
	if ll == nil || ll.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return ll.head.data, nil
}

func (ll *LinkedList[T]) Back() (T, error) {
	if ll == nil || ll.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return ll.tail.data, nil
}

// Insert places v so it ends up at the given position.
// The valid range is [0, Len()], where Len() appends.
func (ll *LinkedList[T]) Insert(index int, v T) error {
	if index < 0 || ll.length < index {
		return ErrIndexOutOfRange.F("insert index %d is outside of [0, %d]", index, ll.length)
	}
	switch index {
	case 0:
		ll.PushFront(v)
	case ll.length:
		ll.PushBack(v)
	default:
		prev := ll.elemAt(index - 1)
		prev.next = &llElem[T]{data: v, next: prev.next}
		ll.length++
		ll.generation++
	}
	return nil
}

// Remove deletes the element at index.
// It reports false when the index doesn't point to an element.
func (ll *LinkedList[T]) Remove(index int) bool {
	if index < 0 || ll.Len() <= index {
		return false
	}
	if index == 0 {
		ll.PopFront()
		return true
	}
	prev := ll.elemAt(index - 1)
	removed := prev.next
	prev.next = removed.next
	removed.next = nil
	if removed == ll.tail {
		ll.tail = prev
	}
	ll.length--
	ll.generation++
	return true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.Len() <= index {
		var zero T
		return zero, false
	}
	return ll.elemAt(index).data, true
}

// Set overwrites the value at index.
// Changing a value is not a structural change, so cursors remain valid.
func (ll *LinkedList[T]) Set(index int, v T) bool {
	if index < 0 || ll.Len() <= index {
		return false
	}
	ll.elemAt(index).data = v
	return true
}

// FindFunc returns the position of the first element that satisfies fn.
// When nothing matches, it returns Len().
func (ll *LinkedList[T]) FindFunc(fn func(T) bool) int {
	for i, v := range ll.Iter() {
		if fn(v) {
			return i
		}
	}
	return ll.Len()
}

// Find returns the position of the first element equal to v, or l.Len() when v is not in the list.
func Find[T comparable](l *LinkedList[T], v T) int {
	return l.FindFunc(func(got T) bool { return got == v })
}

// Clear releases every element by removing them from the front.
func (ll *LinkedList[T]) Clear() {
	for ll.head != nil {
		ll.PopFront()
	}
}

func (ll *LinkedList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if ll == nil {
			return
		}
		var index int
		for current := ll.head; current != nil; current = current.next {
			if !yield(index, current.data) {
				return
			}
			index++
		}
	}
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range ll.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for _, v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// String renders the elements in order, separated by a single space.
func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	for i, v := range ll.Iter() {
		if 0 < i {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// elemAt expects a valid index.
func (ll *LinkedList[T]) elemAt(index int) *llElem[T] {
	current := ll.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}
