package datastruct

// Cursor is a forward-only position in a LinkedList.
// A cursor that points past the last element is the end-marker.
//
// Cursors don't own anything. Any push, successful pop, insert, remove or clear
// invalidates every cursor taken from the list before it.
// Value and Set on such a cursor return ErrCursorInvalidated.
//
// The zero Cursor is an end-marker.
type Cursor[T any] struct {
	list       *LinkedList[T]
	elem       *llElem[T]
	generation uint64
}

// Begin returns a cursor at the first element, or the end-marker when the list is empty.
func (ll *LinkedList[T]) Begin() Cursor[T] {
	return Cursor[T]{list: ll, elem: ll.head, generation: ll.generation}
}

func (ll *LinkedList[T]) End() Cursor[T] {
	return Cursor[T]{list: ll, generation: ll.generation}
}

// Next returns the cursor of the following element.
// Advancing the end-marker yields the end-marker.
func (c Cursor[T]) Next() Cursor[T] {
	if c.elem == nil {
		return c
	}
	c.elem = c.elem.next
	return c
}

func (c Cursor[T]) IsEnd() bool {
	return c.elem == nil
}

// Equal reports whether both cursors point to the same element, or both are end-markers.
func (c Cursor[T]) Equal(oth Cursor[T]) bool {
	return c.elem == oth.elem
}

func (c Cursor[T]) Value() (T, error) {
	if err := c.check(); err != nil {
		var zero T
		return zero, err
	}
	return c.elem.data, nil
}

// Set overwrites the value under the cursor.
func (c Cursor[T]) Set(v T) error {
	if err := c.check(); err != nil {
		return err
	}
	c.elem.data = v
	return nil
}

func (c Cursor[T]) check() error {
	if c.elem == nil {
		return ErrEndOfList
	}
	if c.list != nil && c.list.generation != c.generation {
		return ErrCursorInvalidated
	}
	return nil
}
