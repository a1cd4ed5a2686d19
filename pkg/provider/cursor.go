package provider

// Cursor is a pull iterator over a backend result set, in the style of
// database cursors: call Next until it returns false, then check Err.
//
//	for cur.Next() {
//	    v := cur.Value()
//	    ...
//	}
//	if err := cur.Err(); err != nil { ... }
type Cursor[T any] interface {
	// Next advances to the next element, returning false when the
	// sequence is exhausted or an error occurred.
	Next() bool

	// Value returns the current element. Only valid after a true Next.
	Value() T

	// Err returns the error that terminated iteration, if any.
	Err() error
}

// SliceCursor adapts an in-memory slice to the Cursor interface.
type SliceCursor[T any] struct {
	items []T
	pos   int
}

// NewSliceCursor returns a cursor over items.
func NewSliceCursor[T any](items []T) *SliceCursor[T] {
	return &SliceCursor[T]{items: items, pos: -1}
}

// Next implements Cursor.
func (c *SliceCursor[T]) Next() bool {
	if c.pos+1 >= len(c.items) {
		return false
	}
	c.pos++
	return true
}

// Value implements Cursor.
func (c *SliceCursor[T]) Value() T { return c.items[c.pos] }

// Err implements Cursor.
func (c *SliceCursor[T]) Err() error { return nil }
