// Package table provides the bounded ordered record storage backing every
// repository. Tables are small (capacities in the hundreds), so removal
// shifts records in place rather than tracking free slots.
package table

// Table is a fixed-capacity ordered collection of records of one kind.
// Insertion order is the only order it guarantees. The table enforces no
// uniqueness; business keys are checked by its callers.
type Table[T any] struct {
	records  []T
	capacity int
}

// New creates an empty table with the given capacity bound.
func New[T any](capacity int) *Table[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Table[T]{
		records:  make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Append places a record at the next free slot. It returns ErrTableFull
// when the table is at capacity, leaving the table unchanged.
func (t *Table[T]) Append(record T) error {
	if len(t.records) >= t.capacity {
		return ErrTableFull
	}
	t.records = append(t.records, record)
	return nil
}

// RemoveAt deletes the record at index, shifting every later record one
// position down.
func (t *Table[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(t.records) {
		return ErrIndexOutOfRange
	}
	t.records = append(t.records[:index], t.records[index+1:]...)
	return nil
}

// Update mutates the record at index in place.
func (t *Table[T]) Update(index int, mutate func(*T)) error {
	if index < 0 || index >= len(t.records) {
		return ErrIndexOutOfRange
	}
	mutate(&t.records[index])
	return nil
}

// At returns the record at index.
func (t *Table[T]) At(index int) (T, error) {
	if index < 0 || index >= len(t.records) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return t.records[index], nil
}

// Scan walks the records in insertion order. Returning false from yield
// stops the walk.
func (t *Table[T]) Scan(yield func(index int, record T) bool) {
	for i, record := range t.records {
		if !yield(i, record) {
			return
		}
	}
}

// Records returns a copy of the current records in insertion order.
func (t *Table[T]) Records() []T {
	out := make([]T, len(t.records))
	copy(out, t.records)
	return out
}

// Count returns the number of records currently held.
func (t *Table[T]) Count() int {
	return len(t.records)
}

// Capacity returns the fixed capacity bound.
func (t *Table[T]) Capacity() int {
	return t.capacity
}

// Full reports whether the next append would fail.
func (t *Table[T]) Full() bool {
	return len(t.records) >= t.capacity
}
