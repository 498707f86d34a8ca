package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndCount(t *testing.T) {
	tbl := New[string](3)
	assert.Equal(t, 0, tbl.Count())
	assert.Equal(t, 3, tbl.Capacity())

	require.NoError(t, tbl.Append("a"))
	require.NoError(t, tbl.Append("b"))
	assert.Equal(t, 2, tbl.Count())
	assert.False(t, tbl.Full())
}

func TestAppendAtCapacity(t *testing.T) {
	tbl := New[int](2)
	require.NoError(t, tbl.Append(1))
	require.NoError(t, tbl.Append(2))

	err := tbl.Append(3)
	require.ErrorIs(t, err, ErrTableFull)

	// A refused append leaves the table untouched.
	assert.Equal(t, 2, tbl.Count())
	assert.Equal(t, []int{1, 2}, tbl.Records())
	assert.True(t, tbl.Full())
}

func TestRemoveAtShiftsRecords(t *testing.T) {
	tbl := New[string](5)
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, tbl.Append(s))
	}

	require.NoError(t, tbl.RemoveAt(1))
	assert.Equal(t, []string{"a", "c", "d"}, tbl.Records())
	assert.Equal(t, 3, tbl.Count())

	require.NoError(t, tbl.RemoveAt(0))
	assert.Equal(t, []string{"c", "d"}, tbl.Records())
}

func TestRemoveAtOutOfRange(t *testing.T) {
	tbl := New[string](3)
	require.NoError(t, tbl.Append("a"))

	assert.ErrorIs(t, tbl.RemoveAt(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, tbl.RemoveAt(1), ErrIndexOutOfRange)
	assert.Equal(t, 1, tbl.Count())
}

func TestUpdate(t *testing.T) {
	type rec struct{ Name, Status string }

	tbl := New[rec](2)
	require.NoError(t, tbl.Append(rec{Name: "Freedom 7", Status: "Pending"}))

	require.NoError(t, tbl.Update(0, func(r *rec) { r.Status = "Planned" }))

	got, err := tbl.At(0)
	require.NoError(t, err)
	assert.Equal(t, rec{Name: "Freedom 7", Status: "Planned"}, got)

	assert.ErrorIs(t, tbl.Update(5, func(r *rec) {}), ErrIndexOutOfRange)
}

func TestAtOutOfRange(t *testing.T) {
	tbl := New[int](2)
	_, err := tbl.At(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestScanOrderAndStop(t *testing.T) {
	tbl := New[int](5)
	for i := 10; i < 15; i++ {
		require.NoError(t, tbl.Append(i))
	}

	var seen []int
	tbl.Scan(func(i int, v int) bool {
		seen = append(seen, v)
		return true
	})
	assert.Equal(t, []int{10, 11, 12, 13, 14}, seen)

	var partial []int
	tbl.Scan(func(i int, v int) bool {
		partial = append(partial, v)
		return len(partial) < 2
	})
	assert.Equal(t, []int{10, 11}, partial)
}

func TestRecordsIsACopy(t *testing.T) {
	tbl := New[string](2)
	require.NoError(t, tbl.Append("a"))

	records := tbl.Records()
	records[0] = "mutated"

	got, err := tbl.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestMinimumCapacity(t *testing.T) {
	tbl := New[int](0)
	assert.Equal(t, 1, tbl.Capacity())
	require.NoError(t, tbl.Append(1))
	assert.ErrorIs(t, tbl.Append(2), ErrTableFull)
}
