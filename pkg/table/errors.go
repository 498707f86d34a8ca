package table

import "errors"

var (
	// ErrTableFull is returned when an append would exceed the table capacity.
	ErrTableFull = errors.New("table is full")

	// ErrIndexOutOfRange is returned for positions outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")
)
