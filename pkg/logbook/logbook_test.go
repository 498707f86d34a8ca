package logbook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendWritesThrough(t *testing.T) {
	var saved []string
	lb := New(10, func(entries []string) error {
		saved = append([]string(nil), entries...)
		return nil
	})

	lb.Append("Login Success: flight")
	lb.Append("Mission Requested: Artemis II")

	assert.Equal(t, 2, lb.Count())
	assert.Equal(t, []string{"Login Success: flight", "Mission Requested: Artemis II"}, saved)
}

func TestAppendSilentDropAtCapacity(t *testing.T) {
	saves := 0
	lb := New(2, func([]string) error {
		saves++
		return nil
	})

	lb.Append("one")
	lb.Append("two")
	lb.Append("three")

	assert.Equal(t, 2, lb.Count())
	assert.Equal(t, []string{"one", "two"}, lb.Entries())
	// The dropped append must not trigger a save either.
	assert.Equal(t, 2, saves)
}

func TestAppendSurvivesSaveFailure(t *testing.T) {
	lb := New(5, func([]string) error {
		return errors.New("disk full")
	})

	lb.Append("still recorded")
	assert.Equal(t, []string{"still recorded"}, lb.Entries())
}

func TestHydrateClampsToCapacity(t *testing.T) {
	lb := New(2, nil)
	lb.Hydrate([]string{"a", "b", "c"})

	require.Equal(t, 2, lb.Count())
	assert.Equal(t, []string{"a", "b"}, lb.Entries())
}

func TestEntriesIsACopy(t *testing.T) {
	lb := New(5, nil)
	lb.Append("original")

	entries := lb.Entries()
	entries[0] = "mutated"
	assert.Equal(t, []string{"original"}, lb.Entries())
}
