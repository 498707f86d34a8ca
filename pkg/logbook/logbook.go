// Package logbook keeps the append-only audit trail of user-visible actions
// (logins, registrations, launches, approvals, deletions). Entries are
// free-text lines with no structured fields.
package logbook

import "horizon/pkg/log"

// Saver persists the full entry list; the logbook writes through on every
// append.
type Saver func(entries []string) error

// Logbook is a capacity-bounded append-only record of actions. Once full,
// further appends are silently dropped; old entries are never evicted.
type Logbook struct {
	entries  []string
	capacity int
	save     Saver
}

// New creates an empty logbook. A nil saver disables persistence.
func New(capacity int, save Saver) *Logbook {
	if capacity < 1 {
		capacity = 1
	}
	return &Logbook{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
		save:     save,
	}
}

// Hydrate replaces the entries with previously persisted ones, clamped to
// capacity. Used once at startup.
func (l *Logbook) Hydrate(entries []string) {
	if len(entries) > l.capacity {
		entries = entries[:l.capacity]
	}
	l.entries = append(l.entries[:0], entries...)
}

// Append records an action and persists the full log. At capacity the
// action is dropped without error.
func (l *Logbook) Append(action string) {
	if len(l.entries) >= l.capacity {
		return
	}
	l.entries = append(l.entries, action)
	if l.save == nil {
		return
	}
	if err := l.save(l.entries); err != nil {
		log.Warn().Err(err).Msg("logbook save failed")
	}
}

// Entries returns a copy of the recorded actions in append order.
func (l *Logbook) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns the number of recorded actions.
func (l *Logbook) Count() int {
	return len(l.entries)
}

// Capacity returns the fixed capacity bound.
func (l *Logbook) Capacity() int {
	return l.capacity
}
