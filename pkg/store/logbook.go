package store

import "horizon/pkg/codec"

// Logbook entries are free-text lines; the whole line is the record, so no
// field codec applies.

// LoadLogbook returns the logbook entries, capped at capacity.
func (s *Store) LoadLogbook(capacity int) []string {
	header, lines, ok := s.readStore(logbookFile)
	if !ok {
		return nil
	}
	count := codec.Int(header[0])
	if count > len(lines) {
		count = len(lines)
	}
	if count > capacity {
		count = capacity
	}
	return lines[:count]
}

// SaveLogbook rewrites the logbook store.
func (s *Store) SaveLogbook(entries []string) error {
	return s.writeStore(logbookFile, countHeader(len(entries)), entries)
}
