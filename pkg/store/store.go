// Package store maps bounded tables onto line-oriented delimited files, one
// file per entity kind. Every store starts with a header line carrying the
// record count (the mission store also carries the agency budget), followed
// by one encoded line per record.
//
// Loading is tolerant by contract: a missing or unreadable store reads as
// empty, and a record line that fails to decode is skipped. Saving always
// rewrites the whole store.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"horizon/pkg/codec"
	"horizon/pkg/log"
	"horizon/pkg/table"
)

const filePerm = 0o600

// Store file names, one per entity kind.
const (
	usersFile      = "users.csv"
	hiresFile      = "hires.csv"
	missionsFile   = "missions.csv"
	inventoryFile  = "inventory.csv"
	astronautsFile = "astronauts.csv"
	planetsFile    = "planets.csv"
	exoplanetsFile = "exoplanets.csv"
	logbookFile    = "logbook.csv"
)

// Store reads and writes the flat-file stores under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory must already exist.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the store files.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readStore returns the header fields and the record lines of one store.
// A store that cannot be opened reads as empty.
func (s *Store) readStore(name string) (header []string, lines []string, ok bool) {
	f, err := os.Open(s.path(name))
	if err != nil {
		log.Debug().Str("store", name).Msg("store unavailable, treating as empty")
		return nil, nil, false
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, nil, false
	}
	header = strings.Split(scanner.Text(), codec.Separator)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Str("store", name).Msg("store read stopped early")
	}
	return header, lines, true
}

// writeStore rewrites one store in full: header line, then record lines.
func (s *Store) writeStore(name string, header string, lines []string) error {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.path(name), []byte(b.String()), filePerm); err != nil {
		return fmt.Errorf("write store %s: %w", name, err)
	}
	return nil
}

// hydrate fills a table from record lines. The header count caps how many
// lines are considered; malformed lines are skipped, and records past the
// table capacity are dropped.
func hydrate[T any](tbl *table.Table[T], name string, lines []string, count int, decode func(index int, line string) (T, bool)) {
	if count > len(lines) {
		count = len(lines)
	}
	for _, line := range lines[:count] {
		record, ok := decode(tbl.Count(), line)
		if !ok {
			log.Debug().Str("store", name).Msg("skipping malformed record line")
			continue
		}
		if err := tbl.Append(record); err != nil {
			log.Warn().Str("store", name).Int("capacity", tbl.Capacity()).Msg("store holds more records than capacity, rest dropped")
			return
		}
	}
}

// loadTable builds a fresh table from one store.
func loadTable[T any](s *Store, name string, capacity int, decode func(index int, line string) (T, bool)) *table.Table[T] {
	tbl := table.New[T](capacity)
	header, lines, ok := s.readStore(name)
	if !ok {
		return tbl
	}
	hydrate(tbl, name, lines, codec.Int(header[0]), decode)
	return tbl
}

// saveTable rewrites one store from the table contents.
func saveTable[T any](s *Store, name string, header string, records []T, encode func(T) string) error {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, encode(record))
	}
	return s.writeStore(name, header, lines)
}

func countHeader(n int) string {
	return strconv.Itoa(n)
}
