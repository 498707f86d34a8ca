package store

import (
	"horizon/pkg/codec"
	"horizon/pkg/models"
	"horizon/pkg/table"
)

const hireFieldCount = 6

func encodeHire(h models.HireApplication) string {
	return codec.Join(h.Username, h.Role, h.Experience, h.Status, h.FullName, h.Education)
}

func decodeHire(_ int, line string) (models.HireApplication, bool) {
	fields, ok := codec.Split(line, hireFieldCount)
	if !ok {
		return models.HireApplication{}, false
	}
	return models.HireApplication{
		Username:   fields[0],
		Role:       fields[1],
		Experience: fields[2],
		Status:     fields[3],
		FullName:   fields[4],
		Education:  fields[5],
	}, true
}

// LoadHires hydrates the job-application table from the hire store.
func (s *Store) LoadHires(capacity int) *table.Table[models.HireApplication] {
	return loadTable(s, hiresFile, capacity, decodeHire)
}

// SaveHires rewrites the hire store.
func (s *Store) SaveHires(tbl *table.Table[models.HireApplication]) error {
	return saveTable(s, hiresFile, countHeader(tbl.Count()), tbl.Records(), encodeHire)
}
