package store

import (
	"horizon/pkg/codec"
	"horizon/pkg/models"
	"horizon/pkg/table"
)

const astronautFieldCount = 3

func encodeAstronaut(a models.Astronaut) string {
	return codec.Join(a.Name, a.Rank, a.Status)
}

func decodeAstronaut(_ int, line string) (models.Astronaut, bool) {
	fields, ok := codec.Split(line, astronautFieldCount)
	if !ok {
		return models.Astronaut{}, false
	}
	return models.Astronaut{
		Name:   fields[0],
		Rank:   fields[1],
		Status: fields[2],
	}, true
}

// LoadAstronauts hydrates the personnel roster from the astronaut store.
func (s *Store) LoadAstronauts(capacity int) *table.Table[models.Astronaut] {
	return loadTable(s, astronautsFile, capacity, decodeAstronaut)
}

// SaveAstronauts rewrites the astronaut store.
func (s *Store) SaveAstronauts(tbl *table.Table[models.Astronaut]) error {
	return saveTable(s, astronautsFile, countHeader(tbl.Count()), tbl.Records(), encodeAstronaut)
}
