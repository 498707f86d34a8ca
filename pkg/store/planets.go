package store

import (
	"horizon/pkg/codec"
	"horizon/pkg/models"
	"horizon/pkg/table"
)

const planetFieldCount = 5

func encodePlanet(p models.Planet) string {
	return codec.Join(p.Name, p.Type, codec.FormatFloat(p.DistanceAU), codec.FormatFloat(p.Gravity), p.Atmosphere)
}

func decodePlanet(_ int, line string) (models.Planet, bool) {
	fields, ok := codec.Split(line, planetFieldCount)
	if !ok {
		return models.Planet{}, false
	}
	return models.Planet{
		Name:       fields[0],
		Type:       fields[1],
		DistanceAU: codec.Float(fields[2]),
		Gravity:    codec.Float(fields[3]),
		Atmosphere: fields[4],
	}, true
}

// LoadPlanets hydrates the planetary catalog from the planet store.
func (s *Store) LoadPlanets(capacity int) *table.Table[models.Planet] {
	return loadTable(s, planetsFile, capacity, decodePlanet)
}

// SavePlanets rewrites the planet store.
func (s *Store) SavePlanets(tbl *table.Table[models.Planet]) error {
	return saveTable(s, planetsFile, countHeader(tbl.Count()), tbl.Records(), encodePlanet)
}
