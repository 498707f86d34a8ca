package store

import (
	"horizon/pkg/codec"
	"horizon/pkg/models"
	"horizon/pkg/table"
)

const exoplanetFieldCount = 4

func encodeExoplanet(e models.Exoplanet) string {
	return codec.Join(e.Name, codec.FormatFloat(e.DistanceLY), e.Type, codec.FormatBool(e.Habitable))
}

func decodeExoplanet(_ int, line string) (models.Exoplanet, bool) {
	fields, ok := codec.Split(line, exoplanetFieldCount)
	if !ok {
		return models.Exoplanet{}, false
	}
	return models.Exoplanet{
		Name:       fields[0],
		DistanceLY: codec.Float(fields[1]),
		Type:       fields[2],
		Habitable:  codec.Bool(fields[3]),
	}, true
}

// LoadExoplanets hydrates the exoplanet catalog from the exoplanet store.
func (s *Store) LoadExoplanets(capacity int) *table.Table[models.Exoplanet] {
	return loadTable(s, exoplanetsFile, capacity, decodeExoplanet)
}

// SaveExoplanets rewrites the exoplanet store.
func (s *Store) SaveExoplanets(tbl *table.Table[models.Exoplanet]) error {
	return saveTable(s, exoplanetsFile, countHeader(tbl.Count()), tbl.Records(), encodeExoplanet)
}
