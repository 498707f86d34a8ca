package store

import (
	"fmt"

	"horizon/pkg/codec"
	"horizon/pkg/models"
	"horizon/pkg/table"
)

const missionFieldCount = 5

// missionCodeBase offsets the positional mission codes synthesized on load.
const missionCodeBase = 101

// Only name, status, requester, cost and date persist in the mission store;
// this matches the historical file format. Code, vehicle and budget are
// synthesized from position on load, so edits to those fields do not
// survive a restart.
func encodeMission(m models.Mission) string {
	return codec.Join(m.Name, m.Status, m.Requester, codec.FormatFloat(m.Cost), m.Date)
}

func decodeMission(index int, line string) (models.Mission, bool) {
	fields, ok := codec.Split(line, missionFieldCount)
	if !ok {
		return models.Mission{}, false
	}
	cost := codec.Float(fields[3])
	return models.Mission{
		Name:      fields[0],
		Code:      fmt.Sprintf("MSN-%d", index+missionCodeBase),
		Date:      fields[4],
		Vehicle:   "TBD",
		Status:    fields[1],
		Budget:    cost,
		Requester: fields[2],
		Cost:      cost,
	}, true
}

// LoadMissions hydrates the mission table and the agency budget. The budget
// rides on the header line next to the count; fallbackBudget applies when
// the store is missing or the header has no budget field.
func (s *Store) LoadMissions(capacity int, fallbackBudget float64) (*table.Table[models.Mission], float64) {
	tbl := table.New[models.Mission](capacity)
	header, lines, ok := s.readStore(missionsFile)
	if !ok {
		return tbl, fallbackBudget
	}
	budget := fallbackBudget
	if len(header) > 1 {
		budget = codec.Float(header[1])
	}
	hydrate(tbl, missionsFile, lines, codec.Int(header[0]), decodeMission)
	return tbl, budget
}

// SaveMissions rewrites the mission store, carrying the agency budget on
// the header line.
func (s *Store) SaveMissions(tbl *table.Table[models.Mission], budget float64) error {
	header := countHeader(tbl.Count()) + codec.Separator + codec.FormatFloat(budget)
	return saveTable(s, missionsFile, header, tbl.Records(), encodeMission)
}
