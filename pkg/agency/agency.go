// Package agency owns the record repositories, the agency budget and the
// activity logbook, and implements every business operation on them. All
// durable state lives here; mutations write through to the flat-file stores
// immediately.
package agency

import (
	"horizon/pkg/config"
	"horizon/pkg/log"
	"horizon/pkg/logbook"
	"horizon/pkg/models"
	"horizon/pkg/seed"
	"horizon/pkg/store"
	"horizon/pkg/table"
)

// Agency is the single top-level context: seven bounded repositories, the
// mutable budget (billions), and the logbook. It is built once at process
// start and passed to whichever layer needs it; there is no package-level
// state.
type Agency struct {
	Users        *table.Table[models.User]
	Applications *table.Table[models.HireApplication]
	Missions     *table.Table[models.Mission]
	Inventory    *table.Table[models.InventoryItem]
	Astronauts   *table.Table[models.Astronaut]
	Planets      *table.Table[models.Planet]
	Exoplanets   *table.Table[models.Exoplanet]

	Budget float64
	Log    *logbook.Logbook

	store *store.Store
}

// Bootstrap hydrates every repository from its store and seeds the demo
// records into any repository that loaded empty. Each seed is saved right
// away so the next start finds it on disk.
func Bootstrap(cfg config.Config) (*Agency, error) {
	st := store.New(cfg.DataDir)
	a := &Agency{store: st}

	a.Users = st.LoadUsers(cfg.Capacity.Users)
	if err := seedIfEmpty(a.Users, seed.Users(), func() error { return st.SaveUsers(a.Users) }); err != nil {
		return nil, err
	}

	a.Applications = st.LoadHires(cfg.Capacity.Applications)

	a.Missions, a.Budget = st.LoadMissions(cfg.Capacity.Missions, cfg.StartingBudget)
	if err := seedIfEmpty(a.Missions, seed.Missions(), func() error { return st.SaveMissions(a.Missions, a.Budget) }); err != nil {
		return nil, err
	}

	a.Inventory = st.LoadInventory(cfg.Capacity.Inventory)
	if err := seedIfEmpty(a.Inventory, seed.Inventory(), func() error { return st.SaveInventory(a.Inventory) }); err != nil {
		return nil, err
	}

	a.Astronauts = st.LoadAstronauts(cfg.Capacity.Astronauts)
	if err := seedIfEmpty(a.Astronauts, seed.Astronauts(), func() error { return st.SaveAstronauts(a.Astronauts) }); err != nil {
		return nil, err
	}

	a.Planets = st.LoadPlanets(cfg.Capacity.Planets)
	if err := seedIfEmpty(a.Planets, seed.Planets(), func() error { return st.SavePlanets(a.Planets) }); err != nil {
		return nil, err
	}

	a.Exoplanets = st.LoadExoplanets(cfg.Capacity.Exoplanets)
	if err := seedIfEmpty(a.Exoplanets, seed.Exoplanets(), func() error { return st.SaveExoplanets(a.Exoplanets) }); err != nil {
		return nil, err
	}

	a.Log = logbook.New(cfg.Capacity.LogEntries, st.SaveLogbook)
	a.Log.Hydrate(st.LoadLogbook(cfg.Capacity.LogEntries))

	log.Info().
		Str("data_dir", cfg.DataDir).
		Int("users", a.Users.Count()).
		Int("missions", a.Missions.Count()).
		Float64("budget", a.Budget).
		Msg("agency hydrated")

	return a, nil
}

// seedIfEmpty installs the seed records into a table that loaded zero
// records, then saves. A table with any records is left alone.
func seedIfEmpty[T any](tbl *table.Table[T], records []T, save func() error) error {
	if tbl.Count() > 0 {
		return nil
	}
	for _, record := range records {
		if err := tbl.Append(record); err != nil {
			return err
		}
	}
	return save()
}
