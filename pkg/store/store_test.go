package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"horizon/pkg/models"
	"horizon/pkg/table"
)

// StoreTestSuite tests the flat-file persistence gateway.
type StoreTestSuite struct {
	suite.Suite
	dir   string
	store *Store
}

// SetupTest runs before each test.
func (s *StoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.store = New(s.dir)
}

func (s *StoreTestSuite) writeStoreFile(name, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o600))
}

func (s *StoreTestSuite) readStoreFile(name string) string {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	s.Require().NoError(err)
	return string(data)
}

func (s *StoreTestSuite) TestMissingStoreLoadsEmpty() {
	tbl := s.store.LoadUsers(10)
	s.Equal(0, tbl.Count())
	s.Equal(10, tbl.Capacity())
}

func (s *StoreTestSuite) TestUserRoundTrip() {
	tbl := table.New[models.User](10)
	user := models.User{Username: "flight", Password: "flight123", Role: models.RoleStaff, Department: "FLT"}
	s.Require().NoError(tbl.Append(user))
	s.Require().NoError(s.store.SaveUsers(tbl))

	loaded := s.store.LoadUsers(10)
	s.Equal(1, loaded.Count())
	got, err := loaded.At(0)
	s.Require().NoError(err)
	s.Equal(user, got)
}

func (s *StoreTestSuite) TestTolerantLoadSkipsMalformedLines() {
	// Header claims five records; two lines are short of separators.
	s.writeStoreFile("users.csv",
		"5\n"+
			"a1,p1,admin,HQ\n"+
			"a2,p2,staff,FLT\n"+
			"a3,p3,staff,ENG\n"+
			"broken line\n"+
			"only,two\n")

	tbl := s.store.LoadUsers(10)
	s.Equal(3, tbl.Count())
	got, err := tbl.At(2)
	s.Require().NoError(err)
	s.Equal("a3", got.Username)
}

func (s *StoreTestSuite) TestLoadHonorsHeaderCount() {
	// Lines past the header count are ignored.
	s.writeStoreFile("astronauts.csv",
		"1\n"+
			"Neil Armstrong,Commander,Retired\n"+
			"Buzz Aldrin,Pilot,Retired\n")

	tbl := s.store.LoadAstronauts(10)
	s.Equal(1, tbl.Count())
}

func (s *StoreTestSuite) TestLoadClampsToCapacity() {
	s.writeStoreFile("astronauts.csv",
		"3\n"+
			"A,Commander,Active\n"+
			"B,Pilot,Active\n"+
			"C,Specialist,Active\n")

	tbl := s.store.LoadAstronauts(2)
	s.Equal(2, tbl.Count())
}

func (s *StoreTestSuite) TestNumericGarbageDefaultsToZero() {
	s.writeStoreFile("inventory.csv",
		"1\n"+
			"Solar Array,Power,not-a-number,pcs,2.5\n")

	tbl := s.store.LoadInventory(10)
	s.Require().Equal(1, tbl.Count())
	got, err := tbl.At(0)
	s.Require().NoError(err)
	s.Equal(0.0, got.Quantity)
	s.Equal(2.5, got.UnitCost)
}

func (s *StoreTestSuite) TestInventoryWriteThrough() {
	tbl := table.New[models.InventoryItem](10)
	item := models.InventoryItem{Name: "Widget", Category: "Structure", Quantity: 10, Unit: "pcs", UnitCost: 0.01}
	s.Require().NoError(tbl.Append(item))
	s.Require().NoError(s.store.SaveInventory(tbl))

	loaded := s.store.LoadInventory(10)
	s.Require().Equal(1, loaded.Count())
	got, err := loaded.At(0)
	s.Require().NoError(err)
	s.Equal(item, got)

	s.Require().NoError(loaded.RemoveAt(0))
	s.Require().NoError(s.store.SaveInventory(loaded))

	reloaded := s.store.LoadInventory(10)
	s.Equal(0, reloaded.Count())
}

func (s *StoreTestSuite) TestMissionHeaderCarriesBudget() {
	tbl := table.New[models.Mission](10)
	s.Require().NoError(tbl.Append(models.Mission{
		Name: "Freedom 7", Status: models.MissionSuccess, Requester: "History", Cost: 0.1, Date: "1961-05-05",
	}))
	s.Require().NoError(s.store.SaveMissions(tbl, 49.5))

	s.Equal("1,49.5", s.readStoreFile("missions.csv")[:6])

	loaded, budget := s.store.LoadMissions(10, 50.0)
	s.Equal(1, loaded.Count())
	s.Equal(49.5, budget)
}

func (s *StoreTestSuite) TestMissionFallbackBudget() {
	_, budget := s.store.LoadMissions(10, 50.0)
	s.Equal(50.0, budget)
}

func (s *StoreTestSuite) TestMissionSynthesizedFields() {
	// Code, vehicle and budget are not persisted; load rebuilds them from
	// position and cost.
	tbl := table.New[models.Mission](10)
	s.Require().NoError(tbl.Append(models.Mission{
		Name: "Artemis II", Code: "REQ-100", Vehicle: "SLS", Status: models.MissionPlanned,
		Budget: 2.0, Requester: "flight", Cost: 1.4, Date: "2026-04-01",
	}))
	s.Require().NoError(s.store.SaveMissions(tbl, 48.0))

	loaded, _ := s.store.LoadMissions(10, 50.0)
	got, err := loaded.At(0)
	s.Require().NoError(err)
	s.Equal("MSN-101", got.Code)
	s.Equal("TBD", got.Vehicle)
	s.Equal(1.4, got.Cost)
	s.Equal(1.4, got.Budget)
	s.Equal("Artemis II", got.Name)
	s.Equal(models.MissionPlanned, got.Status)
}

func (s *StoreTestSuite) TestExoplanetBooleanForm() {
	tbl := table.New[models.Exoplanet](10)
	s.Require().NoError(tbl.Append(models.Exoplanet{Name: "Kepler-22b", DistanceLY: 600, Type: "Super Earth", Habitable: true}))
	s.Require().NoError(tbl.Append(models.Exoplanet{Name: "HD 209458 b", DistanceLY: 150, Type: "Hot Jupiter", Habitable: false}))
	s.Require().NoError(s.store.SaveExoplanets(tbl))

	content := s.readStoreFile("exoplanets.csv")
	s.Contains(content, "Kepler-22b,600,Super Earth,1")
	s.Contains(content, "HD 209458 b,150,Hot Jupiter,0")

	loaded := s.store.LoadExoplanets(10)
	s.Equal(tbl.Records(), loaded.Records())
}

func (s *StoreTestSuite) TestPlanetRoundTrip() {
	tbl := table.New[models.Planet](10)
	planet := models.Planet{Name: "Venus", Type: "Rocky", DistanceAU: 0.72, Gravity: 8.87, Atmosphere: "Thick CO2"}
	s.Require().NoError(tbl.Append(planet))
	s.Require().NoError(s.store.SavePlanets(tbl))

	loaded := s.store.LoadPlanets(10)
	got, err := loaded.At(0)
	s.Require().NoError(err)
	s.Equal(planet, got)
}

func (s *StoreTestSuite) TestHireRoundTrip() {
	tbl := table.New[models.HireApplication](10)
	app := models.HireApplication{
		Username: "newbie", Role: models.PositionAstronaut, Experience: "Test pilot; 5 years",
		Status: models.ApplicationPending, FullName: "Jane Doe", Education: "MSc Aero",
	}
	s.Require().NoError(tbl.Append(app))
	s.Require().NoError(s.store.SaveHires(tbl))

	loaded := s.store.LoadHires(10)
	got, err := loaded.At(0)
	s.Require().NoError(err)
	s.Equal(app, got)
}

func (s *StoreTestSuite) TestLogbookRoundTrip() {
	entries := []string{"Login Success: flight", "Mission Requested: Artemis II"}
	s.Require().NoError(s.store.SaveLogbook(entries))

	loaded := s.store.LoadLogbook(100)
	s.Equal(entries, loaded)
}

func (s *StoreTestSuite) TestLogbookLoadCapped() {
	s.Require().NoError(s.store.SaveLogbook([]string{"one", "two", "three"}))
	s.Equal([]string{"one", "two"}, s.store.LoadLogbook(2))
}

func (s *StoreTestSuite) TestSaveFailsOnMissingDirectory() {
	broken := New(filepath.Join(s.dir, "no", "such", "dir"))
	err := broken.SaveUsers(table.New[models.User](1))
	s.Error(err)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
