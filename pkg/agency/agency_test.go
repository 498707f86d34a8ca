package agency

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"horizon/pkg/config"
	"horizon/pkg/models"
)

// AgencyTestSuite drives the business operations against a temporary data
// directory, restarting the agency where durability matters.
type AgencyTestSuite struct {
	suite.Suite
	cfg    config.Config
	agency *Agency
}

// SetupTest runs before each test.
func (s *AgencyTestSuite) SetupTest() {
	s.cfg = config.Default()
	s.cfg.DataDir = s.T().TempDir()

	var err error
	s.agency, err = Bootstrap(s.cfg)
	s.Require().NoError(err)
}

// reboot simulates a process restart against the same data directory.
func (s *AgencyTestSuite) reboot() {
	restarted, err := Bootstrap(s.cfg)
	s.Require().NoError(err)
	s.agency = restarted
}

func (s *AgencyTestSuite) TestSeedOnEmpty() {
	s.Equal(3, s.agency.Users.Count())
	users := s.agency.Users.Records()
	s.Equal("themystery", users[0].Username)
	s.Equal(models.RoleAdmin, users[0].Role)
	s.Equal(models.RoleStaff, users[1].Role)
	s.Equal(models.RoleStaff, users[2].Role)

	s.Equal(3, s.agency.Missions.Count())
	s.Equal(15, s.agency.Inventory.Count())
	s.Equal(9, s.agency.Astronauts.Count())
	s.Equal(8, s.agency.Planets.Count())
	s.Equal(5, s.agency.Exoplanets.Count())
	s.Equal(0, s.agency.Applications.Count())
	s.Equal(config.DefaultBudget, s.agency.Budget)
}

func (s *AgencyTestSuite) TestSeedOnlyWhenEmpty() {
	// Edits to every table must survive a restart; seeding never reruns
	// over a populated store.
	_, err := s.agency.RemovePlanet(0)
	s.Require().NoError(err)
	_, err = s.agency.RemoveExoplanet(0)
	s.Require().NoError(err)
	s.Require().NoError(s.agency.Astronauts.Update(0, func(a *models.Astronaut) { a.Rank = "Legend" }))
	s.Require().NoError(s.agency.store.SaveAstronauts(s.agency.Astronauts))

	s.reboot()

	s.Equal(7, s.agency.Planets.Count())
	planets := s.agency.Planets.Records()
	s.Equal("Venus", planets[0].Name)

	s.Equal(4, s.agency.Exoplanets.Count())

	astro, err := s.agency.Astronauts.At(0)
	s.Require().NoError(err)
	s.Equal("Legend", astro.Rank)
}

func (s *AgencyTestSuite) TestSignUpAndAuthenticate() {
	s.Require().NoError(s.agency.SignUp("newbie42", "Sup3r$ecret"))

	user, index, ok := s.agency.Authenticate("newbie42", "Sup3r$ecret")
	s.Require().True(ok)
	s.Equal(3, index)
	s.Equal(models.RoleVisitor, user.Role)
	s.Equal("GEN", user.Department)

	_, _, ok = s.agency.Authenticate("newbie42", "wrong")
	s.False(ok)

	s.Contains(s.agency.Log.Entries(), "New Visitor Registered: newbie42")

	s.reboot()
	_, _, ok = s.agency.Authenticate("newbie42", "Sup3r$ecret")
	s.True(ok)
}

func (s *AgencyTestSuite) TestSignUpDuplicate() {
	err := s.agency.SignUp("flight", "whatever1!A")
	s.Require().ErrorIs(err, ErrUsernameTaken)
	s.Equal(3, s.agency.Users.Count())
}

func (s *AgencyTestSuite) TestDeleteUserProtected() {
	err := s.agency.DeleteUser(0)
	s.Require().ErrorIs(err, ErrProtectedUser)
	s.Equal(3, s.agency.Users.Count())
}

func (s *AgencyTestSuite) TestDeleteAndRoleUpdate() {
	s.Require().NoError(s.agency.SetUserRole(1, models.RoleGuest))
	user, err := s.agency.Users.At(1)
	s.Require().NoError(err)
	s.Equal(models.RoleGuest, user.Role)

	s.Require().NoError(s.agency.DeleteUser(2))
	s.Equal(2, s.agency.Users.Count())

	s.reboot()
	s.Equal(2, s.agency.Users.Count())
	user, err = s.agency.Users.At(1)
	s.Require().NoError(err)
	s.Equal(models.RoleGuest, user.Role)
}

func (s *AgencyTestSuite) TestRequestMission() {
	mission, err := s.agency.RequestMission("Artemis II", "SLS", "flight", 1.3)
	s.Require().NoError(err)
	s.Equal("REQ-103", mission.Code)
	s.Equal(models.MissionPending, mission.Status)
	s.Equal(1.3, mission.Budget)
	s.Equal(4, s.agency.Missions.Count())

	s.reboot()
	s.Equal(4, s.agency.Missions.Count())
}

func (s *AgencyTestSuite) TestApproveFunding() {
	_, err := s.agency.RequestMission("Artemis II", "SLS", "flight", 1.5)
	s.Require().NoError(err)

	s.Require().NoError(s.agency.ApproveFunding(3))
	s.InDelta(48.5, s.agency.Budget, 1e-9)

	mission, err := s.agency.Missions.At(3)
	s.Require().NoError(err)
	s.Equal(models.MissionPlanned, mission.Status)

	s.reboot()
	s.InDelta(48.5, s.agency.Budget, 1e-9)
}

func (s *AgencyTestSuite) TestApproveFundingRefusedWhenBroke() {
	_, err := s.agency.RequestMission("Megaproject", "SLS", "flight", 200)
	s.Require().NoError(err)

	err = s.agency.ApproveFunding(3)
	s.Require().ErrorIs(err, ErrInsufficientFunds)

	// Budget and mission state unchanged on refusal.
	s.Equal(config.DefaultBudget, s.agency.Budget)
	mission, atErr := s.agency.Missions.At(3)
	s.Require().NoError(atErr)
	s.Equal(models.MissionPending, mission.Status)
}

func (s *AgencyTestSuite) TestRecordLaunch() {
	_, err := s.agency.RequestMission("Artemis II", "SLS", "flight", 1.0)
	s.Require().NoError(err)

	err = s.agency.RecordLaunch(3, true)
	s.Require().ErrorIs(err, ErrMissionNotFunded)

	s.Require().NoError(s.agency.ApproveFunding(3))
	s.Require().NoError(s.agency.RecordLaunch(3, false))

	mission, err := s.agency.Missions.At(3)
	s.Require().NoError(err)
	s.Equal(models.MissionFailure, mission.Status)
	s.Contains(s.agency.Log.Entries(), "Launch Failure: Artemis II")
}

func (s *AgencyTestSuite) TestDeleteMission() {
	s.Require().NoError(s.agency.DeleteMission(0))
	s.Equal(2, s.agency.Missions.Count())

	mission, err := s.agency.Missions.At(0)
	s.Require().NoError(err)
	s.Equal("Liberty Bell 7", mission.Name)

	s.reboot()
	s.Equal(2, s.agency.Missions.Count())
}

func (s *AgencyTestSuite) TestApplyOnePendingPerUser() {
	s.Require().NoError(s.agency.SignUp("curious1", "Aa1!xyz"))
	s.Require().NoError(s.agency.Apply("curious1", "Jane Doe", "MSc Aero", "Test pilot 5y", models.PositionEngineer))

	err := s.agency.Apply("curious1", "Jane Doe", "MSc Aero", "Test pilot 5y", models.PositionScientist)
	s.Require().ErrorIs(err, ErrPendingApplication)

	apps := s.agency.ApplicationsFor("curious1")
	s.Require().Len(apps, 1)
	s.Equal(models.ApplicationPending, apps[0].Status)
}

func (s *AgencyTestSuite) TestApproveApplicationPromotesUser() {
	s.Require().NoError(s.agency.SignUp("curious1", "Aa1!xyz"))
	s.Require().NoError(s.agency.Apply("curious1", "Jane Doe", "MSc Aero", "Test pilot 5y", models.PositionEngineer))

	rosterAdded, err := s.agency.ApproveApplication(0)
	s.Require().NoError(err)
	s.False(rosterAdded)

	user, err := s.agency.Users.At(3)
	s.Require().NoError(err)
	s.Equal(models.PositionEngineer, user.Role)

	apps := s.agency.ApplicationsFor("curious1")
	s.Require().Len(apps, 1)
	s.Equal(models.ApplicationApproved, apps[0].Status)

	// A settled application allows a fresh one.
	s.Require().NoError(s.agency.Apply("curious1", "Jane Doe", "MSc Aero", "Test pilot 6y", models.PositionScientist))

	s.reboot()
	user, err = s.agency.Users.At(3)
	s.Require().NoError(err)
	s.Equal(models.PositionEngineer, user.Role)
}

func (s *AgencyTestSuite) TestApproveAstronautJoinsRoster() {
	s.Require().NoError(s.agency.SignUp("starfarer", "Aa1!xyz"))
	s.Require().NoError(s.agency.Apply("starfarer", "Sally Ride", "PhD Physics", "Orbital ops", models.PositionAstronaut))

	rosterAdded, err := s.agency.ApproveApplication(0)
	s.Require().NoError(err)
	s.True(rosterAdded)

	s.Equal(10, s.agency.Astronauts.Count())
	recruit, err := s.agency.Astronauts.At(9)
	s.Require().NoError(err)
	s.Equal(models.Astronaut{Name: "Sally Ride", Rank: "Recruit", Status: models.AstronautActive}, recruit)
}

func (s *AgencyTestSuite) TestApproveUnknownApplicant() {
	// An application whose account was deleted cannot be approved.
	s.Require().NoError(s.agency.SignUp("ghost123", "Aa1!xyz"))
	s.Require().NoError(s.agency.Apply("ghost123", "Casper", "BSc", "None", models.PositionEngineer))
	s.Require().NoError(s.agency.DeleteUser(3))

	_, err := s.agency.ApproveApplication(0)
	s.Require().ErrorIs(err, ErrApplicantUnknown)
}

func (s *AgencyTestSuite) TestRejectApplication() {
	s.Require().NoError(s.agency.SignUp("curious1", "Aa1!xyz"))
	s.Require().NoError(s.agency.Apply("curious1", "Jane Doe", "MSc Aero", "None", models.PositionScientist))

	s.Require().NoError(s.agency.RejectApplication(0))
	apps := s.agency.ApplicationsFor("curious1")
	s.Require().Len(apps, 1)
	s.Equal(models.ApplicationRejected, apps[0].Status)

	user, err := s.agency.Users.At(3)
	s.Require().NoError(err)
	s.Equal(models.RoleVisitor, user.Role)
}

func (s *AgencyTestSuite) TestPendingApplications() {
	s.Require().NoError(s.agency.SignUp("aaa1", "Aa1!xyz"))
	s.Require().NoError(s.agency.SignUp("bbb1", "Aa1!xyz"))
	s.Require().NoError(s.agency.Apply("aaa1", "A", "BSc", "None", models.PositionEngineer))
	s.Require().NoError(s.agency.Apply("bbb1", "B", "BSc", "None", models.PositionScientist))
	s.Require().NoError(s.agency.RejectApplication(0))

	s.Equal([]int{1}, s.agency.PendingApplications())
}

func (s *AgencyTestSuite) TestInventoryEndToEnd() {
	item := models.InventoryItem{Name: "Widget", Category: "Structure", Quantity: 10, Unit: "pcs", UnitCost: 0.01}
	s.Require().NoError(s.agency.AddItem(item))
	s.Equal(16, s.agency.Inventory.Count())

	s.reboot()
	s.Require().Equal(16, s.agency.Inventory.Count())
	got, err := s.agency.Inventory.At(15)
	s.Require().NoError(err)
	s.Equal(item, got)

	removed, err := s.agency.RemoveItem(15)
	s.Require().NoError(err)
	s.Equal(item, removed)

	s.reboot()
	s.Equal(15, s.agency.Inventory.Count())
}

func (s *AgencyTestSuite) TestAddPlanetAndExoplanet() {
	s.Require().NoError(s.agency.AddPlanet(models.Planet{Name: "Planet Nine", Type: "Ice", DistanceAU: 60, Gravity: 12, Atmosphere: "Unknown"}))
	s.Require().NoError(s.agency.AddExoplanet(models.Exoplanet{Name: "K2-18b", DistanceLY: 124, Type: "Sub-Neptune", Habitable: true}))

	s.reboot()
	s.Equal(9, s.agency.Planets.Count())
	s.Equal(6, s.agency.Exoplanets.Count())
}

func (s *AgencyTestSuite) TestLogbookDurable() {
	s.agency.Log.Append("Decrypted")
	s.reboot()
	s.Contains(s.agency.Log.Entries(), "Decrypted")
}

func TestAgencyTestSuite(t *testing.T) {
	suite.Run(t, new(AgencyTestSuite))
}
