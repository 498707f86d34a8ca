package agency

import (
	"fmt"
	"time"

	"horizon/pkg/models"
)

// requestCodeBase offsets the codes handed to newly requested missions.
const requestCodeBase = 100

// RequestMission files a new mission in Pending state. The approved budget
// starts equal to the requested cost; funding approval debits the agency
// budget later.
func (a *Agency) RequestMission(name, vehicle, requester string, cost float64) (models.Mission, error) {
	mission := models.Mission{
		Name:      name,
		Code:      fmt.Sprintf("REQ-%d", a.Missions.Count()+requestCodeBase),
		Date:      time.Now().Format("2006-01-02"),
		Vehicle:   vehicle,
		Status:    models.MissionPending,
		Budget:    cost,
		Requester: requester,
		Cost:      cost,
	}
	if err := a.Missions.Append(mission); err != nil {
		return models.Mission{}, err
	}
	a.Log.Append("Mission Requested: " + name)
	return mission, a.store.SaveMissions(a.Missions, a.Budget)
}

// ApproveFunding releases funds for a pending mission, moving it to
// Planned. The debit is refused outright when it would take the agency
// budget below zero; mission and budget stay untouched in that case.
func (a *Agency) ApproveFunding(index int) error {
	mission, err := a.Missions.At(index)
	if err != nil {
		return err
	}
	if a.Budget < mission.Budget {
		return ErrInsufficientFunds
	}
	a.Budget -= mission.Budget
	_ = a.Missions.Update(index, func(m *models.Mission) { m.Status = models.MissionPlanned })
	a.Log.Append("Funded Mission: " + mission.Name)
	return a.store.SaveMissions(a.Missions, a.Budget)
}

// RecordLaunch settles a funded mission as Success or Failure. Pending
// missions cannot launch.
func (a *Agency) RecordLaunch(index int, success bool) error {
	mission, err := a.Missions.At(index)
	if err != nil {
		return err
	}
	if mission.Status == models.MissionPending {
		return ErrMissionNotFunded
	}
	status := models.MissionFailure
	verdict := "Launch Failure: "
	if success {
		status = models.MissionSuccess
		verdict = "Launch Success: "
	}
	_ = a.Missions.Update(index, func(m *models.Mission) { m.Status = status })
	a.Log.Append(verdict + mission.Name)
	return a.store.SaveMissions(a.Missions, a.Budget)
}

// DeleteMission removes a manifest entry.
func (a *Agency) DeleteMission(index int) error {
	mission, err := a.Missions.At(index)
	if err != nil {
		return err
	}
	if err := a.Missions.RemoveAt(index); err != nil {
		return err
	}
	a.Log.Append("Deleted Mission: " + mission.Name)
	return a.store.SaveMissions(a.Missions, a.Budget)
}
