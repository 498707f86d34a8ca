package models

// Mission lifecycle states. A mission stays Pending until an admin releases
// funding, which moves it to Planned; a launch attempt settles it as
// Success or Failure.
const (
	MissionPending = "Pending"
	MissionPlanned = "Planned"
	MissionSuccess = "Success"
	MissionFailure = "Failure"
)

// Mission is one entry of the flight manifest. Budget and Cost are in
// billions of dollars; Cost never exceeds the approved Budget.
type Mission struct {
	Name      string
	Code      string
	Date      string
	Vehicle   string
	Status    string
	Budget    float64
	Requester string
	Cost      float64
}
