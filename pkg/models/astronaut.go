package models

// Astronaut duty states.
const (
	AstronautActive  = "Active"
	AstronautRetired = "Retired"
)

// Astronaut is one entry of the personnel roster.
type Astronaut struct {
	Name   string
	Rank   string
	Status string
}
