package models

// Planet is a solar-system body in the science catalog. DistanceAU is the
// distance from the Sun in astronomical units, Gravity is surface gravity
// in m/s².
type Planet struct {
	Name       string
	Type       string
	DistanceAU float64
	Gravity    float64
	Atmosphere string
}

// Exoplanet is a body outside the solar system. DistanceLY is the distance
// from Earth in light years.
type Exoplanet struct {
	Name       string
	DistanceLY float64
	Type       string
	Habitable  bool
}
