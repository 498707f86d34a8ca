// Package seed provides the demo records installed when a store comes up
// empty. Every repository follows the same contract: seed only when the
// load produced zero records, then save so the seeded state is durable.
package seed

import "horizon/pkg/models"

// Users returns the three bootstrap accounts: the protected admin and two
// staff users.
func Users() []models.User {
	return []models.User{
		{Username: "themystery", Password: "29July1958", Role: models.RoleAdmin, Department: "HQ"},
		{Username: "flight", Password: "flight123", Role: models.RoleStaff, Department: "FLT"},
		{Username: "eng", Password: "engineer1", Role: models.RoleStaff, Department: "ENG"},
	}
}

// Missions returns the three historical Mercury missions.
func Missions() []models.Mission {
	return []models.Mission{
		{Name: "Freedom 7", Code: "MR-3", Date: "1961-05-05", Vehicle: "Redstone", Status: models.MissionSuccess, Budget: 0.1, Requester: "History", Cost: 0.1},
		{Name: "Liberty Bell 7", Code: "MR-4", Date: "1961-07-21", Vehicle: "Redstone", Status: models.MissionSuccess, Budget: 0.1, Requester: "History", Cost: 0.1},
		{Name: "Friendship 7", Code: "MA-6", Date: "1962-02-20", Vehicle: "Atlas", Status: models.MissionSuccess, Budget: 0.2, Requester: "History", Cost: 0.2},
	}
}

// Inventory returns the fifteen mission-critical components.
func Inventory() []models.InventoryItem {
	return []models.InventoryItem{
		{Name: "Hydrazine Fuel", Category: "Propulsion", Quantity: 5000, Unit: "kg", UnitCost: 0.5},
		{Name: "LOX Tank", Category: "Propulsion", Quantity: 200, Unit: "pcs", UnitCost: 1.2},
		{Name: "Heat Shield Tile", Category: "Structure", Quantity: 1500, Unit: "pcs", UnitCost: 0.05},
		{Name: "Solar Array", Category: "Power", Quantity: 50, Unit: "pcs", UnitCost: 2.5},
		{Name: "RTG Fuel Cell", Category: "Power", Quantity: 10, Unit: "pcs", UnitCost: 15.0},
		{Name: "Comm Antenna", Category: "Electronics", Quantity: 25, Unit: "pcs", UnitCost: 3.0},
		{Name: "Nav Computer", Category: "Electronics", Quantity: 15, Unit: "pcs", UnitCost: 5.5},
		{Name: "Life Support Module", Category: "Habitation", Quantity: 8, Unit: "pcs", UnitCost: 8.0},
		{Name: "Space Suit (EVA)", Category: "Equipment", Quantity: 12, Unit: "pcs", UnitCost: 10.0},
		{Name: "Rover Wheels", Category: "Robotics", Quantity: 40, Unit: "pcs", UnitCost: 0.2},
		{Name: "Camera Lens", Category: "Optics", Quantity: 30, Unit: "pcs", UnitCost: 1.5},
		{Name: "Thermal Blanket", Category: "Structure", Quantity: 500, Unit: "pcs", UnitCost: 0.01},
		{Name: "Docking Port", Category: "Structure", Quantity: 5, Unit: "pcs", UnitCost: 4.5},
		{Name: "Drill Bit (Diamond)", Category: "Robotics", Quantity: 100, Unit: "pcs", UnitCost: 0.3},
		{Name: "Sample Container", Category: "Science", Quantity: 200, Unit: "box", UnitCost: 0.05},
	}
}

// Astronauts returns the nine historical and active roster entries.
func Astronauts() []models.Astronaut {
	return []models.Astronaut{
		{Name: "Neil Armstrong", Rank: "Commander", Status: models.AstronautRetired},
		{Name: "Buzz Aldrin", Rank: "Pilot", Status: models.AstronautRetired},
		{Name: "Michael Collins", Rank: "Pilot", Status: models.AstronautRetired},
		{Name: "Yuri Gagarin", Rank: "Cosmonaut", Status: models.AstronautRetired},
		{Name: "Alan Shepard", Rank: "Commander", Status: models.AstronautRetired},
		{Name: "John Glenn", Rank: "Pilot", Status: models.AstronautRetired},
		{Name: "Victor Glover", Rank: "Commander", Status: models.AstronautActive},
		{Name: "Reid Wiseman", Rank: "Commander", Status: models.AstronautActive},
		{Name: "Christina Koch", Rank: "Specialist", Status: models.AstronautActive},
	}
}

// Planets returns the eight solar-system planets.
func Planets() []models.Planet {
	return []models.Planet{
		{Name: "Mercury", Type: "Rocky", DistanceAU: 0.39, Gravity: 3.7, Atmosphere: "None"},
		{Name: "Venus", Type: "Rocky", DistanceAU: 0.72, Gravity: 8.87, Atmosphere: "Thick CO2"},
		{Name: "Earth", Type: "Rocky", DistanceAU: 1.0, Gravity: 9.81, Atmosphere: "N2/O2"},
		{Name: "Mars", Type: "Rocky", DistanceAU: 1.52, Gravity: 3.71, Atmosphere: "Thin CO2"},
		{Name: "Jupiter", Type: "Gas", DistanceAU: 5.2, Gravity: 24.79, Atmosphere: "H/He"},
		{Name: "Saturn", Type: "Gas", DistanceAU: 9.5, Gravity: 10.44, Atmosphere: "H/He"},
		{Name: "Uranus", Type: "Ice", DistanceAU: 19.2, Gravity: 8.69, Atmosphere: "H/He/CH4"},
		{Name: "Neptune", Type: "Ice", DistanceAU: 30.0, Gravity: 11.15, Atmosphere: "H/He/CH4"},
	}
}

// Exoplanets returns five confirmed discoveries.
func Exoplanets() []models.Exoplanet {
	return []models.Exoplanet{
		{Name: "Proxima Centauri b", DistanceLY: 4.2, Type: "Super Earth", Habitable: true},
		{Name: "TRAPPIST-1e", DistanceLY: 39.0, Type: "Earth-size", Habitable: true},
		{Name: "Kepler-186f", DistanceLY: 500.0, Type: "Earth-size", Habitable: true},
		{Name: "Kepler-22b", DistanceLY: 600.0, Type: "Super Earth", Habitable: true},
		{Name: "HD 209458 b", DistanceLY: 150.0, Type: "Hot Jupiter", Habitable: false},
	}
}
