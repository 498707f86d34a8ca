package agency

import "horizon/pkg/models"

// AddPlanet catalogs a newly discovered planet.
func (a *Agency) AddPlanet(planet models.Planet) error {
	if err := a.Planets.Append(planet); err != nil {
		return err
	}
	return a.store.SavePlanets(a.Planets)
}

// RemovePlanet deletes a catalog entry, returning the removed record.
func (a *Agency) RemovePlanet(index int) (models.Planet, error) {
	planet, err := a.Planets.At(index)
	if err != nil {
		return models.Planet{}, err
	}
	if err := a.Planets.RemoveAt(index); err != nil {
		return models.Planet{}, err
	}
	return planet, a.store.SavePlanets(a.Planets)
}

// AddExoplanet logs a new exoplanet discovery.
func (a *Agency) AddExoplanet(exo models.Exoplanet) error {
	if err := a.Exoplanets.Append(exo); err != nil {
		return err
	}
	return a.store.SaveExoplanets(a.Exoplanets)
}

// RemoveExoplanet deletes an exoplanet entry, returning the removed record.
func (a *Agency) RemoveExoplanet(index int) (models.Exoplanet, error) {
	exo, err := a.Exoplanets.At(index)
	if err != nil {
		return models.Exoplanet{}, err
	}
	if err := a.Exoplanets.RemoveAt(index); err != nil {
		return models.Exoplanet{}, err
	}
	return exo, a.store.SaveExoplanets(a.Exoplanets)
}
