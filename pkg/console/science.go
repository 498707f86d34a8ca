package console

import (
	"fmt"

	"horizon/pkg/models"
)

func (c *Console) scienceDashboard() {
	for {
		fmt.Fprintf(c.out, "\n%sCOSMIC SCIENCE%s\n", colorMagenta, colorReset)
		fmt.Fprintln(c.out, " [1] Planets")
		fmt.Fprintln(c.out, " [2] Exoplanets")
		fmt.Fprintln(c.out, " [3] Decrypt")
		fmt.Fprintln(c.out, " [4] Discover Planet")
		fmt.Fprintln(c.out, " [5] Discover Exoplanet")
		fmt.Fprintln(c.out, " [6] Delete Planet")
		fmt.Fprintln(c.out, " [7] Delete Exoplanet")
		fmt.Fprintln(c.out, " [8] Back")

		switch c.choose("Select option: ") {
		case '1':
			c.planetList()
		case '2':
			c.exoplanetList()
		case '3':
			c.decryptGame()
		case '4':
			c.discoverPlanet()
		case '5':
			c.discoverExoplanet()
		case '6':
			c.deletePlanet()
		case '7':
			c.deleteExoplanet()
		case '8', 0:
			return
		}
	}
}

func (c *Console) planetList() {
	fmt.Fprintf(c.out, "\n%sPLANETS%s\n", colorMagenta, colorReset)
	fmt.Fprintf(c.out, "%-20s %-15s %-12s %-10s %s\n", "NAME", "TYPE", "DISTANCE", "GRAVITY", "ATMOSPHERE")

	c.agency.Planets.Scan(func(_ int, p models.Planet) bool {
		fmt.Fprintf(c.out, "%-20s %-15s %-9g AU %-10g %s\n", p.Name, p.Type, p.DistanceAU, p.Gravity, p.Atmosphere)

		return true
	})
}

func (c *Console) exoplanetList() {
	fmt.Fprintf(c.out, "\n%sEXOPLANETS%s\n", colorMagenta, colorReset)
	fmt.Fprintf(c.out, "%-20s %-15s %-10s %s\n", "NAME", "TYPE", "DIST", "HABITABLE")

	c.agency.Exoplanets.Scan(func(_ int, e models.Exoplanet) bool {
		habitable := colorRed + "NO" + colorReset
		if e.Habitable {
			habitable = colorGreen + "YES" + colorReset
		}

		fmt.Fprintf(c.out, "%-20s %-15s %-10g %s\n", e.Name, e.Type, e.DistanceLY, habitable)

		return true
	})
}

// decryptGame asks for the next Fibonacci number. A correct answer earns a
// logbook entry.
func (c *Console) decryptGame() {
	answer, ok := c.readInt("DECRYPT: 1, 1, 2, 3, 5... ", 0, 100)
	if !ok {
		return
	}

	if answer == 8 {
		fmt.Fprintf(c.out, "%sMATCH%s\n", colorGreen, colorReset)
		c.agency.Log.Append("Decrypted")

		return
	}

	fmt.Fprintf(c.out, "%sFAIL%s\n", colorRed, colorReset)
}

func (c *Console) discoverPlanet() {
	if c.agency.Planets.Full() {
		c.denied("Database is Full.")

		return
	}

	fmt.Fprintln(c.out, "DISCOVER NEW PLANET (0 to Cancel)")

	name := c.readLine("   What shall we name it?: ")
	if name == "" || name == "0" {
		return
	}

	kind := c.readLine("   Planet Type (Rocky/Gas/Ice): ")

	distance, ok := c.readFloat("   Distance from Sun (AU): ", 0.1, 100.0)
	if !ok {
		return
	}

	gravity, ok := c.readFloat("   Gravity (m/s2): ", 0.1, 100.0)
	if !ok {
		return
	}

	planet := models.Planet{
		Name:       name,
		Type:       kind,
		DistanceAU: distance,
		Gravity:    gravity,
		Atmosphere: c.readLine("   Atmosphere Composition: "),
	}

	if err := c.agency.AddPlanet(planet); err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "%sPlanet Cataloged.%s\n", colorGreen, colorReset)
}

func (c *Console) discoverExoplanet() {
	if c.agency.Exoplanets.Full() {
		c.denied("Database is Full.")

		return
	}

	fmt.Fprintln(c.out, "DISCOVER EXOPLANET")

	name := c.readLine("Name: ")
	if name == "" {
		return
	}

	distance, ok := c.readFloat("Dist (Light Years): ", 1.0, 10000.0)
	if !ok {
		return
	}

	kind := c.readLine("Type: ")

	habitable, ok := c.readInt("Habitable? (1=Yes, 0=No): ", 0, 1)
	if !ok {
		return
	}

	exo := models.Exoplanet{
		Name:       name,
		DistanceLY: distance,
		Type:       kind,
		Habitable:  habitable == 1,
	}

	if err := c.agency.AddExoplanet(exo); err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "%sDiscovery Logged.%s\n", colorGreen, colorReset)
}

func (c *Console) deletePlanet() {
	count := c.agency.Planets.Count()
	if count == 0 {
		c.denied("Catalog is empty.")

		return
	}

	id, ok := c.readInt(fmt.Sprintf("DELETE PLANET. ID(1-%d): ", count), 1, count)
	if !ok {
		return
	}

	planet, err := c.agency.RemovePlanet(id - 1)
	if err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "Deleting %s... %sDeleted.%s\n", planet.Name, colorGreen, colorReset)
}

func (c *Console) deleteExoplanet() {
	count := c.agency.Exoplanets.Count()
	if count == 0 {
		c.denied("Catalog is empty.")

		return
	}

	id, ok := c.readInt(fmt.Sprintf("DELETE NOVELTY. ID(1-%d): ", count), 1, count)
	if !ok {
		return
	}

	exo, err := c.agency.RemoveExoplanet(id - 1)
	if err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "Deleting %s... %sDeleted.%s\n", exo.Name, colorGreen, colorReset)
}
