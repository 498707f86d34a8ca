package console

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"horizon/pkg/models"
)

const (
	requisitionBaseCost  = 0.5
	requisitionFuelCost  = 0.1
	requisitionRoverCost = 0.5
	requisitionCommsCost = 0.2
)

func (c *Console) flightDashboard() {
	for {
		fmt.Fprintf(c.out, "\n%sFLIGHT CONTROL%s\n", colorCyan, colorReset)
		fmt.Fprintln(c.out, " [1] Manifest")
		fmt.Fprintln(c.out, " [2] Launch Sim")
		fmt.Fprintln(c.out, " [3] Docking")
		fmt.Fprintln(c.out, " [4] Request New Mission (Staff Only)")
		fmt.Fprintln(c.out, " [5] Delete Mission")
		fmt.Fprintln(c.out, " [6] Back")

		switch c.choose("Select option: ") {
		case '1':
			c.flightManifest()
		case '2':
			c.launchSim()
		case '3':
			c.dockingSim()
		case '4':
			if c.user.Role == models.RoleGuest {
				c.denied("Access Denied. Guests cannot plan missions.")
			} else {
				c.requestMission()
			}
		case '5':
			c.deleteMission()
		case '6', 0:
			return
		}
	}
}

func (c *Console) flightManifest() {
	fmt.Fprintf(c.out, "\n%sMISSION MANIFEST%s\n", colorYellow, colorReset)
	fmt.Fprintf(c.out, "%-4s %-10s %-12s %-20s %-10s %s\n", "ID", "CODE", "DATE", "NAME", "STATUS", "REQUESTER")

	c.agency.Missions.Scan(func(i int, m models.Mission) bool {
		color := colorYellow

		switch m.Status {
		case models.MissionSuccess:
			color = colorGreen
		case models.MissionFailure:
			color = colorRed
		case models.MissionPlanned:
			color = colorCyan
		}

		fmt.Fprintf(c.out, "%-4d %-10s %-12s %-20s %s%-10s%s %s\n", i+1, m.Code, m.Date, m.Name, color, m.Status, colorReset, m.Requester)

		return true
	})
}

// launchSim walks a funded mission through the four pre-flight systems.
// Each system has a one-in-ten failure roll; the first failure aborts and
// records the mission as failed.
func (c *Console) launchSim() {
	count := c.agency.Missions.Count()
	if count == 0 {
		c.denied("No missions available to launch. Create one first.")

		return
	}

	id, ok := c.readInt(fmt.Sprintf("LAUNCH. ID(1-%d): ", count), 1, count)
	if !ok {
		return
	}

	index := id - 1

	mission, err := c.agency.Missions.At(index)
	if err != nil {
		return
	}

	if mission.Status == models.MissionPending {
		c.denied("ERROR: Mission not approved/funded by Admin yet.")

		return
	}

	fmt.Fprintf(c.out, "Launching %s...\n", mission.Name)

	for _, system := range []string{"Fuel", "Guidance", "Comms", "Telemetry"} {
		fmt.Fprintf(c.out, "   %s... ", system)
		time.Sleep(c.stepDelay)

		if c.rng.IntN(10) == 0 {
			fmt.Fprintf(c.out, "%sFAIL%s\n", colorRed, colorReset)

			if err := c.agency.RecordLaunch(index, false); err != nil {
				c.denied(err.Error())

				return
			}

			fmt.Fprintf(c.out, "%sMISSION ABORTED.%s\n", colorRed, colorReset)

			return
		}

		fmt.Fprintf(c.out, "%sGO%s\n", colorGreen, colorReset)
	}

	if err := c.agency.RecordLaunch(index, true); err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "%sLIFTOFF! SUCCESSFUL ORBITAL INSERTION.%s\n", colorGreen, colorReset)
}

// dockingSim is the fuel-limited grid chase. Moves come in as lines of
// w/a/s/d characters so one line can hold a whole maneuver.
func (c *Console) dockingSim() {
	const (
		gridWidth  = 20
		gridHeight = 10
	)

	px, py := 0, 0
	tx, ty := 10, 5
	fuel := 20

	fmt.Fprintln(c.out, "DOCKING SIM (wasd). Goal: [+] to (O)")

	for fuel > 0 {
		fmt.Fprintf(c.out, "Fuel: %d | Position: (%d,%d) | Target: (%d,%d)\n", fuel, px, py, tx, ty)

		if px == tx && py == ty {
			fmt.Fprintf(c.out, "%sSUCCESS%s\n", colorGreen, colorReset)

			return
		}

		moves := c.readLine("Moves: ")
		if moves == "" {
			return
		}

		for _, move := range moves {
			if fuel == 0 {
				break
			}

			switch move {
			case 'w':
				if py > 0 {
					py--
				}
			case 's':
				if py < gridHeight-1 {
					py++
				}
			case 'a':
				if px > 0 {
					px--
				}
			case 'd':
				if px < gridWidth-1 {
					px++
				}
			default:
				continue
			}

			fuel--

			if px == tx && py == ty {
				break
			}
		}
	}

	if px == tx && py == ty {
		fmt.Fprintf(c.out, "%sSUCCESS%s\n", colorGreen, colorReset)

		return
	}

	fmt.Fprintf(c.out, "%sFailed%s\n", colorRed, colorReset)
}

// requestMission captures a mission plan plus an equipment requisition.
// Requisition costs accumulate on top of a base operations cost and become
// both the mission cost and the budget the admin has to approve.
func (c *Console) requestMission() {
	fmt.Fprintf(c.out, "%sMISSION PLANNING PROTOCOL%s\n", colorGreen, colorReset)

	if c.agency.Missions.Full() {
		c.denied("Manifest Full.")

		return
	}

	name := c.readLine("   Mission Name (0 to Cancel): ")
	if name == "" || name == "0" {
		return
	}

	vehicle := c.readLine("   Vehicle Class: ")

	fmt.Fprintln(c.out, "   -- EQUIPMENT REQUISITION --")
	fmt.Fprintln(c.out, "   Select items to load onto the mission. Costs will accumulate.")

	totalCost := requisitionBaseCost

	for {
		fmt.Fprintf(c.out, "\n   Current Cost: $%sB\n", humanize.Ftoa(totalCost))
		fmt.Fprintln(c.out, "   1. Add Fuel (Liquid H2) - $0.1B")
		fmt.Fprintln(c.out, "   2. Add Rover Upgrade - $0.5B")
		fmt.Fprintln(c.out, "   3. Add Advanced Comms - $0.2B")
		fmt.Fprintln(c.out, "   4. Done / Submit")

		choice, ok := c.readInt("   Choice: ", 1, 4)
		if !ok {
			return
		}

		done := false

		switch choice {
		case 1:
			totalCost += requisitionFuelCost
		case 2:
			totalCost += requisitionRoverCost
		case 3:
			totalCost += requisitionCommsCost
		case 4:
			done = true
		}

		if done {
			break
		}
	}

	if _, err := c.agency.RequestMission(name, vehicle, c.user.Username, totalCost); err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "%sMISSION REQUEST SUBMITTED.%s Waiting for Admin Funding Approval.\n", colorGreen, colorReset)
}

func (c *Console) deleteMission() {
	count := c.agency.Missions.Count()
	if count == 0 {
		c.denied("Manifest is empty.")

		return
	}

	id, ok := c.readInt(fmt.Sprintf("DELETE MISSION. Mission IDs(1-%d): ", count), 1, count)
	if !ok {
		return
	}

	if err := c.agency.DeleteMission(id - 1); err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "%sEliminated.%s\n", colorGreen, colorReset)
}
