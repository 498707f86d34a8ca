package console

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"horizon/pkg/agency"
	"horizon/pkg/models"
)

func (c *Console) adminDashboard() {
	for {
		fmt.Fprintf(c.out, "\n%sADMINISTRATION%s\n", colorRed, colorReset)
		fmt.Fprintln(c.out, " [1] System Logs")
		fmt.Fprintln(c.out, " [2] Hiring Requests")
		fmt.Fprintln(c.out, " [3] Mission Funding Approvals")
		fmt.Fprintln(c.out, " [4] Personnel")
		fmt.Fprintln(c.out, " [5] Back")

		switch c.choose("Select option: ") {
		case '1':
			c.systemLogs()
		case '2':
			c.hiringRequests()
		case '3':
			c.fundingApprovals()
		case '4':
			c.personnelDirectory()
		case '5', 0:
			return
		}
	}
}

func (c *Console) systemLogs() {
	fmt.Fprintln(c.out, "SYSTEM LOGS")

	for _, entry := range c.agency.Log.Entries() {
		fmt.Fprintln(c.out, entry)
	}
}

func (c *Console) hiringRequests() {
	fmt.Fprintf(c.out, "\n%sHIRING REQUESTS%s\n", colorYellow, colorReset)
	fmt.Fprintf(c.out, "%-4s %-12s %-18s %-14s %-10s %s\n", "ID", "USER", "NAME", "EDU", "ROLE", "EXP")

	pending := c.agency.PendingApplications()
	for _, i := range pending {
		application, err := c.agency.Applications.At(i)
		if err != nil {
			continue
		}

		fmt.Fprintf(c.out, "%-4d %-12s %-18s %-14s %-10s %s\n",
			i+1, application.Username, application.FullName,
			application.Education, application.Role, application.Experience)
	}

	if len(pending) == 0 {
		fmt.Fprintln(c.out, "No pending applications.")

		return
	}

	total := c.agency.Applications.Count()

	switch c.choose("\n   [A] Approve  [R] Reject  [B] Back: ") {
	case 'a':
		id, ok := c.readInt("   Enter ID: ", 1, total)
		if !ok {
			return
		}

		rosterAdded, err := c.agency.ApproveApplication(id - 1)
		if err != nil {
			if errors.Is(err, agency.ErrApplicantUnknown) {
				c.denied("Applicant has no account on file.")

				return
			}

			c.denied(err.Error())

			return
		}

		if rosterAdded {
			fmt.Fprintf(c.out, "%s   [!] Added to Astronaut Roster.%s\n", colorGreen, colorReset)
		}

		fmt.Fprintf(c.out, "%s   Promoted.%s\n", colorGreen, colorReset)
	case 'r':
		id, ok := c.readInt("   Enter ID to REJECT: ", 1, total)
		if !ok {
			return
		}

		if err := c.agency.RejectApplication(id - 1); err != nil {
			c.denied(err.Error())

			return
		}

		fmt.Fprintf(c.out, "%s   Application Rejected.%s\n", colorRed, colorReset)
	}
}

func (c *Console) fundingApprovals() {
	fmt.Fprintf(c.out, "MISSION FUNDING | Agency Budget: $%sB\n", humanize.Ftoa(c.agency.Budget))
	fmt.Fprintf(c.out, "%-5s %-20s %-10s %s\n", "ID", "NAME", "COST", "STATUS")

	c.agency.Missions.Scan(func(i int, m models.Mission) bool {
		if m.Status == models.MissionPending {
			fmt.Fprintf(c.out, "%-5d %-20s $%-9s %s\n", i+1, m.Name, humanize.Ftoa(m.Budget), m.Status)
		}

		return true
	})

	id, ok := c.readInt("\nApprove ID (0 to cancel): ", 0, c.agency.Missions.Count())
	if !ok || id == 0 {
		return
	}

	if err := c.agency.ApproveFunding(id - 1); err != nil {
		if errors.Is(err, agency.ErrInsufficientFunds) {
			c.denied("Insufficient Funds.")

			return
		}

		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "%sFunds released.%s\n", colorGreen, colorReset)
}

func (c *Console) personnelDirectory() {
	fmt.Fprintln(c.out, "PERSONNEL DIRECTORY")
	fmt.Fprintf(c.out, "%-5s %-15s %s\n", "ID", "USER", "ROLE")

	c.agency.Users.Scan(func(i int, u models.User) bool {
		fmt.Fprintf(c.out, "%-5d %-15s %s\n", i+1, u.Username, u.Role)

		return true
	})

	choice := c.choose("\n[E] Edit Role  [D] Delete User  [B] Back: ")
	if choice != 'e' && choice != 'd' {
		return
	}

	id, ok := c.readInt("\nID: ", 1, c.agency.Users.Count())
	if !ok {
		return
	}

	index := id - 1

	switch choice {
	case 'e':
		role := c.readLine("New Role: ")
		if role == "" {
			return
		}

		if err := c.agency.SetUserRole(index, role); err != nil {
			c.denied(err.Error())

			return
		}

		fmt.Fprintf(c.out, "%sRole updated.%s\n", colorGreen, colorReset)
	case 'd':
		if err := c.agency.DeleteUser(index); err != nil {
			if errors.Is(err, agency.ErrProtectedUser) {
				c.denied("Cannot delete SuperAdmin.")

				return
			}

			c.denied(err.Error())

			return
		}

		fmt.Fprintf(c.out, "%sUser removed.%s\n", colorGreen, colorReset)
	}
}
