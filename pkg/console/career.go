package console

import (
	"errors"
	"fmt"

	"horizon/pkg/agency"
	"horizon/pkg/models"
)

func (c *Console) careerMenu() {
	for {
		fmt.Fprintf(c.out, "\n%sCAREER CENTER%s\n", colorYellow, colorReset)
		fmt.Fprintf(c.out, "   Current User: %s (%s)\n", c.user.Username, c.user.Role)
		fmt.Fprintln(c.out, "   [1] Apply for Position")
		fmt.Fprintln(c.out, "   [2] View Application Status")
		fmt.Fprintln(c.out, "   [3] Back")

		switch c.choose("Select option: ") {
		case '1':
			c.applyForPosition()
		case '2':
			c.applicationStatus()
		case '3', 0:
			return
		}
	}
}

func (c *Console) applyForPosition() {
	if c.user.Role == models.RoleAdmin {
		c.denied("Admins cannot apply for lower positions.")

		return
	}

	if c.agency.Applications.Full() {
		c.denied("Hiring is paused, the agency cannot take new applications.")

		return
	}

	fmt.Fprintln(c.out, "\n   -- NEW APPLICATION --")

	fullName := c.readLine("   Full Legal Name: ")
	if fullName == "" {
		return
	}

	education := c.readLine("   Highest Education/Degree: ")
	experience := c.readLine("   Experience (Place & Years): ")

	fmt.Fprintln(c.out, "   Position:")
	fmt.Fprintln(c.out, "   1. Astronaut Candidate")
	fmt.Fprintln(c.out, "   2. Systems Engineer")
	fmt.Fprintln(c.out, "   3. Data Scientist")

	position, ok := c.readInt("   Select: ", 1, 3)
	if !ok {
		return
	}

	var role string

	switch position {
	case 1:
		role = models.PositionAstronaut
	case 2:
		role = models.PositionEngineer
	case 3:
		role = models.PositionScientist
	}

	err := c.agency.Apply(c.user.Username, fullName, education, experience, role)
	if err != nil {
		if errors.Is(err, agency.ErrPendingApplication) {
			c.denied("You have a pending application.")

			return
		}

		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "%s   Application Received.%s\n", colorGreen, colorReset)
}

func (c *Console) applicationStatus() {
	fmt.Fprintln(c.out, "\n   -- STATUS --")

	applications := c.agency.ApplicationsFor(c.user.Username)
	if len(applications) == 0 {
		fmt.Fprintln(c.out, "   No applications found.")

		return
	}

	for _, application := range applications {
		color := colorYellow
		if application.Status == models.ApplicationApproved {
			color = colorGreen
		}

		fmt.Fprintf(c.out, "   Role: %s | Status: %s%s%s\n", application.Role, color, application.Status, colorReset)
	}
}
