package console

import (
	"fmt"

	"horizon/pkg/models"
)

// dashboard is the post-login hub. Visitors are locked out of the staff
// departments; the admin panel only renders for admins. The account record
// is re-read on every pass, so a promotion granted mid-session changes the
// gating without a re-login.
func (c *Console) dashboard() {
	for {
		if user, err := c.agency.Users.At(c.userIdx); err == nil {
			c.user = user
		}

		fmt.Fprintf(c.out, "\n%sDASHBOARD%s  User: %s (%s)\n", colorBlue, colorReset, c.user.Username, c.user.Role)
		fmt.Fprintf(c.out, " %s[1] FLIGHT OPS%s\n", colorCyan, colorReset)
		fmt.Fprintf(c.out, " %s[2] ENGINEERING%s\n", colorGreen, colorReset)
		fmt.Fprintf(c.out, " %s[3] SCIENCE%s\n", colorMagenta, colorReset)
		fmt.Fprintf(c.out, " %s[4] HR%s\n", colorBlue, colorReset)
		fmt.Fprintf(c.out, " %s[5] ROVER OPS%s\n", colorYellow, colorReset)
		fmt.Fprintf(c.out, " %s[6] CAREER CENTER%s\n", colorWhite, colorReset)

		if c.user.Role == models.RoleAdmin {
			fmt.Fprintf(c.out, " %s[9] ADMIN PANEL%s\n", colorRed, colorReset)
		} else {
			fmt.Fprintf(c.out, " %s[Locked] Admin Only%s\n", colorGray, colorReset)
		}

		fmt.Fprintln(c.out, " [0] LOGOUT")

		switch c.choose("Select option: ") {
		case '1':
			if c.user.Role == models.RoleVisitor {
				c.denied("Restricted Area. Employees Only.")
			} else {
				c.flightDashboard()
			}
		case '2':
			if c.user.Role == models.RoleVisitor {
				c.denied("Restricted Area. Engineering Access Required.")
			} else {
				c.engineeringDashboard()
			}
		case '3':
			c.scienceDashboard()
		case '4':
			if c.user.Role == models.RoleVisitor {
				c.denied("Restricted Area. Personnel Only.")
			} else {
				c.hrDashboard()
			}
		case '5':
			c.roverGame()
		case '6':
			c.careerMenu()
		case '9':
			if c.user.Role == models.RoleAdmin {
				c.adminDashboard()
			}
		case '0', 0:
			return
		}
	}
}

func (c *Console) denied(reason string) {
	fmt.Fprintf(c.out, "%s%s%s\n", colorRed, reason, colorReset)
}
