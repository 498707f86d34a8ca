// Package console implements the menu-driven terminal frontend: sign-in and
// sign-up, the role-gated dashboards, and the mini-games. All input flows
// through a line scanner and all output through an io.Writer, so the whole
// surface can be driven from tests.
package console

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"horizon/pkg/agency"
	"horizon/pkg/log"
	"horizon/pkg/models"
)

const maxSignInAttempts = 3

// Console runs the interactive session loop over an agency.
type Console struct {
	agency  *agency.Agency
	in      *bufio.Scanner
	out     io.Writer
	rng     *rand.Rand
	version string

	// stepDelay paces the launch simulation between system checks.
	// Zero in tests.
	stepDelay time.Duration

	user    models.User
	userIdx int
}

// New returns a console reading from in and writing to out.
func New(a *agency.Agency, in io.Reader, out io.Writer, version string) *Console {
	return &Console{
		agency:    a,
		in:        bufio.NewScanner(in),
		out:       out,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		version:   version,
		stepDelay: 800 * time.Millisecond,
		userIdx:   -1,
	}
}

// Run drives the main menu until the user exits or input ends.
func (c *Console) Run() {
	for {
		fmt.Fprintf(c.out, "\n%sHORIZON MISSION CONTROL%s  v%s\n", colorRed, colorReset, c.version)
		fmt.Fprintln(c.out, " [1] Sign In")
		fmt.Fprintln(c.out, " [2] Sign Up")
		fmt.Fprintln(c.out, " [3] History")
		fmt.Fprintln(c.out, " [4] About")
		fmt.Fprintln(c.out, " [5] Exit")

		switch c.choose("Select option: ") {
		case '1':
			c.signIn()
		case '2':
			c.signUp()
		case '3':
			c.history()
		case '4':
			c.about()
		case '5', 0:
			fmt.Fprintf(c.out, "%sShutting down.%s\n", colorRed, colorReset)

			return
		}
	}
}

// signIn gives the user three attempts before bouncing back to the main
// menu. A successful attempt opens the dashboard for the whole session.
func (c *Console) signIn() {
	for attempt := 1; attempt <= maxSignInAttempts; attempt++ {
		username := c.readLine("Username: ")
		if username == "" {
			return
		}

		password := c.readLine("Password: ")

		user, index, ok := c.agency.Authenticate(username, password)
		if !ok {
			fmt.Fprintf(c.out, "%sLogin failed.%s Attempts remaining: %d\n", colorRed, colorReset, maxSignInAttempts-attempt)

			continue
		}

		c.user = user
		c.userIdx = index
		c.agency.Log.Append("Login Success: " + username)
		log.Info().
			Str("user", username).
			Str("role", user.Role).
			Str("session", uuid.NewString()).
			Msg("session started")
		fmt.Fprintf(c.out, "%sWelcome back, %s.%s\n", colorGreen, username, colorReset)

		c.dashboard()

		c.userIdx = -1
		c.user = models.User{}

		return
	}

	fmt.Fprintf(c.out, "%sMaximum attempts exceeded. Returning to main menu.%s\n", colorRed, colorReset)
}

// signUp registers a new visitor account after validating the credentials.
func (c *Console) signUp() {
	var username string

	for {
		fmt.Fprintln(c.out, "Username must be 4-10 characters, lowercase letters and digits only.")

		username = c.readLine("Username: ")
		if username == "" {
			return
		}

		if ValidUsername(username) {
			break
		}

		fmt.Fprintf(c.out, "%sInvalid username.%s\n", colorRed, colorReset)
	}

	var password string

	for {
		fmt.Fprintln(c.out, "Password needs 6+ characters with upper, lower, digit and special.")

		password = c.readLine("Password: ")
		if password == "" {
			return
		}

		if ValidPassword(password) {
			break
		}

		fmt.Fprintf(c.out, "%sInvalid password.%s\n", colorRed, colorReset)
	}

	if err := c.agency.SignUp(username, password); err != nil {
		fmt.Fprintf(c.out, "%sRegistration failed: %v%s\n", colorRed, err, colorReset)

		return
	}

	fmt.Fprintf(c.out, "%sAccount created. Welcome aboard, %s.%s\n", colorGreen, username, colorReset)
}

func (c *Console) history() {
	fmt.Fprintf(c.out, "\n%sAGENCY HISTORY%s\n", colorMagenta, colorReset)
	fmt.Fprintln(c.out, " 1969  Apollo 11 - first humans on the Moon")
	fmt.Fprintln(c.out, " 1981  STS-1 - first orbital flight of the Space Shuttle")
	fmt.Fprintln(c.out, " 1997  Mars Pathfinder - base station landed on Mars")
	fmt.Fprintln(c.out, "Now it's time to carve our own history, to go beyond the horizon.")
}

func (c *Console) about() {
	fmt.Fprintf(c.out, "\n%sABOUT%s\n", colorYellow, colorReset)
	fmt.Fprintln(c.out, "Horizon is the agency back office: missions, inventory,")
	fmt.Fprintln(c.out, "personnel and the catalog of worlds, all in one console.")
	fmt.Fprintf(c.out, "Version %s\n", c.version)
}
