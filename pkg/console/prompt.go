package console

import (
	"fmt"
	"strconv"
	"strings"

	"horizon/pkg/codec"
)

// readLine prompts and returns the next input line, sanitized so it can
// never smuggle a record or field separator into the stores. EOF returns
// an empty string, which menu loops treat as "back out".
func (c *Console) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return ""
	}

	return codec.Sanitize(strings.TrimSpace(c.in.Text()))
}

// readInt re-prompts until the user supplies an integer within [low, high].
// EOF reports ok=false so callers can back out instead of acting on a
// number the user never typed.
func (c *Console) readInt(prompt string, low, high int) (int, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			return 0, false
		}

		n, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil || n < low || n > high {
			fmt.Fprintf(c.out, "%sEnter a number between %d and %d.%s\n", colorRed, low, high, colorReset)

			continue
		}

		return n, true
	}
}

// readFloat re-prompts until the user supplies a number within [low, high].
// EOF reports ok=false.
func (c *Console) readFloat(prompt string, low, high float64) (float64, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			return 0, false
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(c.in.Text()), 64)
		if err != nil || f < low || f > high {
			fmt.Fprintf(c.out, "%sEnter a number between %g and %g.%s\n", colorRed, low, high, colorReset)

			continue
		}

		return f, true
	}
}

// choose prints a one-line prompt and returns the first rune of the reply,
// lowercased. An empty reply returns 0.
func (c *Console) choose(prompt string) rune {
	line := strings.ToLower(c.readLine(prompt))
	if line == "" {
		return 0
	}

	return rune(line[0])
}

// ValidUsername reports whether a candidate username is 4-10 characters of
// lowercase letters and digits.
func ValidUsername(username string) bool {
	if len(username) < 4 || len(username) > 10 {
		return false
	}

	for _, r := range username {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}

	return true
}

// ValidPassword reports whether a candidate password is at least 6
// characters and carries an upper, a lower, a digit and a special
// character.
func ValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var lower, upper, digit, special bool

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	return lower && upper && digit && special
}
