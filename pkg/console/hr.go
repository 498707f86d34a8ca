package console

import (
	"fmt"

	"horizon/pkg/models"
)

// trainingQuiz holds the six-question certification round.
var trainingQuiz = []struct {
	question string
	options  string
	answer   int
}{
	{"Escape velocity of Earth (km/s)?", "(1) 9.8   (2) 11.2   (3) 15.0", 2},
	{"Closest planet to the Sun?", "(1) Mercury   (2) Venus   (3) Mars", 1},
	{"First human to walk on the Moon?", "(1) Buzz Aldrin   (2) Yuri Gagarin   (3) Neil Armstrong", 3},
	{"Largest planet in the solar system?", "(1) Earth   (2) Saturn   (3) Jupiter", 3},
	{"Mars is commonly known as the?", "(1) Red Planet   (2) Ice Planet   (3) Gas Giant", 1},
	{"SI unit of force?", "(1) Joule   (2) Pascal   (3) Newton", 3},
}

func (c *Console) hrDashboard() {
	for {
		fmt.Fprintf(c.out, "\n%sHR%s\n", colorBlue, colorReset)
		fmt.Fprintln(c.out, " [1] Roster")
		fmt.Fprintln(c.out, " [2] Training")
		fmt.Fprintln(c.out, " [3] Back")

		switch c.choose("Select option: ") {
		case '1':
			c.astronautRoster()
		case '2':
			c.trainingRound()
		case '3', 0:
			return
		}
	}
}

func (c *Console) astronautRoster() {
	fmt.Fprintf(c.out, "\n%sPERSONNEL%s\n", colorBlue, colorReset)
	fmt.Fprintf(c.out, "%-20s %-12s %s\n", "NAME", "RANK", "STATUS")

	c.agency.Astronauts.Scan(func(_ int, a models.Astronaut) bool {
		fmt.Fprintf(c.out, "%-20s %-12s %s\n", a.Name, a.Rank, a.Status)

		return true
	})
}

func (c *Console) trainingRound() {
	for i, q := range trainingQuiz {
		fmt.Fprintf(c.out, "\nQ%d: %s\n%s : ", i+1, q.question, q.options)

		answer, ok := c.readInt("", 1, 3)
		if !ok {
			return
		}

		if answer == q.answer {
			fmt.Fprintf(c.out, "%s PASS%s\n", colorGreen, colorReset)
		} else {
			fmt.Fprintf(c.out, "%s FAIL%s\n", colorRed, colorReset)
		}
	}

	fmt.Fprintln(c.out, "\nHR Training Complete!")
}
