package console

import "fmt"

const (
	roverGridWidth  = 20
	roverGridHeight = 15
)

// roverGame is a free-roam sample hunt. Each input line is a run of
// w/a/s/d moves; q quits. Collecting a sample respawns it, hitting a
// crater ends the run.
func (c *Console) roverGame() {
	rx, ry := 2, 2
	sx, sy := c.rng.IntN(roverGridWidth), c.rng.IntN(roverGridHeight)
	c1x, c1y := c.rng.IntN(roverGridWidth-2), c.rng.IntN(roverGridHeight-2)
	c2x, c2y := c.rng.IntN(roverGridWidth), c.rng.IntN(roverGridHeight)
	score := 0

	for {
		fmt.Fprintf(c.out, "ROVER OPS | Science: %d | q to Exit | wasd to Move\n", score)
		fmt.Fprintf(c.out, "%sS = Science Sample%s  %sX = Crater%s\n", colorGreen, colorReset, colorRed, colorReset)
		fmt.Fprintf(c.out, "Rover: (%d,%d) | Sample: (%d,%d) | Craters: (%d,%d) (%d,%d)\n", rx, ry, sx, sy, c1x, c1y, c2x, c2y)

		moves := c.readLine("Moves: ")
		if moves == "" {
			return
		}

		for _, move := range moves {
			switch move {
			case 'q':
				return
			case 'w':
				if ry > 0 {
					ry--
				}
			case 's':
				if ry < roverGridHeight-1 {
					ry++
				}
			case 'a':
				if rx > 0 {
					rx--
				}
			case 'd':
				if rx < roverGridWidth-1 {
					rx++
				}
			default:
				continue
			}

			if rx == sx && ry == sy {
				score++
				sx, sy = c.rng.IntN(roverGridWidth), c.rng.IntN(roverGridHeight)
			}

			if (rx == c1x && ry == c1y) || (rx == c2x && ry == c2y) {
				fmt.Fprintf(c.out, "%sCRASHED INTO CRATER! MISSION TERMINATED.%s\n", colorRed, colorReset)

				return
			}
		}
	}
}
