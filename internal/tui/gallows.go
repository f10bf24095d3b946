package tui

import "strings"

// gallows draws the scaffold with the first stage parts of the figure:
// head, body, left arm, right arm, left leg, right leg.
func gallows(stage int) string {
	part := func(n int, s string) string {
		if stage >= n {
			return s
		}
		return strings.Repeat(" ", len(s))
	}
	return strings.Join([]string{
		"  +---+",
		"  |   |",
		"  " + part(1, "O") + "   |",
		" " + part(3, "/") + part(2, "|") + part(4, `\`) + "  |",
		" " + part(5, "/") + " " + part(6, `\`) + "  |",
		"      |",
		"=========",
	}, "\n")
}
