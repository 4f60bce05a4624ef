package util

import (
	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// TerminalWidth returns the column width of the terminal behind fd, or 80
// when fd is not attached to a terminal.
func TerminalWidth(fd uintptr) int {
	if !term.IsTerminal(int(fd)) {
		return defaultTerminalWidth
	}

	width, _, err := term.GetSize(int(fd))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}

	return width
}
