package term

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func ClearCurrentLine() {
	fmt.Print("\033[2K")
}

func MoveUpLines(numLines int) {
	fmt.Printf("\033[%dA", numLines)
}

func GetDivisionLine() string {
	terminalWidth, err := getTerminalWidth()
	if err != nil {
		terminalWidth = 50
	}
	return strings.Repeat("─", terminalWidth)
}

func getTerminalWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, err
	}
	return width, nil
}
