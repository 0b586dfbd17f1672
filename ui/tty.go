package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

func SupportsANSICodes() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Interactive reports whether stdin is a terminal. Prompts are skipped when
// it is not.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}
