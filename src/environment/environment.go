package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, mainly for tests.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive undoes ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if expressions are typed by a user in a terminal,
// false if they are piped in
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
