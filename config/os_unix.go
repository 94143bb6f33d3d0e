//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// runes which could not appear in a single path element
const unsafeFileRunes = string(os.PathSeparator) + string(os.PathListSeparator) + "\x00"

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
