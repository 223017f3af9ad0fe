// Package output provides terminal output formatting utilities for the
// changelogger CLI. This package is designed to have minimal dependencies
// to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	infoLabel    = color.New(color.FgCyan).SprintFunc()
	successLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	versionLabel = color.New(color.FgGreen).SprintFunc()
)

// IsTerminal reports whether stdin and stdout are attached to a terminal.
// Prompting only makes sense when they are.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Info prints a cyan informational status line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", infoLabel("Info"), fmt.Sprintf(format, args...))
}

// Success prints a green success line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", successLabel("Success"), fmt.Sprintf(format, args...))
}

// VersionBump prints the previous-to-new version transition.
func VersionBump(w io.Writer, previous, next string) {
	fmt.Fprintf(w, "%s previous version %s -> new version %s\n", versionLabel("Version"), previous, next)
}
