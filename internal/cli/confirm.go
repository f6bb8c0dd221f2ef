package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// formRunner is an interface that matches huh.Form's Run method.
type formRunner interface {
	Run() error
}

// createOverwriteConfirmForm builds the key overwrite prompt.
// Tests replace it to simulate the user's answer.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var createOverwriteConfirmForm = defaultCreateOverwriteConfirmForm

// terminalCheck reports whether stdin is interactive. Tests override it.
//
//nolint:gochecknoglobals // Required for test injection of terminal detection
var terminalCheck = isTerminal

// isTerminal returns true if stdin is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// defaultCreateOverwriteConfirmForm creates the Charm Huh form asking whether
// existing key files may be replaced.
func defaultCreateOverwriteConfirmForm(paths []string, confirm *bool) formRunner {
	title := "Key file already exists. Overwrite?"
	if len(paths) > 1 {
		title = "Key files already exist. Overwrite?"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(strings.Join(paths, "\n") + "\n\nAnything signed with the old key can no longer be verified with the new one.").
				Affirmative("Yes, overwrite").
				Negative("No, cancel").
				Value(confirm),
		),
	)
}

// confirmOverwrite prompts the user before existing key files are replaced.
func confirmOverwrite(paths []string) (bool, error) {
	var confirm bool
	form := createOverwriteConfirmForm(paths, &confirm)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirm, nil
}
