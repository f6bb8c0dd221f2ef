package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/constants"
)

// mockFormRunner is a mock implementation of formRunner for testing.
type mockFormRunner struct {
	// runErr is the error to return from Run()
	runErr error

	// onRun is an optional callback executed when Run() is called
	onRun func()
}

func (m *mockFormRunner) Run() error {
	if m.onRun != nil {
		m.onRun()
	}
	return m.runErr
}

// cliResult captures one command execution.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// setupCLITest isolates a test from the user's configuration: RCLI_HOME and
// the working directory both point at fresh temp dirs. It returns the
// working directory.
func setupCLITest(t *testing.T) string {
	t.Helper()

	t.Setenv(constants.RcliHomeEnv, t.TempDir())
	t.Setenv("RCLI_LOG_FILE", "false")
	t.Setenv("NO_COLOR", "1")

	work := t.TempDir()
	t.Chdir(work)
	return work
}

// runCLI executes the root command with args, feeding stdin to the command.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := executeCmd(context.Background(), cmd, flags)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeFile writes data into dir/name and returns the path.
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// withTerminal makes the commands believe stdin is (or is not) interactive.
func withTerminal(t *testing.T, interactive bool) {
	t.Helper()
	original := terminalCheck
	terminalCheck = func() bool { return interactive }
	t.Cleanup(func() { terminalCheck = original })
}

// withConfirm answers the overwrite prompt with answer.
func withConfirm(t *testing.T, answer bool, prompted *[]string) {
	t.Helper()
	original := createOverwriteConfirmForm
	createOverwriteConfirmForm = func(paths []string, confirm *bool) formRunner {
		if prompted != nil {
			*prompted = paths
		}
		return &mockFormRunner{onRun: func() { *confirm = answer }}
	}
	t.Cleanup(func() { createOverwriteConfirmForm = original })
}

// mkdir creates dir/name and returns its path.
func mkdir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0o750))
	return path
}
