package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/archwiki/cmd/archwiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{
	"read-page", "search", "list-pages", "list-categories", "list-languages", "sync-wiki", "info",
}

// testEnv returns a getenv that only knows the given variables.
func testEnv(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

// newTestMain returns a Main isolated from the user's environment.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()

	dir := t.TempDir()
	m := main.NewMain()
	m.Color = false
	m.ConfigPath = filepath.Join(dir, "config.yml")
	m.Getenv = testEnv(map[string]string{
		"ARCHWIKI_CACHE_DIR": filepath.Join(dir, "cache"),
		"ARCHWIKI_DATA_DIR":  filepath.Join(dir, "data"),
	})
	return m
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestMain(t)
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(context.Background(), tt.args, stdout, stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "Usage: archwiki")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: archwiki")
}

func TestRun_UnknownFormat(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"read-page", "Pacman", "--format", "pdf"}, stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, 1, main.ExitCode(err))
}
