package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplicity-js/installer/internal/appConfig"
	"github.com/simplicity-js/installer/internal/sh"
)

type fixture struct {
	app    *App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	runner *sh.FakeRunner
}

func newFixture(t *testing.T, testMode bool) *fixture {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(appConfig.EnvGitHubToken, "")
	if testMode {
		t.Setenv(appConfig.EnvName, appConfig.TestEnv)
	} else {
		t.Setenv(appConfig.EnvName, "")
	}

	f := &fixture{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}, runner: &sh.FakeRunner{}}
	f.app = &App{
		Stdout:       f.stdout,
		Stderr:       f.stderr,
		Runner:       f.runner,
		WorkingDir:   t.TempDir(),
		InstallerDir: t.TempDir(),
	}
	return f
}

func (f *fixture) execute(args ...string) int {
	return f.app.Execute(context.Background(), args)
}

func expectedHelp() string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(helpManual, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func expectedVersion() string {
	return "\n  Simplicity Installer version " + Version + " (cli)\n"
}

func TestHelp(t *testing.T) {
	for _, args := range [][]string{{}, {"help"}, {"-h"}, {"--help"}, {"create-project", "--help"}, {"new", "-h"}} {
		t.Run(strings.Join(append([]string{"simplicity"}, args...), " "), func(t *testing.T) {
			f := newFixture(t, true)

			assert.Equal(t, 0, f.execute(args...))
			assert.Equal(t, expectedHelp(), f.stdout.String())
			assert.Empty(t, f.runner.Calls)
		})
	}
}

func TestHelp_ListsCommands(t *testing.T) {
	f := newFixture(t, true)

	f.execute("help")

	for _, command := range []string{"create-project", "new", "help", "version"} {
		assert.Contains(t, f.stdout.String(), command)
	}
}

func TestVersion(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"-v"}, {"--version"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			f := newFixture(t, true)

			assert.Equal(t, 0, f.execute(args...))
			assert.Equal(t, expectedVersion(), f.stdout.String())
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t, true)

	assert.Equal(t, 0, f.execute("deploy"))
	assert.Equal(t, "  ERROR: Unknown Command 'deploy'.\n"+expectedHelp(), f.stdout.String())
}

func TestUnknownCommand_WithVersionFlag(t *testing.T) {
	f := newFixture(t, true)

	assert.Equal(t, 0, f.execute("deploy", "-v"))
	assert.Equal(t, "  ERROR: Unknown Command 'deploy'.\n"+expectedVersion(), f.stdout.String())
}

func TestCreateProject_NotEmpty(t *testing.T) {
	for _, command := range []string{"create-project", "new"} {
		t.Run(command, func(t *testing.T) {
			f := newFixture(t, false)
			projectDir := filepath.Join(f.app.WorkingDir, "demo")
			require.NoError(t, os.MkdirAll(projectDir, 0755))
			require.NoError(t, os.WriteFile(filepath.Join(projectDir, "index.js"), nil, 0644))

			assert.Equal(t, 0, f.execute(command, "demo"))
			assert.Equal(t, "  ERROR The 'demo' directory is not empty.\n", f.stdout.String())
			assert.Empty(t, f.runner.Calls)
		})
	}
}

func TestCreateProject_FetchFailureExitCode(t *testing.T) {
	tests := []struct {
		name     string
		testMode bool
		expected int
	}{
		{name: "exits with 1", expected: 1},
		{name: "test mode returns normally", testMode: true, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.testMode)
			f.runner.OnRun = func(_ sh.DirectoryPath, command sh.ShellCommand) (sh.Result, error) {
				r := sh.Failed(command, 6, "curl: (6) Could not resolve host\n")
				return r.Result, r.Err
			}

			assert.Equal(t, tt.expected, f.execute("create-project", "demo"))
			assert.NoDirExists(t, filepath.Join(f.app.WorkingDir, "demo"))
			assert.Contains(t, f.stdout.String(), "An error occurred while creating the project.")
		})
	}
}

func TestCreateProject_ReadsConfigFile(t *testing.T) {
	f := newFixture(t, true)
	config := "template:\n  owner: acme\n  repo: starter\n"
	require.NoError(t, os.WriteFile(filepath.Join(f.app.WorkingDir, appConfig.ConfigFileName), []byte(config), 0644))

	f.execute("new", "demo")

	require.NotEmpty(t, f.runner.Calls)
	assert.Contains(t, string(f.runner.Calls[0].Command), "https://api.github.com/repos/acme/starter/zipball")
}

func TestCreateProject_TooManyArguments(t *testing.T) {
	f := newFixture(t, true)

	assert.Equal(t, 1, f.execute("create-project", "a", "b"))
	assert.Empty(t, f.runner.Calls)
}

func TestVerboseFlag(t *testing.T) {
	f := newFixture(t, true)

	assert.Equal(t, 0, f.execute("version", "--verbose"))
	assert.Contains(t, f.stderr.String(), "Verbose (debug) logging enabled")
}
