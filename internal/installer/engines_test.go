package installer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplicity-js/installer/internal/sh"
)

func nodeVersion(version string) map[sh.ShellCommand]sh.FakeResponse {
	return map[sh.ShellCommand]sh.FakeResponse{
		nodeVersionCommand: {Result: sh.Result{Output: version + "\n"}},
	}
}

func TestCheckEngines(t *testing.T) {
	tests := []struct {
		name      string
		required  string
		installed string
		wantErr   bool
	}{
		{name: "satisfied", required: ">=18.0.0", installed: "v20.11.1"},
		{name: "caret range", required: "^20.0.0", installed: "v20.11.1"},
		{name: "too old", required: ">=18.0.0", installed: "v16.20.2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "{}")
			f.runner.Responses = nodeVersion(tt.installed)

			err := f.installer.CheckEngines(context.Background(), f.dir, map[string]string{"node": tt.required})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var engineErr *EngineError
			require.True(t, errors.As(err, &engineErr))
			assert.Equal(t, tt.required, engineErr.Required)
			assert.Equal(t, "16.20.2", engineErr.Installed)
		})
	}
}

func TestCheckEngines_NoConstraint(t *testing.T) {
	f := newFixture(t, "{}")

	require.NoError(t, f.installer.CheckEngines(context.Background(), f.dir, nil))
	assert.Empty(t, f.runner.Calls)
}

func TestCheckEngines_NodeMissing(t *testing.T) {
	f := newFixture(t, "{}")
	f.runner.Responses = map[sh.ShellCommand]sh.FakeResponse{
		nodeVersionCommand: sh.Failed(nodeVersionCommand, 127, "sh: node: not found\n"),
	}

	assert.Error(t, f.installer.CheckEngines(context.Background(), f.dir, map[string]string{"node": ">=18"}))
}

func TestInstallDependencies_EngineMismatchInstallsNothing(t *testing.T) {
	f := newFixture(t, `{"engines": {"node": ">=18.0.0"}, "dependencies": {"express": "^4.19.2"}}`)
	f.runner.Responses = nodeVersion("v16.20.2")

	err := f.installer.InstallDependencies(context.Background(), f.dir)

	var engineErr *EngineError
	require.True(t, errors.As(err, &engineErr))
	assert.Equal(t, []sh.ShellCommand{nodeVersionCommand}, f.runner.Commands())
	assert.Contains(t, f.logContent(t), "requires Node.js version >=18.0.0")
}
