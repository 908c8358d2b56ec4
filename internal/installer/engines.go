package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/simplicity-js/installer/internal/sh"
)

const nodeVersionCommand sh.ShellCommand = "node --version"

type EngineError struct {
	Required  string
	Installed string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("the project requires Node.js version %s. Installed version: %s", e.Required, e.Installed)
}

// CheckEngines verifies the installed Node.js against the manifest's engines.node range.
// A manifest without one passes without running anything.
func (i *Installer) CheckEngines(ctx context.Context, projectDir string, engines map[string]string) error {
	required := strings.TrimSpace(engines["node"])
	if required == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(required)
	if err != nil {
		return fmt.Errorf("invalid engines.node range %q: %w", required, err)
	}

	result, err := i.runner.Run(ctx, sh.DirectoryPath(projectDir), nodeVersionCommand)
	if err != nil {
		i.log.AppendOutput(result.Output)
		return fmt.Errorf("could not determine the Node.js version: %w", err)
	}
	installed := strings.TrimSpace(result.Output)
	version, err := semver.NewVersion(installed)
	if err != nil {
		return fmt.Errorf("could not parse Node.js version %q: %w", installed, err)
	}
	if !constraint.Check(version) {
		return &EngineError{Required: required, Installed: version.String()}
	}
	i.log.Debugf("Node.js %s satisfies %s", version, required)
	return nil
}
