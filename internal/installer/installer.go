// Package installer installs the dependencies a project's manifest declares,
// one package at a time, so that every failure is attributable to one package
// in the redirect log.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/simplicity-js/installer/internal/counter"
	logger "github.com/simplicity-js/installer/internal/log"
	"github.com/simplicity-js/installer/internal/sh"
	"github.com/simplicity-js/installer/internal/view"
)

type group struct {
	started  string
	finished string
	dev      bool
	entries  map[string]string
}

type Installer struct {
	runner         sh.Runner
	log            *logger.RedirectLog
	stdout         io.Writer
	terminal       *os.File
	packageManager string
	installed      *counter.Counter
}

// NewInstaller creates an installer that runs packageManager through runner.
// terminal may be nil, in which case the spinners are not animated.
func NewInstaller(runner sh.Runner, log *logger.RedirectLog, stdout io.Writer, terminal *os.File, packageManager string) *Installer {
	return &Installer{
		runner:         runner,
		log:            log,
		stdout:         stdout,
		terminal:       terminal,
		packageManager: packageManager,
		installed:      counter.NewCounter(),
	}
}

// Installed is the number of packages installed so far.
func (i *Installer) Installed() int {
	return i.installed.Count()
}

// InstallDependencies installs the runtime dependencies of the manifest in
// projectDir, then its development dependencies. It stops at the first
// package that fails to install.
func (i *Installer) InstallDependencies(ctx context.Context, projectDir string) error {
	manifest, err := ReadManifest(projectDir)
	if err != nil {
		return err
	}
	if err := i.CheckEngines(ctx, projectDir, manifest.Engines); err != nil {
		i.log.Error(err)
		return err
	}

	groups := []group{
		{started: "Installing dependencies...", finished: "Dependencies installed.", entries: manifest.Dependencies},
		{started: "Installing dev dependencies...", finished: "Dev dependencies installed.", dev: true, entries: manifest.DevDependencies},
	}
	for _, g := range groups {
		deps := SortedDependencies(g.entries)
		if len(deps) == 0 {
			continue
		}
		i.log.Info(g.started)
		for _, dep := range deps {
			if dep.isLocalFramework() {
				i.log.Debugf("skipping %s", dep)
				continue
			}
			if err := i.install(ctx, projectDir, dep, g.dev); err != nil {
				return err
			}
		}
		i.log.Info(g.finished)
	}
	return nil
}

func (i *Installer) install(ctx context.Context, projectDir string, dep Dependency, dev bool) error {
	spinner := view.NewSpinner(i.stdout, i.terminal).Start(fmt.Sprintf("installing %s...", dep))
	i.log.Infof("installing %s...", dep)

	result, err := i.runner.Run(ctx, sh.DirectoryPath(projectDir), i.installCommand(dep, dev))
	i.log.AppendOutput(result.Output)
	if err != nil {
		spinner.Fail(fmt.Sprintf("%s could not be installed.", dep))
		i.log.Errorf("%s could not be installed: %v", dep, err)
		return fmt.Errorf("install %s: %w", dep, err)
	}

	i.installed.Add(1)
	spinner.Succeed(fmt.Sprintf("%s installed.", dep))
	i.log.Infof("%s installed.", dep)
	return nil
}

func (i *Installer) installCommand(dep Dependency, dev bool) sh.ShellCommand {
	if dev {
		return sh.ShellCommand(fmt.Sprintf("%s install --save-dev %s", i.packageManager, sh.Quote(dep.String())))
	}
	return sh.ShellCommand(fmt.Sprintf("%s install %s", i.packageManager, sh.Quote(dep.String())))
}
