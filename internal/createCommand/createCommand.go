// Package createCommand scaffolds a new project from the template repository:
// it downloads the repository archive, unpacks it into the project directory
// and installs the project's dependencies.
package createCommand

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/simplicity-js/installer/internal/appConfig"
	"github.com/simplicity-js/installer/internal/archive"
	"github.com/simplicity-js/installer/internal/color"
	"github.com/simplicity-js/installer/internal/createCommand/terminalView"
	"github.com/simplicity-js/installer/internal/fsutil"
	"github.com/simplicity-js/installer/internal/github"
	"github.com/simplicity-js/installer/internal/installer"
	logger "github.com/simplicity-js/installer/internal/log"
	"github.com/simplicity-js/installer/internal/sh"
	"github.com/simplicity-js/installer/internal/view"
)

type Outcome int

const (
	Created Outcome = iota
	NotEmpty
	SetupFailed
	FetchFailed
	ExtractFailed
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case NotEmpty:
		return "not empty"
	case SetupFailed:
		return "setup failed"
	case FetchFailed:
		return "fetch failed"
	case ExtractFailed:
		return "extract failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Fatal reports whether the process should exit with a non-zero code.
func (o Outcome) Fatal() bool {
	return o == SetupFailed || o == FetchFailed || o == ExtractFailed
}

type Pipeline struct {
	Config       *appConfig.AppConfig
	Runner       sh.Runner
	Stdout       io.Writer
	Terminal     *os.File // nil when stdout is not a terminal
	WorkingDir   string
	InstallerDir string // directory holding the token file
}

// Run creates the project name inside parentDir, or in parentDir itself when
// name is empty. Failures are reported on Stdout and in the returned Outcome.
func (p *Pipeline) Run(ctx context.Context, parentDir string, name string) Outcome {
	pc := NewPipelineContext(parentDir, name, p.WorkingDir, p.Config.Template.ArchiveName)
	logger.Log.Debugf("Creating %s in %s", color.FgMagenta(pc.ProjectName), color.FgCyan(pc.ProjectDir))

	if err := fsutil.CreateDirectory(pc.ProjectDir); err != nil {
		p.printError(err)
		return SetupFailed
	}
	empty, err := fsutil.IsEmpty(pc.ProjectDir)
	if err != nil {
		p.printError(err)
		return SetupFailed
	}
	if !empty {
		fmt.Fprintln(p.Stdout, terminalView.NotEmptyMessage(pc.ProjectName))
		return NotEmpty
	}

	redirectLog, err := logger.OpenRedirectLog(pc.LogPath)
	if err != nil {
		p.printError(err)
		return SetupFailed
	}
	defer redirectLog.Close()

	fmt.Fprintln(p.Stdout)
	spinner := view.NewSpinner(p.Stdout, p.Terminal).Start(terminalView.CreatingMessage(pc.ProjectName))

	if err := p.fetch(ctx, pc, redirectLog); err != nil {
		logger.Log.Debugf("Fetching the template failed: %v", err)
		spinner.Fail(terminalView.FetchFailedMessage(redirectLog.Filename()))
		_ = redirectLog.Close()
		savedLog := rollbackFetch(pc)
		terminalView.NewLogFileView(savedLog, p.Stdout).Render(view.TerminalWidth(p.Terminal))
		return FetchFailed
	}

	if err := p.extract(pc); err != nil {
		logger.Log.Debugf("Extracting the template failed: %v", err)
		redirectLog.Errorf("%v", err)
		spinner.Fail(terminalView.ExtractFailedMessage(redirectLog.Filename()))
		terminalView.NewLogFileView(pc.LogPath, p.Stdout).Render(view.TerminalWidth(p.Terminal))
		return ExtractFailed
	}
	spinner.Succeed(terminalView.CreatedMessage(pc.ProjectName))

	envExample := path.Join(pc.ProjectDir, ".env.example")
	if err := fsutil.Copy(envExample, path.Join(pc.ProjectDir, ".env")); err != nil {
		logger.Log.Debugf("Could not create .env: %v", err)
	}
	fmt.Fprintln(p.Stdout)

	summary := view.NewCompositeView()
	dependenciesInstalled := false
	if !p.Config.TestMode {
		var installView view.View
		dependenciesInstalled, installView = p.installDependencies(ctx, pc, redirectLog)
		summary.AddView(installView)
	}

	_ = redirectLog.Close()
	if err := fsutil.Delete(pc.LogPath); err != nil {
		logger.Log.Debugf("Could not delete %s: %v", pc.LogPath, err)
	}

	summary.AddView(terminalView.NewFinalMessageView(&terminalView.FinalMessageViewModel{
		ProjectName:           pc.ProjectName,
		ChangeDirectory:       !pc.InWorkingDir(),
		DependenciesInstalled: dependenciesInstalled,
		PackageManager:        p.Config.PackageManager,
		StartScript:           p.Config.StartScript,
	}, p.Stdout))
	summary.Render(view.TerminalWidth(p.Terminal))
	return Created
}

func (p *Pipeline) fetch(ctx context.Context, pc *PipelineContext, redirectLog *logger.RedirectLog) error {
	template := p.Config.Template
	spec := github.DownloadSpec{
		Owner:           template.Owner,
		Repo:            template.Repo,
		Format:          github.ArchiveFormat(template.Format),
		Token:           github.ResolveToken(filepath.Join(p.InstallerDir, p.Config.TokenFile), p.Config.GitHubToken),
		OutputDirectory: pc.ProjectDir,
		OutputFilename:  template.ArchiveName,
	}
	redirectLog.Infof("Downloading %s", spec.ArchiveURL())

	result, err := p.Runner.Run(ctx, sh.DirectoryPath(pc.ProjectDir), github.BuildDownloadCommand(spec))
	redirectLog.AppendOutput(result.Output)
	if err != nil {
		redirectLog.Errorf("Download failed: %v", err)
		return err
	}
	if !fsutil.IsFile(pc.ArchivePath) {
		err := fmt.Errorf("%s was not downloaded", fsutil.Filename(pc.ArchivePath))
		redirectLog.Error(err)
		return err
	}
	return nil
}

// rollbackFetch removes what a failed download left behind and returns where
// the log can be found. A project directory other than the working directory
// was created by this run and is removed entirely, after the log has been
// saved to the working directory.
func rollbackFetch(pc *PipelineContext) string {
	if pc.InWorkingDir() {
		if err := fsutil.Delete(pc.ArchivePath); err != nil {
			logger.Log.Warnf("Could not delete %s: %v", pc.ArchivePath, err)
		}
		return pc.LogPath
	}
	savedLog := path.Join(pc.WorkingDir, LogFileName)
	if err := fsutil.Copy(pc.LogPath, savedLog); err != nil {
		logger.Log.Warnf("Could not copy %s to %s: %v", LogFileName, color.FgCyan(pc.WorkingDir), err)
		savedLog = pc.LogPath
	}
	if err := fsutil.Delete(pc.ProjectDir); err != nil {
		logger.Log.Warnf("Could not delete %s: %v", color.FgCyan(pc.ProjectDir), err)
	}
	return savedLog
}

func (p *Pipeline) extract(pc *PipelineContext) error {
	if err := archive.Extract(pc.ArchivePath, pc.ProjectDir); err != nil {
		return fmt.Errorf("could not extract %s: %w", fsutil.Filename(pc.ArchivePath), err)
	}
	if err := flatten(pc.ProjectDir, p.Config.Template.ExtractedDirPrefix()); err != nil {
		return err
	}
	return fsutil.Delete(pc.ArchivePath)
}

// flatten moves the contents of the top level folder GitHub wraps around a
// repository archive up into projectDir.
func flatten(projectDir string, prefix string) error {
	names, err := fsutil.ListDirectoryContents(projectDir)
	if err != nil {
		return err
	}
	extracted := lo.Filter(names, func(name string, _ int) bool {
		return strings.HasPrefix(name, prefix) && fsutil.IsDirectory(path.Join(projectDir, name))
	})
	for _, name := range extracted {
		dir := path.Join(projectDir, name)
		if err := fsutil.Copy(dir, projectDir); err != nil {
			return fmt.Errorf("could not move %s into place: %w", name, err)
		}
		if err := fsutil.Delete(dir); err != nil {
			return err
		}
	}
	return nil
}

// installDependencies reports whether every dependency was installed, and the
// view summarizing the result.
func (p *Pipeline) installDependencies(ctx context.Context, pc *PipelineContext, redirectLog *logger.RedirectLog) (bool, view.View) {
	startTime := time.Now()
	deps := installer.NewInstaller(p.Runner, redirectLog, p.Stdout, p.Terminal, p.Config.PackageManager)
	if err := deps.InstallDependencies(ctx, pc.ProjectDir); err != nil {
		logger.Log.Debugf("Installing dependencies failed: %v", err)
		return false, terminalView.NewInstallWarningView(redirectLog.Filename(), p.Stdout)
	}
	label := fmt.Sprintf("%s%d packages installed", terminalView.Padding, deps.Installed())
	return true, view.NewTimeElapsedView(label, startTime, p.Stdout, time.Since)
}

func (p *Pipeline) printError(err error) {
	logger.Log.Debugf("%+v", err)
	fmt.Fprintln(p.Stdout, terminalView.ErrorMessage(err.Error()+"."))
}
