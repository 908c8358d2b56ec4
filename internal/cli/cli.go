// Package cli maps the installer's commands and flags to their handlers.
package cli

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplicity-js/installer/internal/appConfig"
	"github.com/simplicity-js/installer/internal/createCommand"
	"github.com/simplicity-js/installer/internal/createCommand/terminalView"
	"github.com/simplicity-js/installer/internal/fsutil"
	logger "github.com/simplicity-js/installer/internal/log"
	"github.com/simplicity-js/installer/internal/sh"
	"github.com/simplicity-js/installer/internal/view"
	typex "github.com/simplicity-js/installer/type"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "1.0.0"

//go:embed manual/help.stub
var helpManual string

type App struct {
	Stdout       io.Writer
	Stderr       io.Writer
	Terminal     *os.File
	Runner       sh.Runner
	WorkingDir   string
	InstallerDir string
}

// NewApp wires the App to the process: its standard streams, its working
// directory and the directory of the installer executable.
func NewApp() *App {
	app := &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Runner: sh.ShellRunner{},
	}
	if view.IsTerminal(os.Stdout) {
		app.Terminal = os.Stdout
	}
	if wd, err := os.Getwd(); err == nil {
		app.WorkingDir = wd
	}
	if executable, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolved
		}
		app.InstallerDir = filepath.Dir(executable)
	}
	return app
}

// Execute runs the installer with the process arguments and returns its exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewApp().Execute(ctx, os.Args[1:])
}

func (a *App) Execute(ctx context.Context, args []string) int {
	err := a.Run(ctx, args)
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(a.Stderr, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(a.Stdout, terminalView.ErrorMessage(err.Error()+"."))
	return 1
}

func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	root := a.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	return root.ExecuteContext(ctx)
}

func (a *App) NewRootCommand() *cobra.Command {
	var verbose typex.NullableBool
	var showVersion bool

	root := &cobra.Command{
		Use:           "simplicity",
		Short:         "Create Simplicity projects",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLogger(verbose.Val(false), a.Stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintf(a.Stdout, "%sERROR: Unknown Command '%s'.\n", terminalView.Padding, args[0])
			}
			if showVersion {
				a.showVersion()
				return nil
			}
			return a.showHelp()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.Flags().BoolVarP(&showVersion, "version", "v", false, "Show the installer version")
	flag := root.PersistentFlags().VarPF(&verbose, "verbose", "", "Print diagnostic output to stderr")
	flag.NoOptDefVal = "true"

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if err := a.showHelp(); err != nil {
			logger.Log.Error(err)
		}
	})
	root.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Show help",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showHelp()
		},
	})

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show the installer version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				a.showVersion()
			},
		},
		a.newCreateProjectCommand(),
	)
	return root
}

func (a *App) newCreateProjectCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create-project [name]",
		Aliases: []string{"new"},
		Short:   "Create a new project",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return a.createProject(cmd.Context(), name)
		},
	}
}

func (a *App) createProject(ctx context.Context, name string) error {
	config, err := appConfig.Load(a.WorkingDir, a.InstallerDir)
	if err != nil {
		return err
	}

	pipeline := &createCommand.Pipeline{
		Config:       config,
		Runner:       a.Runner,
		Stdout:       a.Stdout,
		Terminal:     a.Terminal,
		WorkingDir:   a.WorkingDir,
		InstallerDir: a.InstallerDir,
	}
	outcome := pipeline.Run(ctx, a.WorkingDir, name)
	logger.Log.Debugf("create-project finished: %s", outcome)

	if outcome.Fatal() && !config.TestMode {
		return &ExitError{Code: 1}
	}
	return nil
}

func (a *App) showHelp() error {
	for line, err := range fsutil.Lines(strings.NewReader(helpManual)) {
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Stdout, terminalView.Padding+line)
	}
	return nil
}

func (a *App) showVersion() {
	fmt.Fprintf(a.Stdout, "\n%sSimplicity Installer version %s (cli)\n", terminalView.Padding, Version)
}
