package sh

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type DirectoryPath string
type ShellCommand string

// Result is what a finished subprocess leaves behind: its exit code and
// stdout/stderr interleaved in the order they were written.
type Result struct {
	ExitCode int
	Output   string
}

// ExitError is returned when a command could not be started or exited non-zero.
type ExitError struct {
	Command ShellCommand
	Result
	Err error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", firstWord(e.Command), e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Runner runs a shell command in a directory and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, cwd DirectoryPath, command ShellCommand) (Result, error)
}

type ShellRunner struct{}

func (ShellRunner) Run(ctx context.Context, cwd DirectoryPath, command ShellCommand) (Result, error) {
	return ExecuteShellCommand(ctx, cwd, command)
}

func ExecuteShellCommand(ctx context.Context, cwd DirectoryPath, command ShellCommand) (Result, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", string(command))
	cmd.Dir = string(cwd)
	cmd.Env = os.Environ()
	out, err := cmd.CombinedOutput()
	result := Result{Output: string(out)}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		return result, &ExitError{Command: command, Result: result, Err: err}
	}
	return result, nil
}

// Quote wraps s in single quotes so sh passes it through as one argument.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// firstWord keeps credentials that may be part of the command line out of error messages.
func firstWord(command ShellCommand) string {
	fields := strings.Fields(string(command))
	if len(fields) == 0 {
		return "command"
	}
	return fields[0]
}
