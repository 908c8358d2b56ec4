package sh

import "context"

type FakeCall struct {
	Cwd     DirectoryPath
	Command ShellCommand
}

type FakeResponse struct {
	Result Result
	Err    error
}

// FakeRunner records invocations and answers them from Responses, falling back
// to OnRun and then to a successful empty result. Not safe for concurrent use.
type FakeRunner struct {
	Calls     []FakeCall
	Responses map[ShellCommand]FakeResponse
	OnRun     func(cwd DirectoryPath, command ShellCommand) (Result, error)
}

func (f *FakeRunner) Run(_ context.Context, cwd DirectoryPath, command ShellCommand) (Result, error) {
	f.Calls = append(f.Calls, FakeCall{Cwd: cwd, Command: command})
	if r, ok := f.Responses[command]; ok {
		return r.Result, r.Err
	}
	if f.OnRun != nil {
		return f.OnRun(cwd, command)
	}
	return Result{}, nil
}

func (f *FakeRunner) Commands() []ShellCommand {
	commands := make([]ShellCommand, 0, len(f.Calls))
	for _, call := range f.Calls {
		commands = append(commands, call.Command)
	}
	return commands
}

// Failed builds the response of a command that exited with code and printed output.
func Failed(command ShellCommand, code int, output string) FakeResponse {
	result := Result{ExitCode: code, Output: output}
	return FakeResponse{Result: result, Err: &ExitError{Command: command, Result: result}}
}
