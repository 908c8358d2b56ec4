package terminalView

import (
	"fmt"
	"io"
	"strings"

	"github.com/simplicity-js/installer/internal/color"
)

// FinalMessageViewModel holds what the user has to do to start the new project.
type FinalMessageViewModel struct {
	ProjectName           string
	ChangeDirectory       bool // the project is not the current working directory
	DependenciesInstalled bool
	PackageManager        string
	StartScript           string
}

type FinalMessageView struct {
	viewModel *FinalMessageViewModel
	stdout    io.Writer
}

func NewFinalMessageView(vm *FinalMessageViewModel, stdout io.Writer) *FinalMessageView {
	return &FinalMessageView{viewModel: vm, stdout: stdout}
}

func (v *FinalMessageView) Render(_ int) int {
	vm := v.viewModel
	msg := Padding + "To start the app, run "
	if vm.ChangeDirectory {
		msg += color.Info.Text(fmt.Sprintf("chdir %s && ", vm.ProjectName))
	}
	start := vm.StartScript
	if !vm.DependenciesInstalled {
		start = fmt.Sprintf("%s install && %s", vm.PackageManager, start)
	}
	msg += color.Info.Text(start) + "."

	out := "\n" + msg + "\n"
	if _, err := fmt.Fprint(v.stdout, out); err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}
