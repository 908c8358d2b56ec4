package terminalView

import (
	"fmt"

	"github.com/simplicity-js/installer/internal/color"
)

const Padding = "  "

func CreatingMessage(projectName string) string {
	return fmt.Sprintf("Creating project '%s'", projectName)
}

func CreatedMessage(projectName string) string {
	return fmt.Sprintf("Project '%s' created.", projectName)
}

func FetchFailedMessage(logFilename string) string {
	return "An error occurred while creating the project. " +
		fmt.Sprintf("Check the '%s' file for more info.", logFilename)
}

func ExtractFailedMessage(logFilename string) string {
	return "An error occurred while extracting the project. " +
		fmt.Sprintf("Check the '%s' file for more info.", logFilename)
}

func NotEmptyMessage(projectName string) string {
	return ErrorMessage(fmt.Sprintf("The '%s' directory is not empty.", projectName))
}

// ErrorMessage renders text behind a red ERROR badge.
func ErrorMessage(text string) string {
	return Padding + color.Error.Background("ERROR") + " " + color.Error.Text(text)
}
