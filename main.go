package main

import (
	"os"

	"github.com/simplicity-js/installer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
