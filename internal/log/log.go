package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// InitLogger sends diagnostics to out. Only warnings and errors are shown
// unless verbose is set.
func InitLogger(verbose bool, out io.Writer) {
	Log.SetOutput(out)
	Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		Log.Debugln("Verbose (debug) logging enabled")
	} else {
		Log.SetLevel(logrus.WarnLevel)
	}
}
