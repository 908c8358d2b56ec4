package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/simplicity-js/installer/internal/fsutil"
)

// RedirectLog is the single append-only file that collects everything one
// installer run produces: status lines written through the embedded logger
// and the raw output of every subprocess.
type RedirectLog struct {
	*logrus.Logger
	file      *os.File
	path      string
	closeOnce sync.Once
}

func OpenRedirectLog(path string) (*RedirectLog, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(file)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	l.SetLevel(logrus.DebugLevel)

	return &RedirectLog{Logger: l, file: file, path: path}, nil
}

// AppendOutput writes subprocess output to the log as is.
func (r *RedirectLog) AppendOutput(output string) {
	if output == "" {
		return
	}
	if _, err := r.file.WriteString(output); err != nil {
		Log.Errorf("failed to write to %s: %v", r.path, err)
	}
}

func (r *RedirectLog) Path() string {
	return r.path
}

func (r *RedirectLog) Filename() string {
	return fsutil.Filename(r.path)
}

// Close may be called more than once.
func (r *RedirectLog) Close() error {
	var err error
	r.closeOnce.Do(func() {
		err = r.file.Close()
	})
	return err
}
