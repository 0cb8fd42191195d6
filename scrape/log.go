package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"
)

// setupLogging configures the standard logrus logger. Logs go to stderr
// unless path is set, in which case that file is appended to and closed
// on exit.
func setupLogging(level, path string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if path == "" {
		logrus.SetOutput(os.Stderr)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("can't open log file: %w", err)
	}
	logrus.SetOutput(f)
	atexit.Register(func() { f.Close() })
	return nil
}
