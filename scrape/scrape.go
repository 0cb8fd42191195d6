package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"
)

const (
	exitOK        = 0
	exitUsage     = 1
	exitMalformed = 2
	exitFetch     = 3
	exitStale     = 4
)

func main() {
	cli, err := parseArgs(os.Args[1:], kong.Exit(atexit.Exit))
	checkf(err, "invalid command line")
	checkf(setupLogging(cli.LogLevel, cli.LogFile), "failed to set up logging")

	cfg, err := LoadConfig(cli.Config)
	checkf(err, "failed to load configuration")
	cli.apply(&cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = newApp(cfg, cli.Input, os.Stdout).run(ctx, &cli)
	stop()

	atexit.Exit(exitCode(err, cli.StrictFetch))
}

// exitCode reports err and maps it to the process exit status. A
// specification that can't be fetched isn't a failure unless strict is
// set, so that builds without network access keep the existing header.
func exitCode(err error, strict bool) int {
	var (
		fetchErr *FetchError
		staleErr *StaleError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &fetchErr):
		logrus.WithError(fetchErr.Err).WithField("source", fetchErr.Source).Warn("Could not get page")
		if strict {
			return exitFetch
		}
		return exitOK
	case errors.As(err, &staleErr):
		logrus.Error(err)
		return exitStale
	default:
		logrus.Error(err)
		return exitMalformed
	}
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf("%s.\n%s", fmt.Sprintf(format, args...), err)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	atexit.Exit(exitUsage)
}
