package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"kurs/internal/config"
)

// Exit codes per failure class.
const (
	exitRuntime    = 1
	exitUsage      = 2
	exitNotInteger = 3
	exitOutOfRange = 4
)

var (
	rootCmd = &cobra.Command{
		Use:           "kurs",
		SilenceErrors: true,
	}

	cnf    *config.Config
	logger *slog.Logger
)

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func Execute() {
	initConfig()
	initLogger()

	rootCmd.AddCommand(ratesCmd)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}

		// anything cobra raised itself (bad arguments, unknown command)
		os.Exit(exitUsage)
	}
}

func initConfig() {
	cnf = config.MustLoad()
}

func initLogger() {
	// stderr, so the result dump on stdout stays machine-readable
	opts := &slog.HandlerOptions{Level: cnf.Logger.ParsedSlogLevel}
	logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
}
