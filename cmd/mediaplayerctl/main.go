package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mpristools/mediaplayerctl/internal/adapters/dbus"
	"github.com/mpristools/mediaplayerctl/internal/adapters/output"
	"github.com/mpristools/mediaplayerctl/internal/core"
)

type app struct {
	service core.Service
	printer output.Printer
	timeout time.Duration
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(core.ExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	var (
		timeout time.Duration
		jsonOut bool
		verbose bool
	)

	var conn *dbus.Conn
	var logger *zap.Logger

	root := &cobra.Command{
		Use:   "mediaplayerctl",
		Short: "Control every MPRIS media player on the session bus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return &core.CLIError{Code: core.ExitUsage, Msg: "a playback command is required"}
		},
	}

	root.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 2*time.Second, "per-invocation bus call deadline")
	root.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output json")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd == root {
			// Bare invocation is a usage error; never touch the bus.
			return nil
		}
		logger = newLogger(verbose)

		var err error
		conn, err = dbus.Connect()
		if err != nil {
			return core.WrapError(core.ExitBusUnavailable, "the user's session bus is not available", err)
		}

		var printer output.Printer
		if jsonOut {
			printer = output.JSONPrinter{}
		} else {
			printer = output.HumanPrinter{}
		}

		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{
			service: core.Service{Bus: conn, Logger: logger},
			printer: printer,
			timeout: timeout,
		}))
		return nil
	}

	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if conn != nil {
			_ = conn.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	}

	root.AddCommand(playCommand())
	root.AddCommand(pauseCommand())
	root.AddCommand(playPauseCommand())
	root.AddCommand(stopCommand())
	root.AddCommand(nextCommand())
	root.AddCommand(prevCommand())
	root.AddCommand(lsCommand())
	root.AddCommand(statusCommand())

	return root
}

type appKey struct{}

func fromContext(cmd *cobra.Command) *app {
	val := cmd.Context().Value(appKey{})
	if val == nil {
		return nil
	}
	return val.(*app)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func newLogger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
}
