package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"minikube-ctl/internal/cli"
	"minikube-ctl/pkg/errx"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	level := zap.NewAtomicLevelAt(zap.ErrorLevel)
	logger, err := newConsoleLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(logger, level)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errx.UserString(err))
		if cli.IsDebugMode() {
			fmt.Fprintln(os.Stderr, errx.DebugString(err))
		}
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}

// newRootCmd builds the minikube-ctl command tree. --debug raises level to
// Debug once flags are parsed; --quiet silences informational output.
func newRootCmd(logger *zap.Logger, level zap.AtomicLevel) *cobra.Command {
	var debug, quiet bool
	var configFile string

	root := &cobra.Command{
		Use:   "minikube-ctl",
		Short: "Start, stop and inspect a local minikube cluster",
		Long: `minikube-ctl drives the minikube binary to manage a local Kubernetes cluster:
- start and stop the cluster
- show host, cluster and kubeconfig status
- check that minikube is installed and runnable
- persist the minikube binary location`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetDebugMode(debug)
			cli.DefaultPrinter.Quiet = quiet
			if debug {
				level.SetLevel(zap.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode with structured error logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print warnings, errors and requested output")
	root.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default ~/.minikube-ctl/settings.yaml)")

	load := cli.DefaultManagerLoader(&configFile, logger)
	root.AddCommand(cli.NewStartCmd(load))
	root.AddCommand(cli.NewStopCmd(load))
	root.AddCommand(cli.NewStatusCmd(load))
	root.AddCommand(cli.NewCheckCmd(load))
	root.AddCommand(cli.NewConfigCmd(load))

	return root
}

// newConsoleLogger returns a human-friendly console logger on stderr, leaving
// stdout to command output. level can be raised after construction.
func newConsoleLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = level
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
