package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string

	log     *logger.Logger
	logSink io.Closer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "showcase",
		Short:         "Terminal component showcase with an interactive carousel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.openLogger()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return flags.closeLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML showcase config")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file (discarded when empty)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// openLogger sends logs to --log-file. The terminal belongs to the UI, so
// without a file every entry is dropped.
func (f *rootFlags) openLogger() error {
	if f.logFile == "" {
		f.log = logger.Discard()
		return nil
	}

	file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	log, err := logger.New(logger.Options{Level: f.logLevel, Writer: file, Component: "showcase"})
	if err != nil {
		file.Close()
		return fmt.Errorf("create logger: %w", err)
	}

	f.log = log
	f.logSink = file
	return nil
}

func (f *rootFlags) closeLogger() error {
	if f.logSink == nil {
		return nil
	}
	err := f.logSink.Close()
	f.logSink = nil
	return err
}
