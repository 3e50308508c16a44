package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/zskema/catalog"
)

// app carries state shared by subcommands.
type app struct {
	registry *catalog.Registry
	logger   *slog.Logger
	logLevel string
}

func newRootCmd(reg *catalog.Registry) *cobra.Command {
	a := &app{registry: reg}
	root := &cobra.Command{
		Use:           "zskema",
		Short:         "zskema validates JSON and YAML documents against registered schemas",
		Long:          `zskema parses documents, runs them through a named schema from the built-in catalog and reports every issue with its path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.AddCommand(newValidateCmd(a), newSchemasCmd(a), newVersionCmd())
	return root
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lv slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lv = slog.LevelDebug
	case "info":
		lv = slog.LevelInfo
	case "warn", "":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})), nil
}

// Execute runs the root command with the default catalog.
func Execute() {
	if err := newRootCmd(catalog.Default()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
