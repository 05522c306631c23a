package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"penal-engine/internal/config"
	"penal-engine/internal/logging"
	"penal-engine/internal/reference"
)

var version = "0.1.0"

// exitErr carries a process exit code through cobra.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// app is the state shared by every subcommand.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *reference.Catalog
}

func main() {
	a := &app{}
	root := newRootCmd(a)

	err := root.Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, ee.msg)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "penal-engine",
		Short:         "Chilean criminal law microsite and sentence calculator",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newCalcCmd(a))
	root.AddCommand(newPenaltiesCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return exitError(2, "configuration: %v", err)
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	a.catalog = reference.Default()
	if cfg.ReferenceDir != "" {
		c, err := reference.LoadDir(cfg.ReferenceDir)
		if err != nil {
			return exitError(3, "failed to load reference data: %v", err)
		}
		a.catalog = c
		logger.Info("loaded reference override", zap.String("dir", cfg.ReferenceDir))
	}
	return nil
}
