package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"mad-squares/internal/config"
	"mad-squares/internal/core"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

// exitError carries a process exit status other than 1.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// cli carries the configuration and logger shared by every subcommand.
type cli struct {
	cfg        *config.Config
	configFile string
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: config.Default(), log: slog.Default()}

	root := &cobra.Command{
		Use:          "squares",
		Short:        "marching-squares contour over a clickable grid",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(c)
		},
	}

	c.cfg.Bind(root.PersistentFlags())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file path (yaml)")

	root.AddCommand(newGUICmd(c), newTUICmd(c), newRenderCmd(c), newEvolveCmd(c), newConfigCmd(c), newPatternsCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.configFile != "" {
		if err := c.cfg.LoadFile(c.configFile, cmd.Flags()); err != nil {
			return err
		}
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	c.log = c.cfg.Logger(os.Stderr)
	slog.SetDefault(c.log)
	gg.SetLogger(c.log)
	c.log.Debug("config loaded", "rows", c.cfg.Rows, "cols", c.cfg.Cols, "pattern", c.cfg.Pattern, "file", c.configFile)
	return nil
}

func newGUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "open the grid in a window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(c)
		},
	}
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "list seed patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.PatternNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
