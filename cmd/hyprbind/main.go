// Package main is the entry point for the hyprbind CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flags holds the parsed command-line flags.
type flags struct {
	json       bool
	yaml       bool
	dmenu      bool
	writeTheme bool
	force      bool
	command    string
	configPath string
	logLevel   string
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "hyprbind",
		Short: "Browse, search and export Hyprland keybindings",
		Long: `hyprbind reads the keybindings of the running Hyprland session from
"hyprctl binds" and shows them in a searchable, sortable table.

With --json, --yaml or --dmenu it prints the keybindings and exits instead.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if f.force && !f.writeTheme {
				return errors.New("--force can only be used with --write-default-theme")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return run(ctx, f, cmd.OutOrStdout())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.BoolVarP(&f.json, "json", "j", false, "print keybindings as JSON and exit")
	fl.BoolVarP(&f.yaml, "yaml", "y", false, "print keybindings as YAML and exit")
	fl.BoolVarP(&f.dmenu, "dmenu", "d", false, "print keybindings as dmenu lines and exit")
	fl.BoolVar(&f.writeTheme, "write-default-theme", false, "write the default theme override file and exit")
	fl.BoolVar(&f.force, "force", false, "overwrite an existing theme file (with --write-default-theme)")
	fl.StringVar(&f.command, "command", "", `command that prints the bind report (default "hyprctl binds")`)
	fl.StringVar(&f.configPath, "config", "", "path to config.toml")
	fl.StringVar(&f.logLevel, "log-level", "", fmt.Sprintf("log level, one of %v", logging.ValidLevels()))

	return cmd
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
