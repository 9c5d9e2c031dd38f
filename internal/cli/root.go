// Package cli implements the shadersig command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/shadersig/config"
)

// Version is the shadersig release.
const Version = "0.1.0-dev"

// app holds state shared by all commands of one invocation.
type app struct {
	cfgFile  string
	rootDir  string
	logLevel string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the shadersig command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "shadersig",
		Short: "Extract function signatures from GLSL shader chunks",
		Long: `shadersig reads GLSL shader chunks and reports the function each chunk
defines and the prototypes it expects other chunks to provide.

Example usage:
  shadersig parse transform.glsl      # First function definition
  shadersig prototypes transform.glsl # Forward declarations
  shadersig index shaders/            # Build the signature catalog
  shadersig deps                      # Resolve prototypes against the catalog`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./shadersig.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.rootDir, "dir", "d", "", "project directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.parseCmd(),
		a.prototypesCmd(),
		a.indexCmd(),
		a.depsCmd(),
		a.lookupCmd(),
		versionCmd(),
	)

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error

	if a.rootDir == "" {
		a.rootDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromDir(a.rootDir)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.logLevel != "" {
		a.cfg.Logging.Level = a.logLevel
	}

	a.logger, err = newLogger(cmd.ErrOrStderr(), a.cfg.Logging)
	if err != nil {
		return err
	}
	return nil
}

func newLogger(w io.Writer, cfg config.LoggingConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shadersig version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "shadersig version %s\n", Version)
			return err
		},
	}
}
