package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/shadersig/internal/catalog"
	"github.com/gogpu/shadersig/internal/chunks"
)

func (a *app) indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index [path]",
		Short: "Index shader chunks into the signature catalog",
		Long: `Scan a directory for shader chunks and store their signatures in the
catalog (.shadersig/catalog.db in the project directory by default).
The catalog is rebuilt from scratch on every run.

Examples:
  shadersig index                 # Index the project directory
  shadersig index shaders/        # Index a sub-directory`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.rootDir
			if len(args) > 0 {
				var err error
				path, err = filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("invalid path: %w", err)
				}
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("path does not exist: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("path is not a directory: %s", path)
			}

			scanner := chunks.NewScanner(a.cfg.Chunks.Includes, a.cfg.Chunks.Excludes, a.logger)
			found, err := scanner.Scan(path)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			dbPath := a.cfg.CatalogPath(a.rootDir)
			cat, err := catalog.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open catalog: %w", err)
			}
			defer cat.Close()

			if err := cat.Clear(); err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}

			var definitions, prototypes int
			for _, c := range found {
				if err := cat.Put(c); err != nil {
					return fmt.Errorf("failed to store %s: %w", c.Path, err)
				}
				if c.Definition != nil {
					definitions++
				}
				prototypes += len(c.Prototypes)
			}

			a.logger.Info("catalog updated", "path", dbPath, "chunks", len(found))
			return printIndexSummary(cmd.OutOrStdout(), len(found), definitions, prototypes, dbPath)
		},
	}
}

func printIndexSummary(w io.Writer, chunkCount, definitions, prototypes int, dbPath string) error {
	_, err := fmt.Fprintf(w, "Indexed %d chunks (%d definitions, %d prototypes) into %s\n",
		chunkCount, definitions, prototypes, dbPath)
	return err
}
