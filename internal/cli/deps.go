package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/shadersig/internal/catalog"
	"github.com/gogpu/shadersig/internal/chunks"
)

func (a *app) openCatalog() (*catalog.Catalog, error) {
	dbPath := a.cfg.CatalogPath(a.rootDir)
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no catalog at %s, run 'shadersig index' first", dbPath)
		}
		return nil, err
	}
	return catalog.Open(dbPath)
}

func (a *app) depsCmd() *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Resolve chunk prototypes against catalog definitions",
		Long: `For every prototype declared by an indexed chunk, list the chunks whose
function definition satisfies it. A definition satisfies a prototype when the
name, return type and parameter types agree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			list, err := cat.List()
			if err != nil {
				return fmt.Errorf("failed to read catalog: %w", err)
			}

			links := chunks.Resolve(list)
			if links == nil {
				links = []chunks.Link{}
			}

			var unresolved int
			for _, l := range links {
				if !l.Resolved() {
					unresolved++
					a.logger.Warn("unresolved prototype", "chunk", l.From, "prototype", l.Prototype.String())
				}
			}

			err = render(cmd.OutOrStdout(), a.outputFormat(format), links, func(w io.Writer) error {
				for _, l := range links {
					providers := "unresolved"
					if l.Resolved() {
						providers = strings.Join(l.Providers, ", ")
					}
					if _, err := fmt.Fprintf(w, "%s: %s -> %s\n", l.From, l.Prototype.Prototype(), providers); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			if strict && unresolved > 0 {
				return fmt.Errorf("%d unresolved prototype(s)", unresolved)
			}
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a prototype has no provider")
	return cmd
}

func (a *app) lookupCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lookup <function>",
		Short: "Show the chunks that define a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			paths, err := cat.DefinitionsNamed(args[0])
			if err != nil {
				return fmt.Errorf("failed to read catalog: %w", err)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no chunk defines %q", args[0])
			}

			found := make([]chunks.Chunk, 0, len(paths))
			for _, p := range paths {
				c, err := cat.Get(p)
				if err != nil {
					return err
				}
				found = append(found, c)
			}

			return render(cmd.OutOrStdout(), a.outputFormat(format), found, func(w io.Writer) error {
				for _, c := range found {
					if _, err := fmt.Fprintf(w, "%s: %s\n", c.Path, c.Definition.String()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}
