package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/shadersig/glsl"
)

func (a *app) parseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the first function definition of a chunk",
		Long: `Parse the first function definition in a shader chunk and print its
name, parameters and return type. Use "-" to read from stdin.

On failure the chunk is printed with the location of the problem.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			sig, err := glsl.ParseFunctionSignature(source)
			if err != nil {
				var malformed *glsl.MalformedSignatureError
				if errors.As(err, &malformed) {
					fmt.Fprint(cmd.ErrOrStderr(), malformed.FormatWithContext())
				}
				return fmt.Errorf("%s: %w", args[0], err)
			}

			a.logger.Debug("parsed definition", "file", args[0], "name", sig.Name, "params", len(sig.Params))

			return render(cmd.OutOrStdout(), a.outputFormat(format), sig, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, sig.String())
				return err
			})
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}

func (a *app) prototypesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "prototypes <file>",
		Short: "Print the function prototypes declared by a chunk",
		Long: `List every line of a shader chunk that is a function prototype such as
"vec4 map(vec4);", in source order. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			protos := glsl.FindPrototypes(source)
			a.logger.Debug("found prototypes", "file", args[0], "count", len(protos))

			return render(cmd.OutOrStdout(), a.outputFormat(format), protos, func(w io.Writer) error {
				for _, p := range protos {
					if _, err := fmt.Fprintln(w, p.Prototype()); err != nil {
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

func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read chunk: %w", err)
	}
	return string(data), nil
}
