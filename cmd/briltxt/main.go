// Command briltxt converts Bril programs between their text and JSON
// representations and resolves imports.
//
// Usage:
//
//	briltxt json [file]      # text -> canonical JSON
//	briltxt txt [file]       # canonical JSON -> text
//	briltxt resolve [file]   # JSON -> JSON with imports merged
//
// Each subcommand reads the named file, or standard input when no file
// is given, and writes to standard output unless -o is set.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bril-lang/briltxt"
	"github.com/bril-lang/briltxt/bril"
	"github.com/bril-lang/briltxt/resolve"
	"github.com/bril-lang/briltxt/text"
)

func main() {
	cmd := rootCommand()
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err != nil {
		var syntaxErr *text.SyntaxError
		if errors.As(err, &syntaxErr) && syntaxErr.Source != "" {
			fmt.Fprint(os.Stderr, syntaxErr.FormatWithContext())
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "briltxt",
		Short:        "Convert Bril programs between text and JSON, and resolve imports",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(
		jsonCommand(),
		txtCommand(),
		resolveCommand(&verbose),
	)

	return cmd
}

// jsonCommand parses the text format and emits the canonical JSON form.
func jsonCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse the text format and emit canonical JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			program, err := briltxt.ParseProgram(string(source))
			if err != nil {
				return err
			}

			return writeJSON(cmd, output, program)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// txtCommand decodes canonical JSON and emits the text format.
func txtCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "txt [file]",
		Short: "Decode canonical JSON and emit the text format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := readProgram(cmd, args)
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, []byte(briltxt.PrintProgram(program)))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// resolveCommand decodes canonical JSON, merges every imported module,
// and emits the fully merged program as JSON.
func resolveCommand(verbose *bool) *cobra.Command {
	var output string
	var path string

	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Merge a program's imported modules into one namespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := readProgram(cmd, args)
			if err != nil {
				return err
			}

			loader := resolve.NewFSLoader(afero.NewOsFs(), path)
			merged, err := briltxt.ResolveImports(program, loader,
				resolve.WithLogger(newLogger(*verbose)))
			if err != nil {
				return err
			}

			return writeJSON(cmd, output, merged)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&path, "path", ".", "directory searched for <module>.bril files")

	return cmd
}

func newLogger(verbose bool) logr.Logger {
	if !verbose {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: 1})
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", args[0])
	}
	return data, nil
}

func readProgram(cmd *cobra.Command, args []string) (*bril.Program, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	var program bril.Program
	if err := json.Unmarshal(data, &program); err != nil {
		return nil, errors.Wrap(err, "decoding program")
	}
	return &program, nil
}

func writeJSON(cmd *cobra.Command, output string, program *bril.Program) error {
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(cmd, output, append(data, '\n'))
}

func writeOutput(cmd *cobra.Command, output string, data []byte) error {
	if output != "" {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", output)
		}
		return nil
	}

	_, err := cmd.OutOrStdout().Write(data)
	return err
}
