// cmd/petrotech/validate.go
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petrotech/petrotech/internal/catalog"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var (
		strictFlag bool
		jsonFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check catalog files for errors and warnings",
		Long: `Validate catalog YAML files. Without arguments the configured catalog
files are checked, or the built-in catalog when none are configured.
Exits non-zero on errors, and on warnings with --strict.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = opts.cfg.Catalog.Paths
			}

			files, err := readCatalogFiles(paths)
			if err != nil {
				return err
			}
			categories, tools, err := catalog.Merge(files...)
			if err != nil {
				return err
			}
			result := catalog.Validate(categories, tools)

			opts.logger.Debug("catalog validated",
				zap.Strings("paths", paths),
				zap.Int("errors", len(result.Errors)),
				zap.Int("warnings", len(result.Warnings)))

			out := cmd.OutOrStdout()
			if jsonFlag {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				printValidation(out, result, len(tools))
			}

			switch {
			case !result.Valid:
				return fmt.Errorf("catalog has %d error(s)", len(result.Errors))
			case strictFlag && len(result.Warnings) > 0:
				return fmt.Errorf("catalog has %d warning(s) (strict mode)", len(result.Warnings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strictFlag, "strict", false, "treat warnings as errors")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print the result as JSON")
	return cmd
}

func readCatalogFiles(paths []string) ([]*catalog.File, error) {
	if len(paths) == 0 {
		f, err := catalog.Parse(catalog.DefaultData())
		if err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return []*catalog.File{f}, nil
	}

	files := make([]*catalog.File, 0, len(paths))
	for _, p := range paths {
		f, err := catalog.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func printValidation(w io.Writer, result *catalog.ValidationResult, tools int) {
	for _, e := range result.Errors {
		fmt.Fprintf(w, "error   %s\n", e)
	}
	for _, e := range result.Warnings {
		fmt.Fprintf(w, "warning %s\n", e)
	}
	if result.Valid {
		fmt.Fprintf(w, "ok: %d tools, %d warning(s)\n", tools, len(result.Warnings))
	}
}
