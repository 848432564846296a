// cmd/petrotech/import.go
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petrotech/petrotech/internal/store"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var dbFlag string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write the catalog files into a SQLite database",
		Long: `Read the configured catalog files (or the built-in catalog) and replace
the contents of the SQLite database with them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbFlag == "" {
				return errors.New("--db is required")
			}

			// Read from files even when a database is configured.
			src := *opts
			srcCfg := *opts.cfg
			srcCfg.Catalog.Database = ""
			src.cfg = &srcCfg

			c, err := src.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			s, err := store.NewStore(dbFlag)
			if err != nil {
				return fmt.Errorf("opening catalog database: %w", err)
			}
			defer s.Close()

			if err := s.SaveCatalog(cmd.Context(), c); err != nil {
				return fmt.Errorf("importing catalog: %w", err)
			}

			opts.logger.Info("catalog imported", zap.String("db", dbFlag),
				zap.Int("tools", c.Len()), zap.String("schema_version", c.SchemaVersion()))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d tools in %d categories into %s (schema %s)\n",
				c.Len(), len(c.Categories()), dbFlag, c.SchemaVersion())
			return nil
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "destination SQLite database")
	return cmd
}
