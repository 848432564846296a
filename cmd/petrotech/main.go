// cmd/petrotech/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/config"
	"github.com/petrotech/petrotech/internal/logging"
	"github.com/petrotech/petrotech/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionString() string {
	return fmt.Sprintf("petrotech %s (commit: %s, built: %s)", version, commit, date)
}

// rootOptions holds the persistent flags and the state built from them
// before any subcommand runs.
type rootOptions struct {
	configPath   string
	catalogPaths []string
	dbPath       string
	verbose      bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	browse := newBrowseCmd(opts)
	root := &cobra.Command{
		Use:   "petrotech",
		Short: "Browse petroleum engineering tools",
		Long:  "petrotech: a searchable directory of professional petroleum engineering software.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE:          browse.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringSliceVar(&opts.catalogPaths, "catalog", nil, "catalog YAML file (repeatable)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite catalog database")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}

	root.AddCommand(
		browse,
		newSearchCmd(opts),
		newShowCmd(opts),
		newCategoriesCmd(opts),
		newTagsCmd(opts),
		newValidateCmd(opts),
		newImportCmd(opts),
		newServeCmd(opts),
		versionCmd,
	)
	return root
}

// setup loads the configuration, applies environment and flag overrides and
// builds the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfgPath := o.configPath
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("locating config: %w", err)
		}
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.ApplyEnv(cfg)

	if len(o.catalogPaths) > 0 {
		cfg.Catalog.Paths = o.catalogPaths
	}
	if o.dbPath != "" {
		cfg.Catalog.Database = o.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log, logging.Options{
		Interactive: isBrowse(cmd),
		Verbose:     o.verbose,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	o.cfg = cfg
	o.logger = logger
	return nil
}

func isBrowse(cmd *cobra.Command) bool {
	return cmd.Name() == "browse" || !cmd.HasParent()
}

// loadCatalog resolves the catalog: database first, then YAML files, then the
// built-in data.
func (o *rootOptions) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	switch {
	case o.cfg.Catalog.Database != "":
		s, err := store.NewStore(o.cfg.Catalog.Database)
		if err != nil {
			return nil, fmt.Errorf("opening catalog database: %w", err)
		}
		defer s.Close()

		c, err := s.LoadCatalog(ctx)
		if errors.Is(err, store.ErrEmpty) {
			return nil, fmt.Errorf("%s: %w (run petrotech import first)", o.cfg.Catalog.Database, err)
		}
		if err != nil {
			return nil, fmt.Errorf("loading catalog database: %w", err)
		}
		o.logger.Debug("catalog loaded", zap.String("source", "database"),
			zap.String("path", o.cfg.Catalog.Database), zap.Int("tools", c.Len()))
		return c, nil

	case len(o.cfg.Catalog.Paths) > 0:
		c, err := catalog.Load(ctx, o.cfg.Catalog.Paths...)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		o.logger.Debug("catalog loaded", zap.String("source", "files"),
			zap.Strings("paths", o.cfg.Catalog.Paths), zap.Int("tools", c.Len()))
		return c, nil

	default:
		c, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("loading built-in catalog: %w", err)
		}
		o.logger.Debug("catalog loaded", zap.String("source", "built-in"), zap.Int("tools", c.Len()))
		return c, nil
	}
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
