package main

import (
	"context"
	"fmt"
	"log"
	"maps"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/config"
	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/clock"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/idgen"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-api/internal/services/catalogloader"
)

var (
	catalogTimeout time.Duration
	catalogDSN     string
	importFrom     string
	importFile     string
	importMigrate  bool
	checkSource    string
	checkFile      string
	upstreamURL    string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the spell catalog",
	Long:  `Catalog commands migrate the PostgreSQL schema, import records into it and check a source.`,
}

var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the catalog schema migrations",
	RunE:  runCatalogMigrate,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the PostgreSQL catalog with records from another source",
	Long: `Import reads every record from --from (seed, file or upstream), validates the set
and replaces the contents of the PostgreSQL catalog in a single transaction.`,
	RunE: runCatalogImport,
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate a source, then print per-facet counts",
	RunE:  runCatalogCheck,
}

func init() {
	catalogCmd.PersistentFlags().DurationVar(&catalogTimeout, "timeout", 5*time.Minute, "Overall command timeout")
	catalogCmd.PersistentFlags().StringVar(&catalogDSN, "postgres-dsn", "", "PostgreSQL DSN")
	catalogCmd.PersistentFlags().StringVar(&upstreamURL, "base-url", "", "D&D 5e API base URL for the upstream source")

	catalogImportCmd.Flags().StringVar(&importFrom, "from", string(config.SourceSeed), "Source to import from (seed, file, upstream)")
	catalogImportCmd.Flags().StringVar(&importFile, "file", "", "Catalog file for the file source")
	catalogImportCmd.Flags().BoolVar(&importMigrate, "migrate", false, "Apply migrations before importing")

	catalogCheckCmd.Flags().StringVar(&checkSource, "source", string(config.SourceSeed), "Source to check (seed, file, postgres, upstream)")
	catalogCheckCmd.Flags().StringVar(&checkFile, "file", "", "Catalog file for the file source")

	catalogCmd.AddCommand(catalogMigrateCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
}

func requireDSN() error {
	if catalogDSN == "" {
		return fmt.Errorf("--postgres-dsn is required")
	}
	return nil
}

func runCatalogMigrate(_ *cobra.Command, _ []string) error {
	if err := requireDSN(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	if err := spells.RunMigrations(ctx, catalogDSN); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	log.Println("Catalog schema is up to date")
	return nil
}

func runCatalogImport(_ *cobra.Command, _ []string) error {
	if err := requireDSN(); err != nil {
		return err
	}

	from := config.Source(importFrom)
	if from == config.SourcePostgres {
		return fmt.Errorf("cannot import from postgres into itself")
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	source, closeSource, err := openSource(ctx, catalogSourceConfig(from, importFile))
	if err != nil {
		return fmt.Errorf("failed to open %s source: %w", from, err)
	}
	defer closeSource()

	records, err := source.ListSpells(ctx)
	if err != nil {
		return fmt.Errorf("failed to read %s source: %w", from, err)
	}
	if err := dnd5e.ValidateSpells(records); err != nil {
		return fmt.Errorf("%s source is invalid: %w", from, err)
	}

	if importMigrate {
		if err := spells.RunMigrations(ctx, catalogDSN); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}

	pool, err := spells.OpenPool(ctx, catalogDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := spells.NewPostgres(&spells.PostgresConfig{Pool: pool})
	if err != nil {
		return err
	}

	out, err := store.ReplaceAll(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	fmt.Printf("Imported %d spells from %s (replaced %d)\n", out.Inserted, from, out.Deleted)
	return nil
}

func runCatalogCheck(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	cfg := catalogSourceConfig(config.Source(checkSource), checkFile)
	source, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s source: %w", cfg.Source, err)
	}
	defer closeSource()

	loader, err := catalogloader.New(&catalogloader.Config{
		Source:      source,
		SourceName:  string(cfg.Source),
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("catalog"),
	})
	if err != nil {
		return err
	}

	loaded, err := loader.Load(ctx, &catalogloader.LoadInput{})
	if err != nil {
		return fmt.Errorf("%s source failed the check: %w", cfg.Source, err)
	}

	printStats(string(cfg.Source), loaded.Index.Stats())
	return nil
}

func catalogSourceConfig(source config.Source, file string) config.CatalogConfig {
	return config.CatalogConfig{
		Source:      source,
		File:        file,
		PostgresDSN: catalogDSN,
		Upstream: config.UpstreamConfig{
			BaseURL: upstreamURL,
		},
	}
}

func printStats(source string, stats catalog.Stats) {
	fmt.Printf("Source %s is valid: %d spells\n", source, stats.Total)

	for _, facet := range slices.Sorted(maps.Keys(stats.Facets)) {
		counts := stats.Facets[facet]
		if len(counts) == 0 {
			continue
		}
		fmt.Printf("\n%s:\n", facet)
		for _, value := range slices.Sorted(maps.Keys(counts)) {
			fmt.Printf("  %-20s %d\n", value, counts[value])
		}
	}
}
