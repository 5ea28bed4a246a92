package client

import (
	"context"
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/handlers/spellbook/v1alpha1"
)

var skipSnapshot bool

var reloadCatalogCmd = &cobra.Command{
	Use:   "reload-catalog",
	Short: "Ask the server to rebuild its catalog",
	RunE:  runReloadCatalog,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "catalog-stats",
	Short: "Show per-facet counts for the server's catalog",
	RunE:  runCatalogStats,
}

func init() {
	reloadCatalogCmd.Flags().BoolVar(&skipSnapshot, "skip-snapshot", false, "Read the source even if a snapshot is cached")
}

func runReloadCatalog(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting catalog reload from %s...", serverAddr)

	resp, err := client.ReloadCatalog(ctx, &v1alpha1.ReloadCatalogRequest{SkipSnapshot: skipSnapshot})
	if err != nil {
		return fmt.Errorf("failed to reload catalog: %w", err)
	}

	fmt.Printf("Catalog %s loaded at %s with %d spells (snapshot: %t)\n",
		resp.Version, resp.LoadedAt.Format("2006-01-02 15:04:05"), resp.Total, resp.FromSnapshot)
	return nil
}

func runCatalogStats(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CatalogStats(ctx, &v1alpha1.CatalogStatsRequest{})
	if err != nil {
		return fmt.Errorf("failed to get catalog stats: %w", err)
	}

	fmt.Printf("Catalog %s: %d spells\n", resp.Version, resp.Total)
	for _, facet := range slices.Sorted(maps.Keys(resp.Facets)) {
		fmt.Printf("\n%s:\n", facet)
		counts := resp.Facets[facet]
		for _, value := range slices.Sorted(maps.Keys(counts)) {
			fmt.Printf("  %-20s %d\n", value, counts[value])
		}
	}
	return nil
}
