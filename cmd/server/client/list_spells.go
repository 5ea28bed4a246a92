package client

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/handlers/spellbook/v1alpha1"
)

var listSpellsCmd = &cobra.Command{
	Use:   "list-spells",
	Short: "List every spell in the catalog",
	RunE:  runListSpells,
}

func runListSpells(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting all spells from %s...", serverAddr)

	resp, err := client.ListSpells(ctx, &v1alpha1.ListSpellsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list spells: %w", err)
	}

	printSpells(resp)
	return nil
}

func printSpells(resp *v1alpha1.SpellsResponse) {
	fmt.Printf("Found %d spells (catalog %s):\n\n", resp.Total, resp.Version)
	for _, spell := range resp.Spells {
		printSpell(os.Stdout, spell)
	}
}
