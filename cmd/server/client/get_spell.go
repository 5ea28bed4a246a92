package client

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/handlers/spellbook/v1alpha1"
)

var getSpellCmd = &cobra.Command{
	Use:   "get-spell NAME",
	Short: "Look up a spell by name",
	Long:  `Look up a single spell by its name. Matching ignores case.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGetSpell,
}

func runGetSpell(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting spell %q from %s...", args[0], serverAddr)

	resp, err := client.GetSpell(ctx, &v1alpha1.GetSpellRequest{Name: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get spell: %w", err)
	}

	printSpell(os.Stdout, resp.Spell)
	fmt.Printf("Catalog version: %s\n", resp.Version)
	return nil
}
