package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/handlers/spellbook/v1alpha1"
)

var querySpellsCmd = &cobra.Command{
	Use:   "query-spells",
	Short: "Search spells by facet",
	Long: `Search the catalog. Values within one flag are alternatives; different flags
must all match. Boolean flags only apply when given, e.g. --ritual=false.

Examples:
  spellbook client query-spells --class wizard --level 0
  spellbook client query-spells --damage fire --concentration
  spellbook client query-spells --name "fire ball"`,
	RunE: runQuerySpells,
}

func init() {
	addQueryFlags(querySpellsCmd)
}

func addQueryFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSlice("class", nil, "Class (repeatable)")
	flags.IntSlice("level", nil, "Spell level 0-9 (repeatable)")
	flags.StringSlice("school", nil, "School of magic (repeatable)")
	flags.StringSlice("attack", nil, "Attack type: melee or ranged (repeatable)")
	flags.StringSlice("save", nil, "Saving throw ability (repeatable)")
	flags.StringSlice("casting-time", nil, "Casting time (repeatable)")
	flags.StringSlice("damage", nil, "Damage type (repeatable)")
	flags.StringSlice("condition", nil, "Condition imposed (repeatable)")
	flags.StringSlice("duration", nil, "Duration (repeatable)")
	flags.Bool("concentration", false, "Requires concentration")
	flags.Bool("ritual", false, "Castable as a ritual")
	flags.Bool("material", false, "Has a material component entry")
	flags.Bool("somatic", false, "Has a somatic component")
	flags.Bool("verbal", false, "Has a verbal component")
	flags.String("name", "", "Whitespace-separated name fragments, matched in order")
}

// buildQueryRequest turns the command's flags into a request. Flags that
// were not given place no constraint.
func buildQueryRequest(cmd *cobra.Command) (*v1alpha1.QuerySpellsRequest, error) {
	flags := cmd.Flags()
	req := &v1alpha1.QuerySpellsRequest{}

	stringSlices := []struct {
		flag string
		dst  *[]string
	}{
		{"class", &req.Classes},
		{"school", &req.Schools},
		{"attack", &req.AttackTypes},
		{"save", &req.SaveTypes},
		{"casting-time", &req.CastingTimes},
		{"damage", &req.DamageTypes},
		{"condition", &req.Conditions},
		{"duration", &req.Durations},
	}
	for _, s := range stringSlices {
		values, err := flags.GetStringSlice(s.flag)
		if err != nil {
			return nil, err
		}
		*s.dst = values
	}

	levels, err := flags.GetIntSlice("level")
	if err != nil {
		return nil, err
	}
	for _, level := range levels {
		if level < 0 || level > 9 {
			return nil, fmt.Errorf("spell level must be between 0 and 9, got %d", level)
		}
	}
	req.Levels = levels

	if req.Name, err = flags.GetString("name"); err != nil {
		return nil, err
	}

	optionalBool := func(flag string) (*bool, error) {
		if !flags.Changed(flag) {
			return nil, nil
		}
		v, err := flags.GetBool(flag)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	if req.Concentration, err = optionalBool("concentration"); err != nil {
		return nil, err
	}
	if req.Ritual, err = optionalBool("ritual"); err != nil {
		return nil, err
	}

	components := &v1alpha1.ComponentsRequest{}
	if components.Material, err = optionalBool("material"); err != nil {
		return nil, err
	}
	if components.Somatic, err = optionalBool("somatic"); err != nil {
		return nil, err
	}
	if components.Verbal, err = optionalBool("verbal"); err != nil {
		return nil, err
	}
	if components.Material != nil || components.Somatic != nil || components.Verbal != nil {
		req.Components = components
	}

	return req, nil
}

func runQuerySpells(cmd *cobra.Command, _ []string) error {
	req, err := buildQueryRequest(cmd)
	if err != nil {
		return err
	}

	client, cleanup, err := createSpellClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Querying spells from %s...", serverAddr)

	resp, err := client.QuerySpells(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to query spells: %w", err)
	}

	printSpells(resp)
	return nil
}
