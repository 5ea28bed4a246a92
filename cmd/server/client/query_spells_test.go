package client

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, args ...string) (*cobra.Command, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "query-spells"}
	addQueryFlags(cmd)
	return cmd, cmd.ParseFlags(args)
}

func TestBuildQueryRequest_NoFlags(t *testing.T) {
	cmd, err := parseQuery(t)
	require.NoError(t, err)

	req, err := buildQueryRequest(cmd)
	require.NoError(t, err)
	assert.Empty(t, req.Classes)
	assert.Empty(t, req.Levels)
	assert.Nil(t, req.Concentration)
	assert.Nil(t, req.Ritual)
	assert.Nil(t, req.Components)
	assert.Empty(t, req.Name)
}

func TestBuildQueryRequest_AllFacets(t *testing.T) {
	cmd, err := parseQuery(t,
		"--class", "wizard", "--class", "sorcerer",
		"--level", "0,3",
		"--school", "evocation",
		"--attack", "ranged",
		"--save", "dexterity",
		"--casting-time", "action",
		"--damage", "fire",
		"--condition", "blinded",
		"--duration", "instantaneous",
		"--concentration",
		"--ritual=false",
		"--material=true",
		"--name", "fire ball",
	)
	require.NoError(t, err)

	req, err := buildQueryRequest(cmd)
	require.NoError(t, err)

	assert.Equal(t, []string{"wizard", "sorcerer"}, req.Classes)
	assert.Equal(t, []int{0, 3}, req.Levels)
	assert.Equal(t, []string{"evocation"}, req.Schools)
	assert.Equal(t, []string{"ranged"}, req.AttackTypes)
	assert.Equal(t, []string{"dexterity"}, req.SaveTypes)
	assert.Equal(t, []string{"action"}, req.CastingTimes)
	assert.Equal(t, []string{"fire"}, req.DamageTypes)
	assert.Equal(t, []string{"blinded"}, req.Conditions)
	assert.Equal(t, []string{"instantaneous"}, req.Durations)
	assert.Equal(t, "fire ball", req.Name)

	require.NotNil(t, req.Concentration)
	assert.True(t, *req.Concentration)
	require.NotNil(t, req.Ritual)
	assert.False(t, *req.Ritual)

	require.NotNil(t, req.Components)
	require.NotNil(t, req.Components.Material)
	assert.True(t, *req.Components.Material)
	assert.Nil(t, req.Components.Somatic)
	assert.Nil(t, req.Components.Verbal)
}

func TestBuildQueryRequest_RejectsLevelOutOfRange(t *testing.T) {
	cmd, err := parseQuery(t, "--level", "10")
	require.NoError(t, err)

	_, err = buildQueryRequest(cmd)
	assert.Error(t, err)
}
