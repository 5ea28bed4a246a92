// Package main is the entry point for the spellbook gRPC server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/cmd/server/client"
	"github.com/KirkDiggler/spellbook-api/internal/config"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "spellbook",
	Short: "Spellbook catalog gRPC server",
	Long: `Spellbook serves a D&D 5e spell catalog over gRPC: point lookups by name,
full listings and faceted queries by class, level, school, components and more.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureLogging(config.LogLevel(logLevel))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", string(config.LogLevelInfo),
		"Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func configureLogging(level config.LogLevel) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}
