package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the hotel CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Hotel API - customer and room management",
		Long: `Hotel API serves the customer and room REST endpoints and the
bearer-token login flow, backed by MongoDB.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewCredentialCmd())
	cmd.AddCommand(NewHashPasswordCmd())

	return cmd
}
