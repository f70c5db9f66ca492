package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// competitorsCmd looks up competitor listings
var competitorsCmd = &cobra.Command{
	Use:   "competitors [product name]",
	Short: "Find competitor listings for a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		container, err := newContainer(ctx)
		if err != nil {
			return err
		}
		defer container.Close()

		result, err := container.Competitors.FindCompetitors(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to find competitors: %w", err)
		}

		return printJSON(cmd.OutOrStdout(), result)
	},
}
