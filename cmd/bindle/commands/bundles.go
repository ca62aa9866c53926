package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newBundlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bundles",
		Short: "Print the ingested bundle graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp(cmd)
			if err != nil {
				return err
			}

			storage, err := a.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, scope := range storage.ScopeNames() {
				chain := storage.Chain(scope)
				fmt.Fprintf(out, "%s (%s)\n", scope, strings.Join(chain, " -> "))
				for _, asset := range storage.AssetsIn(scope) {
					fmt.Fprintf(out, "  %s\t%s\n", asset, formatLocations(asset))
				}
			}
			return nil
		},
	}
}
