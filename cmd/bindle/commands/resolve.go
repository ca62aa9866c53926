package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bindleio/bindle/internal/adapters/web"
	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/engine/resolver"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [bundles...]",
		Short: "Resolve and process the assets of the given bundles",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, _ := cmd.Flags().GetString("url")
			baseURL, _ := cmd.Flags().GetString("base-url")
			position, _ := cmd.Flags().GetString("position")
			assetType, _ := cmd.Flags().GetString("type")

			a, err := c.newApp(cmd)
			if err != nil {
				return err
			}

			req := web.NewStaticContext(url, baseURL, strings.HasPrefix(baseURL, "https://"))
			assets, err := a.Resolve(cmd.Context(), req, args, nil)
			if err != nil {
				return err
			}

			if position != "" {
				assets = resolver.ByPosition(assets, domain.DomPosition(position))
			}
			if assetType != "" {
				assets = resolver.ByType(assets, domain.AssetType(assetType))
			}

			for _, asset := range assets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", asset, asset.EffectivePosition(), formatLocations(asset))
			}
			return nil
		},
	}
	cmd.Flags().String("url", "http://localhost/", "Request URL resolved against")
	cmd.Flags().String("base-url", "http://localhost", "Base URL rehosted locations are served from")
	cmd.Flags().String("position", "", "Only print assets for this position (head or body)")
	cmd.Flags().String("type", "", "Only print assets of this type (js or css)")
	return cmd
}

func formatLocations(asset domain.Asset) string {
	kinds := asset.LocationKinds()
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, kind+"="+asset.Locations[kind])
	}
	return strings.Join(parts, " ")
}
