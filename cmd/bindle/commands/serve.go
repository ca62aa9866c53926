package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/bindleio/bindle/internal/adapters/web"
	"github.com/bindleio/bindle/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve processed assets over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			a, err := c.newApp(cmd)
			if err != nil {
				return err
			}
			if err := a.EnsureReady(cmd.Context()); err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle(a.MountPrefix(), a.Handler())
			mux.HandleFunc("/resolve", func(w http.ResponseWriter, r *http.Request) {
				serveResolve(a, w, r)
			})

			server := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() { errCh <- server.ListenAndServe() }()

			c.components.Logger.Infof("serving assets on %s under %s", addr, a.MountPrefix())

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			case err := <-errCh:
				return err
			}
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	return cmd
}

type resolvedAsset struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Type      string            `json:"type"`
	Position  string            `json:"position"`
	Locations map[string]string `json:"locations"`
}

// serveResolve resolves the bundles named in the query string against the
// incoming request and returns the processed assets as JSON.
func serveResolve(a *app.App, w http.ResponseWriter, r *http.Request) {
	req := web.NewContext(r)
	req.AddBundles(r.URL.Query()["bundle"]...)
	req.ExcludeAssets(r.URL.Query()["exclude"]...)

	assets, err := a.Resolve(r.Context(), req, req.Bundles(), req.ExcludedAssets())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]resolvedAsset, 0, len(assets))
	for _, asset := range assets {
		out = append(out, resolvedAsset{
			Name:      asset.Name,
			Version:   asset.Version,
			Type:      string(asset.Type),
			Position:  string(asset.EffectivePosition()),
			Locations: asset.Locations,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
