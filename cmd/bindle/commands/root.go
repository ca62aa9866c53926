// Package commands implements the CLI commands for the bindle asset bundler.
package commands

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bindleio/bindle/internal/app"
	"github.com/bindleio/bindle/internal/build"
	"github.com/bindleio/bindle/internal/engine/pipeline"
)

// CLI represents the command line interface for bindle.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bindle",
		Short:         "A request-time asset bundler for web applications",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("bundles-dir", ".", "Directory scanned for *.bundle.yaml declaration files")
	rootCmd.PersistentFlags().String("assets-dir", "", "Directory backing classpath asset locations")
	rootCmd.PersistentFlags().String("webroot-dir", "", "Directory backing webapp asset locations")
	rootCmd.PersistentFlags().String("templates-dir", "", "Directory backing templated asset locations")
	rootCmd.PersistentFlags().StringSlice("exclude-bundle", nil, "Bundle names excluded at ingestion")
	rootCmd.PersistentFlags().StringSlice("exclude-asset", nil, "Asset names excluded at ingestion")
	rootCmd.PersistentFlags().StringSlice("preferred-kinds", nil, "Ordered location kind preference, e.g. cdn,webapp")
	rootCmd.PersistentFlags().String("mount", pipeline.DefaultMountPrefix, "URL prefix of the asset delivery endpoint")
	rootCmd.PersistentFlags().String("cache", "", "Cache backend (memory or lru)")
	rootCmd.PersistentFlags().Bool("compress", false, "Enable the compression stage")
	rootCmd.PersistentFlags().Bool("minify", false, "Minify sources during compression")
	rootCmd.PersistentFlags().Bool("mangle", false, "Shorten identifiers during minification")
	rootCmd.PersistentFlags().Bool("aggregate", false, "Enable the aggregation stage")
	rootCmd.PersistentFlags().Bool("dev", false, "Re-ingest declarations and bypass caches on every request")

	c2 := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.AddCommand(c2.newResolveCmd())
	rootCmd.AddCommand(c2.newBundlesCmd())
	rootCmd.AddCommand(c2.newServeCmd())
	rootCmd.AddCommand(c2.newVersionCmd())

	return c2
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// newApp assembles an App from the persistent flags of cmd.
func (c *CLI) newApp(cmd *cobra.Command) (*app.App, error) {
	flags := cmd.Flags()

	bundlesDir, _ := flags.GetString("bundles-dir")
	assetsDir, _ := flags.GetString("assets-dir")
	webrootDir, _ := flags.GetString("webroot-dir")
	templatesDir, _ := flags.GetString("templates-dir")
	excludeBundles, _ := flags.GetStringSlice("exclude-bundle")
	excludeAssets, _ := flags.GetStringSlice("exclude-asset")
	preferred, _ := flags.GetStringSlice("preferred-kinds")
	mount, _ := flags.GetString("mount")
	cacheBackend, _ := flags.GetString("cache")
	compress, _ := flags.GetBool("compress")
	minify, _ := flags.GetBool("minify")
	mangle, _ := flags.GetBool("mangle")
	aggregate, _ := flags.GetBool("aggregate")
	dev, _ := flags.GetBool("dev")

	opts := app.Options{
		DeclarationsFS: os.DirFS(bundlesDir),
		PreferredKinds: preferred,
		MountPrefix:    normalizeMount(mount),
		ExcludedScopes: excludeBundles,
		ExcludedAssets: excludeAssets,
		Compression: pipeline.CompressionOptions{
			Enabled: compress,
			Minify:  minify,
			Mangle:  mangle,
		},
		Aggregation:  pipeline.AggregationOptions{Enabled: aggregate},
		CacheBackend: cacheBackend,
		DevMode:      dev,
	}
	if assetsDir != "" {
		opts.AssetsFS = os.DirFS(assetsDir)
	}
	if webrootDir != "" {
		opts.WebrootFS = os.DirFS(webrootDir)
	}
	if templatesDir != "" {
		opts.TemplatesFS = os.DirFS(templatesDir)
	}

	return app.New(opts, c.components)
}

func normalizeMount(mount string) string {
	if mount == "" {
		return pipeline.DefaultMountPrefix
	}
	if !strings.HasPrefix(mount, "/") {
		mount = "/" + mount
	}
	if !strings.HasSuffix(mount, "/") {
		mount += "/"
	}
	return mount
}
