package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindleio/bindle/cmd/bindle/commands"
	"github.com/bindleio/bindle/internal/adapters/cache"
	"github.com/bindleio/bindle/internal/adapters/logger"
	"github.com/bindleio/bindle/internal/adapters/minify"
	"github.com/bindleio/bindle/internal/app"
	"github.com/bindleio/bindle/internal/build"
)

func testComponents() *app.Components {
	return &app.Components{
		Logger:     logger.New(),
		Cache:      cache.NewMemory(),
		Compressor: minify.New(minify.Options{}),
	}
}

func writeBundleFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(testComponents())

	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "bindle version "+build.Version)
}

func TestCommands_Resolve(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, "vendor.bundle.yaml", `
bundle: vendor
assets:
  - name: jquery
    version: 3.7.1
    type: js
    locations:
      cdn: //cdn.example.com/jquery.js
`)

	cli := commands.New(testComponents())

	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"resolve", "vendor", "--bundles-dir", dir})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "jquery-3.7.1-js")
	assert.Contains(t, out.String(), "cdn=//cdn.example.com/jquery.js")
}

func TestCommands_ResolveFiltersByType(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, "mixed.bundle.yaml", `
bundle: mixed
assets:
  - name: app
    version: 1.0.0
    type: js
    locations:
      cdn: //cdn/app.js
  - name: theme
    version: 1.0.0
    type: css
    locations:
      cdn: //cdn/theme.css
`)

	cli := commands.New(testComponents())

	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"resolve", "mixed", "--bundles-dir", dir, "--type", "css"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "theme")
	assert.NotContains(t, out.String(), "app.js")
}

func TestCommands_Bundles(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, "app.bundle.yaml", `
bundle: app
parent: vendor
assets:
  - name: main
    version: 1.0.0
    type: js
    locations:
      cdn: //cdn/main.js
`)

	cli := commands.New(testComponents())

	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"bundles", "--bundles-dir", dir})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "app (root -> vendor -> app)")
	assert.Contains(t, out.String(), "main-1.0.0-js")
}

func TestCommands_UnknownCacheBackendFails(t *testing.T) {
	cli := commands.New(testComponents())

	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"resolve", "--bundles-dir", t.TempDir(), "--cache", "nosuchbackend"})

	require.Error(t, cli.Execute(context.Background()))
}
