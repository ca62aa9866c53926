// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/bindleio/bindle/internal/adapters/cache"
	_ "github.com/bindleio/bindle/internal/adapters/logger"
	_ "github.com/bindleio/bindle/internal/adapters/minify"
	// Register app nodes.
	_ "github.com/bindleio/bindle/internal/app"
)
