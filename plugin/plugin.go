// Package plugin defines the lifecycle contract between the orchestrator and
// its plugins.
package plugin

import (
	"context"

	"github.com/orcdkestrator/cdklocal/config"
)

// Plugin is implemented by every orchestrator plugin.
type Plugin interface {
	// Name is the plugin's package name, e.g. "@orcdkestrator/cdklocal".
	Name() string
	// Version is the plugin's release version.
	Version() string
	// Initialize configures the plugin for the given active environment and
	// registers its event handlers.
	Initialize(ctx context.Context, pluginCfg config.PluginConfig, cfg *config.Config, environment string) error
	// Cleanup removes the plugin's event handlers and resets its runtime state.
	Cleanup(ctx context.Context) error
}

// CommandProvider is implemented by plugins that choose the CDK executable.
type CommandProvider interface {
	// Command returns the executable the orchestrator should invoke.
	Command() string
}
