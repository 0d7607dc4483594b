package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Deployment strategies understood by the orchestrator.
const (
	StrategyAuto       = "auto"
	StrategySequential = "sequential"
	StrategyParallel   = "parallel"
)

const (
	// DefaultCDKRoot is the directory holding the CDK app when cdkRoot is unset.
	DefaultCDKRoot = "cdk"

	// EnvironmentVariable names the variable carrying the active environment.
	EnvironmentVariable = "CDK_ENVIRONMENT"
)

// Environment describes a single deployment target.
type Environment struct {
	DisplayName string `yaml:"displayName,omitempty" json:"displayName,omitempty" jsonschema:"description=Human-readable name of the environment"`
	IsLocal     bool   `yaml:"isLocal,omitempty" json:"isLocal,omitempty" jsonschema:"description=Whether the environment targets a local cloud emulator"`
}

// PluginConfig is the per-plugin entry from the plugins list.
type PluginConfig struct {
	Name    string                 `yaml:"name" json:"name" jsonschema:"required,minLength=1,description=Plugin name"`
	Enabled bool                   `yaml:"enabled,omitempty" json:"enabled,omitempty" jsonschema:"description=Whether the plugin is enabled"`
	Config  map[string]interface{} `yaml:"config,omitempty" json:"config,omitempty" jsonschema:"description=Plugin specific options"`
}

// Config is the orchestrator configuration file.
type Config struct {
	CDKRoot            string                 `yaml:"cdkRoot,omitempty" json:"cdkRoot,omitempty" jsonschema:"description=Directory containing the CDK app"`
	DeploymentStrategy string                 `yaml:"deploymentStrategy,omitempty" json:"deploymentStrategy,omitempty" jsonschema:"enum=auto,enum=sequential,enum=parallel,description=How stacks are deployed"`
	Environments       map[string]Environment `yaml:"environments,omitempty" json:"environments,omitempty" jsonschema:"description=Deployment environments keyed by name"`
	Plugins            []PluginConfig         `yaml:"plugins,omitempty" json:"plugins,omitempty" jsonschema:"description=Plugins and their settings"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:"-" json:"-" jsonschema:"-"`
}

// knownKeys are the top-level keys decoded into Config fields. Everything
// else lands in Extensions.
var knownKeys = map[string]bool{
	"cdkRoot":            true,
	"deploymentStrategy": true,
	"environments":       true,
	"plugins":            true,
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.CDKRoot == "" {
		c.CDKRoot = DefaultCDKRoot
	}
	if c.DeploymentStrategy == "" {
		c.DeploymentStrategy = StrategyAuto
	}
	if c.Environments == nil {
		c.Environments = make(map[string]Environment)
	}
}

// Environment returns the descriptor for the named environment.
func (c *Config) Environment(name string) (Environment, bool) {
	if c == nil || name == "" {
		return Environment{}, false
	}
	env, ok := c.Environments[name]
	return env, ok
}

// IsLocal reports whether the named environment exists and is marked local.
// Unknown and empty names are not local.
func (c *Config) IsLocal(name string) bool {
	env, ok := c.Environment(name)
	return ok && env.IsLocal
}

// Plugin returns the first plugin entry matching any of the given names.
func (c *Config) Plugin(names ...string) (PluginConfig, bool) {
	if c == nil {
		return PluginConfig{}, false
	}
	for _, p := range c.Plugins {
		for _, name := range names {
			if p.Name == name {
				return p, true
			}
		}
	}
	return PluginConfig{}, false
}

// Decode decodes the plugin's free-form config section into target, which
// must be a pointer. Fields absent from the section keep their values.
func (p PluginConfig) Decode(target interface{}) error {
	if len(p.Config) == 0 {
		return nil
	}
	if err := decodeInto(p.Config, target); err != nil {
		return fmt.Errorf("failed to decode config for plugin '%s': %w", p.Name, err)
	}
	return nil
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	if err := decodeInto(extensionConfig, target); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// decodeInto uses mapstructure to decode generic maps into strongly-typed
// structs, keyed by `yaml` tags for consistency with the file format.
func decodeInto(input, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	return decoder.Decode(input)
}
