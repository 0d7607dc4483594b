package config

import (
	"fmt"

	"github.com/orcdkestrator/cdklocal/errors"
)

// Validate checks semantic rules the schema cannot express.
func (c *Config) Validate() error {
	switch c.DeploymentStrategy {
	case StrategyAuto, StrategySequential, StrategyParallel:
	default:
		return errors.ConfigValidation("deploymentStrategy",
			fmt.Sprintf("unknown strategy '%s'", c.DeploymentStrategy))
	}

	seen := make(map[string]int, len(c.Plugins))
	for i, p := range c.Plugins {
		field := fmt.Sprintf("plugins[%d].name", i)
		if p.Name == "" {
			return errors.ConfigValidation(field, "must not be empty")
		}
		if prev, dup := seen[p.Name]; dup {
			return errors.ConfigValidation(field,
				fmt.Sprintf("duplicate plugin '%s' (also at plugins[%d])", p.Name, prev)).
				WithDetail("plugin", p.Name)
		}
		seen[p.Name] = i
	}

	for name := range c.Environments {
		if name == "" {
			return errors.ConfigValidation("environments", "environment name must not be empty")
		}
	}

	return nil
}
