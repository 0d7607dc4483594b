package cdklocal

import (
	"github.com/orcdkestrator/cdklocal/command"
	"github.com/orcdkestrator/cdklocal/errors"
)

// Options are read from the plugin entry's config section.
type Options struct {
	// Tool is the executable to look for.
	Tool string `yaml:"tool"`
	// Probe selects how Tool is looked up: "lookpath" or "which".
	Probe string `yaml:"probe"`
}

// DefaultOptions returns the options used when the config section is empty.
func DefaultOptions() Options {
	return Options{
		Tool:  LocalCommand,
		Probe: command.ProbeLookPath,
	}
}

// Validate checks the tool name and probe strategy.
func (o Options) Validate() error {
	if err := command.ValidateToolName(o.Tool); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid cdklocal option 'tool'")
	}
	if _, err := command.NewProber(o.Probe); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid cdklocal option 'probe'")
	}
	return nil
}
