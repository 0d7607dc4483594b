// Package cdklocal implements the orchestrator plugin that routes CDK
// commands through cdklocal, the LocalStack wrapper for the AWS CDK CLI,
// whenever the active environment is local and the wrapper is installed.
//
// Example plugin entry:
//
//	plugins:
//	  - name: cdklocal
//	    enabled: true
package cdklocal

import (
	"context"
	"sync"

	"github.com/orcdkestrator/cdklocal/command"
	"github.com/orcdkestrator/cdklocal/config"
	"github.com/orcdkestrator/cdklocal/errors"
	"github.com/orcdkestrator/cdklocal/events"
	"github.com/orcdkestrator/cdklocal/logging"
	"github.com/orcdkestrator/cdklocal/plugin"
	"github.com/orcdkestrator/cdklocal/version"
	"github.com/sirupsen/logrus"
)

const (
	// PluginName is the name the plugin registers under.
	PluginName = "@orcdkestrator/cdklocal"
	// ShortName is the plugin's entry name in configuration files.
	ShortName = "cdklocal"

	// LocalCommand is returned when the wrapper is installed.
	LocalCommand = "cdklocal"
	// StandardCommand is returned otherwise.
	StandardCommand = "cdk"
)

// Status lines written after each probe.
const (
	FoundMessage    = "[cdklocal] CDK commands will use cdklocal"
	NotFoundMessage = "[cdklocal] aws-cdk-local not found. CDK commands will use standard cdk CLI.\n" +
		"  To enable LocalStack integration, install aws-cdk-local: npm install -g aws-cdk-local\n" +
		"  For more information, visit: https://github.com/localstack/aws-cdk-local"
)

// State is a snapshot of the plugin's runtime flags.
type State struct {
	Environment  string `json:"environment"`
	Enabled      bool   `json:"enabled"`
	HasLocalTool bool   `json:"hasLocalTool"`
	Command      string `json:"command"`
}

var (
	_ plugin.Plugin          = (*Plugin)(nil)
	_ plugin.CommandProvider = (*Plugin)(nil)
)

// Plugin selects between cdklocal and cdk. It is safe for concurrent use.
type Plugin struct {
	bus     events.Subscriber
	prober  command.Prober
	console *logging.Console
	logger  *logrus.Entry

	mu           sync.RWMutex
	options      Options
	environment  string
	enabled      bool
	hasLocalTool bool
	subscribed   bool
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithProber overrides the prober chosen from the plugin options.
func WithProber(p command.Prober) Option {
	return func(pl *Plugin) {
		pl.prober = p
	}
}

// WithConsole sets where status lines are written.
func WithConsole(c *logging.Console) Option {
	return func(pl *Plugin) {
		pl.console = c
	}
}

// WithLogger sets the structured diagnostics logger.
func WithLogger(l *logrus.Entry) Option {
	return func(pl *Plugin) {
		pl.logger = l
	}
}

// New creates a plugin that registers its handler on bus during Initialize.
func New(bus events.Subscriber, opts ...Option) *Plugin {
	p := &Plugin{
		bus:     bus,
		options: DefaultOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.console == nil {
		p.console = logging.NewConsole()
	}
	if p.logger == nil {
		p.logger = logging.NewLogger(ShortName)
	}
	return p
}

// Name implements plugin.Plugin.
func (p *Plugin) Name() string { return PluginName }

// Version implements plugin.Plugin.
func (p *Plugin) Version() string { return version.Version }

// Initialize decides whether the plugin is active: the environment must be
// marked local and the plugin entry enabled. It then (re)subscribes the probe
// handler once. Calling it again replaces the previous decision without adding
// a second handler.
func (p *Plugin) Initialize(ctx context.Context, pluginCfg config.PluginConfig, cfg *config.Config, environment string) error {
	opts := DefaultOptions()
	if err := pluginCfg.Decode(&opts); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid cdklocal plugin options").
			WithDetail("plugin", pluginCfg.Name)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	enabled := cfg.IsLocal(environment) && pluginCfg.Enabled

	p.mu.Lock()
	p.options = opts
	p.environment = environment
	p.enabled = enabled
	subscribe := p.bus != nil && !p.subscribed
	if subscribe {
		p.subscribed = true
	}
	p.mu.Unlock()

	// The handler reads the current decision on every event, so an existing
	// subscription is reused. Other subscribers on the bus are left alone.
	if subscribe {
		p.bus.Subscribe(events.BeforePatternDetection, p.handleBeforePatternDetection)
	}

	p.logger.WithFields(logrus.Fields{
		"environment": environment,
		"enabled":     enabled,
		"tool":        opts.Tool,
		"probe":       opts.Probe,
	}).Debug("Plugin initialized")

	return nil
}

// handleBeforePatternDetection probes for the wrapper when enabled. Probe
// failures only flip the flag; the handler never returns an error.
func (p *Plugin) handleBeforePatternDetection(ctx context.Context) error {
	p.mu.RLock()
	enabled := p.enabled
	opts := p.options
	prober := p.prober
	p.mu.RUnlock()

	if !enabled {
		return nil
	}

	if prober == nil {
		var err error
		prober, err = command.NewProber(opts.Probe)
		if err != nil {
			// Options are validated in Initialize.
			prober = &command.PathProber{}
		}
	}

	result := prober.Probe(ctx, opts.Tool)

	p.mu.Lock()
	p.hasLocalTool = result.Found
	p.mu.Unlock()

	fields := logrus.Fields{"tool": opts.Tool, "found": result.Found}
	if result.Path != "" {
		fields["path"] = result.Path
	}
	if result.Err != nil {
		fields["reason"] = result.Err.Error()
	}
	p.logger.WithFields(fields).Debug("Probe finished")

	p.logStatus(result.Found)
	return nil
}

func (p *Plugin) logStatus(found bool) {
	if found {
		p.console.Info(FoundMessage)
		return
	}
	p.console.Warn(NotFoundMessage)
}

// Command returns "cdklocal" if the last probe found the wrapper and "cdk"
// otherwise. It never probes.
func (p *Plugin) Command() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return commandFor(p.hasLocalTool)
}

func commandFor(hasLocalTool bool) string {
	if hasLocalTool {
		return LocalCommand
	}
	return StandardCommand
}

// Enabled reports the decision made by the last Initialize.
func (p *Plugin) Enabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.enabled
}

// HasLocalTool reports the last probe result.
func (p *Plugin) HasLocalTool() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hasLocalTool
}

// State returns a snapshot of the runtime flags.
func (p *Plugin) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return State{
		Environment:  p.environment,
		Enabled:      p.enabled,
		HasLocalTool: p.hasLocalTool,
		Command:      commandFor(p.hasLocalTool),
	}
}

// Cleanup removes the event handler and forgets the probe result. The
// enablement decision is kept.
func (p *Plugin) Cleanup(ctx context.Context) error {
	p.mu.Lock()
	subscribed := p.subscribed
	p.subscribed = false
	p.hasLocalTool = false
	p.mu.Unlock()

	if subscribed && p.bus != nil {
		p.bus.Unsubscribe(events.BeforePatternDetection)
	}

	p.logger.Debug("Plugin cleaned up")
	return nil
}
