package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/orcdkestrator/cdklocal/cdklocal"
	"github.com/orcdkestrator/cdklocal/cli"
	"github.com/orcdkestrator/cdklocal/errors"
	"github.com/orcdkestrator/cdklocal/events"
	"github.com/orcdkestrator/cdklocal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewCheckCmd returns the check subcommand.
func NewCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe for cdklocal and report the CDK command to use",
		Long: `Loads the orchestrator configuration, initializes the plugin for the
active environment and fires the pre-pattern-detection event. The plugin's
status line is printed, followed by the chosen command.`,
		Example: `# Check the environment named by CDK_ENVIRONMENT
cdklocal check

# Check a specific environment and print the plugin state as JSON
cdklocal check --env local --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			// Keep stdout parseable in JSON mode.
			out := cmd.OutOrStdout()
			if opts.JSONOutput {
				out = cmd.ErrOrStderr()
			}
			console := logging.NewConsole().WithWriters(out, cmd.ErrOrStderr())

			state, err := runPlugin(cmd.Context(), cmd, console, strict)
			if err != nil {
				return cli.NewErrorHandler(opts.Verbose, cmd.ErrOrStderr()).Handle(err)
			}

			if opts.JSONOutput {
				data, err := json.MarshalIndent(state, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), state.Command)
			return nil
		},
	}

	cli.AddEnvironmentFlag(cmd.Flags())
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if the environment is not defined in the configuration")

	return cmd
}

// NewCommandCmd returns the command subcommand, which prints only the command name.
func NewCommandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "command",
		Short: "Print only the CDK command to use",
		Example: `# Deploy through whichever CLI applies
$(cdklocal command) deploy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)

			state, err := runPlugin(cmd.Context(), cmd, logging.DiscardConsole(), false)
			if err != nil {
				return cli.NewErrorHandler(opts.Verbose, cmd.ErrOrStderr()).Handle(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), state.Command)
			return nil
		},
	}

	cli.AddEnvironmentFlag(cmd.Flags())

	return cmd
}

// runPlugin drives one plugin lifecycle the way the orchestrator does:
// initialize, fire the pre-pattern-detection event, read the result, clean up.
func runPlugin(ctx context.Context, cmd *cobra.Command, console *logging.Console, strict bool) (cdklocal.State, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := cli.GetOptions(cmd)
	logger := cli.GetLogger(cmd, cdklocal.ShortName)

	cfg, err := cli.LoadConfig(opts, logger)
	if err != nil {
		return cdklocal.State{}, err
	}

	if _, ok := cfg.Environment(opts.Environment); !ok {
		if strict {
			return cdklocal.State{}, errors.EnvironmentNotFound(opts.Environment).
				WithDetail("known", strings.Join(cfg.EnvironmentNames(), ", "))
		}
		logger.WithField("environment", opts.Environment).Debug("Environment not defined; plugin stays disabled")
	}

	pluginCfg, ok := cfg.Plugin(cdklocal.ShortName, cdklocal.PluginName)
	if !ok {
		logger.Debug("No cdklocal plugin entry; plugin stays disabled")
	}

	bus := events.NewBus()
	p := cdklocal.New(bus, cdklocal.WithConsole(console), cdklocal.WithLogger(logger))

	if err := p.Initialize(ctx, pluginCfg, cfg, opts.Environment); err != nil {
		return cdklocal.State{}, err
	}
	if err := bus.Emit(ctx, events.BeforePatternDetection); err != nil {
		return cdklocal.State{}, errors.Wrap(err, errors.ErrCodeInternal, "event handlers failed")
	}

	state := p.State()
	logger.WithFields(logrus.Fields{
		"environment": state.Environment,
		"enabled":     state.Enabled,
		"command":     state.Command,
	}).Debug("Plugin run finished")

	if err := p.Cleanup(ctx); err != nil {
		return state, err
	}
	return state, nil
}
