package cli

import (
	"os"

	"github.com/orcdkestrator/cdklocal/config"
	"github.com/orcdkestrator/cdklocal/errors"
	"github.com/orcdkestrator/cdklocal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandOptions holds common options for commands
type CommandOptions struct {
	ConfigFile  string
	Environment string
	Verbose     bool
	JSONOutput  bool
}

// NewStandardCommand creates a new command with the standard persistent flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to the orchestrator config file")

	SetStyledHelp(cmd)

	return cmd
}

// AddEnvironmentFlag registers --env, defaulting to CDK_ENVIRONMENT.
func AddEnvironmentFlag(flags *pflag.FlagSet) {
	flags.StringP("env", "e", config.ActiveEnvironment(),
		"Active environment (defaults to $"+config.EnvironmentVariable+")")
}

// GetLogger returns the component logger adjusted for --verbose and --json.
// The adjustments apply to a copy; the cached component logger is unchanged.
func GetLogger(cmd *cobra.Command, component string) *logrus.Entry {
	base := logging.NewLogger(component)

	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if !verbose && !jsonOutput {
		return base
	}

	logger := logrus.New()
	logger.SetLevel(base.Logger.GetLevel())
	logger.SetFormatter(base.Logger.Formatter)
	logger.SetOutput(base.Logger.Out)
	logger.SetReportCaller(base.Logger.ReportCaller)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetOutput(logging.GetGlobalOutput())
	}
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger.WithFields(base.Data)
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	environment, _ := cmd.Flags().GetString("env")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile:  configFile,
		Environment: environment,
		Verbose:     verbose,
		JSONOutput:  jsonOutput,
	}
}

// LoadConfig loads the file given by --config, or discovers one from the
// working directory.
func LoadConfig(opts CommandOptions, logger *logrus.Entry) (*config.Config, error) {
	if opts.ConfigFile != "" {
		logger.WithField("path", opts.ConfigFile).Debug("Loading configuration from flag")
		return config.Load(opts.ConfigFile)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return config.LoadFromWithLogger(cwd, logger.Logger)
}
