package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/orcdkestrator/cdklocal/errors"
	"github.com/orcdkestrator/cdklocal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardCommandFlags(t *testing.T) {
	cmd := NewStandardCommand("cdklocal", "test")

	for _, name := range []string{"verbose", "json", "config"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
}

func TestAddEnvironmentFlagDefault(t *testing.T) {
	t.Setenv("CDK_ENVIRONMENT", "local")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddEnvironmentFlag(flags)

	env, err := flags.GetString("env")
	require.NoError(t, err)
	assert.Equal(t, "local", env)
}

func TestGetOptions(t *testing.T) {
	root := NewStandardCommand("cdklocal", "test")
	var got CommandOptions
	sub := &cobra.Command{
		Use: "check",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = GetOptions(cmd)
			return nil
		},
	}
	AddEnvironmentFlag(sub.Flags())
	root.AddCommand(sub)

	root.SetArgs([]string{"check", "--config", "orcdk.yml", "--env", "local", "--json", "-v"})
	require.NoError(t, root.Execute())

	assert.Equal(t, CommandOptions{
		ConfigFile:  "orcdk.yml",
		Environment: "local",
		Verbose:     true,
		JSONOutput:  true,
	}, got)
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "config not found",
			err:  errors.ConfigNotFound("/tmp/orcdk.yml"),
			want: []string{"Configuration not found", "orcdk.config.json"},
		},
		{
			name: "invalid config",
			err:  errors.ConfigValidation("plugins[0].name", "must not be empty").WithDetail("path", "orcdk.yml"),
			want: []string{"Invalid configuration", "Check the file at orcdk.yml"},
		},
		{
			name: "unknown environment",
			err:  errors.EnvironmentNotFound("staging").WithDetail("known", "local"),
			want: []string{"Environment 'staging' is not defined", "Known environments: local"},
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			returned := NewErrorHandler(false, &out).Handle(tt.err)

			assert.Equal(t, tt.err, returned)
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
			assert.NotContains(t, out.String(), "Error details")
		})
	}
}

func TestErrorHandlerVerbose(t *testing.T) {
	var out bytes.Buffer
	NewErrorHandler(true, &out).Handle(errors.ConfigNotFound("/tmp/orcdk.yml"))

	assert.Contains(t, out.String(), "Error details")
	assert.Contains(t, out.String(), `"code": "CONFIG_NOT_FOUND"`)
}

func TestErrorHandlerNil(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, NewErrorHandler(true, &out).Handle(nil))
	assert.Empty(t, out.String())
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "short", wrapText("short", 20))
	assert.Equal(t, "one two\nthree", wrapText("one two three", 8))
	assert.Equal(t, "a\nb", wrapText("a\nb", 20))
}

func TestFormatFlagName(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.BoolP("verbose", "v", false, "")
	flags.Bool("json", false, "")

	assert.Equal(t, "-v, --verbose", formatFlagName(flags.Lookup("verbose")))
	assert.Equal(t, "    --json", formatFlagName(flags.Lookup("json")))
}

func TestStyledHelp(t *testing.T) {
	root := NewStandardCommand("cdklocal", "Choose the CDK command")
	root.AddCommand(&cobra.Command{Use: "check", Short: "Probe for cdklocal", RunE: func(*cobra.Command, []string) error { return nil }})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	help := out.String()
	assert.Contains(t, help, "Choose the CDK command")
	assert.Contains(t, help, "COMMANDS")
	assert.Contains(t, help, "check")
	assert.Contains(t, help, "--config")
}

func TestGetLoggerLeavesCachedLoggerAlone(t *testing.T) {
	const component = "cli-test"
	cached := logging.NewLogger(component)
	level := cached.Logger.GetLevel()
	formatter := cached.Logger.Formatter

	cmd := NewStandardCommand("cdklocal", "test")
	require.NoError(t, cmd.ParseFlags([]string{"--verbose", "--json"}))

	entry := GetLogger(cmd, component)
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, entry.Logger.Formatter)
	assert.Equal(t, component, entry.Data["component"])

	assert.Same(t, cached, logging.NewLogger(component))
	assert.Equal(t, level, cached.Logger.GetLevel())
	assert.Same(t, formatter, cached.Logger.Formatter)
}

func TestGetLoggerWithoutFlagsReturnsCached(t *testing.T) {
	cmd := NewStandardCommand("cdklocal", "test")
	require.NoError(t, cmd.ParseFlags(nil))

	assert.Same(t, logging.NewLogger("cli-test-plain"), GetLogger(cmd, "cli-test-plain"))
}
