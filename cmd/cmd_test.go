package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orcdkestrator/cdklocal/cdklocal"
	"github.com/orcdkestrator/cdklocal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := Execute(root)
	return stdout.String(), stderr.String(), err
}

func writeLocalConfig(t *testing.T) string {
	t.Helper()
	return testutil.WriteConfig(t, t.TempDir(), "orcdk.yml", testutil.LocalConfigYAML)
}

func TestCheckFound(t *testing.T) {
	bin := testutil.IsolatePath(t)
	testutil.WriteExecutable(t, bin, "cdklocal")
	cfg := writeLocalConfig(t)

	stdout, stderr, err := execute(t, "check", "--config", cfg, "--env", "local")
	require.NoError(t, err)

	assert.Equal(t, cdklocal.FoundMessage+"\ncdklocal\n", stdout)
	assert.Empty(t, stderr)
}

func TestCheckNotFound(t *testing.T) {
	testutil.IsolatePath(t)
	cfg := writeLocalConfig(t)

	stdout, stderr, err := execute(t, "check", "--config", cfg, "--env", "local")
	require.NoError(t, err)

	assert.Equal(t, "cdk\n", stdout)
	assert.Equal(t, cdklocal.NotFoundMessage+"\n", stderr)
}

func TestCheckRemoteEnvironmentIsSilent(t *testing.T) {
	bin := testutil.IsolatePath(t)
	testutil.WriteExecutable(t, bin, "cdklocal")
	cfg := writeLocalConfig(t)

	stdout, stderr, err := execute(t, "check", "--config", cfg, "--env", "production")
	require.NoError(t, err)

	assert.Equal(t, "cdk\n", stdout)
	assert.Empty(t, stderr)
}

func TestCheckEnvironmentFromVariable(t *testing.T) {
	bin := testutil.IsolatePath(t)
	testutil.WriteExecutable(t, bin, "cdklocal")
	cfg := writeLocalConfig(t)
	t.Setenv("CDK_ENVIRONMENT", "local")

	stdout, _, err := execute(t, "check", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cdklocal\n")
}

func TestCheckJSON(t *testing.T) {
	bin := testutil.IsolatePath(t)
	testutil.WriteExecutable(t, bin, "cdklocal")
	cfg := writeLocalConfig(t)

	stdout, stderr, err := execute(t, "check", "--config", cfg, "--env", "local", "--json")
	require.NoError(t, err)

	var state cdklocal.State
	require.NoError(t, json.Unmarshal([]byte(stdout), &state))
	assert.Equal(t, cdklocal.State{
		Environment:  "local",
		Enabled:      true,
		HasLocalTool: true,
		Command:      "cdklocal",
	}, state)
	assert.Equal(t, cdklocal.FoundMessage+"\n", stderr)
}

func TestCheckStrictUnknownEnvironment(t *testing.T) {
	testutil.IsolatePath(t)
	cfg := writeLocalConfig(t)

	_, stderr, err := execute(t, "check", "--config", cfg, "--env", "staging", "--strict")
	require.Error(t, err)

	assert.Contains(t, stderr, "Environment 'staging' is not defined")
	assert.Contains(t, stderr, "Known environments: local, production")
}

func TestCheckMissingConfig(t *testing.T) {
	_, stderr, err := execute(t, "check", "--config", filepath.Join(t.TempDir(), "orcdk.yml"))
	require.Error(t, err)
	assert.Contains(t, stderr, "Configuration not found")
}

func TestCheckMissingPluginEntry(t *testing.T) {
	bin := testutil.IsolatePath(t)
	testutil.WriteExecutable(t, bin, "cdklocal")
	cfg := testutil.WriteConfig(t, t.TempDir(), "orcdk.config.json",
		`{"environments": {"local": {"isLocal": true}}}`)

	stdout, stderr, err := execute(t, "check", "--config", cfg, "--env", "local")
	require.NoError(t, err)

	assert.Equal(t, "cdk\n", stdout)
	assert.Empty(t, stderr)
}

func TestCommandPrintsOnlyTheCommand(t *testing.T) {
	bin := testutil.IsolatePath(t)
	testutil.WriteExecutable(t, bin, "cdklocal")
	cfg := writeLocalConfig(t)

	stdout, stderr, err := execute(t, "command", "--config", cfg, "--env", "local")
	require.NoError(t, err)
	assert.Equal(t, "cdklocal\n", stdout)
	assert.Empty(t, stderr)

	testutil.IsolatePath(t)
	stdout, stderr, err = execute(t, "command", "--config", cfg, "--env", "local")
	require.NoError(t, err)
	assert.Equal(t, "cdk\n", stdout)
	assert.Empty(t, stderr)
}

func TestSchema(t *testing.T) {
	stdout, _, err := execute(t, "schema")
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &schema))
	assert.Equal(t, "Orchestrator Configuration", schema["title"])
}

func TestVersionJSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Contains(t, info, "version")
}

func TestVersionText(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cdklocal\nVersion:")
	assert.Contains(t, stdout, "Platform:")
}

func TestUsageErrorsArePrinted(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"check", "--bogus"}, "unknown flag: --bogus"},
		{"unknown command", []string{"chek"}, `unknown command "chek"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.Error(t, err)

			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, stderr, tt.want)
			assert.Contains(t, stderr, "--help' for usage.")
		})
	}
}

func TestCodedErrorsArePrintedOnce(t *testing.T) {
	_, stderr, err := execute(t, "check", "--config", filepath.Join(t.TempDir(), "orcdk.yml"))
	require.Error(t, err)

	assert.Equal(t, 1, strings.Count(stderr, "Configuration not found"))
	assert.NotContains(t, stderr, "Error:")
}
