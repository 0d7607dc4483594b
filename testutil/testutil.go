package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireUnix skips the test on platforms without POSIX shell scripts
func RequireUnix(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a Unix-like system")
	}
}

// RequireCommand skips the test if the named executable is not on PATH
func RequireCommand(t *testing.T, name string) {
	t.Helper()

	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

// WriteExecutable creates an executable shell script named name in dir that
// prints its arguments and exits zero. It returns the script path.
func WriteExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	RequireUnix(t)

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\necho \"$@\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0700), "failed to write executable %s", name)
	return path
}

// PrependPath puts dir in front of PATH for the duration of the test
func PrependPath(t *testing.T, dir string) {
	t.Helper()

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// IsolatePath replaces PATH with a fresh empty directory and returns it, so
// only executables the test writes there can be found.
func IsolatePath(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("PATH", dir)
	return dir
}

// WriteConfig writes an orchestrator configuration file into dir
func WriteConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to write config %s", name)
	return path
}

// LocalConfigYAML is a minimal configuration with a local and a remote
// environment and the cdklocal plugin enabled.
const LocalConfigYAML = `cdkRoot: cdk
deploymentStrategy: auto
environments:
  local:
    displayName: Local
    isLocal: true
  production:
    displayName: Production
    isLocal: false
plugins:
  - name: cdklocal
    enabled: true
    config: {}
`

// RandomString generates a random string of the specified length
func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}
