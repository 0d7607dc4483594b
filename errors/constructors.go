package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ConfigValidation creates a configuration validation error for a single field
func ConfigValidation(field, reason string) *Error {
	return New(ErrCodeConfigValidation, fmt.Sprintf("%s: %s", field, reason)).
		WithDetail("field", field)
}

// EnvironmentNotFound creates an error for an environment missing from the configuration
func EnvironmentNotFound(name string) *Error {
	return New(ErrCodeEnvironmentNotFound, fmt.Sprintf("environment '%s' not found", name)).
		WithDetail("environment", name)
}

// CommandNotFound creates an error for an executable missing from PATH
func CommandNotFound(name string, err error) *Error {
	return Wrap(err, ErrCodeCommandNotFound, fmt.Sprintf("command not found: %s", name)).
		WithDetail("command", name)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *Error {
	cmdErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		cmdErr = cmdErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return cmdErr
}
