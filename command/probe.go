package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/orcdkestrator/cdklocal/errors"
)

// Probe strategies selectable from plugin options.
const (
	ProbeLookPath = "lookpath"
	ProbeWhich    = "which"
)

// ProbeResult is the outcome of looking for an executable. Found is the only
// field callers branch on; Err carries the reason for diagnostics.
type ProbeResult struct {
	Found bool
	Path  string
	Err   error
}

// Prober checks whether an executable is available.
type Prober interface {
	Probe(ctx context.Context, name string) ProbeResult
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, name string) ProbeResult

// Probe calls f(ctx, name).
func (f ProberFunc) Probe(ctx context.Context, name string) ProbeResult {
	return f(ctx, name)
}

// PathProber searches PATH in-process.
type PathProber struct {
	// LookPath defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// Probe resolves name against PATH.
func (p *PathProber) Probe(_ context.Context, name string) ProbeResult {
	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(name)
	if err != nil {
		return ProbeResult{Err: errors.CommandNotFound(name, err)}
	}
	return ProbeResult{Found: true, Path: path}
}

// ShellProber runs `which <name>` and treats a zero exit status as found.
type ShellProber struct {
	executor Executor
}

// NewShellProber creates a ShellProber with a RealExecutor
func NewShellProber() *ShellProber {
	return NewShellProberWithExecutor(RealExecutor{})
}

// NewShellProberWithExecutor creates a ShellProber with a custom Executor
func NewShellProberWithExecutor(exec Executor) *ShellProber {
	return &ShellProber{executor: exec}
}

// Probe runs the lookup and waits for it to finish.
func (p *ShellProber) Probe(ctx context.Context, name string) ProbeResult {
	cmd := p.executor.CommandContext(ctx, "which", name)
	output, err := cmd.Output()
	if err != nil {
		return ProbeResult{Err: errors.CommandFailed(fmt.Sprintf("which %s", name), err)}
	}
	return ProbeResult{Found: true, Path: strings.TrimSpace(string(output))}
}

// NewProber returns the prober for a strategy name.
func NewProber(strategy string) (Prober, error) {
	switch strategy {
	case "", ProbeLookPath:
		return &PathProber{}, nil
	case ProbeWhich:
		return NewShellProber(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("unknown probe strategy '%s' (expected %s or %s)", strategy, ProbeLookPath, ProbeWhich)).
			WithDetail("probe", strategy)
	}
}
