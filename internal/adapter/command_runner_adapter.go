package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"
)

// ErrCommandTimeout is returned when every attempt of a command hit its timeout.
var ErrCommandTimeout = errors.New("command timed out")

// waitDelay bounds how long a killed command's output pipes are drained.
const waitDelay = 2 * time.Second

// CommandResult holds what a finished external command produced.
type CommandResult struct {
	Stderr   string
	ExitCode int
}

// CommandRunnerAdapter abstracts running the repository's external tools so the
// domain layer can be tested against captured stderr fixtures.
type CommandRunnerAdapter interface {
	// Run executes name with args and returns its stderr and exit code.
	// A non-zero exit code is not an error; failing to start the process is.
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
}

// LocalCommandRunnerAdapter provides a concrete implementation using os/exec.
type LocalCommandRunnerAdapter struct {
	timeout time.Duration
	retries int
}

// NewLocalCommandRunnerAdapter constructs a LocalCommandRunnerAdapter. Each
// attempt runs under timeout; a timed-out attempt is retried up to retries times.
func NewLocalCommandRunnerAdapter(timeout time.Duration, retries int) *LocalCommandRunnerAdapter {
	if retries < 0 {
		retries = 0
	}

	return &LocalCommandRunnerAdapter{
		timeout: timeout,
		retries: retries,
	}
}

// Run executes the command, retrying attempts that exceed the timeout.
func (a *LocalCommandRunnerAdapter) Run(ctx context.Context, name string, args ...string) (CommandResult, error) {
	for attempt := 0; ; attempt++ {
		result, err := a.runOnce(ctx, name, args...)
		if !errors.Is(err, ErrCommandTimeout) {
			return result, err
		}

		if attempt >= a.retries {
			return CommandResult{}, fmt.Errorf("%s: %w after %d attempt(s)", name, ErrCommandTimeout, attempt+1)
		}

		slog.Warn("Command timed out, retrying", "command", name, "args", args, "attempt", attempt+1, "timeout", a.timeout)
	}
}

func (a *LocalCommandRunnerAdapter) runOnce(ctx context.Context, name string, args ...string) (CommandResult, error) {
	if err := ctx.Err(); err != nil {
		return CommandResult{}, err
	}

	runCtx := ctx

	if a.timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	slog.Debug("Running command", "command", name, "args", args)

	// #nosec G204 - the tool names come from configuration, not from file content
	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer

	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return CommandResult{Stderr: stderr.String()}, nil
	}

	if ctx.Err() != nil {
		return CommandResult{}, ctx.Err()
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return CommandResult{}, ErrCommandTimeout
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return CommandResult{Stderr: stderr.String(), ExitCode: exitErr.ExitCode()}, nil
	}

	slog.Error("Failed to run command", "command", name, "error", err)

	return CommandResult{}, fmt.Errorf("run %s: %w", name, err)
}
