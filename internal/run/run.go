// Package run executes external commands for the CLI. Everything that
// shells out (git, configure, bootstrap, the binding generator) goes
// through the Runner interface so tests can script outcomes.
package run

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	tskerrors "github.com/tskforge/cli/internal/errors"
)

// Result holds the outcome of an executed command.
type Result struct {
	// ExitCode is the command's exit status. Zero on success, -1 when the
	// command never ran.
	ExitCode int

	// Output is the combined stdout and stderr of the command.
	Output []byte
}

// Runner executes external commands in a working directory. A non-zero
// exit status is reported through Result.ExitCode, not the error; the
// error is reserved for commands that could not be started or were
// interrupted.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct{}

// Run executes the command in dir and captures its combined output.
func (Exec) Run(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return Result{ExitCode: -1, Output: output}, ctx.Err()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Output: output}, nil
		}
		return Result{ExitCode: -1, Output: output}, fmt.Errorf("starting %s: %w", name, err)
	}

	return Result{ExitCode: 0, Output: output}, nil
}

// CommandLine renders a command and its arguments for display.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// RunChecked executes the command and converts a non-zero exit status into
// a subprocess failure carrying the command line and combined output.
func RunChecked(ctx context.Context, r Runner, dir string, name string, args ...string) (Result, error) {
	res, err := r.Run(ctx, dir, name, args...)
	if err != nil {
		return res, err
	}

	if res.ExitCode != 0 {
		command := CommandLine(name, args...)
		return res, tskerrors.NewSubprocessError(
			fmt.Sprintf("%s failed with exit code %d", command, res.ExitCode),
			command,
			strings.TrimSpace(string(res.Output)),
			nil,
		)
	}

	return res, nil
}
