package exec

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Result holds the captured output of a finished local command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner runs a program and captures its output.
// It exists so callers can substitute a fake in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// LocalRunner runs programs on this machine without a shell.
type LocalRunner struct{}

// Run implements Runner using RunCapture.
func (LocalRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	return RunCapture(ctx, name, args...)
}

// RunCapture runs name with args directly (no shell) and captures stdout and stderr.
// A command that runs but exits non-zero returns its exit code and a nil error.
// A command that cannot be started (missing binary, permission denied) or that is
// killed by ctx returns ExitCode -1 and an ErrExec error.
func RunCapture(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	runErr := command.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if runErr == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, errors.WrapWithCode(ctxErr, errors.ErrExec,
			"Command '"+name+"' didn't finish in time",
			"Raise the timeout or check whether the tool is hanging.")
	}

	if exitErr, ok := runErr.(*exec.ExitError); ok {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	res.ExitCode = -1
	return res, errors.WrapWithCode(runErr, errors.ErrExec,
		"Couldn't run '"+name+"'",
		"Make sure the command exists and is executable.")
}
