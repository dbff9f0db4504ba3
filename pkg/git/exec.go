package git

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds what a finished process left behind.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Executor spawns a program and waits for it. A non-zero exit status is
// reported through Result.ExitCode; the error is reserved for processes that
// couldn't be started, or were interrupted by the context.
type Executor interface {
	Exec(ctx context.Context, dir, program string, args ...string) (Result, error)
}

// OsExecutor runs programs with os/exec.
type OsExecutor struct{}

// Exec implements Executor
func (OsExecutor) Exec(ctx context.Context, dir, program string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, program, args...) // #nosec
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		return Result{ExitCode: -1, Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, ctx.Err()
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		return Result{ExitCode: exitErr.ExitCode(), Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
	}

	if err != nil {
		return Result{ExitCode: -1}, err
	}

	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
}
