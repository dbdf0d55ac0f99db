// Process execution.
//
// Information Hiding:
// - Binary resolution (explicit path vs search-path lookup) hidden
// - Output capture and exit status extraction internalized
// - Deadline handling mapped to TimeoutError

package ripgrep

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// DefaultBinary is the executable name looked up when no explicit path
// is configured.
const DefaultBinary = "rg"

// waitDelay bounds how long Wait blocks on output pipes after the process
// has been killed or has exited.
const waitDelay = 2 * time.Second

// Executor runs ripgrep with a finished argument vector. Implementations
// must return a non-nil result whenever the process ran to completion,
// whatever its exit status.
type Executor interface {
	Execute(ctx context.Context, args []string) (*ExecutionResult, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, args []string) (*ExecutionResult, error)

func (f ExecutorFunc) Execute(ctx context.Context, args []string) (*ExecutionResult, error) {
	return f(ctx, args)
}

// ProcessExecutor runs ripgrep as a child process with stdin closed and
// stdout and stderr captured in memory.
type ProcessExecutor struct {
	// Binary is an explicit path or name. Empty means DefaultBinary.
	Binary string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is appended to the parent environment.
	Env []string

	lookPath func(string) (string, error)
}

// NewProcessExecutor creates an executor for the given binary. An empty
// binary resolves "rg" on the search path.
func NewProcessExecutor(binary string) *ProcessExecutor {
	return &ProcessExecutor{Binary: binary}
}

// Resolve returns the path that Execute would run.
func (e *ProcessExecutor) Resolve() (string, error) {
	lookPath := e.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	name := e.Binary
	if name == "" {
		name = DefaultBinary
	}
	path, err := lookPath(name)
	if err != nil {
		return "", &ExecutableNotFoundError{Name: name, Err: err}
	}
	return path, nil
}

// Execute runs the binary with args. Exit statuses are reported through
// the result, not the error; the error is reserved for failures to
// resolve, start or finish the process.
func (e *ProcessExecutor) Execute(ctx context.Context, args []string) (*ExecutionResult, error) {
	bin, err := e.Resolve()
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = e.Dir
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err = cmd.Run()
	res := &ExecutionResult{
		Binary:   bin,
		Args:     append([]string(nil), args...),
		Duration: time.Since(start),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return nil, &TimeoutError{}
			}
			return nil, fmt.Errorf("ripgrep run canceled: %w", ctxErr)
		}

		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			res.ExitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrWaitDelay):
			// exited cleanly but a descendant kept the pipes open
			res.ExitCode = cmd.ProcessState.ExitCode()
		default:
			return nil, &ProcessSpawnError{Binary: bin, Err: err}
		}
	}

	res.Stdout = stdout.Bytes()
	res.Stderr = stderr.Bytes()
	return res, nil
}
