package ripgrep

import "time"

// ripgrep exit statuses.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// ExecutionResult is the immutable outcome of one ripgrep run.
type ExecutionResult struct {
	Binary   string
	Args     []string
	ExitCode int // -1 when the process was terminated by a signal
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Matched reports whether ripgrep found at least one match.
func (r *ExecutionResult) Matched() bool {
	return r.ExitCode == ExitMatch
}

// Err classifies the exit status. Statuses 0 and 1 are success, anything
// else is a *ProcessError carrying stderr.
func (r *ExecutionResult) Err() error {
	if r.ExitCode == ExitMatch || r.ExitCode == ExitNoMatch {
		return nil
	}
	return &ProcessError{ExitCode: r.ExitCode, Stderr: string(r.Stderr)}
}
