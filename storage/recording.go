package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/richinex/ripgrepy/ripgrep"
)

// ErrNoRecording is returned by ReplayExecutor when no run with the
// requested arguments has been stored.
var ErrNoRecording = errors.New("no recorded run for arguments")

// RecordingExecutor runs searches through another executor and stores
// every completed execution, whatever its exit status. Runs that never
// produced a result (timeouts, missing binary) are not stored.
type RecordingExecutor struct {
	next   ripgrep.Executor
	store  HistoryStore
	logger *log.Logger

	mu     sync.Mutex
	lastID string
}

// NewRecordingExecutor wraps next. A nil next runs the default "rg".
func NewRecordingExecutor(next ripgrep.Executor, store HistoryStore) *RecordingExecutor {
	if next == nil {
		next = ripgrep.NewProcessExecutor("")
	}
	return &RecordingExecutor{
		next:   next,
		store:  store,
		logger: log.New(io.Discard),
	}
}

// WithLogger sets the logger used to report storage failures.
func (r *RecordingExecutor) WithLogger(l *log.Logger) *RecordingExecutor {
	if l != nil {
		r.logger = l
	}
	return r
}

// Execute runs args and stores the result. A storage failure is logged
// and does not fail the search.
func (r *RecordingExecutor) Execute(ctx context.Context, args []string) (*ripgrep.ExecutionResult, error) {
	started := time.Now()
	res, err := r.next.Execute(ctx, args)
	if err != nil {
		return nil, err
	}

	rec := NewRunRecord(res, started)
	if err := r.store.Save(ctx, rec); err != nil {
		r.logger.Warn("could not record run", "error", err)
		return res, nil
	}
	r.mu.Lock()
	r.lastID = rec.ID
	r.mu.Unlock()
	r.logger.Debug("recorded run", "id", rec.ID, "exit", rec.ExitCode)
	return res, nil
}

// LastID returns the ID of the most recently stored run, or "".
func (r *RecordingExecutor) LastID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastID
}

// ReplayExecutor answers executions from stored history without
// spawning ripgrep.
type ReplayExecutor struct {
	store HistoryStore
}

// NewReplayExecutor creates an executor backed by store.
func NewReplayExecutor(store HistoryStore) *ReplayExecutor {
	return &ReplayExecutor{store: store}
}

// Execute returns the latest stored result for exactly these arguments.
func (r *ReplayExecutor) Execute(ctx context.Context, args []string) (*ripgrep.ExecutionResult, error) {
	rec, err := r.store.Latest(ctx, args)
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoRecording, strings.Join(args, " "))
		}
		return nil, err
	}
	return rec.Result(), nil
}

var (
	_ ripgrep.Executor = (*RecordingExecutor)(nil)
	_ ripgrep.Executor = (*ReplayExecutor)(nil)
)
