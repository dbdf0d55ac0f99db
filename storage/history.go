// Package storage provides persistent history of ripgrep runs.
//
// Information Hiding:
// - Backend choice (SQLite file, in-memory) hidden behind HistoryStore
// - Argument fingerprinting hidden behind HashArgs
// - Conversion between stored records and execution results internalized

package storage

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/richinex/ripgrepy/ripgrep"
)

// ErrRunNotFound is returned when no stored run matches a lookup.
var ErrRunNotFound = errors.New("run not found")

// RunRecord is one stored ripgrep execution.
type RunRecord struct {
	ID        string
	ArgsHash  string
	Binary    string
	Args      []string
	ExitCode  int
	Stdout    []byte
	Stderr    []byte
	StartedAt time.Time
	Duration  time.Duration
}

// NewRunRecord captures res under a fresh ID.
func NewRunRecord(res *ripgrep.ExecutionResult, startedAt time.Time) RunRecord {
	return RunRecord{
		ID:        uuid.New().String(),
		ArgsHash:  HashArgs(res.Args),
		Binary:    res.Binary,
		Args:      append([]string(nil), res.Args...),
		ExitCode:  res.ExitCode,
		Stdout:    append([]byte(nil), res.Stdout...),
		Stderr:    append([]byte(nil), res.Stderr...),
		StartedAt: startedAt,
		Duration:  res.Duration,
	}
}

// Result rebuilds the execution result the record was captured from.
func (r RunRecord) Result() *ripgrep.ExecutionResult {
	return &ripgrep.ExecutionResult{
		Binary:   r.Binary,
		Args:     append([]string(nil), r.Args...),
		ExitCode: r.ExitCode,
		Stdout:   append([]byte(nil), r.Stdout...),
		Stderr:   append([]byte(nil), r.Stderr...),
		Duration: r.Duration,
	}
}

// HistoryStore persists run records. List and Latest return the most
// recent runs first.
type HistoryStore interface {
	Save(ctx context.Context, rec RunRecord) error
	Get(ctx context.Context, id string) (RunRecord, error)
	Latest(ctx context.Context, args []string) (RunRecord, error)
	List(ctx context.Context, limit int) ([]RunRecord, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// HashArgs fingerprints an argument vector with xxHash. Arguments are
// length-prefixed so ["ab", "c"] and ["a", "bc"] differ.
func HashArgs(args []string) string {
	d := xxhash.New()
	var n [8]byte
	for _, a := range args {
		binary.BigEndian.PutUint64(n[:], uint64(len(a)))
		_, _ = d.Write(n[:])
		_, _ = d.WriteString(a)
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], d.Sum64())
	return hex.EncodeToString(buf[:])
}

func sameArgs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
