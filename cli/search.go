// Command execution for CLI commands.
//
// Information Hiding:
// - Search assembly from settings and flags hidden
// - History recording setup hidden
// - Output formatting hidden

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/richinex/ripgrepy/config"
	"github.com/richinex/ripgrepy/ripgrep"
	"github.com/richinex/ripgrepy/storage"
)

// Views accepted by Search.
const (
	ViewRaw     = "raw"
	ViewRecords = "records"
	ViewGrouped = "grouped"
	ViewJSON    = "json"
	ViewMatches = "matches"
)

// ErrNoMatch is returned by Search when ripgrep ran fine but found
// nothing. Callers usually turn it into exit status 1.
var ErrNoMatch = errors.New("no matches")

// Options holds CLI execution options.
type Options struct {
	View    string
	Opts    []string // name[=value], applied in order after the configured defaults
	Binary  string
	Timeout time.Duration
	Record  bool
	Color   bool
	Verbose bool

	// Executor replaces process execution. Nil runs rg.
	Executor ripgrep.Executor
	// Store receives recorded runs. Nil opens the configured history database.
	Store storage.HistoryStore
	Out   io.Writer
}

// DefaultOptions returns default CLI options.
func DefaultOptions() Options {
	return Options{
		View:  ViewGrouped,
		Color: true,
		Out:   os.Stdout,
	}
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func validView(v string) bool {
	switch v {
	case ViewRaw, ViewRecords, ViewGrouped, ViewJSON, ViewMatches:
		return true
	}
	return false
}

// Build assembles a search from settings and CLI options without running it.
// Every view other than raw switches the search to JSON output.
func Build(settings config.Settings, pattern, path string, opts Options) (*ripgrep.Search, error) {
	if opts.View == "" {
		opts.View = ViewGrouped
	}
	if !validView(opts.View) {
		return nil, fmt.Errorf("unknown view %q (want raw, records, grouped, json or matches)", opts.View)
	}

	s := ripgrep.New(pattern, path).WithLogger(settings.Logger())
	if err := settings.Apply(s); err != nil {
		return nil, fmt.Errorf("default options: %w", err)
	}
	for _, raw := range opts.Opts {
		arg, err := config.ParseOptionArg(raw)
		if err != nil {
			return nil, err
		}
		if err := arg.Apply(s); err != nil {
			return nil, err
		}
	}
	if opts.View != ViewRaw && !s.Structured() {
		if err := s.Set(ripgrep.OptJSON); err != nil {
			return nil, fmt.Errorf("view %s needs --json: %w", opts.View, err)
		}
	}
	if opts.Binary != "" {
		s.WithBinary(opts.Binary)
	}
	if opts.Timeout > 0 {
		s.WithTimeout(opts.Timeout)
	}
	return s, s.Err()
}

// Search runs one search and prints the requested view.
func Search(ctx context.Context, settings config.Settings, pattern, path string, opts Options) error {
	s, err := Build(settings, pattern, path, opts)
	if err != nil {
		return err
	}

	executor := opts.Executor
	if opts.Record {
		store := opts.Store
		if store == nil {
			sqlite, err := storage.OpenSqlite(settings.History.Path)
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}
			defer sqlite.Close()
			store = sqlite
		}
		if executor == nil {
			binary := opts.Binary
			if binary == "" {
				binary = settings.Search.Binary
			}
			executor = ripgrep.NewProcessExecutor(binary)
		}
		executor = storage.NewRecordingExecutor(executor, store).WithLogger(settings.Logger())
	}
	if executor != nil {
		s.WithExecutor(executor)
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "Running: %s\n", s)
	}
	if err := s.Run(ctx); err != nil {
		return err
	}

	p := newPrinter(opts.out(), opts.Color)
	view := opts.View
	if view == "" {
		view = ViewGrouped
	}
	if err := p.view(s, s.Output, view); err != nil {
		return err
	}

	res, err := s.Result()
	if err != nil {
		return err
	}
	if !res.Matched() {
		return ErrNoMatch
	}
	return nil
}
