// Invocation builder.
//
// Information Hiding:
// - Applied option bookkeeping and exclusion tracking hidden
// - Argument vector rendering hidden behind Args
// - Single-shot execution and result caching internalized

package ripgrep

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"mvdan.cc/sh/v3/syntax"
)

var discardLogger = log.New(io.Discard)

type appliedOption struct {
	opt      Option
	value    string
	hasValue bool
}

// Search accumulates one ripgrep invocation and, once run, owns its
// result and the views derived from it.
//
// A Search is not safe for concurrent use. Chaining calls from several
// goroutines on the same instance is undefined; callers that share a
// Search must serialize access themselves.
type Search struct {
	id      string
	pattern string
	path    string
	applied []appliedOption
	groups  map[Group]Option
	err     error

	binary   string
	timeout  time.Duration
	executor Executor
	logger   *log.Logger

	executed bool
	runErr   error
	result   *ExecutionResult
	interp   *Interpreter
}

// New creates a search for pattern under path. Both are stored verbatim;
// the pattern is not validated here, ripgrep reports regex errors itself.
func New(pattern, path string) *Search {
	return &Search{
		id:      uuid.NewString(),
		pattern: pattern,
		path:    path,
		groups:  make(map[Group]Option),
		logger:  discardLogger,
	}
}

// ID returns the identifier used to correlate log lines for this search.
func (s *Search) ID() string { return s.id }

// Pattern returns the search pattern.
func (s *Search) Pattern() string { return s.pattern }

// Path returns the search path.
func (s *Search) Path() string { return s.path }

// WithExecutor replaces the process executor. Mostly useful for tests and
// for recording or replaying executions.
func (s *Search) WithExecutor(e Executor) *Search {
	if s.frozen("WithExecutor") {
		return s
	}
	s.executor = e
	return s
}

// WithBinary sets an explicit ripgrep path. It takes precedence over a
// lookup of "rg" on the search path. Ignored when WithExecutor is used.
func (s *Search) WithBinary(path string) *Search {
	if s.frozen("WithBinary") {
		return s
	}
	s.binary = path
	return s
}

// WithTimeout bounds the process runtime. On expiry the child is killed
// and Run fails with *TimeoutError. Zero means no timeout.
func (s *Search) WithTimeout(d time.Duration) *Search {
	if s.frozen("WithTimeout") {
		return s
	}
	s.timeout = d
	return s
}

// WithLogger sets the logger used for debug output. Nil restores the
// default, which discards everything.
func (s *Search) WithLogger(l *log.Logger) *Search {
	if s.frozen("WithLogger") {
		return s
	}
	if l == nil {
		l = discardLogger
	}
	s.logger = l
	return s
}

// frozen records an AlreadyExecutedError for configuration calls made
// after Run.
func (s *Search) frozen(op string) bool {
	if !s.executed {
		return false
	}
	if s.err == nil {
		s.err = &AlreadyExecutedError{Op: op}
	}
	return true
}

// Set applies opt with the given values and reports any failure
// immediately. Arity, value vocabulary and exclusion groups are checked
// before anything is recorded, so a failed Set leaves the search as it was.
func (s *Search) Set(opt Option, values ...string) error {
	if s.executed {
		return &AlreadyExecutedError{Op: opt.String()}
	}
	if !opt.valid() {
		return &UnknownOptionError{Name: opt.String()}
	}
	spec := registry[opt]

	want := 1
	if spec.Arity == ArityNone {
		want = 0
	}
	if len(values) != want {
		return &ArityError{Option: opt, Got: len(values)}
	}
	if spec.validate != nil {
		if err := spec.validate(values[0]); err != nil {
			return &InvalidValueError{Option: opt, Value: values[0], Reason: err.Error()}
		}
	}

	if spec.Group != GroupNone {
		if prior, ok := s.groups[spec.Group]; ok && prior != opt {
			return &MutuallyExclusiveOptionError{Option: opt, Prior: prior, Group: spec.Group}
		}
		s.groups[spec.Group] = opt
	}

	a := appliedOption{opt: opt}
	if want == 1 {
		a.value = values[0]
		a.hasValue = true
	}
	s.applied = append(s.applied, a)
	return nil
}

// SetNamed applies the option with the given long name.
func (s *Search) SetNamed(name string, values ...string) error {
	opt, err := Lookup(name)
	if err != nil {
		return err
	}
	return s.Set(opt, values...)
}

// SetShort applies the option bound to a short alias such as 'i'.
func (s *Search) SetShort(r rune, values ...string) error {
	opt, err := LookupShort(r)
	if err != nil {
		return err
	}
	return s.Set(opt, values...)
}

// Named is the chaining form of SetNamed.
func (s *Search) Named(name string, values ...string) *Search {
	if s.err != nil {
		return s
	}
	if err := s.SetNamed(name, values...); err != nil {
		s.err = err
	}
	return s
}

// Short is the chaining form of SetShort: s.Short('i') is s.IgnoreCase().
func (s *Search) Short(r rune, values ...string) *Search {
	if s.err != nil {
		return s
	}
	if err := s.SetShort(r, values...); err != nil {
		s.err = err
	}
	return s
}

func (s *Search) apply(opt Option, values ...string) *Search {
	if s.err != nil {
		return s
	}
	if err := s.Set(opt, values...); err != nil {
		s.err = err
	}
	return s
}

// Err returns the first error recorded by a chaining call, if any.
func (s *Search) Err() error { return s.err }

// Applied returns the applied options in application order.
func (s *Search) Applied() []Option {
	opts := make([]Option, len(s.applied))
	for i, a := range s.applied {
		opts[i] = a.opt
	}
	return opts
}

// Structured reports whether the search requests JSON Lines output.
func (s *Search) Structured() bool {
	return s.groups[GroupOutput] == OptJSON && s.has(OptJSON)
}

func (s *Search) has(opt Option) bool {
	for _, a := range s.applied {
		if a.opt == opt {
			return true
		}
	}
	return false
}

// Args renders the argument vector: flags in application order, then the
// pattern, then the path. Nothing is reordered or deduplicated.
func (s *Search) Args() []string {
	args := make([]string, 0, 2*len(s.applied)+2)
	for _, a := range s.applied {
		args = append(args, registry[a.opt].Flags...)
		if a.hasValue {
			args = append(args, a.value)
		}
	}
	return append(args, s.pattern, s.path)
}

// String renders the full command line, shell quoted, for logs and
// dry runs.
func (s *Search) String() string {
	name := s.binary
	if name == "" {
		name = DefaultBinary
	}
	parts := append([]string{name}, s.Args()...)
	for i, p := range parts {
		q, err := syntax.Quote(p, syntax.LangBash)
		if err != nil {
			q = strconv.Quote(p)
		}
		parts[i] = q
	}
	return strings.Join(parts, " ")
}

// Run executes the search once. Builder errors are returned without
// spawning a process. A second call returns the outcome of the first
// without running ripgrep again.
//
// A nil error means ripgrep exited with 0 (matches) or 1 (no matches).
// Exit status 2 or more yields *ProcessError; the same error is returned
// by every output view.
func (s *Search) Run(ctx context.Context) error {
	if s.executed {
		return s.runErr
	}
	if s.err != nil {
		return s.err
	}
	s.executed = true

	ex := s.executor
	if ex == nil {
		ex = NewProcessExecutor(s.binary)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	structured := s.Structured()
	s.logger.Debug("running ripgrep", "id", s.id, "command", s.String())
	start := time.Now()

	res, err := ex.Execute(ctx, s.Args())
	if err != nil {
		if errors.Is(err, ErrTimeout) && s.timeout > 0 {
			err = &TimeoutError{Timeout: s.timeout}
		}
		s.runErr = err
		s.interp = failedInterpreter(err, structured, s.logger)
		s.logger.Debug("ripgrep failed", "id", s.id, "error", err, "elapsed", time.Since(start))
		return err
	}

	s.result = res
	s.interp = newInterpreter(res, structured, s.logger)
	s.runErr = res.Err()
	s.logger.Debug("ripgrep finished", "id", s.id, "exit", res.ExitCode,
		"stdout_bytes", len(res.Stdout), "elapsed", time.Since(start))
	return s.runErr
}

// Executed reports whether Run has been called and reached the executor.
func (s *Search) Executed() bool { return s.executed }

// Result returns the captured execution result. It fails if the search
// has not run or if the process could not be run to completion.
func (s *Search) Result() (*ExecutionResult, error) {
	if !s.executed {
		return nil, &NotExecutedError{View: "Result"}
	}
	if s.result == nil {
		return nil, s.runErr
	}
	return s.result, nil
}

// Output returns stdout as text, unmodified. Valid for any flag set.
func (s *Search) Output() (string, error) {
	if s.interp == nil {
		return "", &NotExecutedError{View: "Output"}
	}
	return s.interp.Text()
}

// Records returns the parsed JSON Lines records in emission order. The
// search must have been built with JSON().
func (s *Search) Records() ([]Record, error) {
	if !s.Structured() {
		return nil, &UnstructuredOutputError{View: "Records"}
	}
	if s.interp == nil {
		return nil, &NotExecutedError{View: "Records"}
	}
	return s.interp.Records()
}

// Grouped returns match entries grouped by path. See Grouped for the
// handling of multi-line and binary matches.
func (s *Search) Grouped() (*Grouped, error) {
	if !s.Structured() {
		return nil, &UnstructuredOutputError{View: "Grouped"}
	}
	if s.interp == nil {
		return nil, &NotExecutedError{View: "Grouped"}
	}
	return s.interp.Grouped()
}

// MatchesJSON returns the match records, as emitted by ripgrep, wrapped
// in a JSON array.
func (s *Search) MatchesJSON() ([]byte, error) {
	if !s.Structured() {
		return nil, &UnstructuredOutputError{View: "MatchesJSON"}
	}
	if s.interp == nil {
		return nil, &NotExecutedError{View: "MatchesJSON"}
	}
	return s.interp.MatchesJSON()
}
