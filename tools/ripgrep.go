// Ripgrep Tool - repository search with structured results.
//
// Information Hiding:
// - Mapping from JSON arguments to search options hidden
// - Result view selection abstracted
// - Error handling internalized

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/richinex/ripgrepy/ripgrep"
)

// Result views returned by RipgrepTool.
const (
	ViewGrouped = "grouped"
	ViewMatches = "matches"
	ViewRaw     = "raw"
)

// RipgrepTool searches files with ripgrep in JSON mode and returns the
// matches grouped by path.
type RipgrepTool struct {
	BaseTool
	timeoutSecs       uint64
	defaultMaxResults int
	binary            string
	executor          ripgrep.Executor
	allowedPaths      []string
	logger            *log.Logger
}

// NewRipgrepTool creates a new ripgrep tool with the given timeout.
func NewRipgrepTool(timeoutSecs uint64) *RipgrepTool {
	return &RipgrepTool{
		timeoutSecs:       timeoutSecs,
		defaultMaxResults: 200,
		logger:            log.New(io.Discard),
	}
}

// WithMaxResults sets the default maximum results.
func (t *RipgrepTool) WithMaxResults(max int) *RipgrepTool {
	t.defaultMaxResults = max
	return t
}

// WithBinary sets an explicit ripgrep path.
func (t *RipgrepTool) WithBinary(path string) *RipgrepTool {
	t.binary = path
	return t
}

// WithExecutor replaces process execution, e.g. with a recording or
// replaying executor.
func (t *RipgrepTool) WithExecutor(e ripgrep.Executor) *RipgrepTool {
	t.executor = e
	return t
}

// WithAllowedPaths restricts searches to the given directories.
func (t *RipgrepTool) WithAllowedPaths(paths ...string) *RipgrepTool {
	t.allowedPaths = paths
	return t
}

// WithLogger sets the logger handed to each search.
func (t *RipgrepTool) WithLogger(l *log.Logger) *RipgrepTool {
	if l != nil {
		t.logger = l
	}
	return t
}

// Metadata returns the tool metadata.
func (t *RipgrepTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "ripgrep",
		Description: "Search files using ripgrep (rg). Returns matches grouped by file as JSON. Use passthru=true with empty pattern to read file content.",
		Parameters: []ToolParameter{
			{Name: "pattern", ParamType: "string", Description: "The search pattern (use empty string with passthru to get all lines)", Required: true},
			{Name: "path", ParamType: "string", Description: "Path to search in (default: current directory)", Required: false},
			{Name: "glob", ParamType: "array", Description: "Glob patterns to filter files", Required: false},
			{Name: "case_sensitive", ParamType: "boolean", Description: "Case sensitive search (default: true)", Required: false},
			{Name: "fixed_strings", ParamType: "boolean", Description: "Treat pattern as literal string", Required: false},
			{Name: "max_results", ParamType: "integer", Description: "Maximum number of matching lines per file", Required: false},
			{Name: "passthru", ParamType: "boolean", Description: "Print all lines (matching and non-matching). Use with empty pattern to read file content.", Required: false},
			{Name: "context", ParamType: "integer", Description: "Lines of context around matches (-C flag)", Required: false},
			{Name: "options", ParamType: "object", Description: "Extra ripgrep options by long name: true for flags, a string or number for values, an array for repeatable options", Required: false},
			{Name: "view", ParamType: "string", Description: "Result view (default: grouped)", Required: false, Enum: []string{ViewGrouped, ViewMatches, ViewRaw}},
		},
	}
}

type ripgrepArgs struct {
	Pattern       string                     `json:"pattern"`
	Path          string                     `json:"path"`
	Glob          []string                   `json:"glob"`
	CaseSensitive *bool                      `json:"case_sensitive"`
	FixedStrings  *bool                      `json:"fixed_strings"`
	MaxResults    *int                       `json:"max_results"`
	Passthru      *bool                      `json:"passthru"`
	Context       *int                       `json:"context"`
	Options       map[string]json.RawMessage `json:"options"`
	View          string                     `json:"view"`
}

func (a ripgrepArgs) passthru() bool {
	return a.Passthru != nil && *a.Passthru
}

func parseRipgrepArgs(args json.RawMessage) (ripgrepArgs, error) {
	var a ripgrepArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return a, fmt.Errorf("invalid arguments: %w", err)
	}
	// Allow empty pattern only with passthru mode (for reading file content)
	if strings.TrimSpace(a.Pattern) == "" && !a.passthru() {
		return a, fmt.Errorf("pattern cannot be empty (use passthru=true with empty pattern to read file content)")
	}
	switch a.View {
	case "", ViewGrouped, ViewMatches, ViewRaw:
	default:
		return a, fmt.Errorf("unknown view %q (want grouped, matches or raw)", a.View)
	}
	return a, nil
}

// Validate validates the arguments.
func (t *RipgrepTool) Validate(args json.RawMessage) error {
	_, err := parseRipgrepArgs(args)
	return err
}

// Build turns arguments into a search without running it.
func (t *RipgrepTool) Build(args json.RawMessage) (*ripgrep.Search, string, error) {
	a, err := parseRipgrepArgs(args)
	if err != nil {
		return nil, "", err
	}

	searchPath := a.Path
	if searchPath == "" {
		searchPath = "."
	}
	if !pathAllowed(searchPath, t.allowedPaths) {
		return nil, "", fmt.Errorf("path %q not allowed", searchPath)
	}

	// For passthru with empty pattern, use "." to match all lines
	pattern := a.Pattern
	if a.passthru() && strings.TrimSpace(pattern) == "" {
		pattern = "."
	}

	s := ripgrep.New(pattern, searchPath).JSON().NoMessages()
	if a.passthru() {
		s.Passthru()
	}
	if a.Context != nil && *a.Context > 0 {
		s.Context(*a.Context)
	}
	maxCount := t.defaultMaxResults
	if a.MaxResults != nil && *a.MaxResults > 0 {
		maxCount = *a.MaxResults
	}
	if maxCount > 0 {
		s.MaxCount(maxCount)
	}
	if a.CaseSensitive != nil && !*a.CaseSensitive {
		s.IgnoreCase()
	}
	if a.FixedStrings != nil && *a.FixedStrings {
		s.FixedStrings()
	}
	for _, g := range a.Glob {
		if strings.TrimSpace(g) != "" {
			s.Glob(g)
		}
	}
	if err := s.Err(); err != nil {
		return nil, "", err
	}
	if err := applyOptions(s, a.Options); err != nil {
		return nil, "", err
	}

	if t.binary != "" {
		s.WithBinary(t.binary)
	}
	if t.executor != nil {
		s.WithExecutor(t.executor)
	}
	if t.timeoutSecs > 0 {
		s.WithTimeout(time.Duration(t.timeoutSecs) * time.Second)
	}
	s.WithLogger(t.logger)

	view := a.View
	if view == "" {
		view = ViewGrouped
	}
	return s, view, nil
}

// applyOptions sets extra options in name order so the argument vector
// does not depend on map iteration.
func applyOptions(s *ripgrep.Search, opts map[string]json.RawMessage) error {
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values, err := optionValues(opts[name])
		if err != nil {
			return fmt.Errorf("option %s: %w", name, err)
		}
		if values == nil {
			continue
		}
		if len(values) == 0 {
			if err := s.SetNamed(name); err != nil {
				return err
			}
			continue
		}
		for _, v := range values {
			if err := s.SetNamed(name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// optionValues decodes an option value. true yields an empty slice (flag
// with no value), false or null yields nil (skip).
func optionValues(raw json.RawMessage) ([]string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil:
		return nil, nil
	case bool:
		if x {
			return []string{}, nil
		}
		return nil, nil
	case string:
		return []string{x}, nil
	case float64:
		return []string{strconv.FormatFloat(x, 'f', -1, 64)}, nil
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			switch it := item.(type) {
			case string:
				out = append(out, it)
			case float64:
				out = append(out, strconv.FormatFloat(it, 'f', -1, 64))
			default:
				return nil, fmt.Errorf("unsupported array element %v", item)
			}
		}
		if len(out) == 0 {
			return nil, nil
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value %v", v)
	}
}

// Execute runs the ripgrep search.
func (t *RipgrepTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	s, view, err := t.Build(args)
	if err != nil {
		return FailureResult(err), nil
	}

	if err := s.Run(ctx); err != nil {
		var te *ripgrep.TimeoutError
		if errors.As(err, &te) {
			err = fmt.Errorf("rg timed out after %d seconds", t.timeoutSecs)
		}
		result := FailureResult(err)
		result.Command = s.String()
		return result, nil
	}

	result := render(s, view)
	result.Command = s.String()
	if res, err := s.Result(); err == nil {
		matched := res.Matched()
		result.Matched = &matched
	}
	return result, nil
}

func render(s *ripgrep.Search, view string) ToolResult {
	switch view {
	case ViewRaw:
		out, err := s.Output()
		if err != nil {
			return FailureResult(err)
		}
		return SuccessResult(out)
	case ViewMatches:
		out, err := s.MatchesJSON()
		if err != nil {
			return FailureResult(err)
		}
		return SuccessResult(string(out))
	default:
		g, err := s.Grouped()
		if err != nil {
			return FailureResult(err)
		}
		out, err := json.Marshal(g)
		if err != nil {
			return FailureResult(err)
		}
		return SuccessResult(string(out))
	}
}
