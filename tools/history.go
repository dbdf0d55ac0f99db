// History Tool - expose recorded runs.
//
// Information Hiding:
// - Store access hidden behind the tool interface
// - Re-interpretation of stored output abstracted

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/richinex/ripgrepy/ripgrep"
	"github.com/richinex/ripgrepy/storage"
)

// HistoryTool lists recorded runs, or re-interprets one of them without
// running ripgrep again.
type HistoryTool struct {
	BaseTool
	store storage.HistoryStore
}

// NewHistoryTool creates a tool backed by store.
func NewHistoryTool(store storage.HistoryStore) *HistoryTool {
	return &HistoryTool{store: store}
}

// Metadata returns the tool metadata.
func (t *HistoryTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "ripgrep_history",
		Description: "List recorded ripgrep runs, or show the grouped matches of one run by id.",
		Parameters: []ToolParameter{
			{Name: "id", ParamType: "string", Description: "Run id to show; omit to list runs", Required: false},
			{Name: "limit", ParamType: "integer", Description: "Maximum runs to list (default: 20)", Required: false},
		},
	}
}

type historyArgs struct {
	ID    string `json:"id"`
	Limit *int   `json:"limit"`
}

// RunSummary is the JSON shape of one listed run.
type RunSummary struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	ExitCode  int       `json:"exit_code"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
}

func parseHistoryArgs(args json.RawMessage) (historyArgs, error) {
	var a historyArgs
	if len(args) == 0 {
		return a, nil
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return a, fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Limit != nil && *a.Limit < 0 {
		return a, fmt.Errorf("limit must not be negative")
	}
	return a, nil
}

// Validate validates the arguments.
func (t *HistoryTool) Validate(args json.RawMessage) error {
	_, err := parseHistoryArgs(args)
	return err
}

// Execute lists runs or shows one.
func (t *HistoryTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	if t.store == nil {
		return FailureResultf("no history store available"), nil
	}
	a, err := parseHistoryArgs(args)
	if err != nil {
		return FailureResult(err), nil
	}

	if a.ID != "" {
		return t.show(ctx, a.ID)
	}

	limit := 20
	if a.Limit != nil && *a.Limit > 0 {
		limit = *a.Limit
	}
	runs, err := t.store.List(ctx, limit)
	if err != nil {
		return FailureResult(err), nil
	}
	summaries := make([]RunSummary, 0, len(runs))
	for _, r := range runs {
		summaries = append(summaries, Summarize(r))
	}
	out, err := json.Marshal(summaries)
	if err != nil {
		return FailureResult(err), nil
	}
	return SuccessResult(string(out)), nil
}

func (t *HistoryTool) show(ctx context.Context, id string) (ToolResult, error) {
	rec, err := t.store.Get(ctx, id)
	if err != nil {
		return FailureResult(err), nil
	}
	in := ripgrep.NewInterpreter(rec.Result(), slices.Contains(rec.Args, "--json"))
	g, err := in.Grouped()
	if err != nil {
		// not a JSON run; fall back to raw text
		text, terr := in.Text()
		if terr != nil {
			return FailureResult(terr), nil
		}
		return SuccessResult(text), nil
	}
	out, err := json.Marshal(g)
	if err != nil {
		return FailureResult(err), nil
	}
	return SuccessResult(string(out)), nil
}

// Summarize renders a run for listings.
func Summarize(r storage.RunRecord) RunSummary {
	return RunSummary{
		ID:        r.ID,
		Command:   strings.Join(append([]string{r.Binary}, r.Args...), " "),
		ExitCode:  r.ExitCode,
		StartedAt: r.StartedAt,
		Duration:  r.Duration.String(),
	}
}
