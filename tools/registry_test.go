package tools

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/richinex/ripgrepy/ripgrep"
	"github.com/richinex/ripgrepy/storage"
)

func TestRegistryWithDefaults(t *testing.T) {
	registry, err := WithDefaults()
	if err != nil {
		t.Fatalf("WithDefaults() error = %v", err)
	}
	if got, want := registry.Names(), []string{"ripgrep", "ripgrep_options"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if err := registry.Register(NewOptionsTool()); err == nil {
		t.Error("duplicate registration succeeded")
	}
	if _, ok := registry.Get("ripgrep"); !ok {
		t.Error("Get(ripgrep) failed")
	}
	desc := registry.Description()
	if !strings.Contains(desc, "Tool: ripgrep\n") || !strings.Contains(desc, "pattern (string)") {
		t.Errorf("Description() = %s", desc)
	}
}

func TestExecuteOnceValidates(t *testing.T) {
	exec := &captureExecutor{}
	tool := NewRipgrepTool(5).WithExecutor(exec)

	result, err := ExecuteOnce(context.Background(), tool, json.RawMessage(`{"pattern":"  "}`))
	if err != nil {
		t.Fatalf("ExecuteOnce() error = %v", err)
	}
	if result.Success() || !strings.Contains(result.Error.Error(), "validation failed") {
		t.Errorf("result = %+v", result)
	}
	if exec.args != nil {
		t.Error("search ran despite validation failure")
	}
}

func TestExecutorRunsOnce(t *testing.T) {
	calls := 0
	failing := ripgrep.ExecutorFunc(func(_ context.Context, args []string) (*ripgrep.ExecutionResult, error) {
		calls++
		return &ripgrep.ExecutionResult{Args: args, ExitCode: 2, Stderr: []byte("connection reset")}, nil
	})
	tool := NewRipgrepTool(5).WithExecutor(failing)

	result, err := NewDefaultExecutor().Execute(context.Background(), tool, json.RawMessage(`{"pattern":"x"}`))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Success() {
		t.Error("expected failure")
	}
	if calls != 1 {
		t.Errorf("search ran %d times, want 1", calls)
	}
}

func TestExecutorTimeout(t *testing.T) {
	var deadline time.Time
	probe := ripgrep.ExecutorFunc(func(ctx context.Context, args []string) (*ripgrep.ExecutionResult, error) {
		deadline, _ = ctx.Deadline()
		return &ripgrep.ExecutionResult{Args: args, ExitCode: 1}, nil
	})
	tool := NewRipgrepTool(0).WithExecutor(probe)

	start := time.Now()
	_, err := NewDefaultExecutor().ExecuteWithTimeout(context.Background(), tool, json.RawMessage(`{"pattern":"x"}`), 2*time.Second)
	if err != nil {
		t.Fatalf("ExecuteWithTimeout() error = %v", err)
	}
	if deadline.IsZero() || deadline.Sub(start) > 3*time.Second {
		t.Errorf("deadline = %v", deadline)
	}
}

func TestToolResultJSON(t *testing.T) {
	ok, _ := json.Marshal(SuccessResult("done"))
	if string(ok) != `{"success":true,"output":"done"}` {
		t.Errorf("success JSON = %s", ok)
	}
	bad, _ := json.Marshal(FailureResult(errors.New("boom")))
	if string(bad) != `{"success":false,"output":"","error":"boom"}` {
		t.Errorf("failure JSON = %s", bad)
	}
}

func TestOptionsTool(t *testing.T) {
	tool := NewOptionsTool()

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"group":"case"}`))
	if err != nil || !result.Success() {
		t.Fatalf("Execute() = %+v, %v", result, err)
	}
	var infos []OptionInfo
	if err := json.Unmarshal([]byte(result.Output), &infos); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	var names []string
	for _, i := range infos {
		names = append(names, i.Name)
	}
	if !reflect.DeepEqual(names, []string{"case-sensitive", "ignore-case", "smart-case"}) {
		t.Errorf("case group = %v", names)
	}

	all, _ := tool.Execute(context.Background(), nil)
	if err := json.Unmarshal([]byte(all.Output), &infos); err != nil || len(infos) != len(ripgrep.Options()) {
		t.Errorf("listed %d options, want %d (%v)", len(infos), len(ripgrep.Options()), err)
	}

	missing, _ := tool.Execute(context.Background(), json.RawMessage(`{"group":"colour"}`))
	if missing.Success() {
		t.Error("unknown group succeeded")
	}
}

func TestDescribeOption(t *testing.T) {
	info := DescribeOption(ripgrep.OptAfterContext)
	if info.Name != "after-context" || info.Short != "-A" || info.Arity != "one" || info.Group != "context" {
		t.Errorf("DescribeOption() = %+v", info)
	}
}

func TestHistoryTool(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemoryStorage()

	tool := NewRipgrepTool(5).WithExecutor(storage.NewRecordingExecutor(&captureExecutor{stdout: sampleStream}, store))
	if result, _ := tool.Execute(ctx, json.RawMessage(`{"pattern":"TODO"}`)); !result.Success() {
		t.Fatalf("search failed: %v", result.Error)
	}

	history := NewHistoryTool(store)
	list, err := history.Execute(ctx, nil)
	if err != nil || !list.Success() {
		t.Fatalf("list = %+v, %v", list, err)
	}
	var runs []RunSummary
	if err := json.Unmarshal([]byte(list.Output), &runs); err != nil || len(runs) != 1 {
		t.Fatalf("runs = %+v, %v", runs, err)
	}
	if !strings.Contains(runs[0].Command, "--json") {
		t.Errorf("Command = %q", runs[0].Command)
	}

	args, _ := json.Marshal(map[string]string{"id": runs[0].ID})
	shown, err := history.Execute(ctx, args)
	if err != nil || !shown.Success() {
		t.Fatalf("show = %+v, %v", shown, err)
	}
	if !strings.HasPrefix(shown.Output, `{"pkg/a.go":`) {
		t.Errorf("show output = %s", shown.Output)
	}

	missing, _ := history.Execute(ctx, json.RawMessage(`{"id":"nope"}`))
	if missing.Success() {
		t.Error("unknown id succeeded")
	}
	if err := history.Validate(json.RawMessage(`{"limit":-1}`)); err == nil {
		t.Error("negative limit accepted")
	}
}

func TestRegistryCall(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(NewRipgrepTool(5).WithExecutor(&captureExecutor{stdout: sampleStream})); err != nil {
		t.Fatal(err)
	}

	result, err := registry.Call(context.Background(), "ripgrep", json.RawMessage(`{"pattern":"TODO","view":"raw"}`))
	if err != nil || !result.Success() {
		t.Fatalf("Call() = %+v, %v", result, err)
	}
	if result.Command != "rg --json --no-messages --max-count 200 TODO ." {
		t.Errorf("Command = %q", result.Command)
	}
	if result.Matched == nil || !*result.Matched {
		t.Errorf("Matched = %v, want true", result.Matched)
	}

	data, _ := json.Marshal(result)
	if !strings.Contains(string(data), `"matched":true`) || !strings.Contains(string(data), `"command":"rg --json`) {
		t.Errorf("JSON = %s", data)
	}

	if _, err := registry.Call(context.Background(), "grep", nil); err == nil {
		t.Error("unknown tool accepted")
	}
}

func TestRipgrepToolNoMatch(t *testing.T) {
	tool := NewRipgrepTool(5).WithExecutor(&captureExecutor{exit: 1})
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"pattern":"absent"}`))
	if err != nil || !result.Success() {
		t.Fatalf("Execute() = %+v, %v", result, err)
	}
	if result.Matched == nil || *result.Matched {
		t.Errorf("Matched = %v, want false", result.Matched)
	}
	if result.Output != "{}" {
		t.Errorf("Output = %q, want {}", result.Output)
	}
}

func TestPathAllowed(t *testing.T) {
	tests := []struct {
		path    string
		allowed []string
		want    bool
	}{
		{"/srv/repo", nil, true},
		{"/srv/repo", []string{"/srv/repo"}, true},
		{"/srv/repo/pkg/a.go", []string{"/srv/repo"}, true},
		{"/srv/repo-other", []string{"/srv/repo"}, false},
		{"/srv", []string{"/srv/repo"}, false},
		{"/srv/repo/../etc", []string{"/srv/repo"}, false},
		{"/srv/repo/..data", []string{"/srv/repo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := pathAllowed(tt.path, tt.allowed); got != tt.want {
				t.Errorf("pathAllowed(%q, %v) = %v, want %v", tt.path, tt.allowed, got, tt.want)
			}
		})
	}
}
