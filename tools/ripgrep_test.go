package tools

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/richinex/ripgrepy/ripgrep"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleStream = `{"type":"begin","data":{"path":{"text":"pkg/a.go"}}}
{"type":"match","data":{"path":{"text":"pkg/a.go"},"lines":{"text":"TODO: fix\n"},"line_number":12,"absolute_offset":300,"submatches":[{"match":{"text":"TODO"},"start":0,"end":4}]}}
{"type":"end","data":{"path":{"text":"pkg/a.go"},"binary_offset":null,"stats":{"elapsed":{"secs":0,"nanos":1000,"human":"0.000001s"},"searches":1,"searches_with_match":1,"bytes_searched":400,"bytes_printed":200,"matched_lines":1,"matches":1}}}
`

// captureExecutor records the argument vector and answers with stdout.
type captureExecutor struct {
	args   []string
	exit   int
	stdout string
	stderr string
}

func (c *captureExecutor) Execute(_ context.Context, args []string) (*ripgrep.ExecutionResult, error) {
	c.args = append([]string(nil), args...)
	return &ripgrep.ExecutionResult{
		Binary:   "rg",
		Args:     args,
		ExitCode: c.exit,
		Stdout:   []byte(c.stdout),
		Stderr:   []byte(c.stderr),
	}, nil
}

func TestRipgrepToolValidation(t *testing.T) {
	tool := NewRipgrepTool(5)

	tests := []struct {
		name    string
		args    string
		wantErr bool
	}{
		{name: "valid pattern", args: `{"pattern":"foo"}`},
		{name: "empty pattern", args: `{"pattern":""}`, wantErr: true},
		{name: "empty pattern with passthru", args: `{"pattern":"","passthru":true}`},
		{name: "known view", args: `{"pattern":"x","view":"matches"}`},
		{name: "unknown view", args: `{"pattern":"x","view":"table"}`, wantErr: true},
		{name: "invalid json", args: `{invalid}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tool.Validate(json.RawMessage(tt.args))
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRipgrepToolArgs(t *testing.T) {
	tests := []struct {
		name string
		args string
		want []string
	}{
		{
			name: "defaults",
			args: `{"pattern":"TODO"}`,
			want: []string{"--json", "--no-messages", "--max-count", "200", "TODO", "."},
		},
		{
			name: "common parameters",
			args: `{"pattern":"TODO","path":"src","context":2,"max_results":5,"case_sensitive":false,"fixed_strings":true,"glob":["*.go",""]}`,
			want: []string{"--json", "--no-messages", "--context", "2", "--max-count", "5",
				"--ignore-case", "--fixed-strings", "--glob", "*.go", "TODO", "src"},
		},
		{
			name: "passthru reads whole file",
			args: `{"pattern":"","passthru":true,"path":"a.txt"}`,
			want: []string{"--json", "--no-messages", "--passthru", "--max-count", "200", ".", "a.txt"},
		},
		{
			name: "extra options in name order",
			args: `{"pattern":"x","max_results":1,"options":{"type":["go","md"],"hidden":true,"follow":false,"max-depth":3,"sort":"path"}}`,
			want: []string{"--json", "--no-messages", "--max-count", "1",
				"--hidden", "--max-depth", "3", "--sort", "path", "--type", "go", "--type", "md", "x", "."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &captureExecutor{exit: 1}
			tool := NewRipgrepTool(5).WithExecutor(exec)

			result, err := tool.Execute(context.Background(), json.RawMessage(tt.args))
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !result.Success() {
				t.Fatalf("Execute() failed: %v", result.Error)
			}
			if !reflect.DeepEqual(exec.args, tt.want) {
				t.Errorf("args = %q\nwant   %q", exec.args, tt.want)
			}
		})
	}
}

func TestRipgrepToolRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{"unknown option", `{"pattern":"x","options":{"frobnicate":true}}`},
		{"conflicting case", `{"pattern":"x","case_sensitive":false,"options":{"case-sensitive":true}}`},
		{"conflicting output", `{"pattern":"x","options":{"count":true}}`},
		{"bad sort key", `{"pattern":"x","options":{"sort":"size"}}`},
		{"object value", `{"pattern":"x","options":{"glob":{"a":1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &captureExecutor{}
			tool := NewRipgrepTool(5).WithExecutor(exec)
			result, err := tool.Execute(context.Background(), json.RawMessage(tt.args))
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if result.Success() {
				t.Error("expected failure")
			}
			if exec.args != nil {
				t.Errorf("search ran with %q", exec.args)
			}
		})
	}
}

func TestRipgrepToolViews(t *testing.T) {
	tests := []struct {
		view   string
		prefix string
	}{
		{"", `{"pkg/a.go":[{"line_number":12,`},
		{"grouped", `{"pkg/a.go":[`},
		{"matches", `[{"type":"match"`},
		{"raw", `{"type":"begin"`},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			tool := NewRipgrepTool(5).WithExecutor(&captureExecutor{stdout: sampleStream})
			args, _ := json.Marshal(map[string]string{"pattern": "TODO", "view": tt.view})

			result, err := tool.Execute(context.Background(), args)
			if err != nil || !result.Success() {
				t.Fatalf("Execute() = %+v, %v", result, err)
			}
			if !strings.HasPrefix(result.Output, tt.prefix) {
				t.Errorf("output = %s, want prefix %s", result.Output, tt.prefix)
			}
		})
	}
}

func TestRipgrepToolProcessError(t *testing.T) {
	exec := &captureExecutor{exit: 2, stderr: "regex parse error: unclosed group"}
	tool := NewRipgrepTool(5).WithExecutor(exec)

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"pattern":"("}`))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Success() || !strings.Contains(result.Error.Error(), "unclosed group") {
		t.Errorf("result = %+v", result)
	}
}

func TestRipgrepToolTimeout(t *testing.T) {
	block := ripgrep.ExecutorFunc(func(ctx context.Context, _ []string) (*ripgrep.ExecutionResult, error) {
		<-ctx.Done()
		return nil, &ripgrep.TimeoutError{}
	})
	tool := NewRipgrepTool(1).WithExecutor(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := tool.Execute(ctx, json.RawMessage(`{"pattern":"x"}`))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Success() || !strings.Contains(result.Error.Error(), "timed out") {
		t.Errorf("result = %+v", result)
	}
}

func TestRipgrepToolAllowedPaths(t *testing.T) {
	dir := t.TempDir()
	tool := NewRipgrepTool(5).WithExecutor(&captureExecutor{exit: 1}).WithAllowedPaths(dir)

	args, _ := json.Marshal(map[string]string{"pattern": "x", "path": dir})
	if result, _ := tool.Execute(context.Background(), args); !result.Success() {
		t.Errorf("search inside allowed dir failed: %v", result.Error)
	}

	args, _ = json.Marshal(map[string]string{"pattern": "x", "path": dir + "-other"})
	if result, _ := tool.Execute(context.Background(), args); result.Success() {
		t.Error("search outside allowed dir succeeded")
	}
}
