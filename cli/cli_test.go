package cli

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/richinex/ripgrepy/config"
	"github.com/richinex/ripgrepy/ripgrep"
	"github.com/richinex/ripgrepy/storage"
)

const stream = `{"type":"begin","data":{"path":{"text":"pkg/a.go"}}}
{"type":"match","data":{"path":{"text":"pkg/a.go"},"lines":{"text":"TODO: fix\n"},"line_number":12,"absolute_offset":300,"submatches":[{"match":{"text":"TODO"},"start":0,"end":4}]}}
{"type":"end","data":{"path":{"text":"pkg/a.go"},"binary_offset":null,"stats":{"elapsed":{"secs":0,"nanos":1000,"human":"0.000001s"},"searches":1,"searches_with_match":1,"bytes_searched":400,"bytes_printed":200,"matched_lines":1,"matches":1}}}
`

type fakeRG struct {
	args   []string
	exit   int
	stdout string
}

func (f *fakeRG) Execute(_ context.Context, args []string) (*ripgrep.ExecutionResult, error) {
	f.args = append([]string(nil), args...)
	return &ripgrep.ExecutionResult{Binary: "rg", Args: args, ExitCode: f.exit, Stdout: []byte(f.stdout)}, nil
}

func testOptions(view string, exec ripgrep.Executor, out *bytes.Buffer) Options {
	return Options{View: view, Executor: exec, Out: out}
}

func TestSearchViews(t *testing.T) {
	tests := []struct {
		view string
		want string
	}{
		{ViewGrouped, "pkg/a.go\n12:TODO: fix\n"},
		{ViewRecords, "begin   pkg/a.go\nmatch   pkg/a.go:12: TODO: fix\nend     pkg/a.go (1 matches)\n"},
		{ViewMatches, `[{"type":"match"`},
		{ViewJSON, "{\n  \"pkg/a.go\": ["},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			var out bytes.Buffer
			rg := &fakeRG{stdout: stream}
			err := Search(context.Background(), config.Default(), "TODO", "pkg", testOptions(tt.view, rg, &out))
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if !strings.HasPrefix(out.String(), tt.want) {
				t.Errorf("output = %q, want prefix %q", out.String(), tt.want)
			}
			if !slices.Contains(rg.args, "--json") {
				t.Errorf("args %q lack --json", rg.args)
			}
		})
	}
}

func TestSearchRawKeepsPlainOutput(t *testing.T) {
	var out bytes.Buffer
	rg := &fakeRG{stdout: "a.txt:1:hello\n"}
	opts := testOptions(ViewRaw, rg, &out)
	opts.Opts = []string{"line-number", "glob=*.txt"}

	if err := Search(context.Background(), config.Default(), "hello", ".", opts); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	want := []string{"--line-number", "--glob", "*.txt", "hello", "."}
	if !slices.Equal(rg.args, want) {
		t.Errorf("args = %q, want %q", rg.args, want)
	}
	if out.String() != "a.txt:1:hello\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestSearchAppliesConfiguredDefaults(t *testing.T) {
	settings := config.Default()
	hidden, err := config.ParseOptionArg("hidden")
	if err != nil {
		t.Fatal(err)
	}
	settings.Search.DefaultOptions = []config.OptionArg{hidden}

	rg := &fakeRG{exit: 1}
	opts := testOptions(ViewRaw, rg, &bytes.Buffer{})
	opts.Opts = []string{"max-count=3"}

	err = Search(context.Background(), settings, "x", "src", opts)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("Search() error = %v, want ErrNoMatch", err)
	}
	if want := []string{"--hidden", "--max-count", "3", "x", "src"}; !slices.Equal(rg.args, want) {
		t.Errorf("args = %q, want %q", rg.args, want)
	}
}

func TestSearchRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		view string
		opts []string
	}{
		{"unknown view", "table", nil},
		{"unknown option", ViewRaw, []string{"frobnicate"}},
		{"missing value", ViewRaw, []string{"max-count"}},
		{"output conflicts with json", ViewGrouped, []string{"count"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rg := &fakeRG{}
			opts := testOptions(tt.view, rg, &bytes.Buffer{})
			opts.Opts = tt.opts
			if err := Search(context.Background(), config.Default(), "x", ".", opts); err == nil {
				t.Error("expected error")
			}
			if rg.args != nil {
				t.Errorf("search ran with %q", rg.args)
			}
		})
	}
}

func TestSearchProcessError(t *testing.T) {
	rg := &fakeRG{exit: 2}
	err := Search(context.Background(), config.Default(), "(", ".", testOptions(ViewGrouped, rg, &bytes.Buffer{}))
	var pe *ripgrep.ProcessError
	if !errors.As(err, &pe) || pe.ExitCode != 2 {
		t.Errorf("Search() error = %v, want ProcessError", err)
	}
}

func TestRecordAndHistory(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemoryStorage()

	opts := testOptions(ViewGrouped, &fakeRG{stdout: stream}, &bytes.Buffer{})
	opts.Record = true
	opts.Store = store
	if err := Search(ctx, config.Default(), "TODO", "pkg", opts); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	runs, err := store.List(ctx, 0)
	if err != nil || len(runs) != 1 {
		t.Fatalf("List() = %v, %v", runs, err)
	}

	var listed bytes.Buffer
	if err := History(ctx, &listed, store, HistoryOptions{}); err != nil {
		t.Fatalf("History(list) error = %v", err)
	}
	if !strings.Contains(listed.String(), runs[0].ID) || !strings.Contains(listed.String(), "rg --json TODO pkg") {
		t.Errorf("listing = %q", listed.String())
	}

	var shown bytes.Buffer
	if err := History(ctx, &shown, store, HistoryOptions{ID: runs[0].ID}); err != nil {
		t.Fatalf("History(show) error = %v", err)
	}
	if shown.String() != "pkg/a.go\n12:TODO: fix\n" {
		t.Errorf("show = %q", shown.String())
	}

	if err := History(ctx, &bytes.Buffer{}, store, HistoryOptions{ID: runs[0].ID, Delete: true}); err != nil {
		t.Fatalf("History(delete) error = %v", err)
	}
	err = History(ctx, &bytes.Buffer{}, store, HistoryOptions{ID: runs[0].ID})
	if !errors.Is(err, storage.ErrRunNotFound) {
		t.Errorf("show after delete = %v, want ErrRunNotFound", err)
	}
}

func TestHistoryShowsPlainRunsRaw(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemoryStorage()
	res := &ripgrep.ExecutionResult{Binary: "rg", Args: []string{"x", "."}, Stdout: []byte("a:1:x\n")}
	rec := storage.NewRunRecord(res, time.Now())
	if err := store.Save(ctx, rec); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := History(ctx, &out, store, HistoryOptions{ID: rec.ID}); err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if out.String() != "a:1:x\n" {
		t.Errorf("show = %q", out.String())
	}

	err := History(ctx, &bytes.Buffer{}, store, HistoryOptions{ID: rec.ID, View: ViewGrouped})
	if !errors.Is(err, ripgrep.ErrUnstructuredOutput) {
		t.Errorf("grouped view of plain run = %v, want ErrUnstructuredOutput", err)
	}
	if err := History(ctx, &bytes.Buffer{}, store, HistoryOptions{Delete: true}); err == nil {
		t.Error("delete without id succeeded")
	}
}

func TestListOptions(t *testing.T) {
	var out bytes.Buffer
	if err := ListOptions(&out, "case", false); err != nil {
		t.Fatalf("ListOptions() error = %v", err)
	}
	for _, want := range []string{"-s, --case-sensitive\n", "-i, --ignore-case\n", "-S, --smart-case\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "--hidden") {
		t.Error("group filter ignored")
	}

	out.Reset()
	if err := ListOptions(&out, "context", false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "-A, --after-context <one>\n") {
		t.Errorf("context group = %s", out.String())
	}

	if err := ListOptions(&bytes.Buffer{}, "colour", false); err == nil {
		t.Error("unknown group accepted")
	}
}

func TestListTools(t *testing.T) {
	var out bytes.Buffer
	if err := ListTools(&out, true); err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	for _, want := range []string{"  ripgrep\n", "  ripgrep_options\n", "      pattern*: string - "} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
}

func TestCallTool(t *testing.T) {
	var out bytes.Buffer
	if err := CallTool(context.Background(), &out, "ripgrep_options", `{"group":"mmap"}`); err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if !strings.Contains(out.String(), `"success": true`) || !strings.Contains(out.String(), `no-mmap`) {
		t.Errorf("output = %s", out.String())
	}

	if err := CallTool(context.Background(), &bytes.Buffer{}, "sed", ""); err == nil {
		t.Error("unknown tool accepted")
	}
}
