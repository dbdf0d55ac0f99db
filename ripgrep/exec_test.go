package ripgrep

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestProcessExecutorArgs(t *testing.T) {
	bin := writeScript(t, `for a in "$@"; do printf '%s\n' "$a"; done`)
	args := []string{"--with-filename", "--line-number", "he[l]{2}o", "/tmp/data"}

	res, err := NewProcessExecutor(bin).Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.ExitCode != 0 || res.Err() != nil {
		t.Errorf("ExitCode = %d, Err() = %v", res.ExitCode, res.Err())
	}
	got := strings.Split(strings.TrimSuffix(string(res.Stdout), "\n"), "\n")
	if !reflect.DeepEqual(got, args) {
		t.Errorf("child saw %q, want %q", got, args)
	}
	if res.Binary != bin || !reflect.DeepEqual(res.Args, args) {
		t.Errorf("result = %+v", res)
	}
}

func TestProcessExecutorExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantCode int
		wantErr  bool
	}{
		{"match", `echo "a:1:x"; exit 0`, 0, false},
		{"no match", `exit 1`, 1, false},
		{"no match with warning", `echo "some file unreadable" >&2; exit 1`, 1, false},
		{"error", `echo "regex parse error" >&2; exit 2`, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin := writeScript(t, tt.script)
			res, err := NewProcessExecutor(bin).Execute(context.Background(), nil)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if res.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", res.ExitCode, tt.wantCode)
			}
			if (res.Err() != nil) != tt.wantErr {
				t.Errorf("Err() = %v, wantErr %v", res.Err(), tt.wantErr)
			}
		})
	}
}

func TestProcessExecutorStderr(t *testing.T) {
	bin := writeScript(t, `echo "regex parse error: unclosed group" >&2; exit 2`)
	res, err := NewProcessExecutor(bin).Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var pe *ProcessError
	if !errors.As(res.Err(), &pe) {
		t.Fatalf("Err() = %v, want *ProcessError", res.Err())
	}
	if !strings.Contains(pe.Error(), "unclosed group") {
		t.Errorf("Error() = %q", pe.Error())
	}
}

func TestProcessExecutorNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "rg")
	_, err := NewProcessExecutor(missing).Execute(context.Background(), nil)
	var nf *ExecutableNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Execute() error = %v, want *ExecutableNotFoundError", err)
	}
	if nf.Name != missing {
		t.Errorf("Name = %q", nf.Name)
	}

	e := &ProcessExecutor{lookPath: func(string) (string, error) { return "", os.ErrNotExist }}
	if _, err := e.Resolve(); !errors.Is(err, ErrExecutableNotFound) {
		t.Errorf("Resolve() error = %v", err)
	}
}

func TestProcessExecutorDefaultBinary(t *testing.T) {
	var looked string
	e := &ProcessExecutor{lookPath: func(name string) (string, error) {
		looked = name
		return "/usr/bin/" + name, nil
	}}
	path, err := e.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if looked != DefaultBinary || path != "/usr/bin/rg" {
		t.Errorf("looked up %q, got %q", looked, path)
	}
}

func TestProcessExecutorTimeout(t *testing.T) {
	bin := writeScript(t, `echo partial; exec sleep 5`)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	res, err := NewProcessExecutor(bin).Execute(ctx, nil)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Execute() error = %v, want ErrTimeout", err)
	}
	if res != nil {
		t.Errorf("partial result returned: %+v", res)
	}
	if time.Since(start) > 4*time.Second {
		t.Errorf("timeout took %v", time.Since(start))
	}
}

func TestProcessExecutorCanceled(t *testing.T) {
	bin := writeScript(t, `exec sleep 5`)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := NewProcessExecutor(bin).Execute(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Execute() error = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Error("cancellation reported as timeout")
	}
}

func TestSearchEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fixture := filepath.Join(dir, "out.jsonl")
	if err := os.WriteFile(fixture, []byte(jsonStream), 0o644); err != nil {
		t.Fatal(err)
	}
	bin := writeScript(t, `cat "`+fixture+`"`)

	s := New("hello", dir).JSON().WithBinary(bin).WithTimeout(5 * time.Second)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	g, err := s.Grouped()
	if err != nil {
		t.Fatalf("Grouped() error = %v", err)
	}
	if g.Len() != 3 {
		t.Errorf("Grouped().Len() = %d", g.Len())
	}
	res, err := s.Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	if !reflect.DeepEqual(res.Args, []string{"--json", "hello", dir}) {
		t.Errorf("Args = %q", res.Args)
	}
}

func TestSearchTimeoutEndToEnd(t *testing.T) {
	bin := writeScript(t, `exec sleep 5`)
	s := New("x", ".").WithBinary(bin).WithTimeout(100 * time.Millisecond)

	err := s.Run(context.Background())
	var te *TimeoutError
	if !errors.As(err, &te) || te.Timeout != 100*time.Millisecond {
		t.Fatalf("Run() error = %v, want *TimeoutError after 100ms", err)
	}
	if _, err := s.Output(); !errors.Is(err, ErrTimeout) {
		t.Errorf("Output() error = %v", err)
	}
}
