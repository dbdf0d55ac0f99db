package dsa

import (
	"reflect"
	"testing"
)

func TestTrieInsertSearch(t *testing.T) {
	tr := NewTrie[int]()
	tr.Insert("src/main.go", 1)
	tr.Insert("src/util.go", 2)
	tr.Insert("src/main.go", 3)

	if tr.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tr.Size())
	}
	if v, ok := tr.Search("src/main.go"); !ok || v != 3 {
		t.Errorf("Search() = %d, %v, want replaced value 3", v, ok)
	}
	if _, ok := tr.Search("src"); ok {
		t.Error("Search() found a prefix that was never inserted")
	}

	if !tr.Delete("src/util.go") || tr.Delete("src/util.go") {
		t.Error("Delete() should succeed once")
	}
	if tr.Size() != 1 {
		t.Errorf("Size() after delete = %d", tr.Size())
	}
}

func TestTrieStartsWith(t *testing.T) {
	tr := NewTrie[struct{}]()
	for _, k := range []string{"b/x", "a/2", "a/1", "c"} {
		tr.Insert(k, struct{}{})
	}
	got := tr.StartsWith("a/")
	want := []string{"a/1", "a/2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StartsWith() = %q, want %q", got, want)
	}
	if got := tr.StartsWith("z"); len(got) != 0 {
		t.Errorf("StartsWith(z) = %q", got)
	}
}

func TestTrieUnder(t *testing.T) {
	tr := NewTrie[int]()
	keys := []string{"src", "src/a.go", `src\win.go`, "srcgen/b.go", "docs/c.md"}
	for i, k := range keys {
		tr.Insert(k, i)
	}

	tests := []struct {
		dir  string
		want []string
	}{
		{"src", []string{"src", "src/a.go", `src\win.go`}},
		{"src/", []string{"src", "src/a.go", `src\win.go`}},
		{"srcgen", []string{"srcgen/b.go"}},
		{"doc", nil},
		{"", keys},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			var got []string
			tr.Under(tt.dir, func(k string, v int) {
				if keys[v] != k {
					t.Errorf("value %d does not belong to %q", v, k)
				}
				got = append(got, k)
			})
			if len(got) != len(tt.want) {
				t.Fatalf("Under(%q) = %q, want %q", tt.dir, got, tt.want)
			}
			seen := make(map[string]bool)
			for _, k := range got {
				seen[k] = true
			}
			for _, k := range tt.want {
				if !seen[k] {
					t.Errorf("Under(%q) missing %q", tt.dir, k)
				}
			}
		})
	}
}
