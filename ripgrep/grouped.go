package ripgrep

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"github.com/richinex/ripgrepy/internal/dsa"
)

// Entry is one match, flattened for display.
type Entry struct {
	LineNumber     int64           `json:"line_number"`
	AbsoluteOffset uint64          `json:"absolute_offset"`
	Text           string          `json:"text"`
	LineSpan       int             `json:"line_span"`
	Submatches     []SubmatchEntry `json:"submatches"`
}

// SubmatchEntry is the text and byte range of one submatch within
// Entry.Text.
type SubmatchEntry struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Grouped maps each path with matches to its entries, in first-seen
// order.
//
// Multi-line matches are kept as a single entry whose Text spans several
// lines; LineSpan says how many. Matches whose path or lines arrived as
// base64 bytes are left out and counted by Skipped; use Records to
// inspect them.
type Grouped struct {
	paths   []string
	entries map[string][]Entry
	index   *dsa.Trie[int]
	skipped int
}

func groupMatches(records []Record) *Grouped {
	g := &Grouped{
		entries: make(map[string][]Entry),
		index:   dsa.NewTrie[int](),
	}
	for _, rec := range records {
		m := rec.Match
		if m == nil {
			continue
		}
		if m.Path.Binary() || m.Lines.Binary() {
			g.skipped++
			continue
		}
		path := m.Path.Text
		if _, seen := g.entries[path]; !seen {
			g.index.Insert(path, len(g.paths))
			g.paths = append(g.paths, path)
		}
		g.entries[path] = append(g.entries[path], newEntry(m))
	}
	return g
}

func newEntry(m *Line) Entry {
	text := strings.TrimSuffix(m.Lines.Text, "\n")
	text = strings.TrimSuffix(text, "\r")
	e := Entry{
		LineNumber:     m.LineNumber,
		AbsoluteOffset: m.AbsoluteOffset,
		Text:           text,
		LineSpan:       strings.Count(text, "\n") + 1,
		Submatches:     make([]SubmatchEntry, 0, len(m.Submatches)),
	}
	for _, sm := range m.Submatches {
		e.Submatches = append(e.Submatches, SubmatchEntry{
			Text:  sm.Match.String(),
			Start: sm.Start,
			End:   sm.End,
		})
	}
	return e
}

// Paths returns the paths with at least one entry, in first-seen order.
func (g *Grouped) Paths() []string {
	return append([]string(nil), g.paths...)
}

// Matches returns the entries for path in emission order.
func (g *Grouped) Matches(path string) []Entry {
	return g.entries[path]
}

// Len returns the number of paths.
func (g *Grouped) Len() int { return len(g.paths) }

// Count returns the total number of entries across all paths.
func (g *Grouped) Count() int {
	n := 0
	for _, es := range g.entries {
		n += len(es)
	}
	return n
}

// Skipped returns the number of match records left out because their
// path or lines were not valid UTF-8.
func (g *Grouped) Skipped() int { return g.skipped }

// Under returns the paths equal to dir or inside it, in first-seen order.
// An empty dir returns every path.
func (g *Grouped) Under(dir string) []string {
	var hits []int
	g.index.Under(dir, func(_ string, pos int) {
		hits = append(hits, pos)
	})
	slices.Sort(hits)
	out := make([]string, len(hits))
	for i, pos := range hits {
		out[i] = g.paths[pos]
	}
	return out
}

// MarshalJSON encodes the grouping as an object keyed by path, keeping
// first-seen order.
func (g *Grouped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range g.paths {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.entries[p])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
