package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/richinex/ripgrepy/ripgrep"
)

// source is what a view is rendered from: a finished search or a stored
// run re-interpreted.
type source interface {
	Records() ([]ripgrep.Record, error)
	Grouped() (*ripgrep.Grouped, error)
	MatchesJSON() ([]byte, error)
}

type printer struct {
	w      io.Writer
	path   *color.Color
	lineNo *color.Color
	match  *color.Color
	dim    *color.Color
}

func newPrinter(w io.Writer, enabled bool) *printer {
	p := &printer{
		w:      w,
		path:   color.New(color.FgMagenta, color.Bold),
		lineNo: color.New(color.FgGreen),
		match:  color.New(color.FgRed, color.Bold),
		dim:    color.New(color.Faint),
	}
	if !enabled {
		for _, c := range []*color.Color{p.path, p.lineNo, p.match, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) view(src source, text func() (string, error), view string) error {
	switch view {
	case ViewRaw:
		out, err := text()
		if err != nil {
			return err
		}
		_, err = io.WriteString(p.w, out)
		return err
	case ViewRecords:
		records, err := src.Records()
		if err != nil {
			return err
		}
		for _, r := range records {
			p.record(r)
		}
		return nil
	case ViewJSON:
		g, err := src.Grouped()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", out)
		return nil
	case ViewMatches:
		out, err := src.MatchesJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", out)
		return nil
	default:
		g, err := src.Grouped()
		if err != nil {
			return err
		}
		p.grouped(g)
		return nil
	}
}

func (p *printer) grouped(g *ripgrep.Grouped) {
	for i, path := range g.Paths() {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		fmt.Fprintln(p.w, p.path.Sprint(path))
		for _, e := range g.Matches(path) {
			fmt.Fprintf(p.w, "%s:%s\n", p.lineNo.Sprint(e.LineNumber), p.highlight(e))
		}
	}
	if n := g.Skipped(); n > 0 {
		fmt.Fprintln(p.w, p.dim.Sprintf("(%d matches with non-UTF-8 content not shown; use --view records)", n))
	}
}

// highlight colours the submatch ranges of an entry. Ranges past the
// trimmed text are clamped.
func (p *printer) highlight(e ripgrep.Entry) string {
	var b strings.Builder
	pos := 0
	for _, sm := range e.Submatches {
		start, end := min(sm.Start, len(e.Text)), min(sm.End, len(e.Text))
		if start < pos || end < start {
			continue
		}
		b.WriteString(e.Text[pos:start])
		b.WriteString(p.match.Sprint(e.Text[start:end]))
		pos = end
	}
	b.WriteString(e.Text[pos:])
	return b.String()
}

func (p *printer) record(r ripgrep.Record) {
	path, _ := r.Path()
	switch r.Type {
	case ripgrep.RecordBegin:
		fmt.Fprintf(p.w, "begin   %s\n", p.path.Sprint(path.String()))
	case ripgrep.RecordMatch:
		fmt.Fprintf(p.w, "match   %s:%s: %s\n", path.String(), p.lineNo.Sprint(r.Match.LineNumber), trimLine(r.Match.Lines.String()))
	case ripgrep.RecordContext:
		fmt.Fprintf(p.w, "context %s-%d- %s\n", path.String(), r.Context.LineNumber, trimLine(r.Context.Lines.String()))
	case ripgrep.RecordEnd:
		fmt.Fprintf(p.w, "end     %s (%d matches)\n", path.String(), r.End.Stats.Matches)
	case ripgrep.RecordSummary:
		st := r.Summary.Stats
		fmt.Fprintln(p.w, p.dim.Sprintf("summary %d matches in %d of %d files, %s",
			st.Matches, st.SearchesWithMatch, st.Searches, r.Summary.ElapsedTotal.Duration()))
	}
}

func trimLine(s string) string {
	return strings.TrimRight(s, "\r\n")
}
