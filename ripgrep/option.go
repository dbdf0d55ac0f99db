// Option registry.
//
// Information Hiding:
// - Flag token spelling hidden behind enumerated Option identifiers
// - Exclusion groups and value vocabularies kept in one static table
// - Name and short-alias resolution abstracted behind Lookup/LookupShort

package ripgrep

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/encoding/htmlindex"
)

// Option identifies one ripgrep flag. The set is closed: every value
// between 0 and the last Opt constant has an entry in the registry table.
type Option int

// Arity describes how many values an option takes per application.
type Arity int

const (
	ArityNone       Arity = iota // flag only
	ArityOne                     // flag followed by exactly one value
	ArityRepeatable              // one value per application, may be applied many times
)

func (a Arity) String() string {
	switch a {
	case ArityNone:
		return "none"
	case ArityOne:
		return "one"
	case ArityRepeatable:
		return "repeatable"
	default:
		return fmt.Sprintf("arity(%d)", int(a))
	}
}

// Group tags options that must not be combined in one invocation.
type Group string

const (
	GroupNone       Group = ""
	GroupContext    Group = "context"
	GroupCase       Group = "case"
	GroupFilename   Group = "filename"
	GroupLineNumber Group = "line-number"
	GroupOutput     Group = "output"
	GroupSort       Group = "sort"
	GroupMmap       Group = "mmap"
	GroupBuffering  Group = "buffering"
	GroupEngine     Group = "engine"
)

// OptionSpec is the static description of one option.
type OptionSpec struct {
	Name        string
	Flags       []string
	Short       rune
	Arity       Arity
	Group       Group
	Description string

	validate func(string) error
}

// TakesValue reports whether the option is followed by a value.
func (s OptionSpec) TakesValue() bool {
	return s.Arity != ArityNone
}

// Spec returns the registry entry for o. Out-of-range values yield the
// zero OptionSpec.
func (o Option) Spec() OptionSpec {
	if !o.valid() {
		return OptionSpec{}
	}
	return registry[o]
}

// String returns the long flag name, e.g. "ignore-case".
func (o Option) String() string {
	if !o.valid() {
		return fmt.Sprintf("option(%d)", int(o))
	}
	return registry[o].Name
}

func (o Option) valid() bool {
	return o >= 0 && int(o) < len(registry)
}

var (
	byName  map[string]Option
	byShort map[rune]Option
	names   []string
)

func init() {
	byName = make(map[string]Option, len(registry))
	byShort = make(map[rune]Option)
	names = make([]string, len(registry))
	for i := range registry {
		o := Option(i)
		byName[registry[i].Name] = o
		names[i] = registry[i].Name
		if r := registry[i].Short; r != 0 {
			byShort[r] = o
		}
	}
}

// Lookup resolves a long option name. Leading dashes are accepted, so
// "ignore-case" and "--ignore-case" resolve to the same option.
func Lookup(name string) (Option, error) {
	bare := strings.TrimLeft(name, "-")
	o, ok := byName[bare]
	if !ok {
		return 0, &UnknownOptionError{Name: name, Suggestions: suggest(bare)}
	}
	return o, nil
}

const maxSuggestions = 3

// suggest returns registered names that fuzzily match an unknown one,
// best first.
func suggest(name string) []string {
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(name, names)
	sort.Stable(matches)

	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, names[m.Index])
	}
	return out
}

// LookupShort resolves a single-letter alias such as 'i' for ignore-case.
func LookupShort(r rune) (Option, error) {
	o, ok := byShort[r]
	if !ok {
		return 0, &UnknownOptionError{Name: "-" + string(r)}
	}
	return o, nil
}

// Options returns every registered option in table order.
func Options() []Option {
	opts := make([]Option, len(registry))
	for i := range registry {
		opts[i] = Option(i)
	}
	return opts
}

// value validators

var sortKeys = []string{"path", "modified", "accessed", "created", "none"}

func validateSortKey(v string) error {
	for _, k := range sortKeys {
		if v == k {
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(sortKeys, ", "))
}

func validateEngine(v string) error {
	switch v {
	case "default", "pcre2", "auto":
		return nil
	}
	return fmt.Errorf("must be one of default, pcre2, auto")
}

// validateGlob checks glob syntax. A leading '!' negates the glob and is
// not part of the pattern.
func validateGlob(v string) error {
	if !doublestar.ValidatePattern(strings.TrimPrefix(v, "!")) {
		return fmt.Errorf("malformed glob: %w", doublestar.ErrBadPattern)
	}
	return nil
}

// validateEncoding accepts ripgrep's special labels plus any WHATWG
// encoding label.
func validateEncoding(v string) error {
	switch strings.ToLower(v) {
	case "auto", "none":
		return nil
	}
	if _, err := htmlindex.Get(v); err != nil {
		return fmt.Errorf("not a known encoding label")
	}
	return nil
}
