package config

import (
	"fmt"
	"strings"

	"github.com/richinex/ripgrepy/ripgrep"
)

// OptionArg is an option given as text, e.g. "max-count=5" or "hidden".
type OptionArg struct {
	Name     string
	Value    string
	HasValue bool
}

// ParseOptionArg parses "name" or "name=value". The name must resolve in
// the option registry; arity is checked when the option is applied.
func ParseOptionArg(raw string) (OptionArg, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(raw), "=")
	name = strings.TrimLeft(name, "-")
	if name == "" {
		return OptionArg{}, fmt.Errorf("empty option name in %q", raw)
	}
	if _, err := ripgrep.Lookup(name); err != nil {
		return OptionArg{}, err
	}
	return OptionArg{Name: name, Value: value, HasValue: hasValue}, nil
}

// Apply sets the option on search.
func (o OptionArg) Apply(search *ripgrep.Search) error {
	if o.HasValue {
		return search.SetNamed(o.Name, o.Value)
	}
	return search.SetNamed(o.Name)
}

func (o OptionArg) String() string {
	if o.HasValue {
		return o.Name + "=" + o.Value
	}
	return o.Name
}
