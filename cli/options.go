package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/richinex/ripgrepy/ripgrep"
	"github.com/richinex/ripgrepy/tools"
)

// ListOptions prints the option registry, optionally limited to one
// exclusion group. Verbose adds the flag spellings.
func ListOptions(w io.Writer, group string, verbose bool) error {
	printed := 0
	for _, o := range ripgrep.Options() {
		info := tools.DescribeOption(o)
		if group != "" && info.Group != group {
			continue
		}
		printed++

		name := "--" + info.Name
		if info.Short != "" {
			name = info.Short + ", " + name
		}
		if info.Arity != ripgrep.ArityNone.String() {
			name += " <" + info.Arity + ">"
		}
		fmt.Fprintf(w, "  %s\n", name)
		fmt.Fprintf(w, "    %s\n", info.Description)
		if info.Group != "" {
			fmt.Fprintf(w, "    group: %s\n", info.Group)
		}
		if verbose && len(info.Flags) > 1 {
			fmt.Fprintf(w, "    flags: %s\n", strings.Join(info.Flags, " "))
		}
	}
	if printed == 0 && group != "" {
		return fmt.Errorf("unknown option group %q", group)
	}
	return nil
}

// ListTools lists the tools exposed to tool-calling clients.
func ListTools(w io.Writer, verbose bool) error {
	registry, err := tools.WithDefaults()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available tools:")
	fmt.Fprintln(w)

	for _, meta := range registry.List() {
		fmt.Fprintf(w, "  %s\n", meta.Name)
		fmt.Fprintf(w, "    %s\n", meta.Description)

		if verbose && len(meta.Parameters) > 0 {
			fmt.Fprintln(w, "    Parameters:")
			for _, param := range meta.Parameters {
				req := ""
				if param.Required {
					req = "*"
				}
				fmt.Fprintf(w, "      %s%s: %s - %s\n", param.Name, req, param.ParamType, param.Description)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

// CallTool runs one tool with JSON arguments and prints its result as
// JSON. A failed tool call is printed, not returned.
func CallTool(ctx context.Context, w io.Writer, name, args string) error {
	registry, err := tools.WithDefaults()
	if err != nil {
		return err
	}
	var raw json.RawMessage
	if args != "" {
		raw = json.RawMessage(args)
	}
	result, err := registry.Call(ctx, name, raw)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", out)
	return nil
}
