package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/richinex/ripgrepy/ripgrep"
)

// OptionInfo is the JSON shape of one registry entry.
type OptionInfo struct {
	Name        string   `json:"name"`
	Flags       []string `json:"flags"`
	Short       string   `json:"short,omitempty"`
	Arity       string   `json:"arity"`
	Group       string   `json:"group,omitempty"`
	Description string   `json:"description"`
}

// DescribeOption converts a registry entry for display.
func DescribeOption(o ripgrep.Option) OptionInfo {
	spec := o.Spec()
	info := OptionInfo{
		Name:        spec.Name,
		Flags:       spec.Flags,
		Arity:       spec.Arity.String(),
		Group:       string(spec.Group),
		Description: spec.Description,
	}
	if spec.Short != 0 {
		info.Short = "-" + string(spec.Short)
	}
	return info
}

// OptionsTool lists the ripgrep options a search accepts.
type OptionsTool struct{}

// NewOptionsTool creates the options listing tool.
func NewOptionsTool() *OptionsTool {
	return &OptionsTool{}
}

// Metadata returns the tool metadata.
func (t *OptionsTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "ripgrep_options",
		Description: "List ripgrep options usable in the ripgrep tool's options object, optionally filtered by exclusion group.",
		Parameters: []ToolParameter{
			{Name: "group", ParamType: "string", Description: "Only list options of this exclusion group", Required: false, Enum: groupNames()},
		},
	}
}

// groupNames lists the exclusion groups in registry order.
func groupNames() []string {
	var names []string
	for _, o := range ripgrep.Options() {
		g := string(o.Spec().Group)
		if g != "" && !slices.Contains(names, g) {
			names = append(names, g)
		}
	}
	return names
}

type optionsArgs struct {
	Group string `json:"group"`
}

func parseOptionsArgs(args json.RawMessage) (optionsArgs, error) {
	var a optionsArgs
	if len(args) == 0 {
		return a, nil
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return a, fmt.Errorf("invalid arguments: %w", err)
	}
	return a, nil
}

// Validate validates the arguments.
func (t *OptionsTool) Validate(args json.RawMessage) error {
	_, err := parseOptionsArgs(args)
	return err
}

// Execute lists the matching options as a JSON array.
func (t *OptionsTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	a, err := parseOptionsArgs(args)
	if err != nil {
		return FailureResult(err), nil
	}

	infos := []OptionInfo{}
	for _, o := range ripgrep.Options() {
		if a.Group != "" && string(o.Spec().Group) != a.Group {
			continue
		}
		infos = append(infos, DescribeOption(o))
	}
	if a.Group != "" && len(infos) == 0 {
		return FailureResultf("unknown option group %q", a.Group), nil
	}

	out, err := json.Marshal(infos)
	if err != nil {
		return FailureResult(err), nil
	}
	return SuccessResult(string(out)), nil
}
