// Tool Executor.
//
// Information Hiding:
// - Validation before execution hidden
// - Timeout enforcement hidden
// - Per-call logging internalized

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Executor runs tools with validation and a timeout. Searches are never
// retried: a search runs at most once per request.
type Executor struct {
	config ToolConfig
	logger *log.Logger
}

// NewExecutor creates a new tool executor with the given configuration.
func NewExecutor(config ToolConfig) *Executor {
	return &Executor{config: config, logger: log.New(io.Discard)}
}

// NewDefaultExecutor creates an executor with default configuration.
func NewDefaultExecutor() *Executor {
	return NewExecutor(DefaultToolConfig())
}

// WithLogger sets the logger used for per-call debug output.
func (e *Executor) WithLogger(l *log.Logger) *Executor {
	if l != nil {
		e.logger = l
	}
	return e
}

// Execute validates args and runs the tool once under the configured
// timeout.
func (e *Executor) Execute(ctx context.Context, tool Tool, args json.RawMessage) (ToolResult, error) {
	return e.ExecuteWithTimeout(ctx, tool, args, e.config.callTimeout())
}

// ExecuteWithTimeout runs a tool with a specific timeout.
func (e *Executor) ExecuteWithTimeout(ctx context.Context, tool Tool, args json.RawMessage, timeout time.Duration) (ToolResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name := tool.Metadata().Name
	start := time.Now()
	result, err := ExecuteOnce(ctx, tool, args)
	if err != nil {
		e.logger.Debug("tool error", "tool", name, "error", err, "elapsed", time.Since(start))
		return result, err
	}
	e.logger.Debug("tool finished", "tool", name, "success", result.Success(), "elapsed", time.Since(start))
	return result, nil
}

// ExecuteOnce runs a tool once without retries.
func ExecuteOnce(ctx context.Context, tool Tool, args json.RawMessage) (ToolResult, error) {
	// Validate first
	if err := tool.Validate(args); err != nil {
		return FailureResult(fmt.Errorf("validation failed: %w", err)), nil
	}

	return tool.Execute(ctx, args)
}
