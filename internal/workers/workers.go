package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool is returned by Execute for a tool the worker does not expose.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInvalidInput marks caller mistakes: malformed JSON, missing or blank fields.
	ErrInvalidInput = errors.New("invalid input")
)

type ToolDef struct {
	Name        string
	Description string
}

// Worker is a named group of tools. Execute accepts the bare tool name or the
// "<worker>_<tool>" form used on the MCP server.
type Worker interface {
	Name() string
	GetTools() []ToolDef
	Execute(ctx context.Context, name string, input json.RawMessage) ([]byte, error)
}

// Auditor records worker actions. *audit.Auditor satisfies it.
type Auditor interface {
	Log(ctx context.Context, action, contractID, details string) error
}

func decode(input json.RawMessage, req any) error {
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	if err := json.Unmarshal(input, req); err != nil {
		return fmt.Errorf("%w: failed to parse request: %v", ErrInvalidInput, err)
	}
	return nil
}

func toolName(worker, name string) string {
	prefix := worker + "_"
	if len(name) > len(prefix) && name[:len(prefix)] == prefix {
		return name[len(prefix):]
	}
	return name
}
