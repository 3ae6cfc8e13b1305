// Package mcp exposes every worker tool on a Model Context Protocol server,
// over streamable HTTP or stdio, and records each call in the audit log.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/ericksa/contractlens/internal/audit"
	"github.com/ericksa/contractlens/internal/workers"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

const (
	serverName    = "contractlens"
	serverVersion = "1.0.0"
)

type Handler struct {
	auditor workers.Auditor
	log     *logrus.Entry
	workers map[string]workers.Worker
	server  *mcp.Server
	http    http.Handler
}

// NewHandler registers the tools of each worker as "<worker>_<tool>".
// auditor may be nil.
func NewHandler(auditor workers.Auditor, log *logrus.Entry, ws ...workers.Worker) *Handler {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	h := &Handler{
		auditor: auditor,
		log:     log,
		workers: make(map[string]workers.Worker, len(ws)),
	}
	for _, w := range ws {
		h.workers[w.Name()] = w
	}
	h.initMCPServer()
	return h
}

func (h *Handler) initMCPServer() {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	for _, name := range h.workerNames() {
		worker := h.workers[name]
		for _, tool := range worker.GetTools() {
			toolName := fmt.Sprintf("%s_%s", name, tool.Name)
			mcp.AddTool(server, &mcp.Tool{
				Name:        toolName,
				Description: tool.Description,
			}, h.wrapTool(toolName))
		}
	}

	h.server = server
	h.http = mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
}

func (h *Handler) wrapTool(toolName string) func(ctx context.Context, req *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, any, error) {
		inputBytes, err := json.Marshal(input)
		if err != nil {
			return nil, nil, err
		}
		result, err := h.ExecuteTool(ctx, toolName, inputBytes)
		if err != nil {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{
					&mcp.TextContent{Text: err.Error()},
				},
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(result)},
			},
		}, nil, nil
	}
}

// Server returns the underlying MCP server, e.g. for in-process sessions.
func (h *Handler) Server() *mcp.Server {
	return h.server
}

// ServeHTTP serves the MCP streamable HTTP transport.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.http.ServeHTTP(w, r)
}

// RunStdio serves MCP over stdin/stdout until ctx is cancelled or the client
// disconnects.
func (h *Handler) RunStdio(ctx context.Context) error {
	return h.server.Run(ctx, &mcp.StdioTransport{})
}

// Tools lists every registered tool name in sorted order.
func (h *Handler) Tools() []string {
	var names []string
	for _, name := range h.workerNames() {
		for _, tool := range h.workers[name].GetTools() {
			names = append(names, name+"_"+tool.Name)
		}
	}
	sort.Strings(names)
	return names
}

// ExecuteTool runs "<worker>_<tool>" and records a TOOL_CALL audit entry.
func (h *Handler) ExecuteTool(ctx context.Context, toolName string, args json.RawMessage) ([]byte, error) {
	worker, short, ok := h.resolve(toolName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", workers.ErrUnknownTool, toolName)
	}
	result, err := worker.Execute(ctx, short, args)
	h.record(ctx, toolName, args, err)
	return result, err
}

func (h *Handler) resolve(toolName string) (workers.Worker, string, bool) {
	for name, worker := range h.workers {
		fullPrefix := name + "_"
		if len(toolName) > len(fullPrefix) && strings.HasPrefix(toolName, fullPrefix) {
			return worker, toolName[len(fullPrefix):], true
		}
	}
	return nil, "", false
}

func (h *Handler) record(ctx context.Context, toolName string, args json.RawMessage, callErr error) {
	var ref struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(args, &ref)

	details := toolName + ": ok"
	entry := h.log.WithField("tool", toolName)
	if callErr != nil {
		details = toolName + ": " + callErr.Error()
		entry.WithError(callErr).Warn("tool call failed")
	} else {
		entry.Debug("tool call")
	}

	if h.auditor == nil {
		return
	}
	if err := h.auditor.Log(ctx, audit.ActionToolCall, ref.ID, details); err != nil {
		h.log.WithError(err).Warn("audit log write failed")
	}
}

func (h *Handler) workerNames() []string {
	names := make([]string, 0, len(h.workers))
	for name := range h.workers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
