package server

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/entity"
	"github.com/vadiminshakov/factorial/core/tools"
)

const (
	serverName    = "factorial"
	serverVersion = "v0.1.0"
)

// FactorialInput is the argument object of the factorial tools.
type FactorialInput struct {
	N      int64  `json:"n"`
	Format string `json:"format,omitempty"`
}

// ConvertToMCPTools converts our ToolDefinition to MCP tools
func ConvertToMCPTools(defs []entity.ToolDefinition) []*mcp.Tool {
	mcpTools := make([]*mcp.Tool, len(defs))

	for i, def := range defs {
		var inputSchema *jsonschema.Schema
		if def.InputSchema != nil {
			inputSchema = convertSchema(def.InputSchema)
		}

		mcpTools[i] = &mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: inputSchema,
		}
	}

	return mcpTools
}

// convertSchema keeps the type, description, properties and required keys.
func convertSchema(m map[string]any) *jsonschema.Schema {
	s := &jsonschema.Schema{}

	if t, ok := m["type"].(string); ok {
		s.Type = t
	}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if req, ok := m["required"].([]string); ok {
		s.Required = append([]string(nil), req...)
	}

	if props, ok := m["properties"].(map[string]any); ok {
		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)

		s.Properties = make(map[string]*jsonschema.Schema, len(props))
		for _, name := range names {
			if sub, ok := props[name].(map[string]any); ok {
				s.Properties[name] = convertSchema(sub)
			}
		}
	}

	return s
}

// NewServer builds an MCP server exposing every registered tool.
func NewServer() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	for _, tool := range ConvertToMCPTools(tools.GetToolDescriptions()) {
		mcp.AddTool(srv, tool, handlerFor(tool.Name))
	}

	return srv
}

// Run serves MCP over stdin/stdout until ctx is done or the client disconnects.
func Run(ctx context.Context) error {
	if err := NewServer().Run(ctx, mcp.NewStdioTransport()); err != nil {
		return errors.Wrap(err, "mcp server stopped")
	}
	return nil
}

// handlerFor adapts a registry tool to the MCP tool handler signature.
// Tool failures become error results so the client can show them.
func handlerFor(name string) mcp.ToolHandlerFor[FactorialInput, any] {
	return func(
		ctx context.Context,
		_ *mcp.ServerSession,
		params *mcp.CallToolParamsFor[FactorialInput],
	) (*mcp.CallToolResultFor[any], error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		args := map[string]interface{}{"n": params.Arguments.N}
		if params.Arguments.Format != "" {
			args["format"] = params.Arguments.Format
		}

		res := tools.Call(entity.ToolCall{Name: name, Args: args})
		if res.Failed() {
			return &mcp.CallToolResultFor[any]{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: res.Error}},
			}, nil
		}

		return &mcp.CallToolResultFor[any]{
			Content: []mcp.Content{&mcp.TextContent{Text: res.Output}},
		}, nil
	}
}
