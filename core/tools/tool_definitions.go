package tools

import (
	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/entity"
)

// GetToolDescriptions returns tool definitions
func GetToolDescriptions() []entity.ToolDefinition {
	toolDesc := map[string]string{
		"factorial":        "Compute n! for a non-negative integer n. Example: {\"n\": 10} returns 3628800",
		"factorial_digits": "Count the decimal digits of n!. Example: {\"n\": 100} returns 158",
	}

	var defs []entity.ToolDefinition

	for _, name := range List() {
		desc, ok := toolDesc[name]
		if !ok {
			desc = "Internal tool " + name
		}

		schema := map[string]any{
			"type": "object",
		}

		switch name {
		case "factorial":
			schema["properties"] = map[string]any{
				"n": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"description": "Non-negative integer",
				},
				"format": map[string]any{
					"type":        "string",
					"enum":        config.Formats,
					"description": "Output format, defaults to the configured one",
				},
			}
			schema["required"] = []string{"n"}
		case "factorial_digits":
			schema["properties"] = map[string]any{
				"n": map[string]any{
					"type":    "integer",
					"minimum": 0,
				},
			}
			schema["required"] = []string{"n"}
		}

		defs = append(defs, entity.ToolDefinition{
			Name:        name,
			Description: desc,
			InputSchema: schema,
		})
	}

	return defs
}

// Call runs a ToolCall and captures its outcome as a ToolResult.
func Call(call entity.ToolCall) entity.ToolResult {
	out, err := Execute(call.Name, call.Args)
	if err != nil {
		return entity.ToolResult{Name: call.Name, Error: err.Error()}
	}
	return entity.ToolResult{Name: call.Name, Output: out}
}
