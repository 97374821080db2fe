package tools

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

type ToolFunc func(args map[string]interface{}) (string, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]ToolFunc)
)

func Register(name string, fn ToolFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

func Execute(name string, args map[string]interface{}) (string, error) {
	registryMu.RLock()
	fn, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return "", errors.Errorf("tool %s not found", name)
	}

	return fn(args)
}

// List returns registered tool names in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ClearRegistry removes every registered tool.
func ClearRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]ToolFunc)
}

// RegisterBuiltins (re)registers the factorial tools.
func RegisterBuiltins() {
	Register("factorial", factorialTool)
	Register("factorial_digits", factorialDigitsTool)
}

func init() {
	RegisterBuiltins()
}
