package terminal

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/tools"
)

//go:generate mockgen -source=evaluator.go -destination=mock_evaluator.go -package=terminal

// Evaluator turns one line of user input into printable output.
type Evaluator interface {
	Evaluate(input string) (string, error)
}

// ToolEvaluator evaluates input through the factorial tool.
type ToolEvaluator struct{}

func (ToolEvaluator) Evaluate(input string) (string, error) {
	n, err := ParseInput(input)
	if err != nil {
		return "", err
	}
	return tools.Execute("factorial", map[string]interface{}{"n": n})
}

// ParseInput accepts "n", "n!", "fact n" and "factorial n".
func ParseInput(input string) (string, error) {
	s := strings.TrimSpace(input)

	for _, prefix := range []string{"factorial ", "fact "} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
			break
		}
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "!"))

	if s == "" {
		return "", errors.Errorf("cannot parse %q: expected n, n! or fact n", input)
	}
	return s, nil
}
