package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/tools"
	"github.com/vadiminshakov/factorial/ui"
)

// spinnerThreshold is the smallest n for which the REPL shows a spinner.
const spinnerThreshold = 20000

func RunTerminal(eval Evaluator) error {
	repl, err := ui.NewREPL(tools.Settings().HistoryFile)
	if err != nil {
		return err
	}
	defer repl.Close()
	repl.ShowWelcome()

	for {
		in := repl.ReadInput()
		if in.Exit {
			break
		}

		if in.Reconfigured {
			reloadConfig()
			continue
		}

		if in.Format != "" {
			if err := switchFormat(in.Format); err != nil {
				ui.ShowError(err)
			} else {
				fmt.Println(ui.Success("output format: " + in.Format))
			}
			continue
		}

		if in.Expr == "" {
			continue
		}

		out, err := evaluateWithSpinner(eval, in.Expr)
		if err != nil {
			ui.ShowError(err)
			continue
		}
		fmt.Println(ui.FormatResult(exprLabel(in.Expr), out))
	}

	return nil
}

// RunHeadless evaluates one expression per input line and writes one output
// line per expression. Failures are written as "error: <msg>".
func RunHeadless(r io.Reader, w io.Writer, eval Evaluator) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		if input == "exit" || input == "quit" {
			break
		}

		if input == "" {
			continue
		}

		out, err := eval.Evaluate(input)
		if err != nil {
			out = "error: " + err.Error()
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return errors.Wrap(err, "failed to write result")
		}
	}

	return errors.Wrap(scanner.Err(), "failed to read input")
}

func evaluateWithSpinner(eval Evaluator, expr string) (string, error) {
	if n, err := ParseInput(expr); err == nil {
		if v, err := tools.ParseN(n); err == nil && v >= spinnerThreshold {
			spinner := ui.ShowComputing(os.Stdout, fmt.Sprintf("computing %d!", v))
			defer spinner.Stop()
		}
	}
	return eval.Evaluate(expr)
}

func exprLabel(expr string) string {
	n, err := ParseInput(expr)
	if err != nil {
		return expr
	}
	return n + "!"
}

func switchFormat(format string) error {
	cfg := tools.Settings()
	cfg.Format = format
	return tools.Configure(cfg)
}

func reloadConfig() {
	cfg, err := config.LoadConfigFile()
	if err != nil {
		ui.ShowError(err)
		return
	}
	if err := tools.Configure(cfg); err != nil {
		ui.ShowError(err)
	}
}
