package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
)

// Input is one line read from the REPL.
type Input struct {
	// Expr is the text to evaluate, empty when nothing is to be evaluated.
	Expr string
	// Format is set when the user asked to switch the output format.
	Format string
	// Exit requests the loop to stop.
	Exit bool
	// Reconfigured is set after a successful interactive setup.
	Reconfigured bool
}

// REPLCommands stores command history and provides REPL functionality
type REPLCommands struct {
	history     []string
	historyFile string
	readline    *readline.Instance
}

// createReadline creates a new readline instance with standard configuration
func createReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            "",
		HistoryFile:       historyFile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

// NewREPL creates a new REPL interface
func NewREPL(historyFile string) (*REPLCommands, error) {
	rl, err := createReadline(historyFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize readline")
	}

	return &REPLCommands{
		history:     make([]string, 0),
		historyFile: historyFile,
		readline:    rl,
	}, nil
}

func formatItems() []readline.PrefixCompleterInterface {
	items := make([]readline.PrefixCompleterInterface, 0, len(config.Formats))
	for _, f := range config.Formats {
		items = append(items, readline.PcItem(f))
	}
	return items
}

// completer provides auto-completion for built-in commands
var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("clear"),
	readline.PcItem("history"),
	readline.PcItem("format", formatItems()...),
	readline.PcItem("reconfig"),
	readline.PcItem("exit"),
)

// Close releases REPL resources
func (r *REPLCommands) Close() {
	if r.readline != nil {
		r.readline.Close()
	}
}

// ShowWelcome prints the welcome message
func (r *REPLCommands) ShowWelcome() {
	fmt.Print("\033[2J\033[H")

	fmt.Println()
	fmt.Println(BrightCyan("n! calculator"))
	fmt.Println()
	fmt.Println(Info("Enter a non-negative integer, e.g. 10 or 10! or fact 10"))
	fmt.Println(Dim("Available commands: help, clear, history, format, reconfig, exit"))
	fmt.Println()
}

// GetPrompt returns a styled prompt for user input
func (r *REPLCommands) GetPrompt() string {
	timestamp := time.Now().Format("15:04")
	return fmt.Sprintf("%s [%s] %s ",
		BrightBlue("factorial"),
		Dim(timestamp),
		BrightGreen("❯"))
}

// ReadInput reads user input and handles built-in commands
func (r *REPLCommands) ReadInput() Input {
	r.readline.SetPrompt(r.GetPrompt())

	line, err := r.readline.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return Input{}
		}
		// io.EOF and anything unexpected end the session
		return Input{Exit: true}
	}

	return r.handleLine(line)
}

func (r *REPLCommands) handleLine(line string) Input {
	inputStr := strings.TrimSpace(line)
	if inputStr == "" {
		return Input{}
	}

	r.history = append(r.history, inputStr)

	fields := strings.Fields(inputStr)
	switch fields[0] {
	case "exit", "quit":
		return Input{Exit: true}

	case "help":
		r.showHelp(stdout)
		return Input{}

	case "clear":
		r.clear()
		return Input{}

	case "history":
		r.showHistory(stdout)
		return Input{}

	case "format":
		if len(fields) != 2 {
			fmt.Fprintln(stdout, Warning("usage: format <"+strings.Join(config.Formats, "|")+">"))
			return Input{}
		}
		return Input{Format: fields[1]}

	case "reconfig":
		return Input{Reconfigured: r.reconfig()}

	default:
		return Input{Expr: inputStr}
	}
}

// showHelp prints built-in command help
func (r *REPLCommands) showHelp(w io.Writer) {
	helpText := `Available commands:

Input:
  <n>, <n>!, fact <n>  – compute n!

General:
  help           – show this help
  clear          – clear the screen
  history        – show command history
  format <name>  – switch output (` + strings.Join(config.Formats, ", ") + `)
  reconfig       – recreate configuration
  exit           – quit the program`

	fmt.Fprintln(w, helpText)
}

// clear clears the terminal screen
func (r *REPLCommands) clear() {
	fmt.Print("\033[2J\033[H")
	fmt.Println(BrightCyan("🧹 Screen cleared"))
	fmt.Println()
}

// showHistory prints the last ten entries of the command history
func (r *REPLCommands) showHistory(w io.Writer) {
	fmt.Fprintln(w)
	if len(r.history) == 0 {
		fmt.Fprintln(w, Info("Command history is empty"))
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, BrightCyan("📜 Command history:"))
	fmt.Fprintln(w)

	start := 0
	if len(r.history) > 10 {
		start = len(r.history) - 10
		fmt.Fprintln(w, Dim("... (showing last 10 commands)"))
	}

	for i := start; i < len(r.history); i++ {
		cmd := r.history[i]
		if len(cmd) > 60 {
			cmd = cmd[:57] + "..."
		}
		fmt.Fprintf(w, "%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), BrightWhite(cmd))
	}
	fmt.Fprintln(w)
}

// ShowError prints the error in a formatted style
func ShowError(err error) {
	fmt.Println(Error(err.Error()))
}

func (r *REPLCommands) reconfig() bool {
	fmt.Println()

	if r.readline != nil {
		r.readline.Close()
	}

	_, err := setup()

	rl, reinitErr := createReadline(r.historyFile)
	if reinitErr != nil {
		fmt.Println(Error("failed to reinitialize readline: " + reinitErr.Error()))
		return false
	}
	r.readline = rl

	if err != nil {
		fmt.Println(Error("failed to reconfigure: " + err.Error()))
		fmt.Println()
		return false
	}
	fmt.Println(Success("configuration updated."))
	fmt.Println()
	return true
}
