package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vadiminshakov/factorial/core/config"
	mcpserver "github.com/vadiminshakov/factorial/core/mcp/server"
	"github.com/vadiminshakov/factorial/core/tools"
	"github.com/vadiminshakov/factorial/terminal"
	"github.com/vadiminshakov/factorial/ui"
)

func main() {
	var n = flag.String("n", "", "Compute n! once, print it and exit")
	var headless = flag.Bool("headless", false, "Read one n per line from stdin and print results")
	var mcp = flag.Bool("mcp", false, "Serve the factorial tools over MCP on stdio")
	var format = flag.String("format", "", "Output format: decimal, scientific or digits")
	var configPath = flag.String("config", "", "Path to config file (default ~/.factorial/config.json)")
	var version = flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *version {
		fmt.Println("factorial v0.1.0")
		os.Exit(0)
	}

	interactive := *n == "" && !*headless && !*mcp

	cfg, err := loadConfig(*configPath, interactive)
	if err != nil {
		log.Fatal(ui.Error("failed to load configuration: " + err.Error()))
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := tools.Configure(cfg); err != nil {
		log.Fatal(ui.Error("invalid configuration: " + err.Error()))
	}

	switch {
	case *n != "":
		os.Exit(runOnce(*n))

	case *mcp:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			log.Fatal(err)
		}

	case *headless:
		fmt.Fprintln(os.Stderr, "factorial is ready")
		if err := terminal.RunHeadless(os.Stdin, os.Stdout, terminal.ToolEvaluator{}); err != nil {
			log.Fatal(err)
		}

	default:
		if err := terminal.RunTerminal(terminal.ToolEvaluator{}); err != nil {
			log.Fatal(err)
		}
	}
}

// loadConfig reads the config file; a missing default file falls back to
// the setup wizard in interactive mode and to defaults otherwise.
func loadConfig(path string, interactive bool) (config.Config, error) {
	if path != "" {
		return config.LoadConfigFrom(path)
	}

	cfg, err := config.LoadConfigFile()
	if err == nil {
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return cfg, err
	}
	if interactive {
		return config.InteractiveSetup()
	}
	return config.Default(), nil
}

func runOnce(n string) int {
	out, err := terminal.ToolEvaluator{}.Evaluate(n)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		return 1
	}
	fmt.Println(out)
	return 0
}
