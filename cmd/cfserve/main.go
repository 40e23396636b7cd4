/*
Package main implements the completion pipeline server and CLI [DBG] application.

cfserve merges candidates from multiple completion sources into one
deduplicated, fuzzily filtered, ranked suggestion list. It can operate as a
MessagePack IPC server for integration with text editors, or as a CLI
application for testing and debugging.

Sources are configured as a flat list or as groups that flatten into the
registry. Each cycle queries every source with a per-source fetch prefix,
pre-filters the raw candidates by ordered-subsequence fuzzy matching, blends
history for history-tracked sources, and ranks the merged pool under the
configured strategy with optional prefix promotion.

# Usage

Start the server with default settings:

	cfserve

Use a custom word list and enable debug mode:

	cfserve -words /usr/share/dict/words -d

Run in CLI mode for interactive testing:

	cfserve -c -limit 10

# Configuration

Runtime configuration is managed through a TOML file:

	[pipeline]
	strategy = "alphabetic"
	prefix_on_top = true
	annotation_format = " <%s>"
	trigger_symbols = [".", "->"]
	history_sources = ["recent"]

	[[source]]
	name = "words"

	[[source]]
	group = ["path", "recent"]

	[server]
	max_limit = 64
	min_input = 1
	max_input = 60

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a
completion request:

	{"id": "req1", "cmd": "candidates", "t": "fo", "l": 20}

Receive the ranked list with source attribution:

	{"id": "req1", "s": [{"w": "foo", "src": "words"}], "c": 1, "t": 120}

The preinsert command returns the insert prefix the host must treat as
already typed before committing a candidate; config messages switch the
ranking strategy and prefix promotion at runtime.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/windymelt/company-fuzzy/internal/cli"
	"github.com/windymelt/company-fuzzy/pkg/config"
	"github.com/windymelt/company-fuzzy/pkg/provider"
	"github.com/windymelt/company-fuzzy/pkg/server"
	"github.com/windymelt/company-fuzzy/pkg/session"
)

const (
	Version = "0.2.0"
	AppName = "cfserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, providers and the session together and hands control
// to the server or the CLI loop. It does not implement pipeline logic.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml (default: ~/.config/company-fuzzy/config.toml)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	wordsFile := flag.String("words", "", "Plain text word list, one 'word frequency' pair per line")
	pathRoot := flag.String("root", "", "Root directory for path completion (default: cwd)")
	limit := flag.Int("limit", 24, "Number of suggestions to show in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	path := *configPath
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			log.Warnf("Failed to determine config path: %v. Using built-in defaults...", err)
		} else {
			path = defaultPath
		}
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.DefaultConfig()
	} else {
		loaded, err := config.InitConfig(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
		log.Debugf("Using config file: (%s)", path)
	}

	sess := session.New(session.Options{
		Entries:          cfg.Entries(),
		Strategy:         cfg.Strategy(),
		PromotePrefix:    cfg.Pipeline.PrefixOnTop,
		AnnotationFormat: cfg.Pipeline.AnnotationFormat,
		TriggerSymbols:   cfg.Pipeline.TriggerSymbols,
		HistoryProviders: cfg.Pipeline.HistorySources,
		Kinds:            cfg.Kinds(),
	}, buildProviders(*wordsFile, *pathRoot)...)
	defer sess.Close()

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(sess, cfg.Server.MinInput, cfg.Server.MaxInput, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(sess, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildProviders assembles the built-in sources. A missing word list file
// degrades to a small built-in set rather than failing startup.
func buildProviders(wordsFile, pathRoot string) []provider.Provider {
	var words *provider.WordList
	if wordsFile != "" {
		loaded, err := provider.LoadWordList("words", wordsFile)
		if err != nil {
			log.Warnf("Failed to load word list %s: %v. Using built-in words...", wordsFile, err)
		} else {
			words = loaded
		}
	}
	if words == nil {
		words = provider.NewWordList("words", builtinWords())
	}

	return []provider.Provider{
		words,
		provider.NewPathSource("path", pathRoot),
		provider.NewRecent("recent"),
	}
}

func builtinWords() map[string]int {
	return map[string]int{
		"the": 2000, "and": 1800, "for": 1500, "are": 1200, "but": 1000,
		"not": 950, "you": 900, "all": 850, "can": 800, "her": 750,
		"was": 700, "one": 650, "our": 600, "out": 550, "day": 500,
		"get": 450, "has": 400, "him": 350, "his": 300, "how": 250,
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ cfserve ] fuzzy multi-source completion pipeline")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
