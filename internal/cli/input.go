// Package cli handles cmd line input and ranked suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/windymelt/company-fuzzy/internal/logger"
	"github.com/windymelt/company-fuzzy/pkg/session"
)

// clog prints the interactive listing without timestamps.
var clog = logger.Default("")

// InputHandler processes user input from stdin, running one completion
// cycle per line and printing the ranked list with source annotations.
type InputHandler struct {
	session      *session.Session
	minInput     int
	maxInput     int
	suggestLimit int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(sess *session.Session, minInput, maxInput, limit int) *InputHandler {
	return &InputHandler{
		session:      sess,
		minInput:     minInput,
		maxInput:     maxInput,
		suggestLimit: limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("company-fuzzy CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type something and press Enter to see the ranked candidates (Ctrl+C to exit):")

	for {
		log.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		h.handleInput(input)
	}
}

// handleInput runs a single completion cycle and prints the results.
func (h *InputHandler) handleInput(input string) {
	h.requestCount++

	if len(input) < h.minInput {
		log.Errorf("Input too short: %s", input)
		return
	}
	if len(input) > h.maxInput {
		log.Errorf("Input too long: %s", input)
		return
	}

	start := time.Now()
	log.Debug("Processing request for", "input", input)

	ranked := h.session.Complete(input)

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for input '%s'", elapsed, input)

	if len(ranked) == 0 {
		log.Warnf("No candidates found for input: '%s'", input)
		return
	}
	if len(ranked) > h.suggestLimit && h.suggestLimit > 0 {
		ranked = ranked[:h.suggestLimit]
	}

	clog.Printf("Found %d candidates for input '%s':", len(ranked), input)
	for i, text := range ranked {
		clText := fmt.Sprintf("\033[38;5;75m%s\033[0m", text)
		clog.Printf("%2d. %-40s%s", i+1, clText, h.session.Annotation(text))
	}
}
