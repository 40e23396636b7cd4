package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/windymelt/company-fuzzy/pkg/config"
	"github.com/windymelt/company-fuzzy/pkg/rank"
	"github.com/windymelt/company-fuzzy/pkg/session"
)

// Server handles the IPC for the aggregate completion frontend.
type Server struct {
	session *session.Session
	cfg     *config.Config
	dec     *msgpack.Decoder
	enc     *msgpack.Encoder
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(sess *session.Session, cfg *config.Config) *Server {
	return NewServerWithIO(sess, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams.
func NewServerWithIO(sess *session.Session, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		session: sess,
		cfg:     cfg,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "candidates":
		s.handleCandidates(request)
	case "prefix":
		s.send(TextResponse{ID: request.ID, Text: s.session.Prefix(request.Text)})
	case "doc":
		s.send(TextResponse{ID: request.ID, Text: s.session.Doc(request.Text)})
	case "annotation":
		s.send(TextResponse{ID: request.ID, Text: s.session.Annotation(request.Text)})
	case "preinsert":
		s.send(TextResponse{ID: request.ID, Text: s.session.Commit(request.Text)})
	case "config":
		s.handleConfig(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// handleCandidates runs one completion cycle, applies the limit, and
// attaches source attribution to each suggestion.
func (s *Server) handleCandidates(request Request) {
	input := request.Text
	if input == "" {
		s.sendError(request.ID, "Missing 't' parameter", 400)
		log.Debug("Input is empty in request")
		return
	}
	if len(input) > s.cfg.Server.MaxInput {
		s.sendError(request.ID, fmt.Sprintf("Input exceeds maximum length of %d characters", s.cfg.Server.MaxInput), 400)
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	ranked := s.session.Complete(input)
	elapsed := time.Since(start)

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	suggestions := make([]Suggestion, 0, len(ranked))
	cycle := s.session.Cycle()
	for _, text := range ranked {
		sg := Suggestion{Text: text, Annotation: s.session.Annotation(text)}
		if cycle != nil {
			if owner, ok := cycle.Owner(text); ok {
				sg.Source = owner
			}
		}
		suggestions = append(suggestions, sg)
	}

	s.send(CandidatesResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleConfig adjusts ranking behavior at runtime. Unrecognized actions or
// values degrade to an error response, never a dead session.
func (s *Server) handleConfig(request Request) {
	switch request.Action {
	case "strategy":
		strategy, ok := rank.ParseStrategy(request.Value)
		if !ok {
			s.sendError(request.ID, fmt.Sprintf("Unknown strategy: %s", request.Value), 400)
			return
		}
		s.session.SetStrategy(strategy)
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	case "promote":
		switch request.Value {
		case "on":
			s.session.SetPromotePrefix(true)
		case "off":
			s.session.SetPromotePrefix(false)
		default:
			s.sendError(request.ID, fmt.Sprintf("Unknown promote value: %s", request.Value), 400)
			return
		}
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown config action: %s", request.Action), 400)
	}
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
