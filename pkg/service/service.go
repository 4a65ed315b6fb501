// Package service answers parse requests read as line-delimited JSON.
//
// Each input line is one Request; each gets exactly one Response line, in
// order. A malformed line gets a Response with Error set and the stream
// continues.
package service

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/chazu/jnova/pkg/config"
	"github.com/chazu/jnova/pkg/diag"
	"github.com/chazu/jnova/pkg/dump"
	"github.com/chazu/jnova/pkg/parser"
	"github.com/chazu/jnova/pkg/source"
)

// maxRequest bounds the size of one request line.
const maxRequest = 4 << 20

// DefaultName names requests that carry no name.
const DefaultName = "<request>"

var log = commonlog.GetLogger("jnova.service")

// Request asks for one compilation unit to be parsed.
type Request struct {
	// ID is echoed in the response; one is assigned when it is empty.
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
	// Source overrides the configured source level.
	Source string `json:"source,omitempty"`
}

// Message is a rendered diagnostic. Row and Column are one-based and
// zero when the diagnostic has no position.
type Message struct {
	Severity string `json:"severity"`
	Key      string `json:"key"`
	Pos      int    `json:"pos"`
	Row      int    `json:"row,omitempty"`
	Column   int    `json:"column,omitempty"`
	Text     string `json:"message"`
}

// Response is the answer to one Request.
type Response struct {
	ID          string     `json:"id"`
	Name        string     `json:"name,omitempty"`
	Tree        *dump.Tree `json:"tree,omitempty"`
	Diagnostics []Message  `json:"diagnostics,omitempty"`
	Errors      int        `json:"errors"`
	Warnings    int        `json:"warnings"`
	// Error is set when the request could not be handled at all.
	Error string `json:"error,omitempty"`
}

// Server parses requests with a fixed configuration.
type Server struct {
	cfg     *config.Config
	catalog diag.Catalog
}

// New creates a Server. A nil cfg means config.Default().
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Server{cfg: cfg, catalog: diag.DefaultCatalog()}
}

// Run handles requests from r until it is exhausted, writing responses to
// w. Blank lines are ignored.
func (s *Server) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxRequest)
	enc := json.NewEncoder(w)

	handled := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var resp Response
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp = Response{ID: uuid.NewString(), Errors: 1, Error: "invalid JSON: " + err.Error()}
		} else {
			resp = s.Handle(req)
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
		handled++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	log.Debugf("handled %d requests", handled)
	return nil
}

// Handle parses one request. A failure inside the parser is reported in
// the response rather than propagated.
func (s *Server) Handle(req Request) (resp Response) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("request %s: parser failed: %v", req.ID, r)
			resp = Response{ID: req.ID, Name: req.Name, Errors: 1, Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()
	name := req.Name
	if name == "" {
		name = DefaultName
	}
	log.Debugf("request %s: parsing %s (%d bytes)", req.ID, name, len(req.Text))

	pc := s.cfg.ParserConfig()
	if req.Source != "" {
		level, err := source.LookupLevel(req.Source)
		if err != nil {
			return Response{ID: req.ID, Name: req.Name, Errors: 1, Error: err.Error()}
		}
		pc.Level = level
	}

	src := source.FromString(name, req.Text)
	var collected diag.Collector
	pc.Sink = &collected
	p := parser.New(pc, src)
	unit := p.ParseCompilationUnit()

	resp = Response{
		ID:       req.ID,
		Name:     req.Name,
		Tree:     dump.BuildWithDocs(unit, p.DocComments()),
		Errors:   collected.Count(diag.Error),
		Warnings: collected.Count(diag.Warning),
	}
	for _, d := range collected.Diagnostics {
		m := Message{
			Severity: d.Severity.String(),
			Key:      d.Key,
			Pos:      d.Pos,
			Text:     s.catalog.Format(d.Key, d.Args...),
		}
		if at, ok := source.Translate(src, d.Pos); ok {
			m.Row, m.Column = at.Row+1, at.Column+1
		}
		resp.Diagnostics = append(resp.Diagnostics, m)
	}
	return resp
}
