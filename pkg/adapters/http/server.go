package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/internal/presentation/graph"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// MaxBodyBytes bounds the size of an evaluation request.
const MaxBodyBytes = 1 << 20

// EvaluateRequest is the body of POST /evaluate. A null or missing input is the absent input.
type EvaluateRequest struct {
	Input *string `json:"input"`
}

// TransitionView is one table entry by label.
type TransitionView struct {
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

// AutomatonView is the label-based description served by GET /automaton.
type AutomatonView struct {
	Name        string           `json:"name,omitempty"`
	States      []string         `json:"states"`
	Alphabet    []string         `json:"alphabet"`
	Start       *string          `json:"start"`
	Accept      []string         `json:"accept"`
	Transitions []TransitionView `json:"transitions"`
}

// Server exposes one automaton over HTTP.
type Server struct {
	Automaton *dfa.Automaton
	Store     ports.ReportStore // optional
	Logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithStore keeps every evaluation report in store.
func WithStore(store ports.ReportStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the automaton.
func NewHandler(a *dfa.Automaton, opts ...Option) http.Handler {
	server := &Server{
		Automaton: a,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/automaton", server.Describe)
	r.Get("/graph", server.Graph)
	r.Post("/evaluate", server.Evaluate)
	r.Get("/reports", server.ListReports)
	r.Get("/reports/{id}", server.GetReport)
	return r
}

// Describe handles GET /automaton.
func (s *Server) Describe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Describe(s.Automaton), s.Logger)
}

// Graph handles GET /graph and returns the Mermaid source.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(s.Automaton, nil))
}

// Evaluate handles POST /evaluate.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Evaluate: Invalid request body", "error", err)
		return
	}

	input := ""
	if body.Input != nil {
		input = *body.Input
	}

	res, err := s.Automaton.Evaluate(r.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidAutomaton) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, "Evaluate error: "+err.Error(), status)
		s.Logger.Error("Evaluate failed", "error", err)
		return
	}

	report := domain.NewReport(s.Automaton.Name(), body.Input, res)
	if s.Store != nil {
		if err := s.Store.Save(r.Context(), report); err != nil {
			http.Error(w, "Failed to store report", http.StatusInternalServerError)
			s.Logger.Error("Evaluate: store failed", "error", err, "report_id", report.ID)
			return
		}
	}

	writeJSON(w, http.StatusOK, report, s.Logger)
}

// ListReports handles GET /reports.
func (s *Server) ListReports(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "No report store configured", http.StatusNotImplemented)
		return
	}
	ids, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to list reports", http.StatusInternalServerError)
		s.Logger.Error("ListReports failed", "error", err)
		return
	}
	writeJSON(w, http.StatusOK, ids, s.Logger)
}

// GetReport handles GET /reports/{id}.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "No report store configured", http.StatusNotImplemented)
		return
	}
	id := chi.URLParam(r, "id")
	report, err := s.Store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load report", http.StatusInternalServerError)
		s.Logger.Error("GetReport failed", "error", err, "report_id", id)
		return
	}
	writeJSON(w, http.StatusOK, report, s.Logger)
}

// Describe converts the automaton into its label-based view. Lists are sorted.
func Describe(a *dfa.Automaton) AutomatonView {
	view := AutomatonView{
		Name:        a.Name(),
		States:      labels(a.States()),
		Accept:      labels(a.AcceptStates()),
		Alphabet:    make([]string, 0, len(a.Alphabet())),
		Transitions: []TransitionView{},
	}
	for sym := range a.Alphabet() {
		view.Alphabet = append(view.Alphabet, sym)
	}
	sort.Strings(view.Alphabet)

	if start := a.InitialState(); start != nil {
		label := start.Label
		view.Start = &label
	}

	for source, row := range a.TransitionFunction() {
		for sym, target := range row {
			if source == nil || target == nil {
				continue
			}
			view.Transitions = append(view.Transitions, TransitionView{From: source.Label, Symbol: sym, To: target.Label})
		}
	}
	sort.Slice(view.Transitions, func(i, j int) bool {
		ti, tj := view.Transitions[i], view.Transitions[j]
		if ti.From != tj.From {
			return ti.From < tj.From
		}
		return ti.Symbol < tj.Symbol
	})
	return view
}

func labels(set domain.StateSet) []string {
	out := make([]string, 0, len(set))
	for _, s := range graph.SortedStates(set) {
		out = append(out, s.Label)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
