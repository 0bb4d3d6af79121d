package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is a label-keyed snapshot of a Result, suitable for persistence and tooling.
type Report struct {
	ID        string            `json:"id"`
	Automaton string            `json:"automaton,omitempty"`
	Input     *string           `json:"input"`
	Accepted  bool              `json:"accepted"`
	Trapped   bool              `json:"trapped"`
	Consumed  int               `json:"consumed"`
	Final     string            `json:"final,omitempty"`
	Counts    map[string]uint64 `json:"counts"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewReport converts a Result into a Report with a fresh ID.
// A nil input is kept as nil so the absent input stays distinguishable from "".
// States sharing a label have their counts summed.
func NewReport(automaton string, input *string, res *Result) *Report {
	r := &Report{
		ID:        uuid.NewString(),
		Automaton: automaton,
		Accepted:  res.Accepted,
		Trapped:   res.Trapped,
		Consumed:  res.Consumed,
		Counts:    make(map[string]uint64, len(res.Counts)),
		CreatedAt: time.Now().UTC(),
	}
	if input != nil {
		in := *input
		r.Input = &in
	}
	if res.Final != nil {
		r.Final = res.Final.Label
	}
	for s, c := range res.Counts {
		r.Counts[s.Label] += c
	}
	return r
}
