package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/pkg/adapters/memory"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAutomaton(t *testing.T) *dfa.Automaton {
	t.Helper()
	b := dsl.New()
	b.State("q0").Start().On("a", "q1")
	b.State("q1").On("b", "q2")
	b.State("q2").Accept()
	a, err := b.Build(dfa.WithName("ab"))
	require.NoError(t, err)
	return a
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestDescribe(t *testing.T) {
	h := NewHandler(newAutomaton(t))

	w := do(t, h, "GET", "/automaton", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view AutomatonView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "ab", view.Name)
	assert.Equal(t, []string{"q0", "q1", "q2"}, view.States)
	assert.Equal(t, []string{"a", "b"}, view.Alphabet)
	require.NotNil(t, view.Start)
	assert.Equal(t, "q0", *view.Start)
	assert.Equal(t, []string{"q2"}, view.Accept)
	assert.Equal(t, []TransitionView{
		{From: "q0", Symbol: "a", To: "q1"},
		{From: "q1", Symbol: "b", To: "q2"},
	}, view.Transitions)
}

func TestEvaluate_StoresReport(t *testing.T) {
	store := memory.NewStore()
	h := NewHandler(newAutomaton(t), WithStore(store))

	w := do(t, h, "POST", "/evaluate", `{"input":"aba"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.False(t, report.Accepted)
	assert.True(t, report.Trapped)
	assert.Equal(t, map[string]uint64{"q0": 1, "q1": 1, "q2": 1}, report.Counts)

	w = do(t, h, "GET", "/reports/"+report.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var loaded domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, report.ID, loaded.ID)

	w = do(t, h, "GET", "/reports", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), report.ID)
}

func TestEvaluate_AbsentInput(t *testing.T) {
	h := NewHandler(newAutomaton(t))

	for _, body := range []string{`{"input":null}`, `{}`, ``} {
		w := do(t, h, "POST", "/evaluate", body)
		require.Equal(t, http.StatusOK, w.Code, body)

		var report domain.Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.True(t, report.Accepted, body)
		assert.Nil(t, report.Input, body)
	}
}

func TestEvaluate_BadBody(t *testing.T) {
	h := NewHandler(newAutomaton(t))
	w := do(t, h, "POST", "/evaluate", `{"input":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluate_InvalidAutomaton(t *testing.T) {
	q0 := domain.NewState("q0")
	a := dfa.New(domain.NewStateSet(q0), domain.NewAlphabet("a"), domain.TransitionTable{}, nil, domain.NewStateSet())
	h := NewHandler(a)

	w := do(t, h, "POST", "/evaluate", `{"input":"a"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReports_NoStore(t *testing.T) {
	h := NewHandler(newAutomaton(t))
	assert.Equal(t, http.StatusNotImplemented, do(t, h, "GET", "/reports", "").Code)
	assert.Equal(t, http.StatusNotImplemented, do(t, h, "GET", "/reports/x", "").Code)
}

func TestReports_NotFound(t *testing.T) {
	h := NewHandler(newAutomaton(t), WithStore(memory.NewStore()))
	assert.Equal(t, http.StatusNotFound, do(t, h, "GET", "/reports/missing", "").Code)
}

func TestGraph(t *testing.T) {
	h := NewHandler(newAutomaton(t))
	w := do(t, h, "GET", "/graph", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "graph LR")
}
