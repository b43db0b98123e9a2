package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabek/hr-console/internal/backend"
	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/types"
)

func analyzedEntry() *types.RosterEntry {
	return &types.RosterEntry{
		SessionID: "s-1",
		Score:     score(72),
		Decision:  "Hire",
		HRComment: "Хороший кандидат|||Yaxshi nomzod",
		Flags:     types.FlagList{"contains_code", "too_short_answer"},
	}
}

func TestNeedsGeneration(t *testing.T) {
	assert.False(t, NeedsGeneration(analyzedEntry()))

	missingDecision := analyzedEntry()
	missingDecision.Decision = ""
	assert.True(t, NeedsGeneration(missingDecision))

	missingScore := analyzedEntry()
	missingScore.Score = nil
	assert.True(t, NeedsGeneration(missingScore))

	missingComment := analyzedEntry()
	missingComment.HRComment = ""
	assert.True(t, NeedsGeneration(missingComment))
}

func TestBuildReport_Russian(t *testing.T) {
	report := BuildReport(analyzedEntry(), i18n.LocaleRU)

	assert.Equal(t, "AI Анализ", report.Title)
	assert.Equal(t, "Нанять", report.Decision)
	assert.Equal(t, "Хороший кандидат", report.Comment)
	assert.Equal(t, []string{"Содержит код", "Слишком короткий ответ"}, report.Reasons)
}

func TestBuildReport_Uzbek(t *testing.T) {
	report := BuildReport(analyzedEntry(), i18n.LocaleUZ)

	assert.Equal(t, "Ishga olish", report.Decision)
	assert.Equal(t, "Yaxshi nomzod", report.Comment)
	assert.Equal(t, []string{"Kod mavjud", "Juda qisqa javob"}, report.Reasons)
}

func TestBuildReport_CapsFlagsAtFive(t *testing.T) {
	entry := analyzedEntry()
	entry.Flags = types.FlagList{"a", "b", "c", "d", "e", "f", "g"}

	report := BuildReport(entry, i18n.LocaleRU)
	assert.Len(t, report.Reasons, 5)
	// Unknown symbols render verbatim.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, report.Reasons)
}

func TestBuildReport_Fallbacks(t *testing.T) {
	entry := &types.RosterEntry{SessionID: "s-1"}
	report := BuildReport(entry, i18n.LocaleEN)

	assert.Equal(t, "N/A", report.Decision)
	assert.Equal(t, "No comment available", report.Comment)
	assert.Empty(t, report.Reasons)
}

// generationBackend serves a roster whose entry lacks analysis until both
// generation endpoints have been called.
type generationBackend struct {
	mu             sync.Mutex
	integrityCalls int
	recommendCalls int
	order          []string
	failIntegrity  bool
}

func (g *generationBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch r.URL.Path {
	case "/admin/sessions":
		if g.integrityCalls > 0 && g.recommendCalls > 0 {
			_, _ = w.Write([]byte(`[{"session_id":"s-1","candidate_name":"Aziz","score":70,
				"decision":"Review","hr_comment":"готово|||tayyor","flags":["contains_code"]}]`))
		} else {
			_, _ = w.Write([]byte(`[{"session_id":"s-1","candidate_name":"Aziz","score":null}]`))
		}
	case "/analyze-integrity/s-1":
		g.integrityCalls++
		g.order = append(g.order, "integrity")
		if g.failIntegrity {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"no answers stored"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	case "/generate-recommendation/s-1":
		g.recommendCalls++
		g.order = append(g.order, "recommendation")
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestReport_TriggersGenerationOnceThenRendersRefreshedData(t *testing.T) {
	fake := &generationBackend{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	dash := NewDashboard(backend.New(srv.URL), i18n.LocaleRU)
	ctx := context.Background()
	require.NoError(t, dash.Load(ctx))

	report, err := dash.Report(ctx, "s-1")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.integrityCalls)
	assert.Equal(t, 1, fake.recommendCalls)
	assert.Equal(t, []string{"integrity", "recommendation"}, fake.order)

	assert.Equal(t, "На проверку", report.Decision)
	assert.Equal(t, "готово", report.Comment)
	assert.Equal(t, []string{"Содержит код"}, report.Reasons)
}

func TestReport_SkipsGenerationWhenAnalysisPresent(t *testing.T) {
	fake := &generationBackend{integrityCalls: 1, recommendCalls: 1}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	dash := NewDashboard(backend.New(srv.URL), i18n.LocaleUZ)
	ctx := context.Background()
	require.NoError(t, dash.Load(ctx))

	report, err := dash.Report(ctx, "s-1")
	require.NoError(t, err)

	// Counters stay at their seeded values; no new generation calls.
	assert.Equal(t, 1, fake.integrityCalls)
	assert.Equal(t, 1, fake.recommendCalls)
	assert.Equal(t, "tayyor", report.Comment)
}

func TestReport_GenerationFailureSurfacesLocalizedError(t *testing.T) {
	fake := &generationBackend{failIntegrity: true}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	dash := NewDashboard(backend.New(srv.URL), i18n.LocaleRU)
	ctx := context.Background()
	require.NoError(t, dash.Load(ctx))

	_, err := dash.Report(ctx, "s-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), i18n.Admin(i18n.LocaleRU).AIFailed)
	assert.Contains(t, err.Error(), "no answers stored")
	// Recommendation is never attempted after the integrity step fails.
	assert.Equal(t, 0, fake.recommendCalls)
}

func TestReport_UnknownSession(t *testing.T) {
	srv, _, _ := rosterServer(t, `[]`)
	dash := NewDashboard(backend.New(srv.URL), i18n.LocaleEN)
	require.NoError(t, dash.Load(context.Background()))

	_, err := dash.Report(context.Background(), "nope")
	assert.Error(t, err)
}
