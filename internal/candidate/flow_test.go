package candidate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabek/hr-console/internal/backend"
	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/types"
)

// fakeBackend records the order of setup-chain calls and can be told to fail
// a single step with a given status.
type fakeBackend struct {
	mu       sync.Mutex
	calls    []string
	failPath string
	failCode int
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	step := strings.TrimPrefix(r.URL.Path, "/")
	if i := strings.Index(step, "/"); i >= 0 {
		step = step[:i]
	}
	f.mu.Lock()
	f.calls = append(f.calls, step)
	f.mu.Unlock()

	if "/"+step == f.failPath {
		w.WriteHeader(f.failCode)
		_, _ = w.Write([]byte(`{"detail":"step refused"}`))
		return
	}

	switch step {
	case "analyze":
		_, _ = w.Write([]byte(`{"cv_path":"uploads/cv.pdf"}`))
	case "detect-level":
		_, _ = w.Write([]byte(`{"level":"middle"}`))
	case "interview-plan":
		_, _ = w.Write([]byte(`{}`))
	case "generate-questions":
		_, _ = w.Write([]byte(`{"questions":[{"question":"Q1"},{"question":"Q2"}]}`))
	case "start-interview":
		_, _ = w.Write([]byte(`{"session_id":"sess-7"}`))
	default:
		_, _ = w.Write([]byte(`{}`))
	}
}

func (f *fakeBackend) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) count(step string) int {
	n := 0
	for _, c := range f.callList() {
		if c == step {
			n++
		}
	}
	return n
}

func newTestFlow(t *testing.T, fake *fakeBackend, locale i18n.Locale) (*Flow, func()) {
	t.Helper()
	srv := httptest.NewServer(fake)
	return NewFlow(backend.New(srv.URL), locale), srv.Close
}

func validForm(t *testing.T) types.StartForm {
	t.Helper()
	cv := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(cv, []byte("fake cv"), 0644))
	return types.StartForm{
		Name:   "Aziz Karimov",
		Phone:  "+998901234567",
		Email:  "aziz@example.com",
		CVPath: cv,
	}
}

func TestStart_RunsSetupChainInOrder(t *testing.T) {
	fake := &fakeBackend{}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()

	require.NoError(t, flow.Start(context.Background(), validForm(t)))

	assert.Equal(t, StateInterview, flow.State())
	assert.Equal(t, "sess-7", flow.SessionID())
	require.Len(t, flow.Questions(), 2)
	assert.Equal(t, []string{
		"analyze", "detect-level", "interview-plan", "generate-questions", "start-interview",
	}, fake.callList())

	q, ok := flow.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "Q1", q.Text)
}

func TestStart_GenerateQuestionsFailureReturnsToUpload(t *testing.T) {
	fake := &fakeBackend{failPath: "/generate-questions", failCode: http.StatusInternalServerError}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()

	err := flow.Start(context.Background(), validForm(t))
	require.Error(t, err)

	var fe *FlowError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), "step refused")

	assert.Equal(t, StateUpload, flow.State())
	assert.Empty(t, flow.SessionID())
	// The chain stops at the failed step.
	assert.Equal(t, 0, fake.count("start-interview"))
}

func TestStart_ValidationBlocksBeforeAnyCall(t *testing.T) {
	fake := &fakeBackend{}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()

	form := validForm(t)
	form.Email = ""
	err := flow.Start(context.Background(), form)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, i18n.Candidate(i18n.LocaleEN).ErrFillFields, ve.Message)
	assert.Empty(t, fake.callList())
	assert.Equal(t, StateUpload, flow.State())
}

func TestStart_UzPhoneEnforcedOnlyForUzLocale(t *testing.T) {
	fake := &fakeBackend{}

	uzFlow, done := newTestFlow(t, fake, i18n.LocaleUZ)
	defer done()
	form := validForm(t)
	form.Phone = "998123456789" // missing leading +
	err := uzFlow.Start(context.Background(), form)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, i18n.Candidate(i18n.LocaleUZ).ErrBadPhone, ve.Message)
	assert.Empty(t, fake.callList())

	// The same number passes for a Russian-locale candidate.
	ruFlow, done2 := newTestFlow(t, &fakeBackend{}, i18n.LocaleRU)
	defer done2()
	require.NoError(t, ruFlow.Start(context.Background(), form))
}

func TestStart_MissingCV(t *testing.T) {
	fake := &fakeBackend{}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()

	form := validForm(t)
	form.CVPath = ""
	err := flow.Start(context.Background(), form)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, i18n.Candidate(i18n.LocaleEN).ErrNoCV, ve.Message)
}

func TestSubmit_AdvancesThroughQuestionsToLoadingFinal(t *testing.T) {
	fake := &fakeBackend{}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()
	ctx := context.Background()

	require.NoError(t, flow.Start(ctx, validForm(t)))

	require.NoError(t, flow.Submit(ctx, "first answer", false))
	assert.Equal(t, 1, flow.Index())
	assert.Equal(t, StateInterview, flow.State())

	// Timeout submissions may be empty.
	require.NoError(t, flow.Submit(ctx, "", true))
	assert.Equal(t, StateLoadingFinal, flow.State())
	assert.Equal(t, 2, fake.count("submit-answer"))
}

func TestSubmit_ManualEmptyAnswerRejected(t *testing.T) {
	fake := &fakeBackend{}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()
	ctx := context.Background()

	require.NoError(t, flow.Start(ctx, validForm(t)))

	err := flow.Submit(ctx, "   ", false)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, flow.Index())
	assert.Equal(t, 0, fake.count("submit-answer"))
}

func TestSubmit_TransportFailureKeepsCurrentQuestion(t *testing.T) {
	fake := &fakeBackend{}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	ctx := context.Background()
	require.NoError(t, flow.Start(ctx, validForm(t)))

	done() // backend goes away

	err := flow.Submit(ctx, "answer", false)
	var fe *FlowError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, flow.Index())
	assert.Equal(t, StateInterview, flow.State())
}

func TestSubmit_HTTPErrorStillAdvances(t *testing.T) {
	fake := &fakeBackend{failPath: "/submit-answer", failCode: http.StatusInternalServerError}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()
	ctx := context.Background()

	require.NoError(t, flow.Start(ctx, validForm(t)))

	// The endpoint answered, even if unhappily; the candidate moves on.
	require.NoError(t, flow.Submit(ctx, "answer", false))
	assert.Equal(t, 1, flow.Index())
}

func TestFinish_RunsIntegrityThenRecommendation(t *testing.T) {
	fake := &fakeBackend{}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()
	ctx := context.Background()

	require.NoError(t, flow.Start(ctx, validForm(t)))
	require.NoError(t, flow.Submit(ctx, "a1", false))
	require.NoError(t, flow.Submit(ctx, "a2", false))

	flow.Finish(ctx)

	assert.Equal(t, StateFinal, flow.State())
	calls := fake.callList()
	assert.Equal(t, "analyze-integrity", calls[len(calls)-2])
	assert.Equal(t, "generate-recommendation", calls[len(calls)-1])
}

func TestFinish_AnalysisFailureNeverBlocksCompletion(t *testing.T) {
	fake := &fakeBackend{failPath: "/analyze-integrity", failCode: http.StatusInternalServerError}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	defer done()
	ctx := context.Background()

	require.NoError(t, flow.Start(ctx, validForm(t)))
	require.NoError(t, flow.Submit(ctx, "a1", false))
	require.NoError(t, flow.Submit(ctx, "a2", false))

	flow.Finish(ctx)

	assert.Equal(t, StateFinal, flow.State())
	// An HTTP-level integrity failure does not stop the recommendation call.
	assert.Equal(t, 1, fake.count("generate-recommendation"))
}

func TestFinish_TransportFailureSkipsRecommendation(t *testing.T) {
	fake := &fakeBackend{}
	flow, done := newTestFlow(t, fake, i18n.LocaleEN)
	ctx := context.Background()

	require.NoError(t, flow.Start(ctx, validForm(t)))
	require.NoError(t, flow.Submit(ctx, "a1", false))
	require.NoError(t, flow.Submit(ctx, "a2", false))

	done() // backend unreachable for finalization

	flow.Finish(ctx)
	assert.Equal(t, StateFinal, flow.State())
	assert.Equal(t, 0, fake.count("generate-recommendation"))
}
