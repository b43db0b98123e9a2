// Package candidate implements the interview wizard's state machine: upload,
// the five-call setup chain, the timed question loop, and finalization.
package candidate

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/otabek/hr-console/internal/backend"
	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/types"
)

// MaxQuestions caps the generated question set.
const MaxQuestions = 5

// State is the wizard's current step.
type State string

// Wizard states. Any setup failure returns the machine to StateUpload.
const (
	StateUpload         State = "upload"
	StateLoadingInitial State = "loading_initial"
	StateInterview      State = "interview"
	StateLoadingFinal   State = "loading_final"
	StateFinal          State = "final"
)

// ValidationError is a precondition failure surfaced to the candidate before
// any backend call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FlowError is a backend failure surfaced to the candidate with a localized
// lead-in and the best-effort detail from the response.
type FlowError struct {
	Message string
	Detail  string
	Cause   error
}

func (e *FlowError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s\n\n%s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *FlowError) Unwrap() error {
	return e.Cause
}

// Flow drives one candidate session. All session state lives here; there is
// no module-level state shared between flows.
type Flow struct {
	client *backend.Client
	locale i18n.Locale

	state      State
	sessionID  string
	questions  []types.Question
	index      int
	submitting bool
}

// NewFlow creates a wizard in the upload state.
func NewFlow(client *backend.Client, locale i18n.Locale) *Flow {
	return &Flow{client: client, locale: locale, state: StateUpload}
}

// State returns the wizard's current step.
func (f *Flow) State() State { return f.state }

// SessionID returns the active session token, empty until the setup chain
// completes.
func (f *Flow) SessionID() string { return f.sessionID }

// Questions returns the generated question set.
func (f *Flow) Questions() []types.Question { return f.questions }

// CurrentQuestion returns the question awaiting an answer.
func (f *Flow) CurrentQuestion() (types.Question, bool) {
	if f.state != StateInterview || f.index >= len(f.questions) {
		return types.Question{}, false
	}
	return f.questions[f.index], true
}

// Index returns the zero-based position of the current question.
func (f *Flow) Index() int { return f.index }

// Start validates the registration form and runs the setup chain:
// analyze CV, detect level, register the interview plan, generate questions,
// start the session. Each call's result is a precondition for the next; the
// first failure aborts back to the upload state with no session retained.
func (f *Flow) Start(ctx context.Context, form types.StartForm) error {
	t := i18n.Candidate(f.locale)

	if err := form.Validate(); err != nil {
		return &ValidationError{Message: t.ErrFillFields}
	}
	// Phone format is enforced for the Uzbek locale only; other locales are
	// accepted as-is.
	if f.locale == i18n.LocaleUZ && !types.ValidUzPhone(form.Phone) {
		return &ValidationError{Message: t.ErrBadPhone}
	}
	if form.CVPath == "" {
		return &ValidationError{Message: t.ErrNoCV}
	}
	if _, err := os.Stat(form.CVPath); err != nil {
		return &ValidationError{Message: t.ErrNoCV}
	}

	f.state = StateLoadingInitial

	cv, err := f.client.AnalyzeCV(ctx, form.CVPath, form.Name, form.Phone, form.Email)
	if err != nil {
		return f.abort(err)
	}

	level, err := f.client.DetectLevel(ctx, form.Name, cv.Raw)
	if err != nil {
		return f.abort(err)
	}

	if err := f.client.InterviewPlan(ctx, level); err != nil {
		return f.abort(err)
	}

	set, err := f.client.GenerateQuestions(ctx, level, MaxQuestions, string(f.locale))
	if err != nil {
		return f.abort(err)
	}

	sessionID, err := f.client.StartInterview(ctx, types.StartInterviewRequest{
		CandidateID:    uuid.NewString(),
		CandidateName:  form.Name,
		CandidatePhone: form.Phone,
		CandidateEmail: form.Email,
		QuestionSet:    set.Raw,
		Lang:           string(f.locale),
		CVPath:         cv.CVPath,
	})
	if err != nil {
		return f.abort(err)
	}

	f.sessionID = sessionID
	f.questions = set.Questions
	f.index = 0
	f.state = StateInterview
	return nil
}

// abort resets the wizard to the upload state and wraps the failure with the
// localized message pair shown to the candidate.
func (f *Flow) abort(err error) error {
	t := i18n.Candidate(f.locale)
	f.state = StateUpload
	f.sessionID = ""
	f.questions = nil
	f.index = 0
	return &FlowError{
		Message: t.ErrTryAgain,
		Detail:  fmt.Sprintf("%s: %s", t.ErrStepFailed, err.Error()),
		Cause:   err,
	}
}

// Submit records an answer for the current question. Manual submissions
// require non-empty text; timed-out submissions may be empty. A transport
// failure keeps the current question and releases the guard so the candidate
// can retry; any received HTTP response advances the index.
func (f *Flow) Submit(ctx context.Context, answer string, timedOut bool) error {
	if f.submitting {
		return nil
	}
	t := i18n.Candidate(f.locale)
	if !timedOut && strings.TrimSpace(answer) == "" {
		return &ValidationError{Message: t.ErrEmptyAns}
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	if err := f.client.SubmitAnswer(ctx, f.sessionID, answer); err != nil {
		if backend.IsTransport(err) {
			return &FlowError{Message: t.ErrSubmit, Cause: err}
		}
		// The session endpoint answered; a non-success status never blocked the
		// candidate upstream, so it does not here either.
		log.Printf("submit-answer: %v", err)
	}

	f.index++
	if f.index >= len(f.questions) {
		f.state = StateLoadingFinal
	}
	return nil
}

// Finish triggers integrity analysis and recommendation generation for the
// completed session. Failures are logged and swallowed; completion is never
// blocked by the analysis backend.
func (f *Flow) Finish(ctx context.Context) {
	if err := f.client.AnalyzeIntegrity(ctx, f.sessionID); err != nil {
		log.Printf("analyze-integrity: %v", err)
		if backend.IsTransport(err) {
			f.state = StateFinal
			return
		}
	}
	if err := f.client.GenerateRecommendation(ctx, f.sessionID); err != nil {
		log.Printf("generate-recommendation: %v", err)
	}
	f.state = StateFinal
}
