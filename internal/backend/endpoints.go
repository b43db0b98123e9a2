package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/otabek/hr-console/internal/schemas"
	"github.com/otabek/hr-console/internal/types"
)

// AnalyzeCV uploads a CV with the candidate's registration fields and returns
// the analysis result. The raw body is preserved for the level-detection call.
func (c *Client) AnalyzeCV(ctx context.Context, cvPath, name, phone, email string) (*types.CVAnalysis, error) {
	file, err := os.Open(cvPath)
	if err != nil {
		return nil, &Error{Step: "analyze", Cause: err}
	}
	defer file.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(cvPath))
	if err != nil {
		return nil, &Error{Step: "analyze", Cause: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &Error{Step: "analyze", Cause: err}
	}
	for field, value := range map[string]string{"name": name, "phone": phone, "email": email} {
		if err := w.WriteField(field, value); err != nil {
			return nil, &Error{Step: "analyze", Cause: err}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &Error{Step: "analyze", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", &buf)
	if err != nil {
		return nil, &Error{Step: "analyze", Cause: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var raw json.RawMessage
	if err := c.do(req, "analyze", &raw); err != nil {
		return nil, err
	}
	var probe struct {
		CVPath string `json:"cv_path"`
	}
	// cv_path is optional in the analysis result; absence is not an error.
	_ = json.Unmarshal(raw, &probe)
	return &types.CVAnalysis{CVPath: probe.CVPath, Raw: raw}, nil
}

// DetectLevel classifies the candidate from the CV analysis. The returned
// level descriptor is opaque to this client and fed to the next two calls.
func (c *Client) DetectLevel(ctx context.Context, candidateName string, cvResult json.RawMessage) (json.RawMessage, error) {
	in := struct {
		CandidateName string          `json:"candidate_name"`
		CVResult      json.RawMessage `json:"cv_result"`
	}{candidateName, cvResult}
	var out json.RawMessage
	if err := c.postJSON(ctx, "/detect-level", "detect-level", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InterviewPlan registers an interview plan for the detected level. The
// response body is unused.
func (c *Client) InterviewPlan(ctx context.Context, level json.RawMessage) error {
	return c.postJSON(ctx, "/interview-plan", "interview-plan", level, nil)
}

// GenerateQuestions asks the backend for at most maxQuestions questions in
// the given language.
func (c *Client) GenerateQuestions(ctx context.Context, level json.RawMessage, maxQuestions int, lang string) (*types.QuestionSet, error) {
	in := struct {
		LevelResult  json.RawMessage `json:"level_result"`
		MaxQuestions int             `json:"max_questions"`
		Lang         string          `json:"lang"`
	}{level, maxQuestions, lang}
	var out types.QuestionSet
	if err := c.postJSON(ctx, "/generate-questions", "generate-questions", in, &out); err != nil {
		return nil, err
	}
	if err := schemas.ValidateQuestionSet(out.Raw); err != nil {
		log.Printf("warning: generate-questions response does not match schema: %v", err)
	}
	return &out, nil
}

// StartInterview registers the session and returns its identifier.
func (c *Client) StartInterview(ctx context.Context, req types.StartInterviewRequest) (string, error) {
	var out struct {
		SessionID string `json:"session_id"`
	}
	if err := c.postJSON(ctx, "/start-interview", "start-interview", req, &out); err != nil {
		return "", err
	}
	return out.SessionID, nil
}

// SubmitAnswer posts one answer for the session's current question. The body
// is the bare JSON-encoded answer string.
func (c *Client) SubmitAnswer(ctx context.Context, sessionID, answer string) error {
	return c.postJSON(ctx, "/submit-answer/"+url.PathEscape(sessionID), "submit-answer", answer, nil)
}

// AnalyzeIntegrity triggers the backend's integrity analysis for a session.
func (c *Client) AnalyzeIntegrity(ctx context.Context, sessionID string) error {
	return c.postJSON(ctx, "/analyze-integrity/"+url.PathEscape(sessionID), "analyze-integrity", nil, nil)
}

// GenerateRecommendation triggers the backend's recommendation generation.
func (c *Client) GenerateRecommendation(ctx context.Context, sessionID string) error {
	return c.postJSON(ctx, "/generate-recommendation/"+url.PathEscape(sessionID), "generate-recommendation", nil, nil)
}

// ListSessions fetches the admin roster.
func (c *Client) ListSessions(ctx context.Context) ([]types.RosterEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/admin/sessions", nil)
	if err != nil {
		return nil, &Error{Step: "admin-sessions", Cause: err}
	}
	var raw json.RawMessage
	if err := c.do(req, "admin-sessions", &raw); err != nil {
		return nil, err
	}
	if err := schemas.ValidateRoster(raw); err != nil {
		log.Printf("warning: admin-sessions response does not match schema: %v", err)
	}
	var out []types.RosterEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &Error{Step: "admin-sessions", Cause: err}
	}
	return out, nil
}

// UpdateSessionStatus sets the internal and public status of a session to the
// same value.
func (c *Client) UpdateSessionStatus(ctx context.Context, sessionID, status string) error {
	q := url.Values{}
	q.Set("internal_status", status)
	q.Set("public_status", status)
	path := "/update-session-status/" + url.PathEscape(sessionID) + "?" + q.Encode()
	return c.postJSON(ctx, path, "update-session-status", nil, nil)
}
