// Package types provides type definitions for the data exchanged with the
// AI HR backend.
package types

import (
	"encoding/json"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Question is a single generated interview question.
type Question struct {
	Text string `json:"question"`
}

// QuestionSet is the backend's generated question payload. Raw keeps the
// untouched response body so it can be echoed back to /start-interview
// without losing fields this client does not model.
type QuestionSet struct {
	Questions []Question      `json:"questions"`
	Raw       json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the question list and retains the raw payload.
func (q *QuestionSet) UnmarshalJSON(data []byte) error {
	type alias QuestionSet
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*q = QuestionSet(a)
	q.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// CVAnalysis is the result of submitting a CV to /analyze. Raw keeps the full
// response body because /detect-level receives it verbatim.
type CVAnalysis struct {
	CVPath string
	Raw    json.RawMessage
}

// StartForm carries the candidate's registration fields.
type StartForm struct {
	Name   string `validate:"required"`
	Phone  string `validate:"required"`
	Email  string `validate:"required"`
	CVPath string
}

var uzPhoneRe = regexp.MustCompile(`^\+998\d{9}$`)

// ValidUzPhone reports whether a phone number matches the +998XXXXXXXXX
// format enforced for Uzbek candidates.
func ValidUzPhone(phone string) bool {
	return uzPhoneRe.MatchString(phone)
}

// Validate checks the required registration fields using the validator.
// The Uzbek phone rule and CV presence are enforced by the flow, which knows
// the selected locale.
func (f *StartForm) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// StartInterviewRequest registers a new interview session.
type StartInterviewRequest struct {
	CandidateID    string          `json:"candidate_id"`
	CandidateName  string          `json:"candidate_name"`
	CandidatePhone string          `json:"candidate_phone"`
	CandidateEmail string          `json:"candidate_email"`
	QuestionSet    json.RawMessage `json:"question_set"`
	Lang           string          `json:"lang"`
	CVPath         string          `json:"cv_path"`
}
