package types

import (
	"encoding/json"
	"strings"
	"time"
)

// Status values the admin console writes back to the backend.
const (
	StatusInvited  = "INVITED"
	StatusRejected = "REJECTED"
)

// Answer is a candidate's stored answer with its integrity signals.
type Answer struct {
	AnswerText    string   `json:"answer_text"`
	AIScore       *float64 `json:"ai_score"`
	AIExplanation string   `json:"ai_explanation"`
}

// RosterEntry is one candidate session as reported by /admin/sessions.
type RosterEntry struct {
	SessionID      string     `json:"session_id"`
	CandidateName  string     `json:"candidate_name"`
	CandidatePhone string     `json:"candidate_phone"`
	CandidateEmail string     `json:"candidate_email"`
	CandidateLang  string     `json:"candidate_lang"`
	CVPath         string     `json:"cv_path"`
	StartTime      *Timestamp `json:"start_time"`
	StatusInternal string     `json:"status_internal"`
	StatusPublic   string     `json:"status_public"`
	Score          *float64   `json:"score"`
	Questions      []Question `json:"questions"`
	Answers        []Answer   `json:"answers"`
	Decision       string     `json:"decision"`
	HRComment      string     `json:"hr_comment"`
	Flags          FlagList   `json:"flags"`
}

// FlagList is the canonical form of a session's integrity flags. The backend
// serializes them as a JSON array, a JSON-encoded string, or a plain
// comma-separated string depending on which layer produced them; all three
// shapes normalize into a plain list.
type FlagList []string

// UnmarshalJSON accepts any of the three wire shapes. A string that looks
// like JSON but does not parse yields an empty list rather than an error.
func (f *FlagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = nil
		return nil
	}
	*f = NormalizeFlags(s)
	return nil
}

// NormalizeFlags parses the string encodings of a flag list.
func NormalizeFlags(s string) FlagList {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return FlagList{}
	}
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
			return FlagList{}
		}
		return FlagList(list)
	}
	var flags FlagList
	for _, part := range strings.Split(trimmed, ",") {
		if part = strings.TrimSpace(part); part != "" {
			flags = append(flags, part)
		}
	}
	if flags == nil {
		flags = FlagList{}
	}
	return flags
}

// timestampLayouts covers RFC3339 and the zone-less ISO form the backend's
// serializer emits for stored datetimes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is a time.Time that tolerates the backend's datetime formats.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON tries each known layout in order.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON writes the RFC3339 form.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}
