// Package admin implements the dashboard controller: the candidate roster,
// status transitions, the Q&A transcript, and the AI report view.
package admin

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/otabek/hr-console/internal/backend"
	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/types"
)

// uploadsPath is where the backend serves stored CV files, keyed by filename.
const uploadsPath = "/uploads/"

// displayOffset is added to stored start times before formatting. The stored
// times lag the wall clock of the deployment by five hours; shown verbatim
// they confuse operators, so the panel has always shifted them forward.
const displayOffset = 5 * time.Hour

// StatusKind is the three-way classification of a session's public status.
type StatusKind int

// Status classifications.
const (
	StatusReview StatusKind = iota
	StatusInvited
	StatusRejected
)

// ClassifyStatus buckets a public status field. Anything that is not an
// explicit invite or reject shows as under review.
func ClassifyStatus(statusPublic string) StatusKind {
	switch statusPublic {
	case types.StatusInvited:
		return StatusInvited
	case types.StatusRejected:
		return StatusRejected
	}
	return StatusReview
}

// Row is one rendered roster line.
type Row struct {
	SessionID string
	Name      string
	Phone     string
	Email     string
	Lang      string
	Date      string
	Status    StatusKind
	StatusStr string
	Score     string
	CVLink    string
}

// Dashboard caches the roster and renders it for one admin locale.
type Dashboard struct {
	client *backend.Client
	locale i18n.Locale
	roster []types.RosterEntry
}

// NewDashboard creates a dashboard bound to a backend and locale.
func NewDashboard(client *backend.Client, locale i18n.Locale) *Dashboard {
	return &Dashboard{client: client, locale: locale}
}

// Load fetches the roster and replaces the in-memory cache.
func (d *Dashboard) Load(ctx context.Context) error {
	roster, err := d.client.ListSessions(ctx)
	if err != nil {
		return err
	}
	d.roster = roster
	return nil
}

// Roster returns the cached entries from the last Load.
func (d *Dashboard) Roster() []types.RosterEntry { return d.roster }

// Find looks up a cached entry by session id.
func (d *Dashboard) Find(sessionID string) (*types.RosterEntry, bool) {
	for i := range d.roster {
		if d.roster[i].SessionID == sessionID {
			return &d.roster[i], true
		}
	}
	return nil, false
}

// Rows renders the cached roster for display.
func (d *Dashboard) Rows() []Row {
	t := i18n.Admin(d.locale)
	rows := make([]Row, 0, len(d.roster))
	for _, e := range d.roster {
		kind := ClassifyStatus(e.StatusPublic)
		label := t.StatusReview
		switch kind {
		case StatusInvited:
			label = t.StatusInvited
		case StatusRejected:
			label = t.StatusRejected
		}

		lang := e.CandidateLang
		if lang == "" {
			lang = "en"
		}

		score := "-"
		if e.Score != nil {
			score = strconv.FormatFloat(*e.Score, 'f', -1, 64)
		}

		rows = append(rows, Row{
			SessionID: e.SessionID,
			Name:      e.CandidateName,
			Phone:     e.CandidatePhone,
			Email:     e.CandidateEmail,
			Lang:      strings.ToUpper(lang),
			Date:      FormatStartTime(d.locale, e.StartTime),
			Status:    kind,
			StatusStr: label,
			Score:     score,
			CVLink:    CVLink(e.CVPath),
		})
	}
	return rows
}

// CVLink derives the served CV URL from a stored path: separators are
// normalized, any directory prefix is stripped, and the bare filename is
// joined to the fixed uploads path.
func CVLink(cvPath string) string {
	if cvPath == "" {
		return ""
	}
	normalized := strings.ReplaceAll(cvPath, `\`, "/")
	return uploadsPath + path.Base(normalized)
}

// FormatStartTime shifts a stored start time by the display offset and
// formats it in the panel's date convention. The Russian convention is used
// for every locale except Uzbek.
func FormatStartTime(locale i18n.Locale, ts *types.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	shifted := ts.Add(displayOffset)
	if locale == i18n.LocaleUZ {
		return shifted.Format("02/01/2006, 15:04")
	}
	return shifted.Format("02.01.2006, 15:04")
}

// UpdateStatus sets both status fields of a session to the given value and
// refreshes the roster on success.
func (d *Dashboard) UpdateStatus(ctx context.Context, sessionID, status string) error {
	if status != types.StatusInvited && status != types.StatusRejected {
		return fmt.Errorf("unsupported status %q", status)
	}
	if err := d.client.UpdateSessionStatus(ctx, sessionID, status); err != nil {
		return err
	}
	return d.Load(ctx)
}
