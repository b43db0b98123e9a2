package admin

import (
	"context"
	"fmt"

	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/types"
)

// maxReportFlags caps how many flags the report lists.
const maxReportFlags = 5

const (
	missingDecisionText = "N/A"
	missingCommentText  = "No comment available"
)

// Report is the assembled AI report for one session, fully localized.
type Report struct {
	Title    string
	Decision string
	Comment  string
	Reasons  []string
}

// NeedsGeneration reports whether a session's AI analysis has not been
// computed yet and must be triggered before the report can render.
func NeedsGeneration(entry *types.RosterEntry) bool {
	return entry.Decision == "" || entry.Score == nil || entry.HRComment == ""
}

// BuildReport assembles the report view from a fully analyzed entry.
func BuildReport(entry *types.RosterEntry, locale i18n.Locale) Report {
	labels := i18n.Report(locale)

	decision := entry.Decision
	if decision == "" {
		decision = missingDecisionText
	}
	comment := entry.HRComment
	if comment == "" {
		comment = missingCommentText
	}

	flags := entry.Flags
	if len(flags) > maxReportFlags {
		flags = flags[:maxReportFlags]
	}
	reasons := make([]string, 0, len(flags))
	for _, flag := range flags {
		reasons = append(reasons, i18n.TranslateFlag(locale, flag))
	}

	return Report{
		Title:    labels.Title,
		Decision: i18n.TranslateDecision(locale, decision),
		Comment:  i18n.SelectComment(locale, comment),
		Reasons:  reasons,
	}
}

// Report builds the AI report for a session. When the analysis is missing it
// triggers integrity analysis and recommendation generation, in that order
// and exactly once, then reloads the roster and renders from the refreshed
// entry. The caller shows its loading state before invoking this.
func (d *Dashboard) Report(ctx context.Context, sessionID string) (*Report, error) {
	t := i18n.Admin(d.locale)

	entry, ok := d.Find(sessionID)
	if !ok {
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}

	if NeedsGeneration(entry) {
		if err := d.client.AnalyzeIntegrity(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("%s: %w", t.AIFailed, err)
		}
		if err := d.client.GenerateRecommendation(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("%s: %w", t.AIFailed, err)
		}
		if err := d.Load(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", t.AIFailed, err)
		}
		entry, ok = d.Find(sessionID)
		if !ok {
			return nil, fmt.Errorf("unknown session %s", sessionID)
		}
	}

	report := BuildReport(entry, d.locale)
	return &report, nil
}
