package admin

import (
	"fmt"
	"strings"

	"github.com/otabek/hr-console/internal/types"
)

const (
	// aiScoreThreshold is the AI-likelihood above which an answer gets flagged.
	aiScoreThreshold = 0.5
	// typingSpeedMarker inside an explanation means the speed trap tripped.
	typingSpeedMarker = "typing_speed"

	missingAnswerText = "No answer provided"
)

// Badge is an anomaly marker attached to an answer.
type Badge struct {
	Label   string
	Tooltip string
}

// QAItem is one question with its positionally matched answer.
type QAItem struct {
	Number   int
	Question string
	Answer   string
	Missing  bool
	Badges   []Badge
}

// Transcript pairs every question of an entry with its answer by index.
// Answers past the end of the answer list render as missing.
func Transcript(entry *types.RosterEntry) []QAItem {
	items := make([]QAItem, 0, len(entry.Questions))
	for i, q := range entry.Questions {
		item := QAItem{Number: i + 1, Question: q.Text}

		if i >= len(entry.Answers) {
			item.Answer = missingAnswerText
			item.Missing = true
			items = append(items, item)
			continue
		}

		ans := entry.Answers[i]
		item.Answer = ans.AnswerText
		if ans.AIScore != nil && *ans.AIScore > aiScoreThreshold {
			tooltip := ans.AIExplanation
			if tooltip == "" {
				tooltip = "AI Pattern Detected"
			}
			item.Badges = append(item.Badges, Badge{
				Label:   fmt.Sprintf("AI (%d%%)", int(*ans.AIScore*100+0.5)),
				Tooltip: tooltip,
			})
		}
		if strings.Contains(ans.AIExplanation, typingSpeedMarker) {
			item.Badges = append(item.Badges, Badge{
				Label:   "Fast Type",
				Tooltip: "Typed impossibly fast",
			})
		}
		items = append(items, item)
	}
	return items
}
