package entities

import "encoding/json"

// Summary is the structured result of summarizing a meeting transcription
type Summary struct {
	Title       string              `json:"title"`
	KeyPoints   []string            `json:"key_points"`
	Decisions   []string            `json:"decisions"`
	ActionItems []SummaryActionItem `json:"action_items"`

	// Raw is the provider JSON the summary was decoded from, stored verbatim when set.
	Raw json.RawMessage `json:"-"`
}

// SummaryActionItem is one action item suggested by the AI provider
type SummaryActionItem struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	Priority string `json:"priority"`
}

const fallbackSummaryTitle = "Meeting Summary"

// FallbackSummary wraps an unparseable provider response so the meeting stays usable
func FallbackSummary(response string) *Summary {
	keyPoints := []string{}
	if response != "" {
		runes := []rune(response)
		if len(runes) > 200 {
			runes = runes[:200]
		}
		keyPoints = append(keyPoints, string(runes))
	}
	return &Summary{
		Title:       fallbackSummaryTitle,
		KeyPoints:   keyPoints,
		Decisions:   []string{},
		ActionItems: []SummaryActionItem{},
	}
}
