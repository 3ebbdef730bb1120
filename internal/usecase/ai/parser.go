package ai

import (
	"encoding/json"
	"strings"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// ParseSummary decodes a provider summary response. It never fails: anything that is
// not a JSON object degrades to entities.FallbackSummary.
func ParseSummary(response string) (*entities.Summary, bool) {
	content := extractJSON(response)
	if !strings.HasPrefix(content, "{") {
		return entities.FallbackSummary(content), false
	}

	var summary entities.Summary
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return entities.FallbackSummary(content), false
	}
	summary.Raw = json.RawMessage(content)
	return &summary, true
}

// extractJSON strips a ```json or ``` markdown fence around the payload
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
