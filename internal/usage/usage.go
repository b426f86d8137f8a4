// Package usage extracts token accounting from backend responses.
package usage

import "github.com/tidwall/gjson"

// Snapshot holds the token counts reported by a chat-completions response.
type Snapshot struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// ParseChatUsage reads the usage block of a chat-completions response body.
// Missing fields, or a missing block, are reported as zero.
func ParseChatUsage(body []byte) Snapshot {
	u := gjson.GetBytes(body, "usage")
	return Snapshot{
		InputTokens:  u.Get("prompt_tokens").Int(),
		OutputTokens: u.Get("completion_tokens").Int(),
		TotalTokens:  u.Get("total_tokens").Int(),
	}
}
