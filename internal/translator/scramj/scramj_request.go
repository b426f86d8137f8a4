// Package scramj builds SCRAM-J chat-completions request payloads.
// SCRAM-J speaks the OpenAI chat-completions wire contract, so the payload
// is assembled directly as JSON bytes rather than through intermediate
// structs.
package scramj

import (
	"github.com/tidwall/sjson"

	"github.com/KillyWisper/scramj-cli/internal/registry"
)

// BuildChatRequest assembles the outbound chat-completions body for a
// resolved model. A supplied system prompt is truncated to the model's
// character budget and emitted as the first message; the user prompt is
// always the final message and is never truncated.
func BuildChatRequest(model, systemPrompt, userPrompt string) []byte {
	body := `{"model":"","messages":[]}`
	body, _ = sjson.Set(body, "model", model)
	if systemPrompt != "" {
		msg := `{"role":"system","content":""}`
		msg, _ = sjson.Set(msg, "content", truncateToBudget(model, systemPrompt))
		body, _ = sjson.SetRaw(body, "messages.-1", msg)
	}
	msg := `{"role":"user","content":""}`
	msg, _ = sjson.Set(msg, "content", userPrompt)
	body, _ = sjson.SetRaw(body, "messages.-1", msg)
	return []byte(body)
}

// truncateToBudget applies the model's system prompt budget as a hard
// prefix cut. No ellipsis, no word-boundary handling: the backend limit is
// a character count, so the cut counts runes rather than bytes.
func truncateToBudget(model, systemPrompt string) string {
	budget := registry.SystemPromptBudget(model)
	if runes := []rune(systemPrompt); len(runes) > budget {
		return string(runes[:budget])
	}
	return systemPrompt
}
