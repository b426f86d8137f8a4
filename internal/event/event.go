// Package event normalizes backend outcomes into the single stream-event
// line the OpenClaw host parses. Every outcome, including failures, maps to
// exactly one well-formed JSON object; failure is signaled through the exit
// code, never through output shape.
package event

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/KillyWisper/scramj-cli/internal/runtime/executor"
	"github.com/KillyWisper/scramj-cli/internal/usage"
)

// EmptyPromptEvent is emitted verbatim when the invocation carries no
// prompt. No backend call happens in that case.
const EmptyPromptEvent = `{"item":{"text":"(empty prompt)","type":"message"}}`

const (
	// noResponseText substitutes for a success body without message content.
	noResponseText = "(no response)"

	connectionErrorPrefix = "SCRAM-J connection error: "
	errorPrefix           = "SCRAM-J error: "
)

// Normalize converts an executor outcome into the event line and the
// process exit code. A success body that is not a JSON object is downgraded
// to the generic error event, matching how a malformed backend reply is
// indistinguishable from any other response failure.
func Normalize(outcome executor.Outcome, sessionID string) (string, int) {
	switch outcome.Kind {
	case executor.OutcomeSuccess:
		return normalizeSuccess(outcome.Body, sessionID)
	case executor.OutcomeTransport:
		return errorEvent(connectionErrorPrefix + detail(outcome.Err)), 1
	default:
		return errorEvent(errorPrefix + detail(outcome.Err)), 1
	}
}

func normalizeSuccess(body []byte, sessionID string) (string, int) {
	if !gjson.ValidBytes(body) {
		return errorEvent(errorPrefix + "malformed response JSON"), 1
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return errorEvent(errorPrefix + "unexpected response shape"), 1
	}

	text := noResponseText
	if content := root.Get("choices.0.message.content"); content.Exists() && content.Type != gjson.Null {
		text = content.String()
	}

	// The backend trace id wins over the caller's session id so the host
	// correlates with Spark-side logs when it can.
	threadID := root.Get("scram_j.trace_id").String()
	if threadID == "" {
		threadID = sessionID
	}

	u := usage.ParseChatUsage(body)
	line := `{"thread_id":"","item":{"text":"","type":"message"},"usage":{"input_tokens":0,"output_tokens":0,"total_tokens":0}}`
	line, _ = sjson.Set(line, "thread_id", threadID)
	line, _ = sjson.Set(line, "item.text", text)
	line, _ = sjson.Set(line, "usage.input_tokens", u.InputTokens)
	line, _ = sjson.Set(line, "usage.output_tokens", u.OutputTokens)
	line, _ = sjson.Set(line, "usage.total_tokens", u.TotalTokens)
	return line, 0
}

// errorEvent renders a failure event. Error events carry no thread_id and
// no usage block.
func errorEvent(text string) string {
	line := `{"item":{"text":"","type":"message"}}`
	line, _ = sjson.Set(line, "item.text", text)
	return line
}

func detail(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
