// Package executor performs the single blocking HTTP call against the
// SCRAM-J backend and classifies its result.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/KillyWisper/scramj-cli/internal/config"
)

const chatCompletionsPath = "/v1/chat/completions"

// OutcomeKind classifies the result of one request attempt.
type OutcomeKind int

const (
	// OutcomeSuccess means a 2xx response body was read in full.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeTransport means the call never completed: URL, dial, DNS or
	// timeout errors.
	OutcomeTransport

	// OutcomeFailure covers everything else, such as non-2xx statuses and
	// body read errors.
	OutcomeFailure
)

// Outcome is the tagged result of one chat-completions attempt. Body is
// meaningful for OutcomeSuccess, Err for the two failure kinds.
type Outcome struct {
	Kind OutcomeKind
	Body []byte
	Err  error
}

// statusErr reports a non-2xx upstream status.
type statusErr struct {
	code int
	msg  string
}

func (e statusErr) Error() string { return fmt.Sprintf("status %d: %s", e.code, e.msg) }

// StatusCode returns the upstream HTTP status.
func (e statusErr) StatusCode() int { return e.code }

// ScramJExecutor is a stateless executor for the SCRAM-J chat-completions
// endpoint.
type ScramJExecutor struct {
	cfg    *config.Config
	client *http.Client
}

// NewScramJExecutor creates an executor bound to the configured endpoint.
func NewScramJExecutor(cfg *config.Config) *ScramJExecutor {
	return &ScramJExecutor{cfg: cfg, client: &http.Client{}}
}

// Identifier returns the provider identifier.
func (e *ScramJExecutor) Identifier() string { return "scram-j" }

// Execute posts body to the chat-completions endpoint and classifies the
// result. The call is bounded by the configured timeout; expiry surfaces as
// OutcomeTransport.
func (e *ScramJExecutor) Execute(ctx context.Context, body []byte) Outcome {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout())
	defer cancel()

	endpoint := strings.TrimSuffix(e.cfg.BaseURL, "/") + chatCompletionsPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{Kind: OutcomeTransport, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	log.Debugf("scram-j executor: POST %s (%d bytes)", endpoint, len(body))
	httpResp, err := e.client.Do(httpReq)
	if err != nil {
		return Outcome{Kind: OutcomeTransport, Err: err}
	}
	defer func() {
		if errClose := httpResp.Body.Close(); errClose != nil {
			log.Errorf("scram-j executor: close response body error: %v", errClose)
		}
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Outcome{Kind: OutcomeFailure, Err: err}
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		log.Debugf("scram-j executor: error status %d, body: %s", httpResp.StatusCode, data)
		return Outcome{Kind: OutcomeFailure, Err: statusErr{code: httpResp.StatusCode, msg: string(data)}}
	}
	return Outcome{Kind: OutcomeSuccess, Body: data}
}
