// Package bridge drives one scramj invocation end to end: prompt
// resolution, alias lookup, request construction, the single backend call
// and event emission.
package bridge

import (
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/KillyWisper/scramj-cli/internal/config"
	"github.com/KillyWisper/scramj-cli/internal/event"
	"github.com/KillyWisper/scramj-cli/internal/registry"
	"github.com/KillyWisper/scramj-cli/internal/runtime/executor"
	"github.com/KillyWisper/scramj-cli/internal/translator/scramj"
)

// Options carries the caller-supplied invocation inputs.
type Options struct {
	// ModelAlias is the caller-facing model short name.
	ModelAlias string
	// SessionID is an opaque identifier echoed as thread_id when the
	// backend returns no trace id.
	SessionID string
	// SystemPrompt is the optional system prompt, truncated downstream to
	// the resolved model's budget.
	SystemPrompt string
	// PromptArg is the positional prompt argument. When empty, the prompt
	// is read from stdin instead.
	PromptArg string
}

// ChatCaller abstracts the single chat-completions call so the driver can
// be exercised without a network dependency.
type ChatCaller interface {
	Execute(ctx context.Context, body []byte) executor.Outcome
}

// Run performs one full invocation against the configured backend and
// returns the process exit code. Exactly one line is written to stdout.
func Run(ctx context.Context, cfg *config.Config, opts Options, stdin io.Reader, stdout io.Writer) int {
	return run(ctx, opts, stdin, stdout, executor.NewScramJExecutor(cfg))
}

func run(ctx context.Context, opts Options, stdin io.Reader, stdout io.Writer, caller ChatCaller) int {
	prompt := opts.PromptArg
	if prompt == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			log.Warnf("bridge: read stdin: %v", err)
		}
		prompt = strings.TrimSpace(string(data))
	}
	if prompt == "" {
		fmt.Fprintln(stdout, event.EmptyPromptEvent)
		return 0
	}

	model := registry.Resolve(opts.ModelAlias)
	log.Debugf("bridge: alias %q resolved to %q", opts.ModelAlias, model)
	body := scramj.BuildChatRequest(model, opts.SystemPrompt, prompt)

	line, code := event.Normalize(caller.Execute(ctx, body), opts.SessionID)
	fmt.Fprintln(stdout, line)
	return code
}
