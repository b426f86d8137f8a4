// Package main provides the entry point for the scramj bridge.
// The bridge lets the OpenClaw host drive Spark's SCRAM-J chat-completions
// API through its CLI backend interface: one prompt in, one JSON event
// line out.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/KillyWisper/scramj-cli/internal/bridge"
	"github.com/KillyWisper/scramj-cli/internal/config"
	"github.com/KillyWisper/scramj-cli/internal/logging"
)

func main() {
	_ = godotenv.Load()

	var modelAlias string
	var sessionID string
	var systemPrompt string
	var configPath string
	var logLevel string
	flag.StringVar(&modelAlias, "model", "default", "Model alias to resolve against the SCRAM-J registry")
	flag.StringVar(&modelAlias, "m", "default", "Model alias (shorthand)")
	flag.StringVar(&sessionID, "session-id", "", "Opaque session identifier, used as thread_id when the backend returns no trace id")
	flag.StringVar(&systemPrompt, "append-system-prompt", "", "System prompt to send, truncated to the resolved model's budget")
	flag.StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error, quiet)")
	flag.Parse()

	logging.SetupBaseLogger()
	if logLevel != "" {
		logging.SetLogLevel(logLevel)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	opts := bridge.Options{
		ModelAlias:   modelAlias,
		SessionID:    sessionID,
		SystemPrompt: systemPrompt,
		PromptArg:    flag.Arg(0),
	}
	os.Exit(bridge.Run(context.Background(), cfg, opts, os.Stdin, os.Stdout))
}
