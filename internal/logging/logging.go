// Package logging configures the shared logrus logger for the bridge.
// Standard output is reserved for the single event line the host parses,
// so every log line goes to standard error.
package logging

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// SetupBaseLogger configures the process-wide logger. The default level is
// warn so a normal invocation stays silent on stderr.
func SetupBaseLogger() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(log.WarnLevel)
}

// SetLogLevel adjusts the shared logger level from a user-supplied string.
// Unknown values fall back to info.
func SetLogLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "verbose":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn", "warning":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "quiet", "silent":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
