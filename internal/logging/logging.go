// Package logging configures the process-wide logrus logger used for
// diagnostics. Command output never goes through the logger.
package logging

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup points the standard logger at w and applies level. An unknown level
// falls back to warn and says so.
func Setup(w io.Writer, level string) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		log.SetLevel(log.WarnLevel)
		log.Warnf("invalid log level %q, defaulting to warn", level)
		return
	}
	log.SetLevel(lvl)
}
