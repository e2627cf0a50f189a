package logging

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup_Level(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{" error ", log.ErrorLevel},
		{"warn", log.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(&buf, tt.level)
			if got := log.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "chatty")

	if got := log.GetLevel(); got != log.WarnLevel {
		t.Errorf("level = %v, want warn", got)
	}
	if !strings.Contains(buf.String(), "invalid log level") {
		t.Errorf("expected warning about invalid level, got %q", buf.String())
	}
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "warn")

	log.WithField("path", "x.json").Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug entry leaked at warn level: %q", buf.String())
	}

	log.WithField("path", "x.json").Warn("shown")
	if !strings.Contains(buf.String(), "path=x.json") {
		t.Errorf("expected structured field in output, got %q", buf.String())
	}
}
