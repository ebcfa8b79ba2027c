package utils

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel(" WARN "))
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("verbose"))
}

func TestLevelWriter(t *testing.T) {
	tests := []struct {
		level string
		kept  []string
	}{
		{level: "debug", kept: []string{"debug", "info", "plain", "warn", "error"}},
		{level: "info", kept: []string{"info", "plain", "warn", "error"}},
		{level: "warn", kept: []string{"warn", "error"}},
		{level: "error", kept: []string{"error"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.New(NewLevelWriter(&buf, tt.level), "", 0)

			logger.Printf(`{"level":"debug","msg":"debug"}`)
			logger.Printf(`{"level":"info","msg":"info"}`)
			logger.Println("plain")
			logger.Printf(`{"level":"warn","msg":"warn"}`)
			logger.Printf(`{"time":"now","level":"error","msg":"error"}`)

			out := buf.String()
			for _, name := range []string{"debug", "info", "plain", "warn", "error"} {
				marker := `"msg":"` + name + `"`
				if name == "plain" {
					marker = "plain\n"
				}
				if contains(tt.kept, name) {
					assert.Contains(t, out, marker)
				} else {
					assert.NotContains(t, out, marker)
				}
			}
		})
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
