package utils

import (
	"bytes"
	"io"
	"strings"
)

// Log levels in increasing severity
const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var logLevels = map[string]int{
	"debug": LogLevelDebug,
	"info":  LogLevelInfo,
	"warn":  LogLevelWarn,
	"error": LogLevelError,
}

// ParseLogLevel maps a level name onto its severity; unknown names mean info
func ParseLogLevel(name string) int {
	if lvl, ok := logLevels[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lvl
	}
	return LogLevelInfo
}

// LevelWriter drops log lines below a minimum level.
// The level is read from the line's "level" field; lines without one count as info.
type LevelWriter struct {
	out io.Writer
	min int
}

func NewLevelWriter(out io.Writer, level string) *LevelWriter {
	return &LevelWriter{out: out, min: ParseLogLevel(level)}
}

func (w *LevelWriter) Write(p []byte) (int, error) {
	if lineLevel(p) < w.min {
		return len(p), nil
	}
	return w.out.Write(p)
}

var levelField = []byte(`"level":"`)

func lineLevel(line []byte) int {
	i := bytes.Index(line, levelField)
	if i < 0 {
		return LogLevelInfo
	}
	rest := line[i+len(levelField):]
	end := bytes.IndexByte(rest, '"')
	if end < 0 {
		return LogLevelInfo
	}
	return ParseLogLevel(string(rest[:end]))
}
