package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLogLevel("DEBUG"), slog.LevelDebug)
	gt.Equal(t, logging.ParseLogLevel("warning"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLogLevel("error"), slog.LevelError)
	gt.Equal(t, logging.ParseLogLevel("bogus"), slog.LevelInfo)
}

func TestParseFormat(t *testing.T) {
	gt.Equal(t, logging.ParseFormat("json"), logging.FormatJSON)
	gt.Equal(t, logging.ParseFormat("Console"), logging.FormatConsole)
	gt.Equal(t, logging.ParseFormat(""), logging.FormatAuto)
}

func TestNewLoggerNonTerminalIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)
	logger.Info("hello", "key", "value")
	logger.Debug("hidden")

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, entry["msg"], any("hello"))
	gt.Equal(t, entry["key"], any("value"))
}
