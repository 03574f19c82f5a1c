package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"cxdash/logging"

	"github.com/m-mizutani/gt"
)

func TestParseLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLevel("debug"), slog.LevelDebug)
	gt.Equal(t, logging.ParseLevel("WARNING"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLevel("error"), slog.LevelError)
	gt.Equal(t, logging.ParseLevel(""), slog.LevelInfo)
	gt.Equal(t, logging.ParseLevel("verbose"), slog.LevelInfo)
}

func TestNewAutoWritesJSONToBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, &buf, logging.FormatAuto)

	logger.Debug("hidden")
	logger.Info("rendered dashboard", "panels", 2)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, entry["msg"], any("rendered dashboard"))
	gt.Equal(t, entry["panels"], any(float64(2)))
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelDebug, &buf, logging.FormatConsole)
	logger.Debug("console line")

	gt.S(t, buf.String()).Contains("console line")
}
