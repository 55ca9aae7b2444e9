package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewTagsComponent(t *testing.T) {
	t.Setenv(levelEnv, "")

	var buf bytes.Buffer
	logger := New(&buf, "import")
	logger.Info().Str("source", "limonade").Msg("batch ingested")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "import" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["source"] != "limonade" {
		t.Errorf("source = %v", entry["source"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected a timestamp")
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		" error ": zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for raw, want := range tests {
		t.Setenv(levelEnv, raw)
		if got := levelFromEnv(); got != want {
			t.Errorf("level for %q = %v, want %v", raw, got, want)
		}
	}
}

func TestLevelFiltersInfo(t *testing.T) {
	t.Setenv(levelEnv, "warn")

	var buf bytes.Buffer
	logger := New(&buf, "parse")
	logger.Info().Msg("hidden")

	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestSetOutput(t *testing.T) {
	t.Setenv(levelEnv, "")

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(Console(&bytes.Buffer{})) })

	logger := NewLogger("units")
	logger.Info().Msg("listed")

	if !bytes.Contains(buf.Bytes(), []byte(`"component":"units"`)) {
		t.Errorf("expected output in redirected writer, got %q", buf.String())
	}
}
