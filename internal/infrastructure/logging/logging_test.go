package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, true).Info("auto-reject: committed", "cancelled", 2)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not json: %v (%s)", err, buf.String())
	}
	if line["msg"] != "auto-reject: committed" || line["cancelled"] != float64(2) {
		t.Fatalf("unexpected record: %v", line)
	}
}

func TestNew_TextAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn, false)
	l.Info("hidden")
	l.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "k=v") {
		t.Fatalf("unexpected text output: %s", out)
	}
}
