package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/desilang/lox/compiler/internal/config"
)

func TestDefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, config.Log{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("output = %q", out)
	}
}

func TestFormats(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, config.Log{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Debug("scanned", "tokens", 3)
	var row map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &row); err != nil {
		t.Fatalf("not json: %q: %v", buf.String(), err)
	}
	if row["msg"] != "scanned" || row["tokens"] != 3.0 {
		t.Errorf("row = %v", row)
	}

	buf.Reset()
	l, err = New(&buf, config.Log{Level: "info", Format: "logfmt"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("parsed", "exprs", 2)
	if out := buf.String(); !strings.Contains(out, "msg=parsed") || !strings.Contains(out, "exprs=2") {
		t.Errorf("logfmt output = %q", out)
	}
}

func TestRejectsUnknownSettings(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, config.Log{Level: "loud"}); err == nil {
		t.Error("unknown level accepted")
	}
	if _, err := New(&bytes.Buffer{}, config.Log{Format: "xml"}); err == nil {
		t.Error("unknown format accepted")
	}
}
