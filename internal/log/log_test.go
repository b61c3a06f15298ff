package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("debug", "json", &buf)

	l.Info("request handled", "path", "/api/terminals", "status", 200)

	out := buf.String()
	for _, want := range []string{`"msg":"request handled"`, `"path":"/api/terminals"`, `"status":200`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %s, got %s", want, out)
		}
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("error", "json", &buf)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected sub-error output to be suppressed, got %s", buf.String())
	}

	l.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("Expected error output, got %s", buf.String())
	}
}

func TestConfigure_ReplacesRoot(t *testing.T) {
	before := root
	Configure("debug", "json")
	defer Configure("info", "console")

	if root == before {
		t.Error("Expected Configure to install a new logger")
	}
}
