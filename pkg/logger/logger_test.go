package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		Init("info")
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)

	Init("warn")
	Debugf("hidden %d", 1)
	Infof("also hidden")
	Warnf("visible warning")
	Errorf("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("below-level lines leaked: %q", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "visible error") {
		t.Fatalf("expected warn and error lines, got: %q", out)
	}
}

func TestInitDefaultsToInfo(t *testing.T) {
	buf := capture(t)

	Init("not-a-level")
	if got := LevelString(); got != "info" {
		t.Fatalf("expected info, got %s", got)
	}
	Infof("hello")
	if !strings.Contains(buf.String(), "[INFO] hello") {
		t.Fatalf("missing info line: %q", buf.String())
	}
}

func TestHeaderCarriesLevel(t *testing.T) {
	buf := capture(t)

	Init("debug")
	Debugf("dbg")
	if !strings.Contains(buf.String(), "[DEBUG] dbg") {
		t.Fatalf("missing debug header: %q", buf.String())
	}
}
