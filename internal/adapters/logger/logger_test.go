package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bindleio/bindle/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	l := logger.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Debugf("debug %s", "message")
	l.Infof("info %d", 42)
	l.Warnf("warn %s", "message")
	l.Error(errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"debug message", "info 42", "warn message", "operation failed", "boom"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLogger_DebugConstructor(t *testing.T) {
	l := logger.NewDebug()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Debugf("visible")
	if !bytes.Contains(buf.Bytes(), []byte("visible")) {
		t.Error("expected debug record from debug logger")
	}
}
