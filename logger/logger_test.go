package logger

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel(defaultLevel.String())

	if err := SetLevel("debug"); err != nil {
		t.Errorf("SetLevel(debug) returned %v", err)
	}
	if err := SetLevel("chatty"); err == nil {
		t.Errorf("SetLevel(chatty) returned nil error")
	}
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	HandleError(errors.New("fetch failed"))

	if !strings.Contains(buf.String(), "fetch failed") {
		t.Errorf("HandleError() wrote %q, want it to contain the error", buf.String())
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	WithField("label", "sports").Warn("trained")

	if !strings.Contains(buf.String(), "label=sports") {
		t.Errorf("WithField() wrote %q, want label=sports", buf.String())
	}
}
