package debug

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	defer func() { os.Stderr = oldStderr }()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name    string
		env     bool
		verbose bool
		want    bool
	}{
		{"env set", true, false, true},
		{"verbose flag", false, true, true},
		{"disabled", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldEnabled, oldVerbose := enabled, verboseMode
			defer func() { enabled, verboseMode = oldEnabled, oldVerbose }()

			enabled = tt.env
			SetVerbose(tt.verbose)

			if got := Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogf(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		wantOutput string
	}{
		{"outputs when enabled", true, "test message: hello\n"},
		{"no output when disabled", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldEnabled, oldVerbose := enabled, verboseMode
			defer func() { enabled, verboseMode = oldEnabled, oldVerbose }()
			enabled = tt.enabled
			verboseMode = false

			got := captureStderr(t, func() {
				Logf("test message: %s\n", "hello")
			})
			if got != tt.wantOutput {
				t.Errorf("Logf() output = %q, want %q", got, tt.wantOutput)
			}
		})
	}
}

func TestTimed(t *testing.T) {
	oldEnabled := enabled
	defer func() { enabled = oldEnabled }()
	enabled = true

	got := captureStderr(t, func() {
		Timed("fetch", time.Now().Add(-2*time.Second))
	})
	if !strings.HasPrefix(got, "[debug] fetch took ") {
		t.Errorf("Timed() output = %q", got)
	}
}

func TestQuiet(t *testing.T) {
	defer SetQuiet(false)

	oldStdout := os.Stdout
	defer func() { os.Stdout = oldStdout }()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	SetQuiet(true)
	PrintNormal("hidden\n")
	SetQuiet(false)
	PrintNormal("shown\n")

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	if got := buf.String(); got != "shown\n" {
		t.Errorf("PrintNormal output = %q, want only the unquiet line", got)
	}
}
