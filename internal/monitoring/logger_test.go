package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("reloaded %s", "arc.txt")
	if got != "reloaded arc.txt" {
		t.Errorf("custom logger got %q", got)
	}

	// nil mutes logging
	got = ""
	SetLogger(nil)
	Logf("ignored")
	if got != "" {
		t.Errorf("no-op logger should not reach the previous logger, got %q", got)
	}
}

func TestLogfDefault(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf should not be nil by default")
	}
}
