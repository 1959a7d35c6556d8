package logger

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"verbose", false},
		{"", false},
	}
	for _, tt := range tests {
		_, ok := parseLevel(tt.input)
		if ok != tt.ok {
			t.Errorf("parseLevel(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
	}
}

func TestNew(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		l, err := New("debug", pretty)
		if err != nil {
			t.Fatalf("New(pretty=%v) error: %v", pretty, err)
		}
		l.Info("hello", String("k", "v"), Int("n", 1))
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Warn("ignored", Error(errors.New("boom")))
	if err := l.Sync(); err != nil {
		t.Errorf("Sync on nop logger: %v", err)
	}
}
