package profile

import (
	"slices"
	"testing"
)

func TestStart_Disabled(t *testing.T) {
	s := Start(WithMode(""), WithDir(t.TempDir()), WithQuiet(true))
	if _, ok := s.(ignore); !ok {
		t.Fatalf("expected no-op profiler, got %T", s)
	}

	s.Stop()
	s.Stop()
}

func TestStart_UnknownMode(t *testing.T) {
	s := Start(WithMode("bogus"), WithDir(t.TempDir()), WithQuiet(true), nil)
	if _, ok := s.(ignore); !ok {
		t.Fatalf("expected no-op profiler, got %T", s)
	}

	s.Stop()
}

func TestModes(t *testing.T) {
	modes := Modes()

	if !Enabled {
		if len(modes) != 0 {
			t.Errorf("expected no modes without %s tag, got %v", Tag, modes)
		}

		return
	}

	if !slices.IsSorted(modes) || !slices.Contains(modes, "cpu") {
		t.Errorf("unexpected modes: %v", modes)
	}
}
