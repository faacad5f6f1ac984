package markets

import (
	"errors"
	"testing"
)

// TestDefaultRegistryTargets tests registry order of the standard book
func TestDefaultRegistryTargets(t *testing.T) {
	r := Default()
	want := []string{"H", "D", "A", "over_1.5", "under_1.5", "over_2.5", "under_2.5", "over_3.5", "under_3.5"}
	got := r.Targets()
	if len(got) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("target %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

// TestDefaultPredicates tests market outcomes for sample scores
func TestDefaultPredicates(t *testing.T) {
	r := Default()

	tests := []struct {
		target   string
		s1, s2   int
		realized bool
	}{
		{"H", 2, 1, true},
		{"H", 1, 1, false},
		{"D", 1, 1, true},
		{"A", 0, 3, true},
		{"over_2.5", 2, 1, true},
		{"over_2.5", 1, 1, false},
		{"under_2.5", 1, 1, true},
		{"over_1.5", 1, 0, false},
		{"under_3.5", 2, 1, true},
		{"over_3.5", 2, 2, true},
	}

	for _, tt := range tests {
		p, err := r.Predicate(tt.target)
		if err != nil {
			t.Fatalf("Predicate(%q): %v", tt.target, err)
		}
		if p(tt.s1, tt.s2) != tt.realized {
			t.Errorf("%s at %d-%d: expected %v", tt.target, tt.s1, tt.s2, tt.realized)
		}
	}
}

// TestNewRegistryRejectsDuplicates tests duplicate market names
func TestNewRegistryRejectsDuplicates(t *testing.T) {
	always := func(s1, s2 int) bool { return true }
	_, err := NewRegistry([]Entry{
		{Name: "H", Predicate: always},
		{Name: "H", Predicate: always},
	})
	if !errors.Is(err, ErrInvalidTargets) {
		t.Errorf("expected ErrInvalidTargets, got %v", err)
	}
}

// TestNewRegistryRejectsNoBetName tests the reserved sentinel name
func TestNewRegistryRejectsNoBetName(t *testing.T) {
	_, err := NewRegistry([]Entry{
		{Name: NoBet, Predicate: func(s1, s2 int) bool { return true }},
	})
	if !errors.Is(err, ErrInvalidTargets) {
		t.Errorf("expected ErrInvalidTargets, got %v", err)
	}
}

// TestPredicateUnknownMarket tests lookup of an unregistered market
func TestPredicateUnknownMarket(t *testing.T) {
	r := Default()
	if _, err := r.Predicate("over_9.5"); !errors.Is(err, ErrUnknownMarket) {
		t.Errorf("expected ErrUnknownMarket, got %v", err)
	}
}

// TestResolveTargets tests explicit and defaulted target lists
func TestResolveTargets(t *testing.T) {
	r := Default()

	resolved, err := r.ResolveTargets(nil)
	if err != nil {
		t.Fatalf("ResolveTargets(nil): %v", err)
	}
	if len(resolved) != len(r.Targets()) {
		t.Errorf("expected full registry, got %d targets", len(resolved))
	}

	resolved, err = r.ResolveTargets([]string{"D", "H"})
	if err != nil {
		t.Fatalf("ResolveTargets explicit: %v", err)
	}
	if len(resolved) != 2 || resolved[0] != "D" || resolved[1] != "H" {
		t.Errorf("expected [D H], got %v", resolved)
	}

	if _, err := r.ResolveTargets([]string{"H", "bogus"}); !errors.Is(err, ErrInvalidTargets) {
		t.Errorf("expected ErrInvalidTargets, got %v", err)
	}
}
