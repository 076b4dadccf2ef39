package sim

import (
	"math"
	"testing"
)

func TestSetupComprehensive(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	start := s.Budget

	ui := &fakeUI{choices: []int{1, 1}} // comprehensive plan, full assessment
	Setup(s, ui)

	if start-s.Budget != 45_000 {
		t.Fatalf("budget delta = %d, want 45000", start-s.Budget)
	}
	if math.Abs(s.Reputation-0.65) > 1e-9 {
		t.Fatalf("reputation = %.2f, want 0.65", s.Reputation)
	}
	if math.Abs(s.PermitBonus-0.10) > 1e-9 {
		t.Fatalf("permit bonus = %.2f, want 0.10", s.PermitBonus)
	}
	if !s.FullHeritageAssessments {
		t.Fatal("full assessment must set the heritage policy")
	}
}

func TestSetupMinimal(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	start := s.Budget

	ui := &fakeUI{choices: []int{0, 0}} // minimal plan, minimal survey
	Setup(s, ui)

	if start-s.Budget != 15_000 {
		t.Fatalf("budget delta = %d, want 15000", start-s.Budget)
	}
	if math.Abs(s.Reputation-0.35) > 1e-9 {
		t.Fatalf("reputation = %.2f, want 0.35", s.Reputation)
	}
	if math.Abs(s.PermitBonus-(-0.10)) > 1e-9 {
		t.Fatalf("permit bonus = %.2f, want -0.10", s.PermitBonus)
	}
	if s.FullHeritageAssessments {
		t.Fatal("minimal survey must leave heritage policy unset")
	}
}
