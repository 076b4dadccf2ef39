package sim

import (
	"math"
	"testing"
)

func TestCommitActSuccessBooksProfit(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	start := s.Budget
	act := illegalAct{
		name: "test act", profit: 100_000,
		detectionRisk: 0, repPenalty: 0.2, tier: 1, baseFine: 150_000,
	}

	ui := &fakeUI{choices: []int{0}} // confirm
	if !commitAct(s, ui, act) {
		t.Fatal("confirmed act must count as attempted")
	}
	if s.Budget != start+100_000 {
		t.Fatalf("budget delta = %d, want the profit", s.Budget-start)
	}
	if math.Abs(s.Reputation-clamp01(0.5-0.05)) > 1e-9 {
		t.Fatalf("undetected crime still erodes reputation slightly: %.2f", s.Reputation)
	}
}

func TestCommitActDetectionFineUsesTier(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	start := s.Budget
	act := illegalAct{
		name: "test act", profit: 100_000,
		detectionRisk: 1, repPenalty: 0.4, tier: 2, baseFine: 150_000,
	}

	ui := &fakeUI{choices: []int{0}} // confirm
	commitAct(s, ui, act)

	// 150,000 x (2 + 2) = 600,000; no profit lands, and at that size the
	// bribery follow-up is not offered.
	if s.Budget != start-600_000 {
		t.Fatalf("budget delta = %d, want -600000", s.Budget-start)
	}
	if math.Abs(s.Reputation-clamp01(0.5-0.4)) > 1e-9 {
		t.Fatalf("reputation = %.2f, want 0.10", s.Reputation)
	}
	if !ui.saw("ILLEGAL ACTIVITY DETECTED") {
		t.Fatal("detection narrative missing")
	}
	if ui.saw("BRIBERY OPTION") {
		t.Fatal("fines of 600k and up must not offer the bribe")
	}
}

func TestCommitActCancelChargesNothing(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	start := s.Budget

	ui := &fakeUI{choices: []int{1}} // back out at confirmation
	if commitAct(s, ui, illegalActs[0]) {
		t.Fatal("cancelled act must not count as attempted")
	}
	if s.Budget != start || s.Reputation != 0.5 {
		t.Fatal("cancellation must leave the world untouched")
	}
}

func TestBriberyLayerSuccessRegistersOfficials(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	start := s.Budget
	opt := escapeOption{
		name: "Bribe investigating officers (Layer 1)", cost: 300_000,
		fineMultiplier: 0.3, repPenalty: 0.1, successChance: 1.0, briberyLayer: 1,
	}

	ui := &fakeUI{choices: []int{0}} // confirm the bribe
	attemptBriberyLayer(s, ui, opt, 1_000_000, 0.4)

	if s.Budget != start-300_000-300_000 {
		t.Fatalf("budget delta = %d, want bribe plus the reduced fine", s.Budget-start)
	}
	if len(s.CorruptOfficials) != 1 || s.CorruptOfficials[0] != "layer 1 officials" {
		t.Fatalf("standing liability not registered: %v", s.CorruptOfficials)
	}
	if s.CriminalConvictions != 0 {
		t.Fatal("successful bribery leaves no record")
	}
}

func TestBriberyLayerDetectionMultipliesFine(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	start := s.Budget
	opt := escapeOption{
		name: "Bribe senior officials (Layer 2)", cost: 800_000,
		fineMultiplier: 0.2, repPenalty: 0.12, successChance: 0, briberyLayer: 2,
	}

	ui := &fakeUI{choices: []int{0}} // confirm the bribe
	attemptBriberyLayer(s, ui, opt, 500_000, 0.4)

	// Fine = 500,000 x (2 + layer 2) on top of the sunk bribe.
	if s.Budget != start-800_000-2_000_000 {
		t.Fatalf("budget delta = %d, want -2800000", s.Budget-start)
	}
	if s.CriminalConvictions != 1 {
		t.Fatal("detected bribery must convict")
	}
	if len(s.CorruptOfficials) != 0 {
		t.Fatal("a detected bribe buys no officials")
	}
}

func TestSettleLegallyFullConsequences(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	start := s.Budget
	opt := escapeOption{
		name: "Accept full legal consequences", cost: 0,
		fineMultiplier: 1.0, repPenalty: 0.4, successChance: 1.0,
	}

	settleLegally(s, &fakeUI{}, opt, 600_000, 0.4)

	if s.Budget != start-600_000 {
		t.Fatalf("budget delta = %d, want the full fine", s.Budget-start)
	}
	if math.Abs(s.Reputation-clamp01(0.5-0.4)) > 1e-9 {
		t.Fatalf("reputation = %.2f", s.Reputation)
	}
	if s.CriminalConvictions != 1 {
		t.Fatal("legal settlement establishes a record")
	}
}

func TestBlackmailUnpayableDemandBackfires(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		s := newTestState(t, RegionSubBoreal, seed)
		s.Budget = 0
		s.CorruptOfficials = []string{"layer 1 officials"}

		ui := &fakeUI{choices: []int{0}} // try to pay
		OngoingCriminalConsequences(s, ui)
		if !ui.saw("CRIMINAL BLACKMAIL") {
			continue
		}

		if s.Budget > -500_000 || s.Budget < -1_500_000 {
			t.Fatalf("revenge exposure budget hit out of range: %d", s.Budget)
		}
		if math.Abs(s.Reputation-clamp01(0.5-0.3)) > 1e-9 {
			t.Fatalf("reputation = %.2f, want 0.20", s.Reputation)
		}
		if len(s.CorruptOfficials) != 1 {
			t.Fatal("an unpaid official stays on the books")
		}
		return
	}
	t.Fatal("blackmail never fired across 50 seeds")
}
