package sim

import "testing"

func TestPermitRiskScore(t *testing.T) {
	tests := []struct {
		name      string
		block     HarvestBlock
		wantScore int
		wantLabel string
	}{
		{
			name:      "clean block",
			block:     HarvestBlock{AgreementObtained: true, HeritageCleared: true},
			wantScore: 0,
			wantLabel: "LOW",
		},
		{
			name:      "disaster salvage only",
			block:     HarvestBlock{AgreementObtained: true, HeritageCleared: true, DisasterAffected: true},
			wantScore: 1,
			wantLabel: "LOW",
		},
		{
			name:      "no agreement",
			block:     HarvestBlock{HeritageCleared: true},
			wantScore: 4,
			wantLabel: "MEDIUM",
		},
		{
			name:      "everything wrong",
			block:     HarvestBlock{OldGrowthAffected: true, DisasterAffected: true},
			wantScore: 10,
			wantLabel: "HIGH",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := permitRiskScore(&tt.block)
			if score != tt.wantScore {
				t.Fatalf("score = %d, want %d", score, tt.wantScore)
			}
			if got := permitRiskLabel(score); got != tt.wantLabel {
				t.Fatalf("label = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}

func TestPermitBatchCost(t *testing.T) {
	batch := []*HarvestBlock{
		{AgreementObtained: true, HeritageCleared: true},   // base only
		{HeritageCleared: true},                            // no agreement: complex
		{AgreementObtained: true, OldGrowthAffected: true}, // old growth: complex
		{OldGrowthAffected: true},                          // both triggers, one surcharge
	}
	want := 4*permitBaseFee + 3*permitComplexFee
	if got := permitBatchCost(batch); got != want {
		t.Fatalf("batch cost = %d, want %d", got, want)
	}
}

func TestElapsedProcessingDays(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	b := &HarvestBlock{SubmittedYear: 2025}

	s.Year, s.Quarter = 2025, 1
	if got := s.elapsedProcessingDays(b); got != 0 {
		t.Fatalf("same quarter = %d days", got)
	}
	s.Year, s.Quarter = 2025, 3
	if got := s.elapsedProcessingDays(b); got != 180 {
		t.Fatalf("two quarters later = %d days, want 180", got)
	}
	s.Year, s.Quarter = 2026, 2
	if got := s.elapsedProcessingDays(b); got != 450 {
		t.Fatalf("five quarters later = %d days, want 450", got)
	}
}

func TestApprovalChance(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	clean := &HarvestBlock{AgreementObtained: true, HeritageCleared: true}

	if got := s.ApprovalChance(clean); got != 0.7 {
		t.Fatalf("baseline = %.2f, want 0.70", got)
	}

	salvage := &HarvestBlock{AgreementObtained: true, HeritageCleared: true, DisasterAffected: true}
	if got := s.ApprovalChance(salvage); got < s.ApprovalChance(clean) {
		t.Fatal("salvage permits must be easier to approve")
	}

	noAgreement := &HarvestBlock{HeritageCleared: true}
	if got := s.ApprovalChance(noAgreement); got != clamp01(0.7-0.3) {
		t.Fatalf("missing agreement = %.2f, want 0.40", got)
	}

	s.DeferralsExpanded = true
	oldGrowth := &HarvestBlock{AgreementObtained: true, HeritageCleared: true, OldGrowthAffected: true}
	if got := s.ApprovalChance(oldGrowth); got > 0.31 {
		t.Fatalf("old-growth under expanded deferrals = %.2f, want near 0.30", got)
	}

	// Certification bonus caps at +0.2 no matter how many schemes are held.
	s.DeferralsExpanded = false
	for i := 0; i < 3; i++ {
		s.Certifications = append(s.Certifications, &Certification{Kind: CertificationKind(rune('A' + i)), Active: true})
	}
	if got := s.ApprovalChance(clean); got != clamp01(0.7+certApprovalBonusCap) {
		t.Fatalf("cert bonus uncapped: %.2f", got)
	}

	s.Disturbance = s.DisturbanceCap * 1.5
	if got := s.ApprovalChance(clean); got != clamp01(0.7+certApprovalBonusCap-0.5) {
		t.Fatalf("over-cap penalty missing: %.2f", got)
	}
}

func TestResolvePermitsOnlyDecidesDueBlocks(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	s.Year, s.Quarter = 2025, 2

	due := &HarvestBlock{
		ID: "DUE", VolumeM3: 10_000, PermitStatus: PermitPending,
		SubmittedYear: 2025, ProcessingDays: 30,
		AgreementObtained: true, HeritageCleared: true,
	}
	notDue := &HarvestBlock{
		ID: "SLOW", VolumeM3: 10_000, PermitStatus: PermitPending,
		SubmittedYear: 2025, ProcessingDays: 400,
		AgreementObtained: true, HeritageCleared: true,
	}
	s.Blocks = []*HarvestBlock{due, notDue}

	ui := &fakeUI{}
	ResolvePermits(s, ui)

	if due.PermitStatus == PermitPending {
		t.Fatal("due block must be decided")
	}
	if notDue.PermitStatus != PermitPending {
		t.Fatalf("slow block must remain pending, got %s", notDue.PermitStatus)
	}

	// Terminal statuses never re-roll.
	status := due.PermitStatus
	ResolvePermits(s, ui)
	if due.PermitStatus != status {
		t.Fatal("decided block was re-evaluated")
	}
}

func TestSubmitPermitsInsufficientBudgetAbortsBatch(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	s.Budget = 1_000
	block := &HarvestBlock{
		ID: "B1", VolumeM3: 10_000, PermitStatus: PermitPending,
		Priority: PriorityMedium, AgreementObtained: true, HeritageCleared: true,
	}
	s.Blocks = []*HarvestBlock{block}

	ui := &fakeUI{choices: []int{0, 0}} // submit all, confirm
	SubmitPermits(s, ui)

	if s.Budget != 1_000 {
		t.Fatalf("aborted batch must charge nothing, budget %d", s.Budget)
	}
	if block.SubmittedYear != 0 {
		t.Fatal("aborted batch must not stamp submission year")
	}
	if !ui.saw("Insufficient budget") {
		t.Fatal("expected insufficient budget message")
	}
}

func TestSubmitPermitsStampsProcessing(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	block := &HarvestBlock{
		ID: "B1", VolumeM3: 10_000, PermitStatus: PermitPending,
		Priority: PriorityMedium, AgreementObtained: true, HeritageCleared: true,
	}
	s.Blocks = []*HarvestBlock{block}
	start := s.Budget

	ui := &fakeUI{choices: []int{0, 0}}
	SubmitPermits(s, ui)

	if s.Budget != start-permitBaseFee {
		t.Fatalf("clean block costs the base fee, budget delta %d", start-s.Budget)
	}
	if block.SubmittedYear != s.Year {
		t.Fatalf("submitted year = %d", block.SubmittedYear)
	}
	if block.ProcessingDays <= 0 {
		t.Fatalf("processing days = %d", block.ProcessingDays)
	}
}
