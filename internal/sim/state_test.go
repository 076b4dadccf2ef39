package sim

import "testing"

func TestNewStartingState(t *testing.T) {
	s := newTestState(t, RegionMontane, 7)

	if s.Budget != 2_500_000 {
		t.Fatalf("budget = %d", s.Budget)
	}
	if s.Reputation != 0.5 || s.Biodiversity != 0.5 {
		t.Fatalf("starting stats: rep %.2f bio %.2f", s.Reputation, s.Biodiversity)
	}
	if s.AllowableCut != 80_000 || s.CutDeclineRate != 0.02 {
		t.Fatalf("montane envelope: cut %d decline %.3f", s.AllowableCut, s.CutDeclineRate)
	}
	if s.DisturbanceCap != 30_000 {
		t.Fatalf("montane disturbance cap = %.0f", s.DisturbanceCap)
	}
	if len(s.Counterparties) != 2 {
		t.Fatalf("counterparties = %d", len(s.Counterparties))
	}
	if !s.SocialLicense {
		t.Fatal("social license must start intact")
	}
	if s.ConsecutiveProfitable != 0 || s.YearsOperated != 0 || s.SafetyViolations != 0 {
		t.Fatal("counters must start at zero")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty company", Config{Region: RegionSubBoreal, StartYear: 2025, StartingBudget: 1, MaxYears: 5}},
		{"unknown region", Config{CompanyName: "X", Region: "ZZZ", StartYear: 2025, StartingBudget: 1, MaxYears: 5}},
		{"zero budget", Config{CompanyName: "X", Region: RegionSubBoreal, StartYear: 2025, MaxYears: 5}},
		{"years out of range", Config{CompanyName: "X", Region: RegionSubBoreal, StartYear: 2025, StartingBudget: 1, MaxYears: 101}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAdvanceWrapsYear(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)

	for q := 0; q < 3; q++ {
		s.Advance()
	}
	if s.Quarter != 4 || s.Year != 2025 || s.YearsOperated != 0 {
		t.Fatalf("after 3 advances: Q%d %d, years %d", s.Quarter, s.Year, s.YearsOperated)
	}

	s.Advance()
	if s.Quarter != 1 || s.Year != 2026 || s.YearsOperated != 1 {
		t.Fatalf("after wrap: Q%d %d, years %d", s.Quarter, s.Year, s.YearsOperated)
	}
}

func TestEffectiveVolume(t *testing.T) {
	b := &HarvestBlock{VolumeM3: 10_000}
	if b.EffectiveVolume() != 10_000 {
		t.Fatal("undamaged block yields full volume")
	}
	b.DisasterAffected = true
	b.VolumeLossFraction = 0.4
	if b.EffectiveVolume() != 6_000 {
		t.Fatalf("damaged block = %d, want 6000", b.EffectiveVolume())
	}
}

func TestNeedsConsultation(t *testing.T) {
	cp := &Counterparty{ConsultInterval: 2}
	if !cp.NeedsConsultation(2025) {
		t.Fatal("never-consulted counterparty is always due")
	}
	cp.LastConsultYear = 2024
	if cp.NeedsConsultation(2025) {
		t.Fatal("consulted last year, not due yet")
	}
	if !cp.NeedsConsultation(2026) {
		t.Fatal("two years since consultation, due again")
	}
}

func TestRelationshipText(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{0.9, "Excellent"},
		{0.8, "Excellent"},
		{0.6, "Good"},
		{0.4, "Neutral"},
		{0.2, "Strained"},
		{0.1, "Poor"},
	}
	for _, tt := range tests {
		if got := RelationshipText(tt.level); got != tt.want {
			t.Fatalf("RelationshipText(%.1f) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestActiveCertificationPerKind(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	s.Certifications = append(s.Certifications,
		&Certification{Kind: CertTimberTrust, Active: false, RevenueBonus: 0.12},
		&Certification{Kind: CertTimberTrust, Active: true, RevenueBonus: 0.12},
		&Certification{Kind: CertBorealAlliance, Active: true, RevenueBonus: 0.15},
	)

	if got := s.ActiveCertification(CertTimberTrust); got == nil || !got.Active {
		t.Fatal("ActiveCertification must return the active record")
	}
	if len(s.ActiveCertifications()) != 2 {
		t.Fatalf("active count = %d", len(s.ActiveCertifications()))
	}
	if got := s.CertificationRevenueBonus(); got != 0.27 {
		t.Fatalf("revenue bonus = %.2f, want 0.27", got)
	}
}

func TestNextBlockIDUnique(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.nextBlockID()
		if seen[id] {
			t.Fatalf("duplicate block id %s", id)
		}
		seen[id] = true
	}
}
