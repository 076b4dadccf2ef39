package sim

import "testing"

func TestResolveInsufficientFundsChargesNothing(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	s.Budget = 10_000
	cp := s.Counterparties[0]
	startRel := cp.Relationship

	res := s.Resolve(RiskChoice{
		Label:         "expensive response",
		Cost:          50_000,
		SuccessChance: 1.0,
		Success:       Effect{Reputation: 0.5},
	}, Effect{Relationship: -0.2, Reputation: -0.15}, cp)

	if res.Paid {
		t.Fatal("expected Paid=false when funds are insufficient")
	}
	if s.Budget != 10_000 {
		t.Fatalf("budget must be untouched, got %d", s.Budget)
	}
	if got, want := cp.Relationship, clamp01(startRel-0.2); got != want {
		t.Fatalf("relationship = %.2f, want %.2f", got, want)
	}
	if s.Reputation != clamp01(0.5-0.15) {
		t.Fatalf("reputation = %.2f, want insufficient effect applied", s.Reputation)
	}
}

func TestResolveLawfulBranches(t *testing.T) {
	tests := []struct {
		name          string
		successChance float64
		wantSucceeded bool
		wantRep       float64
	}{
		{"guaranteed success", 1.0, true, 0.6},
		{"guaranteed failure", 0.0, false, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, RegionSubBoreal, 1)
			start := s.Budget

			res := s.Resolve(RiskChoice{
				Cost:          20_000,
				SuccessChance: tt.successChance,
				Success:       Effect{Reputation: 0.1},
				Failure:       Effect{Reputation: -0.1},
			}, Effect{}, nil)

			if !res.Paid {
				t.Fatal("expected Paid=true")
			}
			if res.Succeeded != tt.wantSucceeded {
				t.Fatalf("Succeeded = %v, want %v", res.Succeeded, tt.wantSucceeded)
			}
			if s.Budget != start-20_000 {
				t.Fatalf("cost must be charged exactly once, budget %d", s.Budget)
			}
			if s.Reputation != tt.wantRep {
				t.Fatalf("reputation = %.2f, want %.2f", s.Reputation, tt.wantRep)
			}
		})
	}
}

func TestResolveIllegalDetectionCompoundsFine(t *testing.T) {
	tests := []struct {
		tier     int
		baseFine int
		wantFine int
	}{
		{0, 100_000, 200_000},
		{1, 100_000, 300_000},
		{4, 250_000, 1_500_000},
	}
	for _, tt := range tests {
		s := newTestState(t, RegionSubBoreal, 1)
		start := s.Budget

		res := s.Resolve(RiskChoice{
			Cost: 10_000,
			Illegal: &IllegalBranch{
				DetectionRisk: 1.0,
				Tier:          tt.tier,
				BaseFine:      tt.baseFine,
				Detected:      Effect{Reputation: -0.3},
			},
		}, Effect{}, nil)

		if !res.Detected {
			t.Fatalf("tier %d: expected detection with risk 1.0", tt.tier)
		}
		if res.Fine != tt.wantFine {
			t.Fatalf("tier %d: fine = %d, want %d", tt.tier, res.Fine, tt.wantFine)
		}
		if s.Budget != start-10_000-tt.wantFine {
			t.Fatalf("tier %d: budget = %d, want cost+fine deducted", tt.tier, s.Budget)
		}
	}
}

func TestResolveIllegalSuccessRegistersStanding(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)

	res := s.Resolve(RiskChoice{
		Cost:    5_000,
		Success: Effect{Budget: 100_000},
		Illegal: &IllegalBranch{
			DetectionRisk: 0.0,
			BaseFine:      50_000,
			Standing:      "permit office clerk",
		},
	}, Effect{}, nil)

	if !res.Succeeded || res.Detected {
		t.Fatalf("expected clean success, got %+v", res)
	}
	if len(s.CorruptOfficials) != 1 || s.CorruptOfficials[0] != "permit office clerk" {
		t.Fatalf("standing liability not registered: %v", s.CorruptOfficials)
	}
}

func TestApplyClampsStatsButNotBudget(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	cp := s.Counterparties[0]

	s.Apply(Effect{Budget: -10_000_000, Reputation: -5, Biodiversity: 2, Relationship: 9, Spillover: -9}, cp)

	if s.Budget >= 0 {
		t.Fatalf("budget must go negative, got %d", s.Budget)
	}
	if s.Reputation != 0 || s.Biodiversity != 1 {
		t.Fatalf("stats must clamp to [0,1]: rep %.2f bio %.2f", s.Reputation, s.Biodiversity)
	}
	if cp.Relationship != 1 {
		t.Fatalf("target relationship must clamp to 1, got %.2f", cp.Relationship)
	}
	for _, other := range s.Counterparties[1:] {
		if other.Relationship != 0 {
			t.Fatalf("spillover must clamp to 0, got %.2f", other.Relationship)
		}
	}
}
