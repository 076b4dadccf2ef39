package sim

// Effect is a typed bundle of world-state deltas. Consequences are always
// expressed this way rather than as display strings, and every stat delta is
// clamped at the point it lands. Budget deltas are never capped at zero.
type Effect struct {
	Budget       int
	Reputation   float64
	Biodiversity float64
	Disturbance  float64
	// Relationship applies to the counterparty targeted by the resolution.
	Relationship float64
	// Spillover applies to every counterparty other than the target.
	Spillover float64
}

// Apply lands the effect on the world. target may be nil when the effect has
// no relationship component.
func (s *State) Apply(e Effect, target *Counterparty) {
	s.Budget += e.Budget
	s.AdjustReputation(e.Reputation)
	s.AdjustBiodiversity(e.Biodiversity)
	if e.Disturbance > 0 {
		s.Disturbance += e.Disturbance
	}
	if target != nil && e.Relationship != 0 {
		target.AdjustRelationship(e.Relationship)
	}
	if e.Spillover != 0 {
		for _, cp := range s.Counterparties {
			if cp != target {
				cp.AdjustRelationship(e.Spillover)
			}
		}
	}
}

// IllegalBranch marks a response as a crime with its own detection roll.
// Detection multiplies the base fine by (2 + Tier), so the cheapest tier
// already doubles it and the gravest reaches six-fold.
type IllegalBranch struct {
	DetectionRisk float64
	Tier          int
	BaseFine      int
	// Detected lands on top of the multiplied fine.
	Detected Effect
	// Standing, when non-empty, registers a corrupt-official liability that
	// re-rolls as blackmail in future quarters.
	Standing string
}

// RiskChoice is one entry of a response menu: pay the cost, roll against the
// success chance, land the matching effect. The same contract backs disaster
// responses, grievance events, safety incidents, and criminal acts.
type RiskChoice struct {
	Label         string
	Cost          int
	SuccessChance float64
	Success       Effect
	Failure       Effect
	Illegal       *IllegalBranch
}

type RiskResult struct {
	Paid      bool
	Succeeded bool
	Detected  bool
	Fine      int
}

// Resolve runs the shared risk/consequence contract:
//
//  1. Affordability gate. Insufficient funds is the implicit worst-case
//     branch: the insufficient effect lands, nothing is charged.
//  2. The cost is deducted unconditionally once affordability is confirmed.
//  3. Illegal branches roll detection first; detection compounds the fine
//     multiplicatively and may register a standing liability on success.
//  4. Lawful branches roll one uniform value against the success chance and
//     land the success or failure effect.
func (s *State) Resolve(choice RiskChoice, insufficient Effect, target *Counterparty) RiskResult {
	if !s.CanAfford(choice.Cost) {
		s.Apply(insufficient, target)
		return RiskResult{}
	}
	s.Budget -= choice.Cost

	if choice.Illegal != nil {
		if s.rng.Float64() < clamp01(choice.Illegal.DetectionRisk) {
			fine := choice.Illegal.BaseFine * (2 + choice.Illegal.Tier)
			s.Budget -= fine
			s.Apply(choice.Illegal.Detected, target)
			return RiskResult{Paid: true, Detected: true, Fine: fine}
		}
		s.Apply(choice.Success, target)
		if choice.Illegal.Standing != "" {
			s.CorruptOfficials = append(s.CorruptOfficials, choice.Illegal.Standing)
		}
		return RiskResult{Paid: true, Succeeded: true}
	}

	if s.rng.Float64() < clamp01(choice.SuccessChance) {
		s.Apply(choice.Success, target)
		return RiskResult{Paid: true, Succeeded: true}
	}
	s.Apply(choice.Failure, target)
	return RiskResult{Paid: true}
}
