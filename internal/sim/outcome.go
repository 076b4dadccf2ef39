package sim

// OutcomeKind classifies how a run ended.
type OutcomeKind string

const (
	OutcomeNone       OutcomeKind = ""
	OutcomeBankruptcy OutcomeKind = "bankruptcy"
	OutcomeCollapse   OutcomeKind = "reputation_collapse"
	OutcomeShutdown   OutcomeKind = "regulatory_shutdown"
	OutcomeEconomic   OutcomeKind = "economic_champion"
	OutcomeSteward    OutcomeKind = "environmental_steward"
	OutcomePartner    OutcomeKind = "reconciliation_leader"
	OutcomeCertified  OutcomeKind = "certification_leader"
	OutcomeSurvivor   OutcomeKind = "industry_survivor"
)

// Outcome is the terminal verdict of a run. Zero value means keep playing.
type Outcome struct {
	Kind    OutcomeKind
	Won     bool
	Message string
}

func (o Outcome) GameOver() bool {
	return o.Kind != OutcomeNone
}

// Evaluate checks the end-of-quarter terminal conditions. Loss conditions are
// checked before wins, so a company that simultaneously qualifies for both is
// judged failed: you cannot buy a victory with money you do not have.
func Evaluate(s *State) Outcome {
	if s.Budget < 0 {
		return Outcome{
			Kind:    OutcomeBankruptcy,
			Message: "BANKRUPTCY: the company has run out of money.",
		}
	}
	if s.Reputation < 0.1 {
		return Outcome{
			Kind:    OutcomeCollapse,
			Message: "REPUTATION COLLAPSE: the social license to operate has been revoked.",
		}
	}
	if s.Disturbance > s.DisturbanceCap*1.2 {
		return Outcome{
			Kind:    OutcomeShutdown,
			Message: "REGULATORY SHUTDOWN: disturbance caps exceeded; operations suspended by government.",
		}
	}

	if s.ConsecutiveProfitable >= 5 && s.Budget > 3_000_000 && s.JobsCreated > 200 {
		return Outcome{
			Kind:    OutcomeEconomic,
			Won:     true,
			Message: "ECONOMIC SUSTAINABILITY CHAMPION: a profitable, job-creating forestry operation!",
		}
	}

	if s.Reputation > 0.8 && s.Biodiversity > 0.7 && s.SocialLicense &&
		s.Disturbance < s.DisturbanceCap*0.6 {
		return Outcome{
			Kind:    OutcomeSteward,
			Won:     true,
			Message: "ENVIRONMENTAL STEWARD: forestry balanced with ecosystem protection!",
		}
	}

	allStrong, allSigned := true, true
	for _, cp := range s.Counterparties {
		if cp.Relationship <= 0.8 {
			allStrong = false
		}
		if !cp.AgreementSigned {
			allSigned = false
		}
	}
	if len(s.Counterparties) > 0 && allStrong && allSigned &&
		s.Reputation > 0.7 && s.YearsOperated >= 5 && s.TotalRevenue > 1_000_000 {
		return Outcome{
			Kind:    OutcomePartner,
			Won:     true,
			Message: "RECONCILIATION LEADER: strong partnerships built with every community!",
		}
	}

	if len(s.ActiveCertifications()) >= 2 && s.Reputation > 0.7 && s.ConsecutiveProfitable >= 3 {
		return Outcome{
			Kind:    OutcomeCertified,
			Won:     true,
			Message: "CERTIFICATION LEADER: industry-leading sustainable practices achieved!",
		}
	}

	if s.YearsOperated >= 10 && s.Budget > 500_000 {
		return Outcome{
			Kind:    OutcomeSurvivor,
			Won:     true,
			Message: "INDUSTRY SURVIVOR: weathered the storms of a changing industry!",
		}
	}

	return Outcome{}
}
