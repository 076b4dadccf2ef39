package sim

import (
	"fmt"

	"github.com/appengine-ltd/timberline/internal/format"
)

type ExecutiveFocus string

const (
	FocusRegulatory    ExecutiveFocus = "regulatory"
	FocusCommunity     ExecutiveFocus = "community"
	FocusFinancial     ExecutiveFocus = "financial"
	FocusEnvironmental ExecutiveFocus = "environmental"
)

type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Executive is the optional hired chief executive. They automate a share of
// decisions each quarter, charging a per-decision fee on top of the annual
// retainer and a profit cut.
type Executive struct {
	Name              string
	Background        string
	AnnualFee         int
	ProfitShare       float64
	DecisionRate      float64
	Risk              RiskTolerance
	Focus             ExecutiveFocus
	QuartersEmployed  int
	PerformanceRating float64
}

func executiveCandidates() []Executive {
	return []Executive{
		{
			Name:              "Margaret Okafor",
			Background:        "Former provincial forests ministry executive",
			AnnualFee:         200_000,
			ProfitShare:       0.30,
			DecisionRate:      0.60,
			Risk:              RiskConservative,
			Focus:             FocusRegulatory,
			PerformanceRating: 0.5,
		},
		{
			Name:              "Daniel Cardinal",
			Background:        "Community forestry leader with 25 years experience",
			AnnualFee:         180_000,
			ProfitShare:       0.30,
			DecisionRate:      0.60,
			Risk:              RiskModerate,
			Focus:             FocusCommunity,
			PerformanceRating: 0.5,
		},
		{
			Name:              "Alexandra Voss",
			Background:        "Former timber investment analyst",
			AnnualFee:         250_000,
			ProfitShare:       0.30,
			DecisionRate:      0.60,
			Risk:              RiskAggressive,
			Focus:             FocusFinancial,
			PerformanceRating: 0.5,
		},
		{
			Name:              "Dr. Priya Raman",
			Background:        "Environmental scientist and certification specialist",
			AnnualFee:         170_000,
			ProfitShare:       0.30,
			DecisionRate:      0.60,
			Risk:              RiskConservative,
			Focus:             FocusEnvironmental,
			PerformanceRating: 0.5,
		},
	}
}

// ManageExecutive offers hiring when the seat is empty, otherwise the
// ongoing management menu.
func ManageExecutive(s *State, ui Console) {
	if s.Executive == nil {
		ui.Printf("No chief executive employed - you make all decisions personally")
		offerExecutiveHiring(s, ui)
		return
	}

	exec := s.Executive
	ui.Printf("Current executive: %s (rating %.2f, %d quarters employed)",
		exec.Name, exec.PerformanceRating, exec.QuartersEmployed)

	choice := ui.Choose("Executive management action:", []string{
		"Review executive performance",
		"Give specific strategic direction",
		"Replace with a different candidate",
		"Terminate contract and resume personal control",
		"Continue with current arrangement",
	})

	switch choice {
	case 0:
		reviewExecutive(s, ui)
	case 1:
		directExecutive(s, ui)
	case 2:
		replaceExecutive(s, ui)
	case 3:
		fireExecutive(s, ui)
	default:
		ui.Printf("Continuing with %s", exec.Name)
	}
}

func offerExecutiveHiring(s *State, ui Console) {
	ui.Section("EXECUTIVE HIRING OPPORTUNITIES")
	ui.Printf("An executive handles 60%% of operational decisions for an annual fee plus 30%% of profits")

	candidates := executiveCandidates()
	for i, c := range candidates {
		ui.Printf("%d. %s - %s/year + %.0f%% profit share", i+1, c.Name, format.Currency(c.AnnualFee), c.ProfitShare*100)
		ui.Printf("   Background: %s, risk tolerance: %s", c.Background, c.Risk)
	}

	options := make([]string, 0, len(candidates)+1)
	for _, c := range candidates {
		options = append(options, "Hire "+c.Name)
	}
	options = append(options, "Continue without an executive")

	choice := ui.Choose("Executive hiring decision:", options)
	if choice >= len(candidates) {
		ui.Printf("Continuing with personal management of all decisions")
		return
	}

	hire := candidates[choice]
	if !s.CanAfford(hire.AnnualFee) {
		ui.Printf("Insufficient budget for annual fee: %s", format.Currency(hire.AnnualFee))
		return
	}
	s.Budget -= hire.AnnualFee
	s.Executive = &hire
	ui.Printf("%s hired; annual fee %s paid", hire.Name, format.Currency(hire.AnnualFee))

	s.applyExecutiveFocusBonus(hire.Focus, ui)
}

func (s *State) applyExecutiveFocusBonus(focus ExecutiveFocus, ui Console) {
	switch focus {
	case FocusRegulatory:
		s.PermitBonus += 0.1
		ui.Printf("Immediate permit processing improvement from government connections")
	case FocusCommunity:
		for _, cp := range s.Counterparties {
			cp.AdjustRelationship(0.1)
		}
		ui.Printf("Immediate community relationship improvement")
	case FocusFinancial:
		s.RevenuePerM3 = int(float64(s.RevenuePerM3) * 1.05)
		ui.Printf("Immediate 5%% revenue improvement from market optimization")
	}
}

func (s *State) removeExecutiveFocusBonus(focus ExecutiveFocus) {
	switch focus {
	case FocusRegulatory:
		s.PermitBonus -= 0.1
	case FocusCommunity:
		for _, cp := range s.Counterparties {
			cp.AdjustRelationship(-0.1)
		}
	case FocusFinancial:
		s.RevenuePerM3 = int(float64(s.RevenuePerM3) / 1.05)
	}
}

func reviewExecutive(s *State, ui Console) {
	exec := s.Executive
	ui.Section("EXECUTIVE PERFORMANCE REVIEW - " + exec.Name)

	years := max(1, exec.QuartersEmployed/4)
	feesPaid := exec.AnnualFee * years
	ui.Printf("Quarters employed: %d, performance rating: %.2f/1.0", exec.QuartersEmployed, exec.PerformanceRating)
	ui.Printf("Annual fees paid to date: %s", format.Currency(feesPaid))
	ui.Printf("Company total revenue: %s, consecutive profitable quarters: %d",
		format.Currency(s.TotalRevenue), s.ConsecutiveProfitable)
}

func directExecutive(s *State, ui Console) {
	exec := s.Executive
	ui.Section("STRATEGIC DIRECTION FOR " + exec.Name)

	choice := ui.Choose("Strategic direction:", []string{
		"Focus on regulatory compliance and risk reduction",
		"Prioritize community relationships and consultation",
		"Maximize short-term profits and harvest volumes",
		"Invest heavily in certifications and sustainability",
		"Balance all factors with a moderate approach",
	})

	switch choice {
	case 0:
		exec.Risk = RiskConservative
		s.PermitBonus += 0.05
		ui.Printf("%s will focus on regulatory compliance", exec.Name)
	case 1:
		for _, cp := range s.Counterparties {
			cp.AdjustRelationship(0.05)
		}
		ui.Printf("%s will prioritize community relationships", exec.Name)
	case 2:
		exec.Risk = RiskAggressive
		s.OperatingCostPerM3 = int(float64(s.OperatingCostPerM3) * 0.95)
		ui.Printf("%s will maximize short-term profits", exec.Name)
	case 3:
		s.AdjustBiodiversity(0.05)
		ui.Printf("%s will invest in sustainability", exec.Name)
	default:
		exec.Risk = RiskModerate
		ui.Printf("%s will take a balanced approach", exec.Name)
	}
}

func replaceExecutive(s *State, ui Console) {
	exec := s.Executive
	severance := exec.AnnualFee / 4
	headhunter := 50_000
	total := severance + headhunter

	ui.Printf("Replacement costs: severance %s + executive search %s = %s",
		format.Currency(severance), format.Currency(headhunter), format.Currency(total))
	if !s.CanAfford(total) {
		ui.Printf("Insufficient budget for executive replacement!")
		return
	}

	s.removeExecutiveFocusBonus(exec.Focus)
	s.Budget -= total
	s.Executive = nil
	ui.Printf("%s has been replaced. Select a new executive:", exec.Name)
	offerExecutiveHiring(s, ui)
}

func fireExecutive(s *State, ui Console) {
	exec := s.Executive
	severance := exec.AnnualFee / 2

	ui.Section("TERMINATING EXECUTIVE CONTRACT - " + exec.Name)
	ui.Printf("Severance payment: %s", format.Currency(severance))

	if !s.CanAfford(severance) {
		ui.Printf("Insufficient budget for severance payment!")
		return
	}
	s.Budget -= severance
	s.removeExecutiveFocusBonus(exec.Focus)
	s.Executive = nil
	ui.Printf("Contract terminated; you now make all decisions personally")
}

// ExecutiveAutomatedPass runs the executive's quarterly decision set. Each
// action the executive takes bills one eighth of the annual fee.
func ExecutiveAutomatedPass(s *State, ui Console) {
	exec := s.Executive
	if exec == nil {
		return
	}
	if s.rng.Float64() >= exec.DecisionRate {
		return
	}

	decisionCost := exec.AnnualFee / 8
	var actions []string

	pendingPermits := len(s.pendingBlocks())
	if pendingPermits > 0 && s.CanAfford(decisionCost) {
		s.Budget -= decisionCost
		if exec.Risk == RiskAggressive {
			actions = append(actions, "submitted an aggressive permit strategy")
		} else {
			actions = append(actions, "submitted conservative permit applications")
		}
	}

	if exec.Focus == FocusCommunity && s.CanAfford(decisionCost) {
		acted := false
		for _, cp := range s.Counterparties {
			if cp.Relationship < 0.5 {
				cp.AdjustRelationship(0.15)
				acted = true
			}
		}
		if acted {
			s.Budget -= decisionCost
			actions = append(actions, "invested in community relationship building")
		}
	}

	if exec.Focus == FocusEnvironmental && len(s.ActiveCertifications()) == 0 && s.CanAfford(decisionCost+100_000) {
		s.Budget -= decisionCost
		actions = append(actions, "began preparing a forest certification application")
	}

	if exec.Focus == FocusFinancial && exec.Risk == RiskAggressive && s.CanAfford(decisionCost) && s.rng.Float64() < 0.4 {
		s.Budget -= decisionCost
		cut := randRange(s.rng, 2, 5)
		s.OperatingCostPerM3 = max(30, s.OperatingCostPerM3-cut)
		actions = append(actions, fmt.Sprintf("cut operating costs by $%d/m³", cut))
	}

	if exec.Focus == FocusFinancial && s.RevenuePerM3 < 95 && s.CanAfford(decisionCost*2) && s.rng.Float64() < 0.3 {
		s.Budget -= decisionCost * 2
		bump := randRange(s.rng, 3, 8)
		s.RevenuePerM3 += bump
		actions = append(actions, "secured premium market contracts")
	}

	if exec.Focus == FocusRegulatory && s.SafetyViolations > 0 && s.CanAfford(decisionCost) {
		s.Budget -= decisionCost
		s.SafetyViolations = max(0, s.SafetyViolations-1)
		s.AdjustReputation(0.05)
		actions = append(actions, "implemented safety compliance improvements")
	}

	if exec.Focus == FocusEnvironmental && s.Biodiversity < 0.7 && s.CanAfford(decisionCost) && s.rng.Float64() < 0.3 {
		s.Budget -= decisionCost
		s.AdjustBiodiversity(0.1)
		actions = append(actions, "launched an environmental initiative")
	}

	if len(actions) == 0 {
		if pendingPermits > 0 {
			ui.Printf("%s was unable to act this quarter (needs %s per decision)", exec.Name, format.Currency(decisionCost))
		}
		return
	}

	ui.Section("EXECUTIVE DECISIONS - " + exec.Name)
	for _, a := range actions {
		ui.Printf("  %s %s (cost: %s)", exec.Name, a, format.Currency(decisionCost))
	}
}

// PayExecutiveCosts settles the annual fee and profit share each winter. An
// unpaid executive quits half the time.
func PayExecutiveCosts(s *State, ui Console) {
	exec := s.Executive
	if exec == nil {
		return
	}

	if s.CanAfford(exec.AnnualFee) {
		s.Budget -= exec.AnnualFee
		ui.Printf("Executive annual fee paid: %s to %s", format.Currency(exec.AnnualFee), exec.Name)
	} else {
		ui.Printf("Cannot afford executive annual fee! %s threatens to quit", exec.Name)
		if s.rng.Float64() < 0.5 {
			ui.Printf("%s resigns due to non-payment", exec.Name)
			s.removeExecutiveFocusBonus(exec.Focus)
			s.Executive = nil
			return
		}
	}

	if s.QuarterlyProfit > 0 {
		share := int(float64(s.QuarterlyProfit) * exec.ProfitShare)
		s.Budget -= share
		ui.Printf("Executive profit sharing: %s (%.0f%% of quarterly profit)", format.Currency(share), exec.ProfitShare*100)
	}

	if s.ConsecutiveProfitable > 0 {
		exec.PerformanceRating = clamp01(exec.PerformanceRating + 0.05)
	} else {
		exec.PerformanceRating = clamp01(exec.PerformanceRating - 0.1)
	}
}

// ExecutiveReport is the quarterly commentary and strategic advice pass.
func ExecutiveReport(s *State, ui Console) {
	exec := s.Executive
	if exec == nil {
		return
	}
	exec.QuartersEmployed++

	ui.Section("EXECUTIVE QUARTERLY REPORT - " + exec.Name)

	if s.Reputation > 0.7 {
		ui.Printf("'%s: Company reputation is strong - good for long-term stability'", exec.Name)
	} else if s.Reputation < 0.4 {
		ui.Printf("'%s: Reputation concerns need immediate attention'", exec.Name)
	}
	if s.Budget < 500_000 {
		ui.Printf("'%s: Cash flow is concerning - consider cost reductions'", exec.Name)
	} else if s.Budget > 2_000_000 {
		ui.Printf("'%s: Strong financial position - opportunity for expansion'", exec.Name)
	}

	var recs []string
	switch exec.Focus {
	case FocusRegulatory:
		if s.PermitBonus < 0.2 {
			recs = append(recs, "Invest in government relations to improve permit processing")
		}
	case FocusCommunity:
		for _, cp := range s.Counterparties {
			if cp.Relationship < 0.6 {
				recs = append(recs, "Priority consultation needed with "+cp.Name)
				break
			}
		}
	case FocusFinancial:
		if s.OperatingCostPerM3 > 40 {
			recs = append(recs, "Operational efficiency improvements could reduce costs")
		}
	case FocusEnvironmental:
		if len(s.ActiveCertifications()) == 0 {
			recs = append(recs, "Forest certification would unlock premium markets")
		}
	}
	if len(recs) > 0 {
		ui.Printf("Strategic recommendations:")
		for _, r := range recs {
			ui.Printf("  - %s", r)
		}
	}
}
