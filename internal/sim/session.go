package sim

import (
	"strconv"

	"github.com/appengine-ltd/timberline/internal/format"
)

// Session drives a full run: founding decisions, then the quarterly loop
// until a terminal outcome or the player walks away.
type Session struct {
	State *State
	UI    Console

	cfg Config
}

// NewSession validates the config and builds the starting world.
func NewSession(cfg Config, ui Console) (*Session, error) {
	cfg = cfg.WithDefaults()
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Session{State: s, UI: ui, cfg: cfg}, nil
}

// RunQuarter executes one quarter's fixed pipeline and returns the terminal
// outcome, if any. The step order is the contract: seasonal phases first,
// then the always-on risk rolls, then player management, then evaluation.
// The time cursor does NOT advance here; the caller advances after checking
// the outcome.
func (g *Session) RunQuarter() Outcome {
	s, ui := g.State, g.UI

	ui.Section(s.CompanyName + " - " + s.QuarterName() + " " + strconv.Itoa(s.Year))

	switch s.Quarter {
	case 1:
		ui.Printf("SPRING: planning and permit season begins!")
		PolicyEvents(s, ui)
		Consult(s, ui)
		PlanHarvest(s, ui)
	case 2:
		ui.Printf("SUMMER: prime harvesting season!")
		ResolvePermits(s, ui)
		HarvestDisasters(s, ui)
		Harvest(s, ui)
	case 3:
		ui.Printf("FALL: harvest continues, winter prep begins!")
		ResolvePermits(s, ui)
		HarvestDisasters(s, ui)
		Harvest(s, ui)
	case 4:
		ui.Printf("WINTER: planning season, limited field operations!")
		MaintainCertifications(s, ui)
		MarketDrift(s, ui)
		PayLiaisonFee(s, ui)
		PayExecutiveCosts(s, ui)
	}

	SafetyIncidents(s, ui)
	GrievanceEvents(s, ui)
	ExecutiveAutomatedPass(s, ui)
	OngoingCriminalConsequences(s, ui)
	OngoingSafetyConsequences(s, ui)

	ManagementPhase(s, ui)
	ExecutiveReport(s, ui)
	QuarterSummary(s, ui)

	return Evaluate(s)
}

// Run plays the whole game: setup, the quarterly loop, and the final report.
// Returns the terminal outcome (zero Kind when the player quit or the clock
// ran out without a verdict).
func (g *Session) Run() Outcome {
	s, ui := g.State, g.UI

	Setup(s, ui)
	ui.Printf("%s is now operational in the %s region!", s.CompanyName, s.Region)
	ui.Printf("Starting budget: %s", format.Currency(s.Budget))

	totalQuarters := g.cfg.MaxYears * 4
	var outcome Outcome

	for quarter := 1; quarter <= totalQuarters; quarter++ {
		outcome = g.RunQuarter()
		if outcome.GameOver() {
			ui.Printf("%s", outcome.Message)
			break
		}

		if s.Quarter == 4 && quarter < totalQuarters-4 {
			choice := ui.Choose("Continue to "+strconv.Itoa(s.Year+1)+"?", []string{
				"Yes",
				"No",
				"Play 1 more quarter only",
			})
			if choice == 1 {
				ui.Printf("You've decided to end operations.")
				break
			}
			if choice == 2 {
				totalQuarters = quarter + 1
			}
		}

		s.Advance()
	}

	FinalSummary(s, g.cfg.StartingBudget, ui)
	return outcome
}
