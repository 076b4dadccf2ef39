package sim

import (
	"fmt"

	"github.com/appengine-ltd/timberline/internal/format"
)

const (
	minimalNoticeCost  = 2_000
	ecosystemPlanCost  = 100_000
	compromisePlanCost = 50_000
	legalCostMin       = 75_000
	legalCostMax       = 200_000
)

// Consult runs the recurring consultation round for every counterparty whose
// interval has lapsed. Whatever the approach, the consultation clock resets:
// the obligation was addressed, however badly.
func Consult(s *State, ui Console) {
	var due []*Counterparty
	for _, cp := range s.Counterparties {
		if cp.NeedsConsultation(s.Year) {
			due = append(due, cp)
		}
	}
	if len(due) == 0 {
		return
	}

	ui.Section("CONSULTATION REQUIRED")
	ui.Printf("The following communities require renewed consultation:")
	for _, cp := range due {
		tag := ""
		if cp.TerritoryRights {
			tag = " (Territorial Rights Area)"
		}
		last := "Never consulted"
		if cp.LastConsultYear > 0 {
			last = yearsAgo(s.Year - cp.LastConsultYear)
		}
		ui.Printf("  - %s: %s relationship%s", cp.Name, RelationshipText(cp.Relationship), tag)
		ui.Printf("    Last consultation: %s", last)
		ui.Printf("    Base consultation cost: %s", format.Currency(cp.ConsultationCost))
	}

	choice := ui.Choose("How will you approach required consultations?", []string{
		"Conduct comprehensive consultations with all communities",
		"Schedule individual meetings with each community",
		"Send formal notification letters only (minimal compliance)",
		"Delay consultations (risk deteriorating relationships)",
	})

	switch choice {
	case 0:
		consultComprehensive(s, ui, due)
	case 1:
		consultIndividual(s, ui, due)
	case 2:
		consultMinimal(s, ui, due)
	default:
		consultDelay(s, ui, due)
	}
}

func yearsAgo(n int) string {
	if n == 1 {
		return "1 year ago"
	}
	return fmt.Sprintf("%d years ago", n)
}

func consultComprehensive(s *State, ui Console, due []*Counterparty) {
	total := 0
	for _, cp := range due {
		total += cp.ConsultationCost * 2
	}
	if !s.CanAfford(total) {
		ui.Printf("Insufficient budget for comprehensive consultations: %s", format.Currency(total))
		return
	}
	ui.Printf("Conducting comprehensive consultations for %s", format.Currency(total))
	s.Budget -= total

	for _, cp := range due {
		cp.LastConsultYear = s.Year
		cp.AdjustRelationship(0.2)
		cp.ActiveNegotiation = true

		if cp.TerritoryRights && s.Disturbance > s.DisturbanceCap*0.7 {
			ui.Printf("%s raises serious concerns about cumulative impacts", cp.Name)
			cp.AdjustRelationship(-0.1)
			treatyNegotiation(s, ui, cp)
			continue
		}
		cp.AgreementSigned = true
		ui.Printf("%s signs cooperation agreement", cp.Name)
	}

	s.AdjustReputation(0.2)
	s.PermitBonus += 0.15
}

func consultIndividual(s *State, ui Console, due []*Counterparty) {
	total := 0
	for _, cp := range due {
		total += cp.ConsultationCost
	}
	if !s.CanAfford(total) {
		ui.Printf("Insufficient budget for individual consultations: %s", format.Currency(total))
		return
	}
	ui.Printf("Scheduling individual consultations for %s", format.Currency(total))
	s.Budget -= total

	for _, cp := range due {
		cp.LastConsultYear = s.Year
		cp.AdjustRelationship(0.1)

		if s.rng.Float64() < 0.7 {
			ui.Printf("Productive meeting with %s", cp.Name)
			if !cp.TerritoryRights || s.Disturbance < s.DisturbanceCap*0.8 {
				cp.AgreementSigned = true
			}
		} else {
			ui.Printf("%s requests additional consultation", cp.Name)
			cp.ConsultationCost += 5_000
		}
	}

	s.AdjustReputation(0.1)
	s.PermitBonus += 0.05
}

func consultMinimal(s *State, ui Console, due []*Counterparty) {
	cost := len(due) * minimalNoticeCost
	s.Budget -= cost
	ui.Printf("Sending formal notifications for %s", format.Currency(cost))

	for _, cp := range due {
		cp.LastConsultYear = s.Year
		cp.AdjustRelationship(-0.2)

		if cp.TerritoryRights {
			ui.Printf("%s formally objects to minimal consultation", cp.Name)
			cp.AgreementSigned = false
			if s.rng.Float64() < 0.3 {
				LegalChallenge(s, ui, cp)
			}
		} else {
			ui.Printf("%s expresses disappointment with the approach", cp.Name)
		}
	}

	s.AdjustReputation(-0.2)
	s.PermitBonus -= 0.1
}

func consultDelay(s *State, ui Console, due []*Counterparty) {
	ui.Printf("Delaying required consultations...")

	for _, cp := range due {
		cp.LastConsultYear = s.Year
		cp.AdjustRelationship(-0.3)
		cp.AgreementSigned = false

		if cp.TerritoryRights {
			ui.Printf("%s files formal complaint about consultation delays", cp.Name)
			LegalChallenge(s, ui, cp)
		} else {
			ui.Printf("%s withdraws support for operations", cp.Name)
		}
	}

	s.AdjustReputation(-0.3)
	s.PermitBonus -= 0.2
	s.SocialLicense = false
}

// treatyNegotiation handles a rights holder invoking territorial protections:
// the company either shrinks its disturbance envelope or fights in court.
func treatyNegotiation(s *State, ui Console, cp *Counterparty) {
	ui.Section("TREATY NEGOTIATIONS: " + cp.Name)
	ui.Printf("Ecosystem-based management plan required")

	choice := ui.Choose("Response to treaty negotiations:", []string{
		"Agree to ecosystem-based management plan (" + format.Currency(ecosystemPlanCost) + ")",
		"Propose compromise disturbance reduction (" + format.Currency(compromisePlanCost) + ")",
		"Reject treaty demands (high risk)",
	})

	switch choice {
	case 0:
		if !s.CanAfford(ecosystemPlanCost) {
			ui.Printf("Insufficient budget for ecosystem plan!")
			cp.AdjustRelationship(-0.2)
			return
		}
		s.Budget -= ecosystemPlanCost
		s.DisturbanceCap *= 0.8
		cp.Relationship = 0.8
		cp.AgreementSigned = true
		s.AdjustReputation(0.3)
		ui.Printf("Ecosystem-based management plan implemented; new disturbance cap %.0f", s.DisturbanceCap)

	case 1:
		if !s.CanAfford(compromisePlanCost) {
			ui.Printf("Insufficient budget for compromise!")
			cp.AdjustRelationship(-0.2)
			return
		}
		s.Budget -= compromisePlanCost
		s.DisturbanceCap *= 0.9
		cp.AdjustRelationship(0.1)
		if s.rng.Float64() < 0.6 {
			cp.AgreementSigned = true
			ui.Printf("Compromise accepted by %s", cp.Name)
		} else {
			ui.Printf("%s rejects compromise - legal action follows", cp.Name)
			LegalChallenge(s, ui, cp)
		}

	default:
		ui.Printf("Treaty demands rejected")
		cp.Relationship = 0.1
		cp.AgreementSigned = false
		s.AdjustReputation(-0.4)
		LegalChallenge(s, ui, cp)
	}
}

// LegalChallenge runs a court action brought by a counterparty. Losing
// suspends every approved block.
func LegalChallenge(s *State, ui Console, cp *Counterparty) {
	ui.Section("LEGAL CHALLENGE: " + cp.Name)

	legalCost := randRange(s.rng, legalCostMin, legalCostMax)
	s.Budget -= legalCost

	winChance := 0.3 + cp.Relationship*0.3 + s.Reputation*0.2
	if s.rng.Float64() < winChance {
		ui.Printf("Court rules in favour of the company (legal costs: %s)", format.Currency(legalCost))
		cp.AdjustRelationship(0.1)
		return
	}

	ui.Printf("Court rules against the company")
	ui.Printf("  Legal costs: %s; operations suspended pending compliance", format.Currency(legalCost))
	for _, b := range s.Blocks {
		if b.PermitStatus == PermitApproved {
			b.PermitStatus = PermitDelayed
		}
	}
	s.AdjustReputation(-0.3)
	cp.AdjustRelationship(-0.2)
}

// BuildRelationships is the proactive goodwill program: one flat investment
// lifts every relationship and reputation by the same amount.
func BuildRelationships(s *State, ui Console) {
	if len(s.Counterparties) == 0 {
		return
	}

	ui.Section("RELATIONSHIP BUILDING OPPORTUNITIES")
	for _, cp := range s.Counterparties {
		ui.Printf("  %s: %s (%.2f)", cp.Name, RelationshipText(cp.Relationship), cp.Relationship)
	}

	programs := []struct {
		label string
		cost  int
		bonus float64
	}{
		{"Fund community development projects", 75_000, 0.3},
		{"Establish youth training programs", 40_000, 0.2},
		{"Create joint monitoring committee", 25_000, 0.15},
		{"Sponsor cultural events", 15_000, 0.1},
	}

	options := make([]string, 0, len(programs)+1)
	for _, p := range programs {
		options = append(options, p.label+" ("+format.Currency(p.cost)+")")
	}
	options = append(options, "No relationship building this year")

	choice := ui.Choose("Choose relationship building approach:", options)
	if choice >= len(programs) {
		ui.Printf("No relationship building activities this year.")
		return
	}

	p := programs[choice]
	if !s.CanAfford(p.cost) {
		ui.Printf("Insufficient budget: %s required", format.Currency(p.cost))
		return
	}
	s.Budget -= p.cost
	for _, cp := range s.Counterparties {
		cp.AdjustRelationship(p.bonus)
	}
	s.AdjustReputation(p.bonus)
	ui.Printf("Relationship building successful - cost: %s", format.Currency(p.cost))
	ui.Printf("All community relationships improved by %.2f", p.bonus)
}
