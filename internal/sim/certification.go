package sim

import (
	"github.com/appengine-ltd/timberline/internal/format"
)

type certProfile struct {
	kind         CertificationKind
	name         string
	initialCost  int
	annualCost   int
	revenueBonus float64
	repBonus     float64
	requirements string
}

var certProfiles = []certProfile{
	{
		kind:         CertStewardshipGold,
		name:         "Stewardship Gold",
		initialCost:  150_000,
		annualCost:   25_000,
		revenueBonus: 0.20,
		repBonus:     0.15,
		requirements: "Strict environmental and social standards",
	},
	{
		kind:         CertBorealAlliance,
		name:         "Boreal Alliance",
		initialCost:  100_000,
		annualCost:   18_000,
		revenueBonus: 0.15,
		repBonus:     0.10,
		requirements: "National forest certification framework",
	},
	{
		kind:         CertTimberTrust,
		name:         "TimberTrust",
		initialCost:  80_000,
		annualCost:   15_000,
		revenueBonus: 0.12,
		repBonus:     0.08,
		requirements: "Fibre sourcing and forest management standards",
	},
}

// meetsCertRequirements checks the eligibility gate for a scheme. Audits
// re-run the same gate annually.
func (s *State) meetsCertRequirements(kind CertificationKind) bool {
	switch kind {
	case CertStewardshipGold:
		for _, cp := range s.Counterparties {
			if cp.Relationship < 0.5 {
				return false
			}
		}
		return s.Reputation >= 0.6 &&
			s.Biodiversity >= 0.5 &&
			s.Disturbance < s.DisturbanceCap*0.8 &&
			!s.recentDisasterDamage()
	case CertBorealAlliance:
		anySigned := false
		for _, cp := range s.Counterparties {
			if cp.AgreementSigned {
				anySigned = true
				break
			}
		}
		return s.Reputation >= 0.4 &&
			s.Biodiversity >= 0.4 &&
			s.Disturbance < s.DisturbanceCap*0.9 &&
			anySigned
	case CertTimberTrust:
		return s.Reputation >= 0.3 &&
			s.Biodiversity >= 0.3 &&
			s.SocialLicense
	default:
		return false
	}
}

// recentDisasterDamage reports disaster impact among the last five blocks.
func (s *State) recentDisasterDamage() bool {
	start := max(0, len(s.Blocks)-5)
	for _, b := range s.Blocks[start:] {
		if b.DisasterAffected {
			return true
		}
	}
	return false
}

// CertificationOpportunities offers the schemes the company does not yet
// hold. Applying charges the initial cost only when the eligibility gate
// passes.
func CertificationOpportunities(s *State, ui Console) {
	var available []certProfile
	for _, p := range certProfiles {
		if s.ActiveCertification(p.kind) == nil {
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		return
	}

	ui.Section("FOREST CERTIFICATION OPPORTUNITIES")
	for i, p := range available {
		ui.Printf("%d. %s", i+1, p.name)
		ui.Printf("   Initial cost: %s, annual cost: %s", format.Currency(p.initialCost), format.Currency(p.annualCost))
		ui.Printf("   Revenue premium: +%.0f%%, reputation bonus: +%.2f", p.revenueBonus*100, p.repBonus)
		ui.Printf("   Requirements: %s", p.requirements)
	}

	options := make([]string, 0, len(available)+1)
	for _, p := range available {
		options = append(options, "Apply for "+p.name)
	}
	options = append(options, "Skip certification this year")

	choice := ui.Choose("Choose certification program:", options)
	if choice >= len(available) {
		return
	}
	p := available[choice]

	if !s.CanAfford(p.initialCost) {
		ui.Printf("Insufficient budget! Need %s", format.Currency(p.initialCost))
		return
	}
	if !s.meetsCertRequirements(p.kind) {
		ui.Printf("Certification requirements not met for %s", p.name)
		s.explainCertGaps(ui, p.kind)
		return
	}

	s.Budget -= p.initialCost
	s.Certifications = append(s.Certifications, &Certification{
		Kind:            p.kind,
		ObtainedYear:    s.Year,
		AnnualCost:      p.annualCost,
		RevenueBonus:    p.revenueBonus,
		ReputationBonus: p.repBonus,
		Active:          true,
	})
	s.AdjustReputation(p.repBonus)
	ui.Printf("%s certification obtained! Annual revenue premium: +%.0f%%", p.name, p.revenueBonus*100)
}

func (s *State) explainCertGaps(ui Console, kind CertificationKind) {
	switch kind {
	case CertStewardshipGold:
		if s.Reputation < 0.6 {
			ui.Printf("  Reputation too low: %.2f/0.60", s.Reputation)
		}
		if s.Biodiversity < 0.5 {
			ui.Printf("  Biodiversity score too low: %.2f/0.50", s.Biodiversity)
		}
		if s.Disturbance >= s.DisturbanceCap*0.8 {
			ui.Printf("  Disturbance ratio too high: %.0f%%/80%%", s.DisturbanceRatio()*100)
		}
		for _, cp := range s.Counterparties {
			if cp.Relationship < 0.5 {
				ui.Printf("  Strained community relationship: %s", cp.Name)
			}
		}
		if s.recentDisasterDamage() {
			ui.Printf("  Recent forest health issues in harvest areas")
		}
	case CertBorealAlliance:
		if s.Reputation < 0.4 {
			ui.Printf("  Reputation too low: %.2f/0.40", s.Reputation)
		}
		if s.Biodiversity < 0.4 {
			ui.Printf("  Biodiversity score too low: %.2f/0.40", s.Biodiversity)
		}
		if s.Disturbance >= s.DisturbanceCap*0.9 {
			ui.Printf("  Disturbance ratio too high: %.0f%%/90%%", s.DisturbanceRatio()*100)
		}
		signed := false
		for _, cp := range s.Counterparties {
			if cp.AgreementSigned {
				signed = true
			}
		}
		if !signed {
			ui.Printf("  No signed community agreements")
		}
	case CertTimberTrust:
		if s.Reputation < 0.3 {
			ui.Printf("  Reputation too low: %.2f/0.30", s.Reputation)
		}
		if s.Biodiversity < 0.3 {
			ui.Printf("  Biodiversity score too low: %.2f/0.30", s.Biodiversity)
		}
		if !s.SocialLicense {
			ui.Printf("  Social license to operate has been lost")
		}
	}
}

// MaintainCertifications handles the annual fee round and compliance audits.
// Non-payment drops every certification at once.
func MaintainCertifications(s *State, ui Console) {
	active := s.ActiveCertifications()
	if len(active) == 0 {
		return
	}

	ui.Section("CERTIFICATION MAINTENANCE")
	total := 0
	for _, c := range active {
		total += c.AnnualCost
		ui.Printf("  - %s: %d years held, %s/year", c.Kind, s.Year-c.ObtainedYear, format.Currency(c.AnnualCost))
	}
	ui.Printf("Total annual certification costs: %s", format.Currency(total))

	if !s.CanAfford(total) {
		ui.Printf("Insufficient budget to maintain all certifications!")

		options := make([]string, 0, len(active)+1)
		for _, c := range active {
			options = append(options, "Drop "+string(c.Kind)+" certification")
		}
		options = append(options, "Find budget elsewhere (risk bankruptcy)")

		choice := ui.Choose("Action required:", options)
		if choice < len(active) {
			dropped := active[choice]
			dropped.Active = false
			penalty := dropped.ReputationBonus * 0.5
			s.AdjustReputation(-penalty)
			ui.Printf("%s certification dropped; reputation penalty -%.2f", dropped.Kind, penalty)

			total = 0
			for _, c := range s.ActiveCertifications() {
				total += c.AnnualCost
			}
		}
	}

	if !s.CanAfford(total) {
		for _, c := range active {
			c.Active = false
		}
		s.AdjustReputation(-0.3)
		ui.Printf("All certifications lost due to non-payment")
		return
	}

	s.Budget -= total
	ui.Printf("All certifications maintained - cost: %s", format.Currency(total))

	for _, c := range s.ActiveCertifications() {
		if !s.meetsCertRequirements(c.Kind) {
			ui.Printf("%s audit found non-compliance issues", c.Kind)
			s.handleAuditFailure(ui, c)
		}
	}
}

func (s *State) handleAuditFailure(ui Console, cert *Certification) {
	choice := ui.Choose("Response to audit failure:", []string{
		"Implement corrective action plan (" + format.Currency(50_000) + ")",
		"Accept certification suspension",
		"Appeal audit findings (" + format.Currency(25_000) + ")",
	})

	switch choice {
	case 0:
		if !s.CanAfford(50_000) {
			ui.Printf("Insufficient budget for corrective action")
			cert.Active = false
			return
		}
		s.Budget -= 50_000
		s.AdjustReputation(0.05)
		s.AdjustBiodiversity(0.05)
		ui.Printf("Corrective action plan implemented")

	case 1:
		cert.Active = false
		s.AdjustReputation(-cert.ReputationBonus * 0.3)
		ui.Printf("%s certification suspended", cert.Kind)

	default:
		if !s.CanAfford(25_000) {
			ui.Printf("Insufficient budget for appeal")
			cert.Active = false
			return
		}
		s.Budget -= 25_000
		if s.rng.Float64() < 0.4 {
			ui.Printf("Appeal successful - certification maintained")
		} else {
			cert.Active = false
			s.AdjustReputation(-cert.ReputationBonus * 0.2)
			ui.Printf("Appeal failed - certification suspended")
		}
	}
}
