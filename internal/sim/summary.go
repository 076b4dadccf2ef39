package sim

import (
	"strconv"
	"strings"

	"github.com/appengine-ltd/timberline/internal/format"
)

// QuarterSummary prints the end-of-quarter dashboard. The annual allowable
// cut declines once per year, applied here in Q4 only.
func QuarterSummary(s *State, ui Console) {
	ui.Section("END OF " + s.QuarterName() + " " + strconv.Itoa(s.Year) + " SUMMARY")

	ui.Printf("Budget: %s", format.Currency(s.Budget))
	ui.Printf("Reputation: %.2f/1.0", s.Reputation)
	ui.Printf("Annual allowable cut: %s", format.Volume(s.AllowableCut))
	ui.Printf("Cumulative disturbance: %.0f/%.0f ha (%s)",
		s.Disturbance, s.DisturbanceCap, format.Percent(s.DisturbanceRatio()))
	ui.Printf("Jobs created (total): %d", s.JobsCreated)
	ui.Printf("Consecutive profitable years: %d", s.ConsecutiveProfitable)

	ui.Printf("Harvest blocks: %d approved, %d pending permits",
		len(s.approvedBlocks()), len(s.pendingBlocks()))

	if active := s.ActiveCertifications(); len(active) > 0 {
		names := make([]string, len(active))
		for i, c := range active {
			names[i] = string(c.Kind)
		}
		ui.Printf("Active certifications: %s", strings.Join(names, ", "))
	}

	if len(s.Counterparties) > 0 {
		total := 0.0
		for _, cp := range s.Counterparties {
			total += cp.Relationship
		}
		ui.Printf("Average community relationship: %.2f/1.0", total/float64(len(s.Counterparties)))
	}

	if s.Quarter == 4 {
		old := s.AllowableCut
		s.AllowableCut = int(float64(s.AllowableCut) * (1 - s.CutDeclineRate))
		ui.Printf("Annual cut declining: %s -> %s (-%.1f%%)",
			format.Volume(old), format.Volume(s.AllowableCut), s.CutDeclineRate*100)
	}
}

// FinalSummary prints the end-of-run report card, including return on the
// starting investment when the company is still solvent.
func FinalSummary(s *State, startingBudget int, ui Console) {
	ui.Section("FINAL RESULTS")
	ui.Printf("Company: %s", s.CompanyName)
	ui.Printf("Years operated: %d", s.YearsOperated)
	ui.Printf("Final budget: %s", format.Currency(s.Budget))
	ui.Printf("Total revenue: %s", format.Currency(s.TotalRevenue))
	ui.Printf("Total jobs created: %d", s.JobsCreated)
	ui.Printf("Final reputation: %.2f/1.0", s.Reputation)
	ui.Printf("Environmental impact: %.0f ha disturbed", s.Disturbance)

	if len(s.Certifications) > 0 {
		names := make([]string, 0, len(s.Certifications))
		for _, c := range s.Certifications {
			if c.ObtainedYear > 0 {
				names = append(names, string(c.Kind))
			}
		}
		if len(names) > 0 {
			ui.Printf("Certifications achieved: %s", strings.Join(names, ", "))
		}
	}

	if s.Budget > 0 && startingBudget > 0 {
		roi := float64(s.Budget-startingBudget) / float64(startingBudget) * 100
		ui.Printf("Return on investment: %.1f%%", roi)
	}
}