package sim

import (
	"github.com/appengine-ltd/timberline/internal/format"
)

// Setup runs the founding decisions: stewardship plan depth and heritage
// assessment scope. Both trade startup cash for permit and reputation
// positioning that lasts the whole run.
func Setup(s *State, ui Console) {
	ui.Section("INITIAL COMPANY SETUP")

	plan := ui.Choose("How detailed will your forest stewardship plan be?", []string{
		"Minimal plan (cheaper, less commitment)",
		"Comprehensive plan with ecosystem commitments",
	})
	if plan == 0 {
		s.Budget -= 10_000
		s.AdjustReputation(-0.1)
		ui.Printf("Minimal plan filed: %s, reputation -0.10", format.Currency(10_000))
	} else {
		s.Budget -= 30_000
		s.AdjustReputation(0.1)
		s.PermitBonus += 0.05
		ui.Printf("Comprehensive plan filed: %s, reputation +0.10, permit standing improved", format.Currency(30_000))
	}

	ui.Printf("Archaeological assessment requirements:")
	ui.Printf("The province registers tens of thousands of heritage sites; assessments gate permit processing")

	heritage := ui.Choose("How thorough will the heritage assessments be?", []string{
		"Minimal survey (" + format.Currency(5_000) + ") - basic legal compliance, high permit delay risk",
		"Full assessment (" + format.Currency(15_000) + ") - thorough survey, faster permit processing",
	})
	if heritage == 0 {
		s.Budget -= 5_000
		s.AdjustReputation(-0.05)
		s.PermitBonus -= 0.1
		s.FullHeritageAssessments = false
		ui.Printf("Minimal survey chosen; expect permit processing delays of 30+ days")
	} else {
		s.Budget -= 15_000
		s.AdjustReputation(0.05)
		s.PermitBonus += 0.05
		s.FullHeritageAssessments = true
		ui.Printf("Thorough assessment reduces permit risk and shows cultural respect")
	}
}
