package sim

import (
	"github.com/appengine-ltd/timberline/internal/format"
)

type managementActivity struct {
	name        string
	description string
	baseCost    int
	run         func(s *State, ui Console)
}

var managementActivities = []managementActivity{
	{
		name:        "Focus on permit applications",
		description: "Submit strategic permit applications",
		run:         SubmitPermits,
	},
	{
		name:        "Community liaison management",
		description: "Hire a liaison or get consultation recommendations",
		run:         ManageLiaison,
	},
	{
		name:        "Executive management and hiring",
		description: "Hire an executive for automated decisions with profit sharing",
		run:         ManageExecutive,
	},
	{
		name:        "Pursue forest certification",
		description: "Apply for sustainability certifications",
		run:         CertificationOpportunities,
	},
	{
		name:        "Conduct forest health monitoring",
		description: "Monitor biodiversity and forest condition",
		baseCost:    30_000,
		run: func(s *State, ui Console) {
			ForestHealthCheck(s, ui)
			s.AdjustBiodiversity(0.05)
			ui.Printf("Forest health monitoring completed; biodiversity +0.05")
		},
	},
	{
		name:        "Explore criminal enterprises",
		description: "Multi-stage criminal operations worth millions",
		run: func(s *State, ui Console) {
			if !IllegalOpportunities(s, ui) {
				ui.Printf("No criminal opportunities available this quarter.")
			}
		},
	},
	{
		name:        "Conduct voluntary safety audit",
		description: "Proactive safety investment to reduce incident risk",
		run:         SafetyAudit,
	},
}

// activityCost applies the escalating multiplier: the i-th selected activity
// costs base * (1 + i*0.5).
func activityCost(base int, position int) int {
	return int(float64(base) * (1.0 + float64(position)*0.5))
}

// ManagementPhase runs the quarterly multi-select of management activities.
// The whole batch is abandoned if the combined cost exceeds the budget;
// nothing is charged and nothing runs.
func ManagementPhase(s *State, ui Console) {
	ui.Section("QUARTERLY MANAGEMENT DECISIONS")
	ui.Printf("Multiple activities may be pursued; each additional one costs 50%% more")

	options := make([]string, len(managementActivities))
	for i, a := range managementActivities {
		label := a.name
		if a.baseCost > 0 {
			label += " (" + format.Currency(a.baseCost) + ")"
		}
		options[i] = label + " - " + a.description
	}

	selected := ui.MultiSelect("Select activities (blank to skip all):", options)
	if len(selected) == 0 {
		ui.Printf("No management activities selected this quarter; budget preserved")
		return
	}

	totalCost := 0
	for i, idx := range selected {
		totalCost += activityCost(managementActivities[idx].baseCost, i)
	}

	ui.Printf("Selected %d activities:", len(selected))
	for i, idx := range selected {
		a := managementActivities[idx]
		cost := activityCost(a.baseCost, i)
		costText := "FREE"
		if cost > 0 {
			costText = format.Currency(cost)
		}
		ui.Printf("%d. %s - %s", i+1, a.name, costText)
	}
	ui.Printf("Total estimated cost: %s", format.Currency(totalCost))

	if totalCost > s.Budget {
		ui.Printf("Insufficient budget for all selected activities!")
		return
	}

	for i, idx := range selected {
		a := managementActivities[idx]
		cost := activityCost(a.baseCost, i)

		ui.Printf("--- %s ---", a.name)
		if cost > 0 {
			s.Budget -= cost
			ui.Printf("Cost: %s", format.Currency(cost))
		}
		a.run(s, ui)
	}
}
