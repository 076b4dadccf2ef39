package sim

import (
	"github.com/appengine-ltd/timberline/internal/format"
)

const (
	baseIncidentChance = 0.08
	safetyAuditCost    = 100_000
	inspectorLiability = "safety inspector"
)

type safetyIncident struct {
	kind           string
	description    string
	cause          string
	immediateCost  int
	regulatorFine  int
	repPenalty     float64
	suspensionDays int
	fatality       bool
}

var safetyIncidents = []safetyIncident{
	{
		kind:           "FATALITY - Falling Tree",
		description:    "A 28-year-old faller was struck and killed by a widow-maker during harvest operations",
		cause:          "Inadequate hazard assessment and communication failures",
		immediateCost:  150_000,
		regulatorFine:  500_000,
		repPenalty:     0.4,
		suspensionDays: 45,
		fatality:       true,
	},
	{
		kind:           "FATALITY - Equipment Accident",
		description:    "Heavy equipment operator crushed when loader rolled over on steep terrain",
		cause:          "Equipment operated beyond safe slope limits, no rollover protection",
		immediateCost:  200_000,
		regulatorFine:  750_000,
		repPenalty:     0.5,
		suspensionDays: 60,
		fatality:       true,
	},
	{
		kind:          "FATALITY - Transportation Accident",
		description:   "Logging truck driver killed in highway collision with loaded trailer",
		cause:         "Driver fatigue and inadequate vehicle maintenance",
		immediateCost: 300_000,
		regulatorFine: 400_000,
		repPenalty:    0.3,
		fatality:      true,
	},
	{
		kind:          "SERIOUS INJURY - Chainsaw Accident",
		description:   "Worker suffered severe leg lacerations requiring emergency helicopter evacuation",
		cause:         "Improper chainsaw safety procedures and inadequate first aid response",
		immediateCost: 75_000,
		regulatorFine: 150_000,
		repPenalty:    0.2,
	},
	{
		kind:           "MULTIPLE INJURIES - Helicopter Crash",
		description:    "Helicopter carrying 4 workers crashed during crew transport, 2 critical injuries",
		cause:          "Pilot error in poor weather conditions, inadequate weather protocols",
		immediateCost:  500_000,
		regulatorFine:  800_000,
		repPenalty:     0.6,
		suspensionDays: 90,
	},
	{
		kind:          "CHEMICAL EXPOSURE Incident",
		description:   "3 workers hospitalized after exposure to herbicide spray drift",
		cause:         "Inadequate wind monitoring and personal protective equipment failures",
		immediateCost: 125_000,
		regulatorFine: 250_000,
		repPenalty:    0.25,
	},
}

// incidentChance scales the base quarterly risk with cost-cutting, poor
// reputation, and prior violations.
func (s *State) incidentChance() float64 {
	multiplier := 1.0
	if s.OperatingCostPerM3 < 35 {
		multiplier += 0.5
	}
	if s.Reputation < 0.4 {
		multiplier += 0.3
	}
	if s.SafetyViolations > 0 {
		multiplier += 0.4
	}
	return baseIncidentChance * multiplier
}

// SafetyIncidents rolls the quarterly workplace incident and, if one lands,
// runs the regulator response flow. Cheap operations skew the draw toward
// fatal incidents. Returns true when an incident occurred.
func SafetyIncidents(s *State, ui Console) bool {
	if s.rng.Float64() > s.incidentChance() {
		return false
	}

	ui.Section("WORKPLACE SAFETY INCIDENT")

	pool := safetyIncidents
	if s.OperatingCostPerM3 < 35 {
		pool = safetyIncidents[:3]
	}
	incident := pool[s.rng.IntN(len(pool))]

	ui.Printf("INCIDENT TYPE: %s", incident.kind)
	ui.Printf("%s", incident.description)
	ui.Printf("Preliminary cause: %s", incident.cause)
	ui.Printf("Emergency costs: %s", format.Currency(incident.immediateCost))
	ui.Printf("Regulator fine pending: %s", format.Currency(incident.regulatorFine))

	s.Budget -= incident.immediateCost
	s.AdjustReputation(-incident.repPenalty)

	if incident.suspensionDays > 0 {
		dailyRevenue := float64(s.RevenuePerM3*s.AllowableCut) / 365
		lost := int(dailyRevenue * float64(incident.suspensionDays))
		s.Budget -= lost
		ui.Printf("All operations suspended for %d days; lost revenue %s",
			incident.suspensionDays, format.Currency(lost))
	}

	s.respondToIncident(ui, incident)
	s.SafetyViolations++
	return true
}

func (s *State) respondToIncident(ui Console, incident safetyIncident) {
	choice := ui.Choose("How do you respond to this crisis?", []string{
		"Full cooperation with investigation, implement all safety recommendations (" + format.Currency(200_000) + ")",
		"Standard compliance response, meet minimum legal requirements (" + format.Currency(75_000) + ")",
		"Minimize response, challenge regulator findings in court (" + format.Currency(150_000) + ")",
		"Attempt to bribe safety inspectors to reduce penalties (" + format.Currency(100_000) + ") [ILLEGAL]",
	})

	if choice == 3 {
		confirm := ui.Choose("Bribing officials is a serious criminal offence. Proceed?", []string{
			"Yes, proceed with bribery",
			"No, choose legal response",
		})
		if confirm != 0 {
			s.respondToIncident(ui, incident)
			return
		}
		res := s.Resolve(RiskChoice{
			Label: "bribe inspectors",
			Cost:  100_000,
			Success: Effect{
				Budget: -incident.regulatorFine / 2,
			},
			Illegal: &IllegalBranch{
				DetectionRisk: 0.6,
				Tier:          0,
				BaseFine:      incident.regulatorFine,
				Detected:      Effect{Budget: -1_500_000, Reputation: -0.6},
				Standing:      inspectorLiability,
			},
		}, Effect{Budget: -incident.regulatorFine}, nil)
		switch {
		case !res.Paid:
			ui.Printf("Insufficient funds for the bribe; full fine imposed: %s", format.Currency(incident.regulatorFine))
		case res.Detected:
			ui.Printf("BRIBERY DETECTED! Criminal charges laid; fine doubled to %s plus %s criminal penalty",
				format.Currency(res.Fine), format.Currency(1_500_000))
		default:
			ui.Printf("Inspectors accept payment; 'reduced' fine %s", format.Currency(incident.regulatorFine/2))
			ui.Printf("Corrupt officials now hold leverage over the company.")
		}
		return
	}

	type response struct {
		cost          int
		fineReduction float64
		repRecovery   float64
	}
	responses := []response{
		{200_000, 0.3, 0.15},
		{75_000, 0.1, 0.05},
		{150_000, -0.2, -0.1},
	}
	r := responses[choice]

	if !s.CanAfford(r.cost) {
		ui.Printf("INSUFFICIENT BUDGET: cannot afford response costs!")
		ui.Printf("Full regulator fine imposed: %s", format.Currency(incident.regulatorFine))
		s.Budget -= incident.regulatorFine
		return
	}

	s.Budget -= r.cost
	finalFine := int(float64(incident.regulatorFine) * (1 - r.fineReduction))
	s.Budget -= finalFine
	s.AdjustReputation(r.repRecovery)
	ui.Printf("Final regulator fine: %s", format.Currency(finalFine))

	switch choice {
	case 0:
		ui.Printf("Regulator commends the proactive response; inspection frequency reduced")
		s.SafetyViolations = max(0, s.SafetyViolations-1)
	case 2:
		ui.Printf("Legal battle ongoing; future inspections will be more frequent and thorough")
		s.SafetyViolations++
	}
}

// OngoingSafetyConsequences rolls the lingering fallout of past incidents.
func OngoingSafetyConsequences(s *State, ui Console) {
	if s.SafetyViolations == 0 || s.rng.Float64() >= 0.15 {
		return
	}

	type consequence struct {
		event   string
		costMin int
		costMax int
		rep     float64
	}
	consequences := []consequence{
		{"Surprise regulator inspection finds additional violations", 25_000, 100_000, -0.05},
		{"Media investigation exposes company safety culture problems", 50_000, 150_000, -0.1},
		{"Family of deceased worker files wrongful death lawsuit", 200_000, 500_000, -0.15},
		{"Regulator orders immediate safety training for all staff", 75_000, 200_000, 0.05},
	}
	c := consequences[s.rng.IntN(len(consequences))]
	cost := randRange(s.rng, c.costMin, c.costMax)

	ui.Section("ONGOING SAFETY CONSEQUENCES")
	ui.Printf("%s", c.event)
	ui.Printf("Additional costs: %s", format.Currency(cost))
	s.Budget -= cost
	s.AdjustReputation(c.rep)
}

// SafetyAudit is the voluntary proactive investment that works down the
// violation count.
func SafetyAudit(s *State, ui Console) {
	ui.Section("VOLUNTARY SAFETY AUDIT")

	if !s.CanAfford(safetyAuditCost) {
		ui.Printf("Insufficient budget for safety audit: %s", format.Currency(safetyAuditCost))
		return
	}
	if ui.Choose("Conduct safety audit for "+format.Currency(safetyAuditCost)+"?", []string{"Yes", "No"}) != 0 {
		return
	}

	s.Budget -= safetyAuditCost
	s.AdjustReputation(0.1)
	s.SafetyViolations = max(0, s.SafetyViolations-1)
	s.SafetyAuditDone = true
	ui.Printf("Comprehensive safety audit completed; future incident risk reduced")
}
