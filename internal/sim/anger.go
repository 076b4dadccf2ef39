package sim

import (
	"github.com/appengine-ltd/timberline/internal/format"
)

type grievanceResponse struct {
	description   string
	cost          int
	relRecovery   float64
	repRecovery   float64
	successChance float64
}

type grievanceEvent struct {
	title     string
	narrative string
	trigger   string
	relHit    float64
	repHit    float64
	responses [3]grievanceResponse
}

var grievanceEvents = []grievanceEvent{
	{
		title:     "Social Media Outrage",
		narrative: "A viral video shows your equipment near a traditional fishing spot. %s youth are organizing protests.",
		trigger:   "Cultural site disrespect",
		relHit:    0.3, repHit: 0.2,
		responses: [3]grievanceResponse{
			{"Issue public apology and relocate operations", 25_000, 0.2, 0.1, 0.8},
			{"Hire a community social media liaison to respond", 15_000, 0.1, 0.15, 0.6},
			{"Ignore the controversy and continue operations", 0, -0.1, -0.1, 1.0},
		},
	},
	{
		title:     "Spiritual Site Disturbance",
		narrative: "Your workers unknowingly damaged a prayer site. %s elders are demanding immediate action.",
		trigger:   "Sacred site violation",
		relHit:    0.4, repHit: 0.3,
		responses: [3]grievanceResponse{
			{"Fund traditional healing ceremony and site restoration", 50_000, 0.3, 0.2, 0.9},
			{"Offer monetary compensation to the community", 75_000, 0.1, 0.1, 0.5},
			{"Claim ignorance and minimal cleanup only", 5_000, -0.2, -0.2, 1.0},
		},
	},
	{
		title:     "Employment Discrimination Allegation",
		narrative: "A %s member claims they were passed over for promotion due to racism. The story is spreading.",
		trigger:   "Employment practices",
		relHit:    0.25, repHit: 0.35,
		responses: [3]grievanceResponse{
			{"Hire external employment equity consultant", 40_000, 0.2, 0.25, 0.8},
			{"Promote the employee and implement diversity training", 20_000, 0.15, 0.15, 0.7},
			{"Deny allegations and threaten legal action", 10_000, -0.3, -0.2, 1.0},
		},
	},
	{
		title:     "Wildlife Corridor Blockage",
		narrative: "Your access road has cut off traditional hunting grounds used by %s for generations.",
		trigger:   "Traditional land use interference",
		relHit:    0.2, repHit: 0.15,
		responses: [3]grievanceResponse{
			{"Build wildlife overpass and alternative hunting access", 80_000, 0.25, 0.2, 0.9},
			{"Provide alternate hunting areas and transportation", 30_000, 0.15, 0.1, 0.7},
			{"Claim the road is temporary and will be removed eventually", 0, -0.1, -0.05, 1.0},
		},
	},
	{
		title:     "Water Quality Concerns",
		narrative: "Recent water testing near your operations shows elevated sediment. %s suspects contamination.",
		trigger:   "Environmental concerns",
		relHit:    0.35, repHit: 0.4,
		responses: [3]grievanceResponse{
			{"Fund independent water study and remediation if needed", 60_000, 0.3, 0.35, 0.85},
			{"Install water monitoring stations jointly with the community", 35_000, 0.2, 0.2, 0.75},
			{"Blame natural seasonal variation and do nothing", 0, -0.2, -0.25, 1.0},
		},
	},
	{
		title:     "Cultural Protocol Violation",
		narrative: "Your crew started work during a %s mourning period. The community is deeply offended.",
		trigger:   "Cultural insensitivity",
		relHit:    0.3, repHit: 0.25,
		responses: [3]grievanceResponse{
			{"Stop all operations and fund cultural awareness training", 45_000, 0.25, 0.2, 0.8},
			{"Apologize formally and reschedule operations", 15_000, 0.15, 0.1, 0.6},
			{"Continue operations - business is business", 0, -0.2, -0.15, 1.0},
		},
	},
	{
		title:     "Youth Activist Incident",
		narrative: "Young %s activists have chained themselves to your harvesting equipment to protest old-growth logging.",
		trigger:   "Environmental activism",
		relHit:    0.25, repHit: 0.3,
		responses: [3]grievanceResponse{
			{"Meet with youth leaders and develop co-management plan", 35_000, 0.2, 0.25, 0.7},
			{"Offer summer jobs program for local youth", 50_000, 0.3, 0.2, 0.8},
			{"Call police to remove protesters", 5_000, -0.3, -0.4, 1.0},
		},
	},
	{
		title:     "Treaty Rights Dispute",
		narrative: "%s claims your operations violate their constitutionally protected rights to harvest forest resources.",
		trigger:   "Constitutional rights violation",
		relHit:    0.4, repHit: 0.5,
		responses: [3]grievanceResponse{
			{"Engage constitutional lawyer and negotiate sharing agreement", 100_000, 0.35, 0.4, 0.9},
			{"Offer revenue sharing from current operations", 80_000, 0.25, 0.2, 0.7},
			{"Dispute their claim and continue operations", 25_000, -0.4, -0.3, 1.0},
		},
	},
	{
		title:     "Worker Safety Advocacy",
		narrative: "Safety advocates from %s demand your company support community safety initiatives after a worker incident.",
		trigger:   "Worker safety and social justice",
		relHit:    0.2, repHit: 0.3,
		responses: [3]grievanceResponse{
			{"Fund community awareness program and safety initiatives", 30_000, 0.2, 0.25, 0.85},
			{"Implement comprehensive safety protocols for all workers", 20_000, 0.1, 0.15, 0.7},
			{"Argue this is not your responsibility", 0, -0.15, -0.2, 1.0},
		},
	},
	{
		title:     "Traditional Knowledge Appropriation",
		narrative: "Your company published research using %s traditional ecological knowledge without credit or permission.",
		trigger:   "Intellectual property violation",
		relHit:    0.3, repHit: 0.25,
		responses: [3]grievanceResponse{
			{"Acknowledge the knowledge holders and share research royalties", 40_000, 0.25, 0.2, 0.8},
			{"Establish formal traditional knowledge protocols", 25_000, 0.15, 0.15, 0.7},
			{"Claim the knowledge was already public domain", 0, -0.2, -0.15, 1.0},
		},
	},
}

// angerTriggered decides whether a grievance fires this quarter. Bad
// relationships, poor reputation, and heavy disturbance each boost the odds
// well past the 30% baseline.
func (s *State) angerTriggered() bool {
	for _, cp := range s.Counterparties {
		if cp.Relationship < 0.2 && s.rng.Float64() < 0.8 {
			return true
		}
	}
	if s.Reputation < 0.3 && s.rng.Float64() < 0.6 {
		return true
	}
	if s.Disturbance > s.DisturbanceCap*0.8 && s.rng.Float64() < 0.4 {
		return true
	}
	return s.rng.Float64() < 0.3
}

// GrievanceEvents rolls a community grievance against a random counterparty
// and runs its response menu through the shared risk contract. Returns true
// when an event fired.
func GrievanceEvents(s *State, ui Console) bool {
	if len(s.Counterparties) == 0 || !s.angerTriggered() {
		return false
	}

	target := s.Counterparties[s.rng.IntN(len(s.Counterparties))]

	pool := grievanceEvents[:6]
	hasOldGrowth := false
	for _, b := range s.Blocks {
		if b.OldGrowthAffected {
			hasOldGrowth = true
			break
		}
	}
	if hasOldGrowth {
		pool = append(pool[:len(pool):len(pool)], grievanceEvents[6])
	}
	if target.Relationship < 0.4 {
		pool = append(pool[:len(pool):len(pool)], grievanceEvents[7])
	}
	if s.Reputation < 0.6 {
		pool = append(pool[:len(pool):len(pool)], grievanceEvents[8], grievanceEvents[9])
	}

	ev := pool[s.rng.IntN(len(pool))]

	ui.Section("COMMUNITY GRIEVANCE - " + target.Name)
	ui.Printf("TRIGGER: %s", ev.trigger)
	ui.Printf(ev.narrative, target.Name)
	ui.Printf("Relationship with %s: -%.2f, company reputation: -%.2f", target.Name, ev.relHit, ev.repHit)

	target.AdjustRelationship(-ev.relHit)
	s.AdjustReputation(-ev.repHit)

	options := make([]string, len(ev.responses))
	for i, r := range ev.responses {
		costText := " (FREE)"
		if r.cost > 0 {
			costText = " (Cost: " + format.Currency(r.cost) + ")"
		}
		options[i] = r.description + costText
	}
	choice := ui.Choose("How do you respond to this crisis?", options)
	r := ev.responses[choice]

	success := Effect{Relationship: r.relRecovery, Reputation: r.repRecovery}
	if r.cost > 50_000 && r.successChance > 0.8 {
		// Exceptional responses are noticed by the other communities.
		success.Spillover = 0.05
	}
	failure := Effect{Relationship: -0.1, Reputation: -0.1}
	if r.cost > 30_000 {
		failure.Reputation -= 0.05
	}
	insufficient := Effect{Relationship: -0.2, Reputation: -0.15}

	res := s.Resolve(RiskChoice{
		Label:         r.description,
		Cost:          r.cost,
		SuccessChance: r.successChance,
		Success:       success,
		Failure:       failure,
	}, insufficient, target)

	switch {
	case !res.Paid:
		ui.Printf("Insufficient budget! Your inability to respond properly makes the situation WORSE.")
	case res.Succeeded:
		ui.Printf("RESPONSE SUCCESSFUL")
		if success.Spillover > 0 {
			ui.Printf("Your commitment is noticed by the other communities.")
		}
	default:
		ui.Printf("RESPONSE FAILED - seen as inadequate or insincere")
	}

	ui.Printf("Current status with %s: %.2f/1.0", target.Name, target.Relationship)
	if target.Relationship < 0.3 {
		ui.Printf("WARNING: %s relationship is critically damaged!", target.Name)
	} else if target.Relationship < 0.5 {
		ui.Printf("CAUTION: %s relationship needs attention", target.Name)
	}
	return true
}
