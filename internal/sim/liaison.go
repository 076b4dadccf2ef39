package sim

import (
	"github.com/appengine-ltd/timberline/internal/format"
)

type LiaisonStyle string

const (
	LiaisonCommunity LiaisonStyle = "community"
	LiaisonCorporate LiaisonStyle = "corporate"
	LiaisonBlended   LiaisonStyle = "blended"
)

// Liaison is the optional community-relations hire. Nil on State means no
// liaison is employed.
type Liaison struct {
	Name          string
	AnnualCost    int
	Effectiveness float64
	Style         LiaisonStyle
}

var liaisonProfiles = []Liaison{
	{
		Name:          "Community Relations Specialist",
		AnnualCost:    80_000,
		Effectiveness: 0.9,
		Style:         LiaisonCommunity,
	},
	{
		Name:          "Corporate Consultant",
		AnnualCost:    60_000,
		Effectiveness: 0.6,
		Style:         LiaisonCorporate,
	},
	{
		Name:          "Blended Advisory Team",
		AnnualCost:    120_000,
		Effectiveness: 0.95,
		Style:         LiaisonBlended,
	},
}

// ManageLiaison either offers the hiring menu or runs the current liaison's
// quarterly recommendations.
func ManageLiaison(s *State, ui Console) {
	if s.Liaison == nil {
		ui.Printf("No community liaison currently employed")
		offerLiaisonHiring(s, ui)
		return
	}
	ui.Printf("Current liaison: %s", s.Liaison.Name)
	liaisonSuggestions(s, ui)
}

func offerLiaisonHiring(s *State, ui Console) {
	ui.Section("COMMUNITY LIAISON SERVICES")
	ui.Printf("Hire a liaison to handle community consultation and provide strategic advice")

	for i, l := range liaisonProfiles {
		ui.Printf("%d. %s - %s/year (effectiveness %.0f%%)",
			i+1, l.Name, format.Currency(l.AnnualCost), l.Effectiveness*100)
	}

	options := make([]string, 0, len(liaisonProfiles)+1)
	for _, l := range liaisonProfiles {
		options = append(options, "Hire "+l.Name)
	}
	options = append(options, "Skip liaison hiring this quarter")

	choice := ui.Choose("Choose liaison approach:", options)
	if choice >= len(liaisonProfiles) {
		ui.Printf("No liaison hired this quarter")
		return
	}

	hire := liaisonProfiles[choice]
	if !s.CanAfford(hire.AnnualCost) {
		ui.Printf("Insufficient budget! Need %s", format.Currency(hire.AnnualCost))
		return
	}
	s.Budget -= hire.AnnualCost
	s.Liaison = &hire
	ui.Printf("%s hired at %s/year", hire.Name, format.Currency(hire.AnnualCost))

	boost := 0.05
	switch hire.Style {
	case LiaisonCommunity:
		boost = 0.2
	case LiaisonBlended:
		boost = 0.1
	}
	for _, cp := range s.Counterparties {
		cp.AdjustRelationship(boost)
	}
	s.AdjustReputation(0.1)
}

type liaisonSuggestion struct {
	title         string
	description   string
	cost          int
	relImpact     float64
	repImpact     float64
	successChance float64
}

// generateSuggestions builds the quarter's recommendation list from the
// current state, flavoured by the liaison's style.
func (s *State) generateSuggestions() []liaisonSuggestion {
	var out []liaisonSuggestion
	style := s.Liaison.Style

	var poor, strained *Counterparty
	for _, cp := range s.Counterparties {
		switch {
		case cp.Relationship < 0.4 && poor == nil:
			poor = cp
		case cp.Relationship >= 0.4 && cp.Relationship < 0.6 && strained == nil:
			strained = cp
		}
	}

	if poor != nil {
		if style == LiaisonCommunity {
			out = append(out, liaisonSuggestion{
				"Emergency Relationship Repair",
				"Immediate cultural ceremony and formal apology to " + poor.Name,
				50_000, 0.3, 0.15, 0.8,
			})
		} else {
			out = append(out, liaisonSuggestion{
				"Diplomatic Damage Control",
				"Professional mediation and compensation offer to " + poor.Name,
				75_000, 0.2, 0.1, 0.6,
			})
		}
	}

	if strained != nil {
		switch style {
		case LiaisonCorporate:
			out = append(out, liaisonSuggestion{
				"Strategic Partnership Development",
				"Joint venture proposal with " + strained.Name + " for mutual benefit",
				40_000, 0.15, 0.05, 0.7,
			})
		case LiaisonCommunity:
			out = append(out, liaisonSuggestion{
				"Cultural Exchange Program",
				"Employee cultural training and traditional knowledge sharing with " + strained.Name,
				25_000, 0.2, 0.1, 0.85,
			})
		default:
			out = append(out, liaisonSuggestion{
				"Collaborative Monitoring Initiative",
				"Joint environmental monitoring program with " + strained.Name,
				35_000, 0.18, 0.08, 0.75,
			})
		}
	}

	if s.Disturbance > s.DisturbanceCap*0.6 && style == LiaisonCommunity {
		out = append(out, liaisonSuggestion{
			"Traditional Ecological Restoration",
			"Community-led habitat restoration using traditional methods",
			60_000, 0.25, 0.2, 0.9,
		})
	}

	if len(s.ActiveCertifications()) == 0 && s.Reputation > 0.5 && style != LiaisonCorporate {
		out = append(out, liaisonSuggestion{
			"Community Partnership Certification",
			"Apply for a specialized community partnership certification",
			80_000, 0.1, 0.25, 0.8,
		})
	}

	return out
}

func liaisonSuggestions(s *State, ui Console) {
	ui.Section("LIAISON RECOMMENDATIONS - " + s.Liaison.Name)

	suggestions := s.generateSuggestions()
	if len(suggestions) == 0 {
		ui.Printf("No specific recommendations this quarter; relationships are well-managed")
		return
	}

	var approved []liaisonSuggestion
	for _, sg := range suggestions {
		ui.Printf("%s - %s (success %.0f%%)", sg.title, format.Currency(sg.cost), sg.successChance*100)
		ui.Printf("  %s", sg.description)
		if ui.Choose("Approve: "+sg.title+"?", []string{"Yes", "No"}) != 0 {
			continue
		}
		if !s.CanAfford(sg.cost) {
			ui.Printf("Insufficient budget for %s", sg.title)
			continue
		}
		approved = append(approved, sg)
	}

	if len(approved) == 0 {
		ui.Printf("No recommendations approved this quarter")
		return
	}

	for _, sg := range approved {
		s.Budget -= sg.cost
		ui.Printf("Implementing: %s", sg.title)

		if s.rng.Float64() < sg.successChance {
			ui.Printf("SUCCESS: %s", sg.description)
			for _, cp := range s.Counterparties {
				cp.AdjustRelationship(sg.relImpact)
			}
			s.AdjustReputation(sg.repImpact)

			switch {
			case s.Liaison.Style == LiaisonCommunity && sg.relImpact > 0.2:
				ui.Printf("BONUS: cultural authenticity creates lasting trust")
				s.AdjustReputation(0.05)
			case s.Liaison.Style == LiaisonBlended:
				ui.Printf("BONUS: comprehensive approach yields additional benefits")
				s.AdjustBiodiversity(0.02)
			}
		} else {
			ui.Printf("PARTIAL SUCCESS: some challenges encountered")
			for _, cp := range s.Counterparties {
				cp.AdjustRelationship(sg.relImpact * 0.5)
			}
			s.AdjustReputation(sg.repImpact * 0.5)
		}
	}
}

// PayLiaisonFee collects the annual retainer each winter. An unpaid liaison
// walks.
func PayLiaisonFee(s *State, ui Console) {
	if s.Liaison == nil {
		return
	}
	if !s.CanAfford(s.Liaison.AnnualCost) {
		ui.Printf("Cannot afford liaison retainer (%s); %s terminates the contract",
			format.Currency(s.Liaison.AnnualCost), s.Liaison.Name)
		s.Liaison = nil
		return
	}
	s.Budget -= s.Liaison.AnnualCost
	ui.Printf("Liaison retainer paid: %s", format.Currency(s.Liaison.AnnualCost))
}
