package sim

import (
	"fmt"

	"github.com/appengine-ltd/timberline/internal/format"
)

type illegalAct struct {
	name          string
	description   string
	profit        int
	detectionRisk float64
	repPenalty    float64
	tier          int
	baseFine      int
}

// fine is what detection actually costs, per the shared resolver contract.
func (a illegalAct) fine() int {
	return a.baseFine * (2 + a.tier)
}

var illegalActs = []illegalAct{
	{"Harvest Buffer Zone Violation", "Cut trees within 30m of streams to maximize volume", 180_000, 0.4, 0.2, 1, 150_000},
	{"Exceed Cut Block Boundaries", "Harvest additional trees beyond approved cut block limits", 220_000, 0.3, 0.15, 0, 275_000},
	{"Underreport Harvest Volumes", "Scale logs as smaller than actual to reduce stumpage fees", 320_000, 0.2, 0.1, 2, 200_000},
	{"Bypass Archaeological Assessment", "Harvest area without waiting for heritage clearance", 150_000, 0.5, 0.4, 2, 150_000},
	{"Dump Equipment Fluids", "Illegally dispose of hydraulic fluid and oil in forest", 85_000, 0.3, 0.3, 0, 200_000},
	{"Forge Safety Training Records", "Create fake safety certification documents for workers", 95_000, 0.4, 0.25, 0, 175_000},
	{"Bribe Local Permit Officer", "Pay regional official to fast-track permit applications", 200_000, 0.3, 0.2, 1, 250_000},
	{"High-Grade Only the Best Trees", "Selectively harvest premium logs, leaving the rest", 280_000, 0.6, 0.3, 1, 140_000},
	{"Falsify Silviculture Reports", "Report tree planting and maintenance that was never done", 160_000, 0.3, 0.2, 1, 160_000},
	{"Harvest During Wildlife Closure", "Continue operations during seasonal protection periods", 340_000, 0.5, 0.4, 2, 170_000},
	{"Modify Equipment Emission Controls", "Remove emissions equipment for power and fuel savings", 120_000, 0.2, 0.1, 0, 150_000},
	{"Use Banned Herbicides", "Apply cheaper prohibited chemicals for vegetation management", 190_000, 0.4, 0.35, 1, 190_000},
	{"Exceed Truck Weight Limits", "Overload logging trucks to reduce transportation costs", 240_000, 0.3, 0.15, 0, 180_000},
	{"Sell Timber to Black Market", "Sell premium logs to unregistered mills at higher prices", 380_000, 0.4, 0.25, 2, 190_000},
	{"Fake Community Consultation", "Forge consultation documents claiming community agreement", 250_000, 0.6, 0.7, 3, 240_000},
	{"Harvest Crown Land Without Permits", "Cut valuable timber on adjacent public land", 420_000, 0.5, 0.4, 3, 210_000},
	{"Dispose of Asbestos Illegally", "Bury old camp building asbestos instead of hazmat disposal", 75_000, 0.2, 0.2, 0, 112_500},
}

type operationStage struct {
	name         string
	description  string
	profit       int
	riskIncrease float64
	cost         int
}

type criminalOperation struct {
	name        string
	description string
	totalProfit int
	baseRisk    float64
	stages      [4]operationStage
}

var criminalOperations = []criminalOperation{
	{
		name:        "The Revenue Deception Network",
		description: "Multi-year tax evasion scheme using shell companies and offshore accounts",
		totalProfit: 8_500_000,
		baseRisk:    0.2,
		stages: [4]operationStage{
			{"Creative Deductions", "Inflate equipment costs and claim personal expenses as business costs", 350_000, 0.1, 15_000},
			{"Shell Company Network", "Create fake consulting companies to shift profits", 850_000, 0.15, 50_000},
			{"Offshore Banking", "Move profits to offshore accounts to avoid all domestic taxes", 2_400_000, 0.25, 100_000},
			{"International Money Laundering", "Partner with criminal organizations to clean massive profits", 4_900_000, 0.4, 200_000},
		},
	},
	{
		name:        "The Timber Revenue Phantom",
		description: "Systematically under-report timber sales to avoid stumpage fees and income tax",
		totalProfit: 6_200_000,
		baseRisk:    0.3,
		stages: [4]operationStage{
			{"Volume Underreporting", "Report 20% less volume than actually harvested", 400_000, 0.1, 25_000},
			{"Price Manipulation", "Fake lower-price contracts with cash payments under the table", 950_000, 0.15, 60_000},
			{"Double-Invoice System", "Maintain separate accounting for real vs reported sales", 2_100_000, 0.3, 120_000},
			{"Cryptocurrency Conversion", "Convert unreported profits to untraceable assets", 2_750_000, 0.35, 180_000},
		},
	},
	{
		name:        "The Backroad Smuggling Express",
		description: "Use logging roads and equipment to transport contraband across the border",
		totalProfit: 12_000_000,
		baseRisk:    0.4,
		stages: [4]operationStage{
			{"Single Load Test", "Transport one shipment hidden in a logging truck", 500_000, 0.15, 25_000},
			{"Regular Smuggling Route", "Establish weekly shipments using modified logging equipment", 2_500_000, 0.25, 100_000},
			{"Distribution Network", "Use the worker network to distribute throughout the interior", 4_500_000, 0.4, 200_000},
			{"International Partnership", "Become a national distribution hub for the cartel", 4_500_000, 0.6, 400_000},
		},
	},
	{
		name:        "The Toxic Waste Empire",
		description: "Become an illegal toxic waste disposal site for industry",
		totalProfit: 7_800_000,
		baseRisk:    0.3,
		stages: [4]operationStage{
			{"Industrial Sludge Disposal", "Accept contaminated soil and industrial sludge for disposal", 600_000, 0.1, 50_000},
			{"Hazardous Chemical Storage", "Store banned pesticides and chemicals in hidden bunkers", 1_400_000, 0.2, 150_000},
			{"Radioactive Waste Facility", "Accept low-level radioactive waste from medical facilities", 2_800_000, 0.35, 300_000},
			{"International Toxic Hub", "Accept foreign toxic waste via a secret import network", 3_000_000, 0.5, 500_000},
		},
	},
	{
		name:        "The Government Takeover",
		description: "Systematically corrupt officials to control forestry policy",
		totalProfit: 9_500_000,
		baseRisk:    0.4,
		stages: [4]operationStage{
			{"Local Official Bribes", "Bribe regional forestry officials for permit advantages", 800_000, 0.15, 100_000},
			{"Ministry Infiltration", "Place paid agents in key ministry positions", 2_200_000, 0.25, 300_000},
			{"Legislative Control", "Buy votes for forestry-friendly legislation", 3_500_000, 0.4, 600_000},
			{"Premier's Office", "Corrupt the head of government's chief of staff", 3_000_000, 0.6, 1_000_000},
		},
	},
}

// IllegalOpportunities offers the quarter's criminal menu: a sample of quick
// one-time acts or the multi-stage enterprises. Declining outright earns a
// small reputation credit. Returns true when any crime was attempted.
func IllegalOpportunities(s *State, ui Console) bool {
	if s.rng.Float64() > 0.6 {
		ui.Printf("No criminal opportunities available this quarter.")
		return false
	}

	ui.Section("ILLEGAL BUSINESS OPPORTUNITIES")

	choice := ui.Choose("Choose activity type:", []string{
		"Simple one-time illegal activities (immediate profit)",
		"Complex multi-stage criminal operations (massive profits)",
		"Decline all illegal opportunities (stay legal)",
	})

	switch choice {
	case 0:
		return runSimpleIllegalActs(s, ui)
	case 1:
		return runCriminalOperations(s, ui)
	default:
		ui.Printf("Maintaining legal compliance and ethical standards")
		s.AdjustReputation(0.05)
		return false
	}
}

func sampleActs(s *State, n int) []illegalAct {
	idx := make([]int, len(illegalActs))
	for i := range idx {
		idx[i] = i
	}
	s.rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	out := make([]illegalAct, 0, n)
	for _, i := range idx[:min(n, len(idx))] {
		out = append(out, illegalActs[i])
	}
	return out
}

func runSimpleIllegalActs(s *State, ui Console) bool {
	acts := sampleActs(s, 4)

	ui.Section("SIMPLE ILLEGAL ACTIVITIES")
	for i, a := range acts {
		ui.Printf("%d. %s - profit %s, detection risk %.0f%%, fine %s",
			i+1, a.name, format.Currency(a.profit), a.detectionRisk*100, format.Currency(a.fine()))
		ui.Printf("   %s", a.description)
	}

	options := make([]string, 0, len(acts)+1)
	for _, a := range acts {
		options = append(options, a.name)
	}
	options = append(options, "Cancel - return to legal operations")

	choice := ui.Choose("Choose illegal activity:", options)
	if choice >= len(acts) {
		ui.Printf("Returning to legal business")
		return false
	}
	return commitAct(s, ui, acts[choice])
}

// commitAct confirms and runs one simple act through the shared resolver.
// Detection opens the narrative and, for smaller fines, a bribery follow-up.
func commitAct(s *State, ui Console, act illegalAct) bool {
	ui.Printf("CONFIRMATION: %s", act.name)
	ui.Printf("  Immediate profit: %s, detection risk %.0f%%, fine if caught %s, reputation -%.2f",
		format.Currency(act.profit), act.detectionRisk*100, format.Currency(act.fine()), act.repPenalty)
	if ui.Choose("Proceed with this illegal activity?", []string{"Yes, commit the crime", "No, stay legal"}) != 0 {
		ui.Printf("Activity cancelled - remaining legal")
		return false
	}

	res := s.Resolve(RiskChoice{
		Label:   act.name,
		Success: Effect{Budget: act.profit, Reputation: -0.05},
		Illegal: &IllegalBranch{
			DetectionRisk: act.detectionRisk,
			Tier:          act.tier,
			BaseFine:      act.baseFine,
			Detected:      Effect{Reputation: -act.repPenalty},
		},
	}, Effect{}, nil)

	if !res.Detected {
		ui.Printf("Activity completed successfully; profit %s. It went unnoticed... for now", format.Currency(act.profit))
		return true
	}

	ui.Section("ILLEGAL ACTIVITY DETECTED")
	sources := []string{
		"Forest practices inspector",
		"Employee whistleblower",
		"Routine government audit",
		"Drone surveillance",
		"Community monitoring patrol",
	}
	ui.Printf("Detection source: %s", sources[s.rng.IntN(len(sources))])
	ui.Printf("Fine imposed: %s, reputation damage -%.2f", format.Currency(res.Fine), act.repPenalty)

	if res.Fine < 600_000 && s.Budget > 50_000 {
		offerFineBribe(s, ui, res.Fine)
	}
	return true
}

// offerFineBribe lets the player pay 30% of an imposed fine for a 40% shot at
// clawing 70% of it back. Detection doubles the original fine on top.
func offerFineBribe(s *State, ui Console, fine int) {
	bribe := int(float64(fine) * 0.3)
	ui.Printf("BRIBERY OPTION: attempt to bribe officials for %s (40%% success, double penalties if caught)", format.Currency(bribe))
	if ui.Choose("Attempt bribery?", []string{"Yes, try to bribe officials", "No, accept legal penalties"}) != 0 {
		return
	}

	refund := int(float64(fine) * 0.7)
	res := s.Resolve(RiskChoice{
		Label:   "bribe the investigators",
		Cost:    bribe,
		Success: Effect{Budget: refund},
		Illegal: &IllegalBranch{
			DetectionRisk: 0.6,
			BaseFine:      fine / 2,
			Detected:      Effect{Reputation: -0.2},
		},
	}, Effect{}, nil)

	switch {
	case res.Detected:
		ui.Printf("BRIBERY DETECTED - penalties doubled! Additional %s", format.Currency(res.Fine))
	case res.Succeeded:
		ui.Printf("Bribery successful - penalty reduction %s", format.Currency(refund))
	}
}

func runCriminalOperations(s *State, ui Console) bool {
	ui.Section("COMPLEX CRIMINAL ENTERPRISES")
	for i, op := range criminalOperations {
		ui.Printf("%d. %s - total potential profit %s, base risk %.0f%%",
			i+1, op.name, format.Currency(op.totalProfit), op.baseRisk*100)
		ui.Printf("   %s", op.description)
	}

	options := make([]string, 0, len(criminalOperations)+1)
	for _, op := range criminalOperations {
		options = append(options, op.name)
	}
	options = append(options, "Cancel - return to legal operations")

	choice := ui.Choose("Choose criminal enterprise:", options)
	if choice >= len(criminalOperations) {
		return false
	}
	return runStagedOperation(s, ui, criminalOperations[choice])
}

// runStagedOperation walks an enterprise stage by stage. Risk accumulates;
// exiting at any point banks the accumulated profit, and detection at a
// stage escalates to the escape flow. Each stage is one resolver roll: the
// stage cost is the stake, the accumulated profit is the insufficient-funds
// consolation.
func runStagedOperation(s *State, ui Console, op criminalOperation) bool {
	ui.Section("CRIMINAL OPERATION: " + op.name)
	ui.Printf("Multi-stage operation: each stage increases both profit and risk. You can exit at any stage.")

	if ui.Choose("Do you absolutely want to proceed with this criminal operation?",
		[]string{"Yes, I understand the risks", "No, return to legal operations"}) != 0 {
		ui.Printf("Returning to legal business operations")
		return false
	}

	accumulatedProfit := 0
	accumulatedRisk := 0.0

	for i, stage := range op.stages {
		currentRisk := op.baseRisk + accumulatedRisk + stage.riskIncrease

		ui.Section(fmt.Sprintf("Stage %d: %s", i+1, stage.name))
		ui.Printf("%s", stage.description)
		ui.Printf("Stage profit %s, stage cost %s, total detection risk %.0f%%",
			format.Currency(stage.profit), format.Currency(stage.cost), currentRisk*100)

		if ui.Choose("Decision for "+stage.name+":", []string{
			fmt.Sprintf("Execute stage (risk %.0f%%)", currentRisk*100),
			"Exit operation now and keep current profits",
		}) != 0 {
			ui.Printf("Exiting operation; total profit secured %s", format.Currency(accumulatedProfit))
			s.Budget += accumulatedProfit
			return true
		}

		res := s.Resolve(RiskChoice{
			Label:   stage.name,
			Cost:    stage.cost,
			Illegal: &IllegalBranch{DetectionRisk: currentRisk},
		}, Effect{Budget: accumulatedProfit}, nil)

		if !res.Paid {
			ui.Printf("Insufficient funds for %s! Total profit secured: %s",
				stage.name, format.Currency(accumulatedProfit))
			return true
		}
		if res.Detected {
			ui.Printf("OPERATION COMPROMISED!")
			handleCriminalDetection(s, ui, accumulatedProfit, currentRisk)
			return true
		}

		accumulatedProfit += stage.profit
		accumulatedRisk += stage.riskIncrease
		ui.Printf("Stage completed; accumulated profit %s", format.Currency(accumulatedProfit))

		if i < len(op.stages)-1 {
			next := op.stages[i+1]
			ui.Printf("NEXT STAGE PREVIEW: %s (profit %s, risk %.0f%%)",
				next.name, format.Currency(next.profit), (currentRisk+next.riskIncrease)*100)
			if ui.Choose("Continue to next stage?", []string{
				"Continue deeper into crime",
				"Exit with current profits",
			}) != 0 {
				ui.Printf("Operation completed; final profit %s", format.Currency(accumulatedProfit))
				s.Budget += accumulatedProfit
				return true
			}
		}
	}

	s.Budget += accumulatedProfit
	ui.Printf("OPERATION COMPLETED SUCCESSFULLY! Total profit: %s", format.Currency(accumulatedProfit))
	ui.Printf("WARNING: you are now a major criminal figure; law enforcement is watching")
	return true
}

type escapeOption struct {
	name           string
	cost           int
	fineMultiplier float64
	repPenalty     float64
	successChance  float64
	briberyLayer   int
}

// handleCriminalDetection runs the escape menu after a staged operation is
// caught. The base fine scales with what the scheme had already banked.
func handleCriminalDetection(s *State, ui Console, accumulatedProfit int, riskLevel float64) {
	ui.Section("CRIMINAL OPERATION DETECTED")

	sources := []string{
		"Undercover police operation",
		"Whistleblower employee report",
		"Tax authority investigation",
		"Government surveillance program",
		"Rival criminal organization tip-off",
		"Investigative journalist exposure",
	}
	ui.Printf("Detection source: %s", sources[s.rng.IntN(len(sources))])

	baseFine := int(float64(accumulatedProfit) * (2 + riskLevel))
	ui.Printf("Potential criminal fine: %s", format.Currency(baseFine))

	escapes := []escapeOption{
		{"Accept full legal consequences", 0, 1.0, riskLevel, 1.0, 0},
		{"Hire top criminal defense lawyers", 500_000, 0.6, riskLevel * 0.8, 0.7, 0},
		{"Bribe investigating officers (Layer 1)", 300_000, 0.3, riskLevel * 0.5, 0.6, 1},
	}
	if s.Budget > 1_000_000 {
		escapes = append(escapes, escapeOption{"Bribe senior officials (Layer 2)", 800_000, 0.2, riskLevel * 0.3, 0.7, 2})
	}
	if s.Budget > 2_500_000 {
		escapes = append(escapes, escapeOption{"Bribe judges and prosecutors (Layer 3)", 1_500_000, 0.1, riskLevel * 0.2, 0.8, 3})
	}
	if s.Budget > 5_000_000 {
		escapes = append(escapes, escapeOption{"Political protection network (Layer 4)", 3_000_000, 0.05, riskLevel * 0.1, 0.9, 4})
	}

	options := make([]string, len(escapes))
	for i, e := range escapes {
		label := e.name
		if e.cost > 0 {
			label += " - " + format.Currency(e.cost)
		} else {
			label += " - FREE"
		}
		options[i] = label
	}
	choice := ui.Choose("Choose your escape strategy:", options)
	chosen := escapes[choice]

	if chosen.briberyLayer > 0 {
		attemptBriberyLayer(s, ui, chosen, baseFine, riskLevel)
		return
	}
	settleLegally(s, ui, chosen, baseFine, riskLevel)
}

// attemptBriberyLayer is the illegal escape branch: the layer is the resolver
// tier, so detection multiplies the operation fine by (2 + layer), while
// success registers the bought officials as a standing blackmail liability.
func attemptBriberyLayer(s *State, ui Console, opt escapeOption, baseFine int, riskLevel float64) {
	ui.Section("ATTEMPTING BRIBERY: " + opt.name)
	ui.Printf("If this bribery is detected, penalties will be MULTIPLIED")

	if ui.Choose(fmt.Sprintf("Are you certain you want to attempt Layer %d bribery?", opt.briberyLayer),
		[]string{"Yes, proceed with bribery", "No, choose legal option"}) != 0 {
		ui.Printf("Switching to legal defense strategy")
		settleLegally(s, ui, escapeOption{
			name: "Hire top criminal defense lawyers", cost: 500_000,
			fineMultiplier: 0.6, repPenalty: riskLevel * 0.8, successChance: 0.7,
		}, baseFine, riskLevel)
		return
	}

	reduced := int(float64(baseFine) * opt.fineMultiplier)
	detected := Effect{Reputation: -riskLevel * 1.5}
	if opt.briberyLayer >= 3 {
		detected.Budget = -1_000_000
	}

	res := s.Resolve(RiskChoice{
		Label:   opt.name,
		Cost:    opt.cost,
		Success: Effect{Budget: -reduced, Reputation: -opt.repPenalty},
		Illegal: &IllegalBranch{
			DetectionRisk: 1 - opt.successChance,
			Tier:          opt.briberyLayer,
			BaseFine:      baseFine,
			Detected:      detected,
			Standing:      fmt.Sprintf("layer %d officials", opt.briberyLayer),
		},
	}, Effect{Budget: -baseFine, Reputation: -riskLevel}, nil)

	switch {
	case !res.Paid:
		ui.Printf("Insufficient funds for bribery! Forced to accept full legal consequences")
		s.CriminalConvictions++
	case res.Detected:
		ui.Printf("BRIBERY DETECTED! Enhanced criminal penalties: %s", format.Currency(res.Fine))
		if opt.briberyLayer >= 3 {
			ui.Printf("FEDERAL TASK FORCE ACTIVATED: assets frozen pending investigation")
		}
		s.CriminalConvictions++
	default:
		ui.Printf("Bribery payment: %s transferred", format.Currency(opt.cost))
		if reduced > 0 {
			ui.Printf("BRIBERY SUCCESSFUL; 'reduced' legal penalties: %s", format.Currency(reduced))
		} else {
			ui.Printf("All legal penalties eliminated through corruption")
		}
		ui.Printf("Corrupt officials now have permanent leverage over you")
	}
}

// settleLegally is the lawful escape branch: pay the defense cost, roll for
// the reduced fine, eat the full one otherwise. Either way there is now a
// criminal record.
func settleLegally(s *State, ui Console, opt escapeOption, baseFine int, riskLevel float64) {
	ui.Section("LEGAL CONSEQUENCES")

	reduced := int(float64(baseFine) * opt.fineMultiplier)
	res := s.Resolve(RiskChoice{
		Label:         opt.name,
		Cost:          opt.cost,
		SuccessChance: opt.successChance,
		Success:       Effect{Budget: -reduced, Reputation: -opt.repPenalty},
		Failure:       Effect{Budget: -baseFine, Reputation: -opt.repPenalty},
	}, Effect{Budget: -baseFine, Reputation: -riskLevel}, nil)
	s.CriminalConvictions++

	switch {
	case !res.Paid:
		ui.Printf("Cannot afford legal fees! Full criminal fine imposed: %s", format.Currency(baseFine))
	case res.Succeeded:
		if opt.cost > 0 {
			ui.Printf("Legal fees: %s paid", format.Currency(opt.cost))
		}
		ui.Printf("Legal strategy partially successful")
		ui.Printf("Criminal fine: %s; criminal record established", format.Currency(reduced))
	default:
		if opt.cost > 0 {
			ui.Printf("Legal fees: %s paid", format.Currency(opt.cost))
		}
		ui.Printf("Legal strategy failed")
		ui.Printf("Criminal fine: %s; criminal record established", format.Currency(baseFine))
	}
}

// OngoingCriminalConsequences rolls quarterly blackmail from every corrupt
// official the company has ever paid off.
func OngoingCriminalConsequences(s *State, ui Console) {
	if len(s.CorruptOfficials) == 0 || s.rng.Float64() >= 0.3 {
		return
	}

	idx := s.rng.IntN(len(s.CorruptOfficials))
	source := s.CorruptOfficials[idx]
	demand := randRange(s.rng, 100_000, 500_000)

	ui.Section("CRIMINAL BLACKMAIL")
	ui.Printf("Your corrupt contact (%s) demands payment: %s", source, format.Currency(demand))
	ui.Printf("Refusal could expose your criminal activities")

	if ui.Choose("Blackmail response:", []string{"Pay the blackmail", "Refuse and risk exposure"}) == 0 {
		revenge := Effect{Budget: -randRange(s.rng, 500_000, 1_500_000), Reputation: -0.3}
		res := s.Resolve(RiskChoice{
			Label:         "pay the blackmail",
			Cost:          demand,
			SuccessChance: 1,
		}, revenge, nil)
		if res.Paid {
			ui.Printf("Blackmail paid: %s. Your secrets remain safe... for now", format.Currency(demand))
		} else {
			ui.Printf("Cannot afford blackmail payment! Corrupt officials expose your crimes in revenge")
		}
		return
	}

	res := s.Resolve(RiskChoice{
		Label:         "refuse the blackmail",
		SuccessChance: 0.4,
		Failure:       Effect{Budget: -randRange(s.rng, 1_000_000, 3_000_000), Reputation: -0.4},
	}, Effect{}, nil)
	if res.Succeeded {
		ui.Printf("Officials decide to keep quiet for now")
		return
	}
	ui.Printf("Corrupt officials expose your criminal activities!")
	s.CorruptOfficials = append(s.CorruptOfficials[:idx], s.CorruptOfficials[idx+1:]...)
}
