package sim

import (
	"github.com/appengine-ltd/timberline/internal/format"
)

const (
	jobsPerThousandM3 = 1
	marketDriftRange  = 0.15
	marketReportFloor = 0.05
)

type weatherGrade string

const (
	weatherSevere weatherGrade = "severe"
	weatherPoor   weatherGrade = "poor"
	weatherGood   weatherGrade = "good"
)

func (s *State) rollWeather() weatherGrade {
	roll := s.rng.Float64()
	switch {
	case roll < 0.1:
		return weatherSevere
	case roll < 0.25:
		return weatherPoor
	default:
		return weatherGood
	}
}

// Harvest cuts every approved block, books revenue and operating cost, and
// retires the blocks. Disaster-hit blocks yield less and cost more to work.
func Harvest(s *State, ui Console) {
	approved := s.approvedBlocks()
	if len(approved) == 0 {
		ui.Printf("No approved blocks ready for harvest.")
		return
	}

	ui.Section("HARVEST OPERATIONS")

	totalVolume := 0
	disasterVolume := 0
	lossWeighted := 0.0
	for _, b := range approved {
		v := b.EffectiveVolume()
		totalVolume += v
		if b.DisasterAffected {
			disasterVolume += v
			lossWeighted += b.VolumeLossFraction * float64(v)
		}
	}

	avgLoss := 0.0
	if disasterVolume > 0 {
		avgLoss = lossWeighted / float64(disasterVolume)
		ui.Printf("Damaged timber adds handling cost (avg loss %.0f%%)", avgLoss*100)
	}

	weather := s.rollWeather()
	switch weather {
	case weatherSevere:
		ui.Printf("Severe weather slowed operations this quarter.")
	case weatherPoor:
		ui.Printf("Poor weather hampered hauling.")
	default:
		ui.Printf("Good operating conditions all quarter.")
	}

	rev, cst := harvestFinancials(totalVolume, s.RevenuePerM3, s.OperatingCostPerM3,
		s.CertificationRevenueBonus(), avgLoss, weather)
	profit := rev - cst

	s.Budget += profit
	s.TotalRevenue += rev
	s.TotalCosts += cst
	s.QuarterlyProfit = profit
	s.JobsCreated += totalVolume / 1_000 * jobsPerThousandM3

	if profit > 0 {
		s.ConsecutiveProfitable++
	} else {
		s.ConsecutiveProfitable = 0
	}

	for _, b := range approved {
		s.removeBlock(b)
	}

	ui.Printf("Harvested %s across %d blocks", format.Volume(totalVolume), len(approved))
	ui.Printf("Revenue: %s  Operating cost: %s", format.Currency(rev), format.Currency(cst))
	ui.Printf("Quarterly profit: %s", format.Currency(profit))
}

// harvestFinancials prices one quarter's cut. Damaged timber surcharges the
// cost before the weather scaling; good weather applies no scaling at all.
func harvestFinancials(volume, revenuePerM3, costPerM3 int, certBonus, avgLoss float64, weather weatherGrade) (revenue, cost int) {
	rev := float64(volume*revenuePerM3) * (1 + certBonus)
	cst := float64(volume * costPerM3)
	if avgLoss > 0 {
		cst *= 1 + avgLoss*0.5
	}
	switch weather {
	case weatherSevere:
		rev *= 0.85
		cst *= 1.15
	case weatherPoor:
		rev *= 0.95
		cst *= 1.05
	}
	return int(rev), int(cst)
}

// MarketDrift rerolls the timber price once a year. Small moves are applied
// silently; only swings past the reporting floor get announced.
func MarketDrift(s *State, ui Console) {
	drift := randFloatRange(s.rng, -marketDriftRange, marketDriftRange)
	old := s.RevenuePerM3
	s.RevenuePerM3 = int(float64(s.RevenuePerM3) * (1 + drift))

	if drift > marketReportFloor {
		ui.Printf("Timber markets rallied: price %s/m³ -> %s/m³", format.Currency(old), format.Currency(s.RevenuePerM3))
	} else if drift < -marketReportFloor {
		ui.Printf("Timber markets softened: price %s/m³ -> %s/m³", format.Currency(old), format.Currency(s.RevenuePerM3))
	}
}
