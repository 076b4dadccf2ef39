package sim

import (
	"github.com/appengine-ltd/timberline/internal/format"
)

const (
	maxBlocksPerPlan   = 20
	minBlockVolume     = 5_000
	disturbancePerUnit = 0.01
)

type blockSize int

const (
	sizeTiny blockSize = iota
	sizeSmall
	sizeMedium
	sizeLarge
	sizeMassive
)

var blockSizeRanges = map[blockSize][2]int{
	sizeTiny:    {3_000, 12_000},
	sizeSmall:   {12_000, 25_000},
	sizeMedium:  {25_000, 45_000},
	sizeLarge:   {45_000, 80_000},
	sizeMassive: {80_000, 150_000},
}

// sizeBand returns the weighted size mix for the volume still to be planned.
// Small remainders force small blocks so the plan converges.
func sizeBand(remaining int) []weighted[blockSize] {
	switch {
	case remaining < 12_000:
		return []weighted[blockSize]{{sizeTiny, 100}}
	case remaining < 25_000:
		return []weighted[blockSize]{{sizeTiny, 30}, {sizeSmall, 70}}
	case remaining < 45_000:
		return []weighted[blockSize]{{sizeTiny, 10}, {sizeSmall, 40}, {sizeMedium, 50}}
	case remaining < 80_000:
		return []weighted[blockSize]{{sizeSmall, 20}, {sizeMedium, 50}, {sizeLarge, 30}}
	default:
		return []weighted[blockSize]{{sizeMedium, 30}, {sizeLarge, 50}, {sizeMassive, 20}}
	}
}

// PlanHarvest builds the quarter's cutting plan: pick an intensity against
// the allowable cut, then carve the target volume into randomly sized blocks.
// Bigger blocks skew toward higher priority and old-growth overlap.
func PlanHarvest(s *State, ui Console) {
	available := min(s.AllowableCut, s.MillCapacity)

	ui.Section("HARVEST PLANNING")
	ui.Printf("Annual allowable cut: %s", format.Volume(s.AllowableCut))
	ui.Printf("Mill capacity: %s", format.Volume(s.MillCapacity))
	ui.Printf("Available to plan: %s", format.Volume(available))

	choice := ui.Choose("Choose harvest intensity:", []string{
		"Conservative (60% of available)",
		"Moderate (80% of available)",
		"Aggressive (100% of available)",
		"Skip planning this year",
	})

	var target int
	switch choice {
	case 0:
		target = int(float64(available) * 0.6)
	case 1:
		target = int(float64(available) * 0.8)
	case 2:
		target = available
	default:
		ui.Printf("No harvest planned this year.")
		return
	}

	blocks := s.carveBlocks(target)
	planned := 0
	for _, b := range blocks {
		planned += b.VolumeM3
	}
	s.Blocks = append(s.Blocks, blocks...)
	s.Disturbance += float64(planned) * disturbancePerUnit

	ui.Printf("Planned %d blocks totalling %s:", len(blocks), format.Volume(planned))
	for _, b := range blocks {
		ui.Printf("  %s: %s - Priority: %s%s", b.ID, format.Volume(b.VolumeM3), b.Priority, oldGrowthTag(b))
	}
}

func oldGrowthTag(b *HarvestBlock) string {
	if b.OldGrowthAffected {
		return " [old-growth overlap]"
	}
	return ""
}

func (s *State) carveBlocks(target int) []*HarvestBlock {
	allSigned := len(s.Counterparties) > 0
	for _, cp := range s.Counterparties {
		if !cp.AgreementSigned {
			allSigned = false
			break
		}
	}

	var blocks []*HarvestBlock
	remaining := target
	for remaining > 0 && len(blocks) < maxBlocksPerPlan {
		var volume int
		if remaining < minBlockVolume {
			volume = remaining
		} else {
			size := weightedChoice(s.rng, sizeBand(remaining))
			r := blockSizeRanges[size]
			volume = min(randRange(s.rng, r[0], r[1]), remaining)
		}

		b := &HarvestBlock{
			ID:                s.nextBlockID(),
			VolumeM3:          volume,
			YearPlanned:       s.Year,
			PermitStatus:      PermitPending,
			AgreementObtained: allSigned,
			HeritageCleared:   s.FullHeritageAssessments,
		}
		b.Priority, b.OldGrowthAffected = s.rollBlockProfile(volume)
		blocks = append(blocks, b)
		remaining -= volume
	}
	return blocks
}

// rollBlockProfile scales priority and old-growth exposure with block size.
func (s *State) rollBlockProfile(volume int) (Priority, bool) {
	var priority Priority
	var oldGrowthChance float64
	switch {
	case volume >= 80_000:
		priority = PriorityHigh
		oldGrowthChance = 0.8
	case volume >= 45_000:
		priority = Priority(randRange(s.rng, int(PriorityMedium), int(PriorityHigh)))
		oldGrowthChance = 0.5
	case volume >= 25_000:
		priority = Priority(randRange(s.rng, int(PriorityLow), int(PriorityHigh)))
		oldGrowthChance = 0.3
	default:
		priority = Priority(randRange(s.rng, int(PriorityLow), int(PriorityMedium)))
		oldGrowthChance = 0.1
	}
	return priority, s.rng.Float64() < oldGrowthChance
}
