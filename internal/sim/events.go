package sim

import (
	"math/rand/v2"

	"github.com/appengine-ltd/timberline/internal/format"
)

const (
	courtRulingConsultBump = 15_000
	salvageStumpagePerM3   = 15
	salvageRecoveryRate    = 0.7
	salvagePriceRate       = 0.6
)

// PolicyEvents rolls the annual regulatory roulette. One-shot events
// (deferral expansion, the chemical ban) never repeat once landed.
func PolicyEvents(s *State, ui Console) {
	ui.Section("POLICY & REGULATORY UPDATES")
	roll := s.rng.Float64()

	switch {
	case roll < 0.15 && !s.DeferralsExpanded:
		ui.Printf("GOVERNMENT ANNOUNCEMENT: Additional old-growth deferrals implemented")
		s.DeferralsExpanded = true
		for _, b := range s.Blocks {
			if b.OldGrowthAffected && b.PermitStatus != PermitApproved {
				ui.Printf("  Block %s cancelled due to old-growth deferral", b.ID)
				s.removeBlock(b)
			}
		}
		s.AdjustReputation(0.1)

	case roll < 0.2 && !s.ChemicalBanActive:
		ui.Printf("POLICY CHANGE: Province phases out chemical vegetation control")
		s.ChemicalBanActive = true
		s.AdjustReputation(0.15)

	case roll < 0.3:
		ui.Printf("WILDFIRE SEASON: Major fires affect timber supply")
		s.PermitBacklog = max(25, s.PermitBacklog-30)
		old := s.AllowableCut
		s.AllowableCut = int(float64(s.AllowableCut) * 0.95)
		ui.Printf("  Salvage permits fast-tracked; allowable cut reduced %s -> %s",
			format.Volume(old), format.Volume(s.AllowableCut))

	case roll < 0.4:
		ui.Printf("MEDIA SPOTLIGHT: forestry practices under public scrutiny")
		if s.Reputation < 0.5 {
			ui.Printf("  Negative coverage damages company reputation")
			s.AdjustReputation(-0.2)
			s.SocialLicense = false
		} else {
			ui.Printf("  Positive coverage highlights sustainable practices")
			s.AdjustReputation(0.1)
		}

	case roll < 0.5:
		ui.Printf("COURT RULING: landmark land rights case raises consultation standards")
		for _, cp := range s.Counterparties {
			if cp.TerritoryRights && !cp.AgreementSigned {
				cp.ConsultationCost += courtRulingConsultBump
				ui.Printf("  %s requires enhanced consultation process", cp.Name)
			}
		}

	default:
		ui.Printf("No major policy changes this year.")
	}
}

// HarvestDisasters rolls natural events against the approved blocks before
// cutting begins. Beetle outbreaks additionally trigger the sanitation
// salvage offer.
func HarvestDisasters(s *State, ui Console) {
	approved := s.approvedBlocks()
	if len(approved) == 0 {
		return
	}

	ui.Section("NATURAL EVENTS DURING HARVEST")
	roll := s.rng.Float64()

	switch {
	case roll < 0.08:
		ui.Printf("MOUNTAIN PINE BEETLE OUTBREAK detected in harvest areas")
		for _, b := range sampleBlocks(s.rng, approved, 2) {
			s.markDisaster(b, DisasterBeetleKill, randFloatRange(s.rng, 0.2, 0.6))
			ui.Printf("  Block %s: %.0f%% volume loss to beetle kill", b.ID, b.VolumeLossFraction*100)
		}
		offerSanitationHarvest(s, ui, approved)

	case roll < 0.12:
		ui.Printf("SEVERE WINDSTORM damages standing timber")
		for _, b := range sampleBlocks(s.rng, approved, 1) {
			s.markDisaster(b, DisasterWindstorm, randFloatRange(s.rng, 0.1, 0.3))
			ui.Printf("  Block %s: %.0f%% volume loss to windthrow", b.ID, b.VolumeLossFraction*100)
		}

	case roll < 0.15:
		ui.Printf("SEVERE DROUGHT restricts harvesting operations")
		for _, b := range approved {
			s.markDisaster(b, DisasterDrought, randFloatRange(s.rng, 0.05, 0.15))
		}
		ui.Printf("  Fire restrictions limit operating windows across all blocks")

	case roll < 0.17:
		ui.Printf("SPRING FLOODING delays road access")
		for _, b := range sampleBlocks(s.rng, approved, 1) {
			s.markDisaster(b, DisasterFlood, randFloatRange(s.rng, 0.15, 0.25))
			ui.Printf("  Block %s: %.0f%% volume loss due to access delays", b.ID, b.VolumeLossFraction*100)
		}

	default:
		ui.Printf("No major natural disasters this harvest season.")
	}
}

func (s *State) markDisaster(b *HarvestBlock, kind DisasterKind, loss float64) {
	b.DisasterAffected = true
	b.DisasterKind = kind
	b.VolumeLossFraction = loss
}

// sampleBlocks picks up to n distinct blocks.
func sampleBlocks(rng *rand.Rand, blocks []*HarvestBlock, n int) []*HarvestBlock {
	if n >= len(blocks) {
		return blocks
	}
	picked := make([]*HarvestBlock, 0, n)
	used := make(map[int]bool, n)
	for len(picked) < n {
		i := rng.IntN(len(blocks))
		if used[i] {
			continue
		}
		used[i] = true
		picked = append(picked, blocks[i])
	}
	return picked
}

// offerSanitationHarvest presents the emergency salvage program for
// beetle-killed stands: pre-approved blocks at reduced stumpage, immediate
// partial revenue, and a reputation credit for acting on forest health.
func offerSanitationHarvest(s *State, ui Console, approved []*HarvestBlock) {
	var beetle []*HarvestBlock
	totalVolume := 0
	for _, b := range approved {
		if b.DisasterAffected && b.DisasterKind == DisasterBeetleKill {
			beetle = append(beetle, b)
			totalVolume += b.VolumeM3
		}
	}
	if len(beetle) == 0 {
		return
	}

	recoverable := int(float64(totalVolume) * salvageRecoveryRate)
	stumpage := recoverable * salvageStumpagePerM3
	expectedRevenue := int(float64(recoverable*s.RevenuePerM3) * salvagePriceRate)

	ui.Section("SANITATION HARVESTING OPPORTUNITY")
	ui.Printf("Beetle outbreak qualifies for emergency sanitation permits")
	ui.Printf("  Affected blocks: %d, recoverable volume: %s", len(beetle), format.Volume(recoverable))
	ui.Printf("  Reduced stumpage cost: %s", format.Currency(stumpage))
	ui.Printf("  Expected revenue: %s (60%% of normal price)", format.Currency(expectedRevenue))

	choice := ui.Choose("Sanitation harvesting decision:", []string{
		"Apply for emergency sanitation permits (" + format.Currency(stumpage) + ")",
		"Let beetle wood deteriorate (no action)",
		"Wait for normal permit process (risk wood degradation)",
	})

	switch choice {
	case 0:
		if !s.CanAfford(stumpage) {
			ui.Printf("Insufficient budget for sanitation permits! Need %s, have %s",
				format.Currency(stumpage), format.Currency(s.Budget))
			return
		}
		s.Budget -= stumpage
		for _, b := range beetle {
			salvage := &HarvestBlock{
				ID:               "SANITATION-" + b.ID,
				VolumeM3:         int(float64(b.VolumeM3) * salvageRecoveryRate),
				YearPlanned:      s.Year,
				PermitStatus:     PermitApproved,
				DisasterAffected: true,
				DisasterKind:     DisasterBeetleKill,
			}
			s.Blocks = append(s.Blocks, salvage)
			ui.Printf("  Sanitation block created: %s (%s)", salvage.ID, format.Volume(salvage.VolumeM3))
		}
		immediate := int(float64(expectedRevenue) * 0.8)
		s.Budget += immediate
		s.TotalRevenue += immediate
		s.AdjustReputation(0.1)
		ui.Printf("  Immediate salvage revenue: %s", format.Currency(immediate))

	case 1:
		ui.Printf("Beetle wood left to deteriorate; dead wood habitat benefits wildlife.")
		s.AdjustBiodiversity(0.02)

	default:
		ui.Printf("Waiting for standard permits; beetle wood quality deteriorates.")
		for _, b := range beetle {
			b.VolumeLossFraction += 0.05
		}
	}
}

// ForestHealthCheck applies the slow-burn consequences of accumulated
// disaster damage: accelerating cut decline and biodiversity loss.
func ForestHealthCheck(s *State, ui Console) {
	ui.Section("FOREST HEALTH ASSESSMENT")

	beetleCount := 0
	disasterCount := 0
	for _, b := range s.Blocks {
		if !b.DisasterAffected {
			continue
		}
		disasterCount++
		if b.DisasterKind == DisasterBeetleKill {
			beetleCount++
		}
	}

	if beetleCount >= 3 {
		ui.Printf("FOREST HEALTH ALERT: widespread beetle kill detected")
		s.CutDeclineRate += 0.01
	}
	if disasterCount > 0 {
		impact := float64(disasterCount) * 0.02
		s.AdjustBiodiversity(-impact)
		ui.Printf("Biodiversity score adjusted: -%.2f", impact)
	}

	switch {
	case s.Biodiversity > 0.6:
		ui.Printf("Current forest health: Good")
	case s.Biodiversity > 0.3:
		ui.Printf("Current forest health: Fair")
	default:
		ui.Printf("Current forest health: Poor")
	}
}
