package sim

import (
	"strings"

	"github.com/appengine-ltd/timberline/internal/format"
)

const (
	permitBaseFee        = 5_000
	permitComplexFee     = 10_000
	permitDenialRepCost  = 0.05
	daysPerQuarter       = 90
	oldGrowthReviewDays  = 60
	heritageReviewDays   = 30
	agreementReviewDays  = 90
	disasterReviewDays   = 20
	highPriorityFactor   = 0.8
	lowPriorityFactor    = 1.2
	certApprovalBonusCap = 0.2
)

// permitRiskScore mirrors the reviewer's screening weights: missing
// consultation is the heaviest factor, damaged timber the lightest.
func permitRiskScore(b *HarvestBlock) int {
	score := 0
	if b.OldGrowthAffected {
		score += 3
	}
	if !b.HeritageCleared {
		score += 2
	}
	if !b.AgreementObtained {
		score += 4
	}
	if b.DisasterAffected {
		score++
	}
	return score
}

func permitRiskLabel(score int) string {
	switch {
	case score <= 2:
		return "LOW"
	case score <= 5:
		return "MEDIUM"
	default:
		return "HIGH"
	}
}

func blockRiskFactors(b *HarvestBlock) string {
	factors := make([]string, 0, 4)
	if b.OldGrowthAffected {
		factors = append(factors, "old-growth concerns")
	}
	if !b.HeritageCleared {
		factors = append(factors, "heritage assessment needed")
	}
	if !b.AgreementObtained {
		factors = append(factors, "consultation required")
	}
	if b.DisasterAffected {
		factors = append(factors, string(b.DisasterKind)+" damage")
	}
	if len(factors) == 0 {
		return ""
	}
	return " (" + strings.Join(factors, ", ") + ")"
}

// SubmitPermits runs the selective submission flow: pick a strategy, charge
// the batch fee, stamp submission year and processing threshold on each block.
// Insufficient budget aborts the whole batch with nothing charged.
func SubmitPermits(s *State, ui Console) {
	candidates := s.pendingUnsubmitted()
	if len(candidates) == 0 {
		ui.Printf("No blocks requiring permits.")
		return
	}

	ui.Section("SELECTIVE PERMIT SUBMISSION")
	ui.Printf("Current government backlog: %d days average", s.PermitBacklog)
	for i, b := range candidates {
		score := permitRiskScore(b)
		ui.Printf("  %d. %s: %s - Priority: %s - Risk: %s%s",
			i+1, b.ID, format.Volume(b.VolumeM3), b.Priority, permitRiskLabel(score), blockRiskFactors(b))
	}

	choice := ui.Choose("Choose permit submission strategy:", []string{
		"Submit all blocks",
		"Submit high priority blocks only",
		"Submit low-risk blocks only",
		"Custom selection",
		"Skip permit submissions this quarter",
	})

	var batch []*HarvestBlock
	switch choice {
	case 0:
		batch = candidates
	case 1:
		for _, b := range candidates {
			if b.Priority >= PriorityHigh {
				batch = append(batch, b)
			}
		}
		if len(batch) == 0 {
			ui.Printf("No high priority blocks available.")
			return
		}
	case 2:
		for _, b := range candidates {
			if permitRiskScore(b) <= 2 {
				batch = append(batch, b)
			}
		}
		if len(batch) == 0 {
			ui.Printf("No low-risk blocks available.")
			return
		}
	case 3:
		labels := make([]string, len(candidates))
		for i, b := range candidates {
			labels[i] = b.ID
		}
		for _, idx := range ui.MultiSelect("Select blocks to submit:", labels) {
			batch = append(batch, candidates[idx])
		}
		if len(batch) == 0 {
			ui.Printf("No blocks selected for submission.")
			return
		}
	default:
		ui.Printf("Skipping permit submissions this quarter.")
		return
	}

	total := permitBatchCost(batch)
	totalVolume := 0
	for _, b := range batch {
		totalVolume += b.VolumeM3
	}
	ui.Printf("Blocks selected: %d, total volume %s", len(batch), format.Volume(totalVolume))
	ui.Printf("Total application cost: %s", format.Currency(total))

	if !s.CanAfford(total) {
		ui.Printf("Insufficient budget! Need %s, have %s", format.Currency(total), format.Currency(s.Budget))
		return
	}
	if ui.Choose("Proceed with submission?", []string{"Yes", "No"}) != 0 {
		return
	}

	s.Budget -= total
	for _, b := range batch {
		b.SubmittedYear = s.Year
		b.ProcessingDays = s.processingEstimate(b)
		ui.Printf("Submitted %s - estimated processing: %d days", b.ID, b.ProcessingDays)
	}
	ui.Printf("Budget remaining: %s", format.Currency(s.Budget))
}

func permitBatchCost(batch []*HarvestBlock) int {
	total := len(batch) * permitBaseFee
	for _, b := range batch {
		if !b.AgreementObtained || b.OldGrowthAffected {
			total += permitComplexFee
		}
	}
	return total
}

func (s *State) processingEstimate(b *HarvestBlock) int {
	days := s.PermitBacklog
	if b.OldGrowthAffected {
		days += oldGrowthReviewDays
	}
	if !b.HeritageCleared {
		days += heritageReviewDays
	}
	if !b.AgreementObtained {
		days += agreementReviewDays
	}
	if b.DisasterAffected {
		days += disasterReviewDays
	}
	switch {
	case b.Priority >= PriorityHigh:
		days = int(float64(days) * highPriorityFactor)
	case b.Priority == PriorityLow:
		days = int(float64(days) * lowPriorityFactor)
	}
	return days + randRange(s.rng, -30, 60)
}

func (s *State) pendingUnsubmitted() []*HarvestBlock {
	out := make([]*HarvestBlock, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if b.PermitStatus == PermitPending && b.SubmittedYear == 0 {
			out = append(out, b)
		}
	}
	return out
}

func (s *State) submittedPending() []*HarvestBlock {
	out := make([]*HarvestBlock, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if b.PermitStatus == PermitPending && b.SubmittedYear > 0 {
			out = append(out, b)
		}
	}
	return out
}

func (s *State) elapsedProcessingDays(b *HarvestBlock) int {
	yearsElapsed := s.Year - b.SubmittedYear
	quartersElapsed := yearsElapsed*4 + (s.Quarter - 1)
	return quartersElapsed * daysPerQuarter
}

// ApprovalChance computes the permit approval probability for a block that
// has finished processing. Clamped here, at the point of use.
func (s *State) ApprovalChance(b *HarvestBlock) float64 {
	chance := 0.7 + s.PermitBonus + (s.Reputation-0.5)*0.3

	certBonus := float64(len(s.ActiveCertifications())) * 0.1
	if certBonus > certApprovalBonusCap {
		certBonus = certApprovalBonusCap
	}
	chance += certBonus

	if b.DisasterAffected {
		chance += 0.1 // salvage permits are easier to get
	}
	if b.OldGrowthAffected && s.DeferralsExpanded {
		chance -= 0.4
	}
	if !b.AgreementObtained {
		chance -= 0.3
	}
	if s.Disturbance > s.DisturbanceCap {
		chance -= 0.5
	}
	return clamp01(chance)
}

// ResolvePermits checks every submitted pending block against its elapsed
// processing time and rolls approval for the ones that are due. Terminal
// blocks are never re-evaluated.
func ResolvePermits(s *State, ui Console) {
	pending := s.submittedPending()
	if len(pending) == 0 {
		return
	}

	ui.Section("PERMIT DECISIONS")
	decided := false
	for _, b := range pending {
		elapsed := s.elapsedProcessingDays(b)
		if elapsed < b.ProcessingDays {
			continue
		}
		decided = true

		if s.rng.Float64() < s.ApprovalChance(b) {
			b.PermitStatus = PermitApproved
			ui.Printf("PERMIT APPROVED: %s (%s) - ready for harvest", b.ID, format.Volume(b.VolumeM3))
			continue
		}
		b.PermitStatus = PermitDenied
		s.AdjustReputation(-permitDenialRepCost)
		ui.Printf("PERMIT DENIED: %s (%s)", b.ID, format.Volume(b.VolumeM3))
		ui.Printf("  Reason: %s", s.denialReason(b))
		ui.Printf("  Reputation impact: -%.2f", permitDenialRepCost)
	}

	if !decided {
		ui.Printf("No permit decisions ready this quarter.")
		for _, b := range pending {
			elapsed := s.elapsedProcessingDays(b)
			progress := 100.0
			if b.ProcessingDays > 0 {
				progress = min(100, float64(elapsed)/float64(b.ProcessingDays)*100)
			}
			ui.Printf("  %s: %.0f%% processed (%d/%d days)", b.ID, progress, elapsed, b.ProcessingDays)
		}
	}
}

// denialReason picks the single most relevant reason in fixed priority order.
func (s *State) denialReason(b *HarvestBlock) string {
	switch {
	case b.OldGrowthAffected && s.DeferralsExpanded:
		return "old-growth deferral conflict"
	case !b.AgreementObtained:
		return "inadequate consultation with rights holders"
	case s.Disturbance > s.DisturbanceCap:
		return "exceeds cumulative disturbance limits"
	case !b.HeritageCleared:
		return "incomplete heritage assessment"
	default:
		return "insufficient environmental mitigation measures"
	}
}
