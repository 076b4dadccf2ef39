package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarvestBooksProfitAndRetiresBlocks(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 5)
	s.Blocks = []*HarvestBlock{
		{ID: "A", VolumeM3: 10_000, PermitStatus: PermitApproved},
		{ID: "B", VolumeM3: 5_000, PermitStatus: PermitApproved},
		{ID: "C", VolumeM3: 20_000, PermitStatus: PermitPending},
	}
	start := s.Budget

	ui := &fakeUI{}
	Harvest(s, ui)

	// 15,000 m3 at $85 revenue / $45 cost, scaled by the weather roll
	// (revenue x0.85..1.0, cost x1.0..1.15).
	assert.GreaterOrEqual(t, s.TotalRevenue, int(15_000*85*0.85)-1)
	assert.LessOrEqual(t, s.TotalRevenue, 15_000*85)
	assert.GreaterOrEqual(t, s.TotalCosts, 15_000*45-1)
	assert.LessOrEqual(t, s.TotalCosts, int(15_000*45*1.15)+1)

	assert.Equal(t, s.TotalRevenue-s.TotalCosts, s.QuarterlyProfit)
	assert.Equal(t, start+s.QuarterlyProfit, s.Budget)
	assert.Positive(t, s.QuarterlyProfit, "margin survives any weather grade")
	assert.Equal(t, 1, s.ConsecutiveProfitable)
	assert.Equal(t, 15, s.JobsCreated)

	// Harvested blocks are retired; the pending one stays.
	assert.Len(t, s.Blocks, 1)
	assert.Equal(t, "C", s.Blocks[0].ID)
}

func TestHarvestNothingApproved(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	s.Blocks = []*HarvestBlock{{ID: "P", VolumeM3: 10_000, PermitStatus: PermitPending}}
	start := s.Budget

	ui := &fakeUI{}
	Harvest(s, ui)

	assert.Equal(t, start, s.Budget)
	assert.True(t, ui.saw("No approved blocks"))
}

func TestHarvestCertificationPremium(t *testing.T) {
	base := newTestState(t, RegionSubBoreal, 9)
	base.Blocks = []*HarvestBlock{{ID: "A", VolumeM3: 10_000, PermitStatus: PermitApproved}}
	Harvest(base, &fakeUI{})

	certified := newTestState(t, RegionSubBoreal, 9)
	certified.Certifications = append(certified.Certifications,
		&Certification{Kind: CertStewardshipGold, RevenueBonus: 0.20, Active: true})
	certified.Blocks = []*HarvestBlock{{ID: "A", VolumeM3: 10_000, PermitStatus: PermitApproved}}
	Harvest(certified, &fakeUI{})

	// Same seed means the same weather roll, so the only delta is the premium.
	assert.InDelta(t, float64(base.TotalRevenue)*1.20, float64(certified.TotalRevenue), 1)
}

func TestHarvestDamagedTimberCostsMore(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 9)
	s.Blocks = []*HarvestBlock{{
		ID: "A", VolumeM3: 10_000, PermitStatus: PermitApproved,
		DisasterAffected: true, DisasterKind: DisasterBeetleKill, VolumeLossFraction: 0.4,
	}}

	clean := newTestState(t, RegionSubBoreal, 9)
	clean.Blocks = []*HarvestBlock{{ID: "A", VolumeM3: 6_000, PermitStatus: PermitApproved}}

	Harvest(s, &fakeUI{})
	Harvest(clean, &fakeUI{})

	// Both harvest 6,000 effective m3 on the same weather roll, but damaged
	// timber carries the handling surcharge.
	assert.Equal(t, clean.TotalRevenue, s.TotalRevenue)
	assert.Greater(t, s.TotalCosts, clean.TotalCosts)
}

func TestHarvestFinancialsExact(t *testing.T) {
	// 10,000 m3 at $85/$45 under good weather: the canonical
	// 850k revenue / 450k cost / 400k profit quarter.
	rev, cst := harvestFinancials(10_000, 85, 45, 0, 0, weatherGood)
	assert.Equal(t, 850_000, rev)
	assert.Equal(t, 450_000, cst)
	assert.Equal(t, 400_000, rev-cst)

	// Bad weather scales both sides (truncation may shave a dollar).
	rev, cst = harvestFinancials(10_000, 85, 45, 0, 0, weatherPoor)
	assert.InDelta(t, 807_500, rev, 1)
	assert.InDelta(t, 472_500, cst, 1)

	rev, cst = harvestFinancials(10_000, 85, 45, 0, 0, weatherSevere)
	assert.InDelta(t, 722_500, rev, 1)
	assert.InDelta(t, 517_500, cst, 1)

	// The certification premium and damage surcharge stack on the base.
	rev, cst = harvestFinancials(10_000, 85, 45, 0.20, 0.4, weatherGood)
	assert.InDelta(t, 1_020_000, rev, 1)
	assert.InDelta(t, 540_000, cst, 1)
}

func TestMarketDriftBounded(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 11)
	for i := 0; i < 40; i++ {
		old := s.RevenuePerM3
		MarketDrift(s, &fakeUI{})
		low := int(float64(old) * (1 - marketDriftRange))
		high := int(float64(old) * (1 + marketDriftRange))
		if s.RevenuePerM3 < low || s.RevenuePerM3 > high {
			t.Fatalf("drift out of bounds: %d -> %d", old, s.RevenuePerM3)
		}
	}
}
