package sim

import (
	"math"
	"testing"
)

func TestForestHealthCheckBeetleThreshold(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	baseDecline := s.CutDeclineRate
	s.Blocks = []*HarvestBlock{
		{ID: "A", DisasterAffected: true, DisasterKind: DisasterBeetleKill},
		{ID: "B", DisasterAffected: true, DisasterKind: DisasterBeetleKill},
		{ID: "C", DisasterAffected: true, DisasterKind: DisasterWindstorm},
	}

	ForestHealthCheck(s, &fakeUI{})
	if s.CutDeclineRate != baseDecline {
		t.Fatal("two beetle blocks must not accelerate decline")
	}
	if s.Biodiversity != clamp01(0.5-3*0.02) {
		t.Fatalf("biodiversity = %.2f, want 0.44", s.Biodiversity)
	}

	s.Blocks = append(s.Blocks, &HarvestBlock{ID: "D", DisasterAffected: true, DisasterKind: DisasterBeetleKill})
	ForestHealthCheck(s, &fakeUI{})
	if s.CutDeclineRate != baseDecline+0.01 {
		t.Fatalf("decline rate = %.3f, want %.3f", s.CutDeclineRate, baseDecline+0.01)
	}
}

func TestSampleBlocksDistinct(t *testing.T) {
	rng := seededRNG(1)
	blocks := []*HarvestBlock{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}

	picked := sampleBlocks(rng, blocks, 2)
	if len(picked) != 2 {
		t.Fatalf("picked %d blocks", len(picked))
	}
	if picked[0] == picked[1] {
		t.Fatal("sample must be distinct")
	}

	all := sampleBlocks(rng, blocks, 10)
	if len(all) != len(blocks) {
		t.Fatal("oversized sample returns every block")
	}
}

func TestSanitationHarvestSalvage(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	approved := []*HarvestBlock{
		{ID: "K1", VolumeM3: 10_000, PermitStatus: PermitApproved,
			DisasterAffected: true, DisasterKind: DisasterBeetleKill},
		{ID: "K2", VolumeM3: 10_000, PermitStatus: PermitApproved},
	}
	s.Blocks = append(s.Blocks, approved...)
	start := s.Budget

	ui := &fakeUI{choices: []int{0}} // apply for sanitation permits
	offerSanitationHarvest(s, ui, approved)

	recoverable := 7_000
	stumpage := recoverable * salvageStumpagePerM3
	immediate := int(float64(int(float64(recoverable*s.RevenuePerM3)*salvagePriceRate)) * 0.8)
	if s.Budget != start-stumpage+immediate {
		t.Fatalf("budget = %d, want stumpage out and salvage revenue in", s.Budget)
	}

	var salvage *HarvestBlock
	for _, b := range s.Blocks {
		if b.ID == "SANITATION-K1" {
			salvage = b
		}
	}
	if salvage == nil {
		t.Fatal("sanitation block not created")
	}
	if salvage.PermitStatus != PermitApproved {
		t.Fatal("sanitation blocks skip the permit queue")
	}
	if salvage.VolumeM3 != 7_000 {
		t.Fatalf("sanitation volume = %d, want 70%% of source", salvage.VolumeM3)
	}
}

func TestSanitationHarvestWaitDegradesWood(t *testing.T) {
	s := newTestState(t, RegionSubBoreal, 1)
	beetle := &HarvestBlock{ID: "K1", VolumeM3: 10_000, PermitStatus: PermitApproved,
		DisasterAffected: true, DisasterKind: DisasterBeetleKill, VolumeLossFraction: 0.3}
	s.Blocks = append(s.Blocks, beetle)

	ui := &fakeUI{choices: []int{2}} // wait for normal permits
	offerSanitationHarvest(s, ui, []*HarvestBlock{beetle})

	if math.Abs(beetle.VolumeLossFraction-0.35) > 1e-9 {
		t.Fatalf("loss fraction = %.2f, want 0.35", beetle.VolumeLossFraction)
	}
}
