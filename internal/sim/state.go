package sim

import (
	"fmt"
	"math/rand/v2"
)

type PermitStatus string

const (
	PermitPending  PermitStatus = "pending"
	PermitApproved PermitStatus = "approved"
	PermitDenied   PermitStatus = "denied"
	PermitDelayed  PermitStatus = "delayed"
)

type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

type DisasterKind string

const (
	DisasterBeetleKill DisasterKind = "beetle_kill"
	DisasterWildfire   DisasterKind = "wildfire"
	DisasterWindstorm  DisasterKind = "windstorm"
	DisasterDrought    DisasterKind = "drought"
	DisasterFlood      DisasterKind = "flood"
)

// HarvestBlock is one planned cutting unit. Permit status only moves forward:
// pending -> approved/denied/delayed. A denied block is never resubmitted; a
// replacement block is planned instead.
type HarvestBlock struct {
	ID                 string
	VolumeM3           int
	YearPlanned        int
	PermitStatus       PermitStatus
	SubmittedYear      int
	ProcessingDays     int
	AgreementObtained  bool
	HeritageCleared    bool
	OldGrowthAffected  bool
	Priority           Priority
	DisasterAffected   bool
	DisasterKind       DisasterKind
	VolumeLossFraction float64
}

// EffectiveVolume is the harvestable volume after disaster losses.
func (b *HarvestBlock) EffectiveVolume() int {
	if !b.DisasterAffected {
		return b.VolumeM3
	}
	return int(float64(b.VolumeM3) * (1 - b.VolumeLossFraction))
}

// Counterparty is a stakeholder community the company must keep consulting.
// Created once at setup and never removed.
type Counterparty struct {
	Name             string
	Relationship     float64
	TerritoryRights  bool
	ActiveNegotiation bool
	AgreementSigned  bool
	ConsultationCost int
	LastConsultYear  int
	ConsultInterval  int
}

func (c *Counterparty) NeedsConsultation(year int) bool {
	return (year - c.LastConsultYear) >= c.ConsultInterval
}

// AdjustRelationship applies a delta and clamps to [0,1].
func (c *Counterparty) AdjustRelationship(delta float64) {
	c.Relationship = clamp01(c.Relationship + delta)
}

// RelationshipText maps a relationship level to its display tier.
func RelationshipText(level float64) string {
	switch {
	case level >= 0.8:
		return "Excellent"
	case level >= 0.6:
		return "Good"
	case level >= 0.4:
		return "Neutral"
	case level >= 0.2:
		return "Strained"
	default:
		return "Poor"
	}
}

type CertificationKind string

const (
	CertStewardshipGold CertificationKind = "Stewardship Gold"
	CertBorealAlliance  CertificationKind = "Boreal Alliance"
	CertTimberTrust     CertificationKind = "TimberTrust"
)

// Certification keeps its record after deactivation so the audit history
// survives; at most one active record exists per kind.
type Certification struct {
	Kind            CertificationKind
	ObtainedYear    int
	AnnualCost      int
	RevenueBonus    float64
	ReputationBonus float64
	Active          bool
}

// State is the single mutable world aggregate. Every quarterly subsystem
// reads and writes it directly; there is no isolation between phases and the
// fixed step ordering in RunQuarter is what keeps the semantics coherent.
type State struct {
	CompanyName string
	Region      RegionID

	Year    int
	Quarter int

	Budget      int
	Reputation  float64
	PermitBonus float64

	AllowableCut    int
	CutDeclineRate  float64
	MillCapacity    int
	JobsCreated     int
	Biodiversity    float64
	Disturbance     float64
	DisturbanceCap  float64
	PermitBacklog   int

	Blocks         []*HarvestBlock
	Counterparties []*Counterparty
	Certifications []*Certification

	DeferralsExpanded bool
	ChemicalBanActive bool
	// FullHeritageAssessments reflects the founding heritage policy: when
	// true, newly planned blocks start heritage-cleared.
	FullHeritageAssessments bool

	RevenuePerM3       int
	OperatingCostPerM3 int
	TotalRevenue       int
	TotalCosts         int
	QuarterlyProfit    int

	YearsOperated         int
	ConsecutiveProfitable int
	SocialLicense         bool

	Liaison   *Liaison
	Executive *Executive

	SafetyViolations    int
	SafetyAuditDone     bool
	CorruptOfficials    []string
	CriminalConvictions int

	blockSeq int
	rng      *rand.Rand
}

// New builds the starting world for a validated config.
func New(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	region, ok := RegionByID(cfg.Region)
	if !ok {
		return nil, fmt.Errorf("region not found: %s", cfg.Region)
	}

	s := &State{
		CompanyName: cfg.CompanyName,
		Region:      region.ID,

		Year:    cfg.StartYear,
		Quarter: 1,

		Budget:      cfg.StartingBudget,
		Reputation:  0.5,
		PermitBonus: 0,

		AllowableCut:   region.AllowableCut,
		CutDeclineRate: region.CutDeclineRate,
		MillCapacity:   100_000,
		Biodiversity:   0.5,
		DisturbanceCap: region.DisturbanceCap,
		PermitBacklog:  120,

		RevenuePerM3:       85,
		OperatingCostPerM3: 45,

		SocialLicense: true,

		rng: seededRNG(cfg.Seed),
	}

	for _, tpl := range region.Counterparties {
		cp := tpl
		s.Counterparties = append(s.Counterparties, &cp)
	}
	return s, nil
}

// AdjustReputation applies a delta and clamps to [0,1].
func (s *State) AdjustReputation(delta float64) {
	s.Reputation = clamp01(s.Reputation + delta)
}

// AdjustBiodiversity applies a delta and clamps to [0,1].
func (s *State) AdjustBiodiversity(delta float64) {
	s.Biodiversity = clamp01(s.Biodiversity + delta)
}

// CanAfford reports whether cost fits in the current budget. Costs applied
// through effects are NOT capped at zero: a consequence may push the budget
// arbitrarily negative, which is how bankruptcy happens.
func (s *State) CanAfford(cost int) bool {
	return s.Budget >= cost
}

func (s *State) DisturbanceRatio() float64 {
	if s.DisturbanceCap <= 0 {
		return 0
	}
	return s.Disturbance / s.DisturbanceCap
}

func (s *State) ActiveCertifications() []*Certification {
	out := make([]*Certification, 0, len(s.Certifications))
	for _, c := range s.Certifications {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

func (s *State) ActiveCertification(kind CertificationKind) *Certification {
	for _, c := range s.Certifications {
		if c.Active && c.Kind == kind {
			return c
		}
	}
	return nil
}

func (s *State) CertificationRevenueBonus() float64 {
	total := 0.0
	for _, c := range s.ActiveCertifications() {
		total += c.RevenueBonus
	}
	return total
}

func (s *State) CertificationReputationBonus() float64 {
	total := 0.0
	for _, c := range s.ActiveCertifications() {
		total += c.ReputationBonus
	}
	return total
}

func (s *State) pendingBlocks() []*HarvestBlock {
	out := make([]*HarvestBlock, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if b.PermitStatus == PermitPending {
			out = append(out, b)
		}
	}
	return out
}

func (s *State) approvedBlocks() []*HarvestBlock {
	out := make([]*HarvestBlock, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if b.PermitStatus == PermitApproved {
			out = append(out, b)
		}
	}
	return out
}

func (s *State) removeBlock(target *HarvestBlock) {
	for i, b := range s.Blocks {
		if b == target {
			s.Blocks = append(s.Blocks[:i], s.Blocks[i+1:]...)
			return
		}
	}
}

func (s *State) nextBlockID() string {
	s.blockSeq++
	return fmt.Sprintf("%s-%dQ%d-%02d", s.Region, s.Year, s.Quarter, s.blockSeq)
}

// Advance moves the time cursor one quarter, wrapping into the next year.
// YearsOperated increments exactly once per wrap.
func (s *State) Advance() {
	s.Quarter++
	if s.Quarter > 4 {
		s.Quarter = 1
		s.Year++
		s.YearsOperated++
	}
}

var quarterNames = [5]string{"", "Q1 (Spring)", "Q2 (Summer)", "Q3 (Fall)", "Q4 (Winter)"}

// QuarterName returns a display label like "Q2 (Summer)".
func (s *State) QuarterName() string {
	if s.Quarter < 1 || s.Quarter > 4 {
		return fmt.Sprintf("Q%d", s.Quarter)
	}
	return quarterNames[s.Quarter]
}
