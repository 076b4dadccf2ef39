package sim

type RegionID string

const (
	RegionSubBoreal  RegionID = "SBS"
	RegionDouglasFir RegionID = "IDF"
	RegionMontane    RegionID = "MS"
)

// Region fixes the starting envelope for a run: the allowable cut and its
// decline rate, the disturbance cap, and the communities holding rights in
// the operating area.
type Region struct {
	ID             RegionID
	Name           string
	Summary        string
	AllowableCut   int
	CutDeclineRate float64
	DisturbanceCap float64
	Counterparties []Counterparty
}

func BuiltInRegions() []Region {
	return []Region{
		{
			ID:             RegionSubBoreal,
			Name:           "Sub-Boreal Spruce",
			Summary:        "High allowable cut, declining fast due to beetle kill",
			AllowableCut:   200_000,
			CutDeclineRate: 0.05,
			DisturbanceCap: 50_000,
			Counterparties: []Counterparty{
				{Name: "Stuart River Nation", Relationship: 0.6, ConsultationCost: 8_000, ConsultInterval: 2},
				{Name: "Takomi Nation", Relationship: 0.4, ConsultationCost: 8_000, ConsultInterval: 2},
			},
		},
		{
			ID:             RegionDouglasFir,
			Name:           "Interior Douglas-fir",
			Summary:        "Moderate allowable cut, wildfire risk",
			AllowableCut:   120_000,
			CutDeclineRate: 0.025,
			DisturbanceCap: 50_000,
			Counterparties: []Counterparty{
				{Name: "South Thompson Nation", Relationship: 0.5, TerritoryRights: true, ConsultationCost: 8_000, ConsultInterval: 2},
				{Name: "Painted Hills Nation", Relationship: 0.3, TerritoryRights: true, ConsultationCost: 8_000, ConsultInterval: 2},
			},
		},
		{
			ID:             RegionMontane,
			Name:           "Montane Spruce",
			Summary:        "Lower allowable cut, complex territorial rights",
			AllowableCut:   80_000,
			CutDeclineRate: 0.02,
			DisturbanceCap: 30_000,
			Counterparties: []Counterparty{
				{Name: "Peace River Treaty Nation", Relationship: 0.3, TerritoryRights: true, ConsultationCost: 8_000, ConsultInterval: 2},
				{Name: "Cassiar Nation", Relationship: 0.4, ConsultationCost: 8_000, ConsultInterval: 2},
			},
		},
	}
}

func RegionByID(id RegionID) (Region, bool) {
	for _, r := range BuiltInRegions() {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}
