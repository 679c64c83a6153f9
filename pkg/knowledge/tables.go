package knowledge

// Crop identifiers used across the engine. Rotation candidates only ever
// contain crops from the context's available set, which is built from these.
const (
	Corn    = "corn"
	Soybean = "soybean"
	Wheat   = "wheat"
	Oats    = "oats"
	Alfalfa = "alfalfa"
	Barley  = "barley"
)

// CropTraits carries the rotation compatibility lists plus descriptive
// metadata used only for narrative output.
type CropTraits struct {
	GoodNext        []string
	AvoidNext       []string // every crop lists itself: no back-to-back monocropping
	NitrogenDemand  string   // high|moderate|low
	PestPressure    []string
	DiseasePressure []string
}

// CropBenefits holds the six per-crop benefit coefficients on a 0-10 scale.
type CropBenefits struct {
	NitrogenFixation  float64
	SoilOrganicMatter float64
	ErosionControl    float64
	PestManagement    float64
	WeedSuppression   float64
	EconomicValue     float64
}

// Tables bundles the two read-only knowledge tables. A Tables value is built
// once (Default, optionally overridden by LoadFromFiles) and then shared;
// nothing mutates it after construction, so concurrent optimization runs can
// use the same value.
type Tables struct {
	traits   map[string]CropTraits
	benefits map[string]CropBenefits
}

// Traits returns the compatibility record for crop, or a zero value when the
// crop is unknown. Unknown crops never fail a lookup.
func (t Tables) Traits(crop string) CropTraits {
	return t.traits[crop]
}

// Benefits returns the benefit coefficients for crop, or all zeros when the
// crop is unknown, so an unrecognized crop contributes nothing to a score.
func (t Tables) Benefits(crop string) CropBenefits {
	return t.benefits[crop]
}

// Crops lists every crop present in the benefit table.
func (t Tables) Crops() []string {
	out := make([]string, 0, len(t.benefits))
	for c := range t.benefits {
		out = append(out, c)
	}
	return out
}

// AvoidsNext reports whether next should not immediately follow prev.
func (t Tables) AvoidsNext(prev, next string) bool {
	for _, c := range t.traits[prev].AvoidNext {
		if c == next {
			return true
		}
	}
	return false
}

// FavorsNext reports whether prev lists next as a favorable successor.
func (t Tables) FavorsNext(prev, next string) bool {
	for _, c := range t.traits[prev].GoodNext {
		if c == next {
			return true
		}
	}
	return false
}

// Default returns the built-in knowledge tables for the upper-midwest crop set.
func Default() Tables {
	return Tables{
		traits: map[string]CropTraits{
			Corn: {
				GoodNext:        []string{Soybean, Wheat, Oats},
				AvoidNext:       []string{Corn},
				NitrogenDemand:  "high",
				PestPressure:    []string{"corn rootworm", "european corn borer"},
				DiseasePressure: []string{"gray leaf spot", "northern corn leaf blight"},
			},
			Soybean: {
				GoodNext:        []string{Corn, Wheat},
				AvoidNext:       []string{Soybean},
				NitrogenDemand:  "low",
				PestPressure:    []string{"soybean cyst nematode", "soybean aphid"},
				DiseasePressure: []string{"sudden death syndrome", "white mold"},
			},
			Wheat: {
				GoodNext:        []string{Soybean, Alfalfa},
				AvoidNext:       []string{Wheat, Barley},
				NitrogenDemand:  "moderate",
				PestPressure:    []string{"hessian fly", "cereal aphid"},
				DiseasePressure: []string{"fusarium head blight", "septoria leaf blotch"},
			},
			Oats: {
				GoodNext:        []string{Alfalfa, Soybean},
				AvoidNext:       []string{Oats},
				NitrogenDemand:  "moderate",
				PestPressure:    []string{"cereal leaf beetle"},
				DiseasePressure: []string{"crown rust"},
			},
			Alfalfa: {
				GoodNext:        []string{Corn, Wheat},
				AvoidNext:       []string{Alfalfa},
				NitrogenDemand:  "low",
				PestPressure:    []string{"alfalfa weevil", "potato leafhopper"},
				DiseasePressure: []string{"phytophthora root rot"},
			},
			Barley: {
				GoodNext:        []string{Soybean, Alfalfa},
				AvoidNext:       []string{Barley, Wheat},
				NitrogenDemand:  "moderate",
				PestPressure:    []string{"cereal aphid"},
				DiseasePressure: []string{"net blotch", "fusarium head blight"},
			},
		},
		benefits: map[string]CropBenefits{
			Corn:    {NitrogenFixation: 0, SoilOrganicMatter: 3, ErosionControl: 2, PestManagement: 2, WeedSuppression: 3, EconomicValue: 9},
			Soybean: {NitrogenFixation: 8, SoilOrganicMatter: 4, ErosionControl: 3, PestManagement: 4, WeedSuppression: 2, EconomicValue: 7},
			Wheat:   {NitrogenFixation: 0, SoilOrganicMatter: 5, ErosionControl: 7, PestManagement: 5, WeedSuppression: 6, EconomicValue: 5},
			Oats:    {NitrogenFixation: 0, SoilOrganicMatter: 6, ErosionControl: 7, PestManagement: 6, WeedSuppression: 7, EconomicValue: 3},
			Alfalfa: {NitrogenFixation: 10, SoilOrganicMatter: 8, ErosionControl: 9, PestManagement: 5, WeedSuppression: 8, EconomicValue: 6},
			Barley:  {NitrogenFixation: 0, SoilOrganicMatter: 4, ErosionControl: 6, PestManagement: 4, WeedSuppression: 5, EconomicValue: 4},
		},
	}
}
