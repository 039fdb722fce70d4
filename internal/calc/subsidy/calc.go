package subsidy

import (
	"math"

	tables "Surya/internal/tables"
)

type Input struct {
	State        string  `json:"state"`
	SystemSizeKW float64 `json:"system_size_kw"`
}

type Result struct {
	State              string   `json:"state"`
	ProfileName        string   `json:"profile_name"`
	Scheme             string   `json:"scheme"`
	SystemSizeKW       float64  `json:"system_size_kw"`
	Subsidy            float64  `json:"subsidy"`
	MaxSubsidy         float64  `json:"max_subsidy"`
	AdditionalBenefits []string `json:"additional_benefits"`
}

// Calculate returns the rooftop subsidy for a system of kw in state.
// Unknown states use the fallback profile; non-positive sizes earn nothing.
func Calculate(state string, kw float64) float64 {
	return ForProfile(tables.ResolveState(state), kw)
}

// ForProfile applies the profile's per-kW rates band by band (boundaries
// belong to the lower band) and caps the sum at the profile maximum.
func ForProfile(p tables.StateProfile, kw float64) float64 {
	if !(kw > 0) {
		return 0
	}
	r := p.Rates
	var total float64
	switch {
	case kw <= 2:
		total = kw * r.UpTo2KW
	case kw <= 3:
		total = 2*r.UpTo2KW + (kw-2)*r.From2To3KW
	default:
		total = 2*r.UpTo2KW + r.From2To3KW
		if r.Above3KW > 0 {
			total += (kw - 3) * r.Above3KW
		}
	}
	return math.Min(total, p.MaxSubsidy)
}

// Quote resolves the state and returns the subsidy with the scheme details.
func Quote(in Input) Result {
	p := tables.ResolveState(in.State)
	return Result{
		State:              p.Key,
		ProfileName:        p.Name,
		Scheme:             p.Scheme,
		SystemSizeKW:       in.SystemSizeKW,
		Subsidy:            ForProfile(p, in.SystemSizeKW),
		MaxSubsidy:         p.MaxSubsidy,
		AdditionalBenefits: p.AdditionalBenefits,
	}
}
