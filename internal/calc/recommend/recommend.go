package recommend

import (
	"math"

	calc "Surya/internal/calc"
	solar "Surya/internal/calc/solar"
	tables "Surya/internal/tables"
)

type SolarInput struct {
	MonthlyUnits float64 `json:"monthly_units"`
}

type SolarRecommendation struct {
	MonthlyUnits  float64        `json:"monthly_units"`
	RecommendedKW int            `json:"recommended_kw"`
	CoveragePct   float64        `json:"coverage_pct"`
	Quote         solar.Response `json:"quote"`
	Notes         string         `json:"notes"`
}

// Solar picks the smallest catalogue size whose generation covers the
// household's monthly consumption, or the largest size when none does.
func Solar(a calc.Assumptions, in SolarInput) (SolarRecommendation, error) {
	if !(in.MonthlyUnits > 0) || math.IsInf(in.MonthlyUnits, 0) {
		return SolarRecommendation{}, calc.Invalid("monthly_units")
	}
	sizes := tables.SolarSizes()
	pick := sizes[len(sizes)-1]
	for _, kw := range sizes {
		if float64(kw)*a.SolarUnitsPerKWMonth >= in.MonthlyUnits {
			pick = kw
			break
		}
	}
	res, err := solar.CalculateWith(a, pick)
	if err != nil {
		return SolarRecommendation{}, err
	}
	coverage := math.Min(res.MonthlyGeneration/in.MonthlyUnits*100, 100)
	notes := "Sized to cover monthly consumption."
	if coverage < 100 {
		notes = "Consumption exceeds the largest rooftop system; partial coverage."
	}
	return SolarRecommendation{
		MonthlyUnits:  in.MonthlyUnits,
		RecommendedKW: pick,
		CoveragePct:   math.Round(coverage*10) / 10,
		Quote:         solar.NewResponse(res, a),
		Notes:         notes,
	}, nil
}
