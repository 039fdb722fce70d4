package batch

import (
	calc "Surya/internal/calc"
	solar "Surya/internal/calc/solar"
)

type SolarBatchInput struct {
	Sizes []int `json:"sizes"`
}

type SolarBatchResult struct {
	Results []solar.Response `json:"results"`
}

// CalculateSolar quotes several system sizes side by side. One unsupported
// size fails the whole batch.
func CalculateSolar(a calc.Assumptions, in SolarBatchInput) (SolarBatchResult, error) {
	if len(in.Sizes) == 0 {
		return SolarBatchResult{}, calc.Invalid("sizes")
	}
	out := SolarBatchResult{Results: make([]solar.Response, 0, len(in.Sizes))}
	for _, kw := range in.Sizes {
		res, err := solar.CalculateWith(a, kw)
		if err != nil {
			return SolarBatchResult{}, err
		}
		out.Results = append(out.Results, solar.NewResponse(res, a))
	}
	return out, nil
}
