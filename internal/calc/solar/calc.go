package solar

import (
	"strconv"

	calc "Surya/internal/calc"
	tables "Surya/internal/tables"

	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

type Input struct {
	SystemSizeKW int `json:"system_size_kw"`
}

type Result struct {
	SystemSize        int     `json:"system_size"`
	BaseCost          int64   `json:"base_cost"`
	Subsidy           int64   `json:"subsidy"`
	AfterSubsidy      int64   `json:"after_subsidy"`
	MonthlyGeneration float64 `json:"monthly_generation"`
	MonthlySavings    float64 `json:"monthly_savings"`
	YearlySavings     float64 `json:"yearly_savings"`
	ROI               float64 `json:"roi"`
}

// LifetimeSavings is the bill saving over years of operation.
func (r Result) LifetimeSavings(years float64) float64 {
	return decimal.NewFromFloat(r.YearlySavings).Mul(calc.Dec(years)).InexactFloat64()
}

func Calculate(kw int) (Result, error) {
	return CalculateWith(calc.DefaultAssumptions, kw)
}

// CalculateWith prices a catalogue system size and projects generation,
// savings and the payback period in years (one decimal place).
func CalculateWith(a calc.Assumptions, kw int) (Result, error) {
	entry, ok := tables.SolarCost(kw)
	if !ok {
		return Result{}, calc.NotFound("system_size_kw", strconv.Itoa(kw))
	}

	generation := decimal.NewFromInt(int64(kw)).Mul(calc.Dec(a.SolarUnitsPerKWMonth))
	monthly := generation.Mul(calc.Dec(a.SolarTariff))
	yearly := monthly.Mul(decimal.NewFromInt(monthsPerYear))
	if !yearly.IsPositive() {
		return Result{}, calc.Degenerate("system_size_kw", strconv.Itoa(kw))
	}
	roi := calc.RoundHalfUp(decimal.NewFromInt(entry.AfterSubsidy).Div(yearly), 1)

	return Result{
		SystemSize:        kw,
		BaseCost:          entry.BaseCost,
		Subsidy:           entry.Subsidy,
		AfterSubsidy:      entry.AfterSubsidy,
		MonthlyGeneration: generation.InexactFloat64(),
		MonthlySavings:    monthly.InexactFloat64(),
		YearlySavings:     yearly.InexactFloat64(),
		ROI:               roi.InexactFloat64(),
	}, nil
}
