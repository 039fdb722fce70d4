package calc

import "github.com/shopspring/decimal"

// Assumptions are the fixed business figures the calculators run on.
// The solar and chakki tariffs are tuned independently.
type Assumptions struct {
	SolarUnitsPerKWMonth float64 `json:"solar_units_per_kw_month"`
	SolarTariff          float64 `json:"solar_tariff"`
	HorizonYears         float64 `json:"horizon_years"`

	PeakSunHours       float64 `json:"peak_sun_hours"`
	SolarDaysPerMonth  float64 `json:"solar_days_per_month"`
	ChakkiTariff       float64 `json:"chakki_tariff"`
	ProcessingFeePerKg float64 `json:"processing_fee_per_kg"`
	OperatingHoursDay  float64 `json:"operating_hours_day"`
	OperatingDaysMonth float64 `json:"operating_days_month"`
	MiscMonthlyExpense float64 `json:"misc_monthly_expense"`
}

var DefaultAssumptions = Assumptions{
	SolarUnitsPerKWMonth: 120,
	SolarTariff:          6,
	HorizonYears:         25,

	PeakSunHours:       5,
	SolarDaysPerMonth:  30,
	ChakkiTariff:       7,
	ProcessingFeePerKg: 40,
	OperatingHoursDay:  8,
	OperatingDaysMonth: 26,
	MiscMonthlyExpense: 2000,
}

// RoundHalfUp rounds d to the given number of decimal places, ties away from zero.
// Every figure the calculators round is non-negative, so this is half-up.
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

func Dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
