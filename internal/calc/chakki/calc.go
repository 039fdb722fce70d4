package chakki

import (
	calc "Surya/internal/calc"
	tables "Surya/internal/tables"

	"github.com/shopspring/decimal"
)

type Input struct {
	MotorHP     string `json:"motor_hp"`
	SolarOption string `json:"solar_option,omitempty"`
}

type Result struct {
	MotorHP             string          `json:"motor_hp"`
	SolarOption         string          `json:"solar_option,omitempty"`
	MotorCost           int64           `json:"motor_cost"`
	SolarKW             float64         `json:"solar_kw"`
	SolarCost           int64           `json:"solar_cost"`
	TotalCost           int64           `json:"total_cost"`
	OutputPerHour       float64         `json:"output_per_hour"`
	MonthlyOutput       float64         `json:"monthly_output"`
	MonthlyRevenue      float64         `json:"monthly_revenue"`
	MonthlySolarSavings float64         `json:"monthly_solar_savings"`
	MonthlyProfit       float64         `json:"monthly_profit"`
	ROIMonths           int64           `json:"roi_months"`
	SolarUnitsPerMonth  float64         `json:"solar_units_per_month"`
	Warranty            tables.Warranty `json:"warranty"`
}

func Calculate(hp, option string) (Result, error) {
	return CalculateWith(calc.DefaultAssumptions, hp, option)
}

// Resolve picks the motor package for hp. Packages sold with several solar
// pairings need option; it is ignored for every other package.
func Resolve(hp, option string) (tables.MotorConfig, string, error) {
	cfg, ok := tables.Motor(hp)
	if !ok {
		return tables.MotorConfig{}, "", calc.NotFound("motor_hp", hp)
	}
	if !cfg.RequiresOption() {
		return cfg, "", nil
	}
	if option == "" {
		return tables.MotorConfig{}, "", calc.MissingSelection("solar_option")
	}
	opt, ok := cfg.Option(option)
	if !ok {
		return tables.MotorConfig{}, "", calc.NotFound("solar_option", option)
	}
	cfg.SolarKW = opt.SolarKW
	cfg.SolarCost = opt.SolarCost
	cfg.TotalCost = opt.TotalCost
	cfg.Options = nil
	return cfg, option, nil
}

// CalculateWith projects monthly output, revenue and solar offset for a motor
// package, and the payback period rounded to whole months.
func CalculateWith(a calc.Assumptions, hp, option string) (Result, error) {
	cfg, option, err := Resolve(hp, option)
	if err != nil {
		return Result{}, err
	}

	unitsPerDay := calc.Dec(cfg.SolarKW).Mul(calc.Dec(a.PeakSunHours))
	unitsPerMonth := unitsPerDay.Mul(calc.Dec(a.SolarDaysPerMonth))
	solarSavings := unitsPerMonth.Mul(calc.Dec(a.ChakkiTariff))

	output := calc.Dec(cfg.OutputPerHour).
		Mul(calc.Dec(a.OperatingHoursDay)).
		Mul(calc.Dec(a.OperatingDaysMonth))
	revenue := output.Mul(calc.Dec(a.ProcessingFeePerKg))
	profit := revenue.Add(solarSavings).Sub(calc.Dec(a.MiscMonthlyExpense))
	if !profit.IsPositive() {
		return Result{}, calc.Degenerate("motor_hp", hp)
	}
	roi := calc.RoundHalfUp(decimal.NewFromInt(cfg.TotalCost).Div(profit), 0)

	return Result{
		MotorHP:             cfg.HP,
		SolarOption:         option,
		MotorCost:           cfg.MotorCost,
		SolarKW:             cfg.SolarKW,
		SolarCost:           cfg.SolarCost,
		TotalCost:           cfg.TotalCost,
		OutputPerHour:       cfg.OutputPerHour,
		MonthlyOutput:       output.InexactFloat64(),
		MonthlyRevenue:      revenue.InexactFloat64(),
		MonthlySolarSavings: solarSavings.InexactFloat64(),
		MonthlyProfit:       profit.InexactFloat64(),
		ROIMonths:           roi.IntPart(),
		SolarUnitsPerMonth:  unitsPerMonth.InexactFloat64(),
		Warranty:            cfg.Warranty,
	}, nil
}
