package tables

type Warranty struct {
	Motor string `json:"motor"`
	Solar string `json:"solar"`
}

// SolarOption is one solar pairing offered for a motor.
type SolarOption struct {
	SolarKW   float64 `json:"solar_kw"`
	SolarCost int64   `json:"solar_cost"`
	TotalCost int64   `json:"total_cost"`
}

// MotorConfig is one atta chakki motor package. Motors sold with a choice of
// solar pairings leave the solar figures zero and list them in Options.
type MotorConfig struct {
	HP            string                 `json:"hp"`
	MotorCost     int64                  `json:"motor_cost"`
	SolarKW       float64                `json:"solar_kw,omitempty"`
	SolarCost     int64                  `json:"solar_cost,omitempty"`
	TotalCost     int64                  `json:"total_cost,omitempty"`
	OutputPerHour float64                `json:"output_per_hour"`
	Warranty      Warranty               `json:"warranty"`
	Options       map[string]SolarOption `json:"options,omitempty"`
}

func (m MotorConfig) RequiresOption() bool { return len(m.Options) > 0 }

func (m MotorConfig) Option(key string) (SolarOption, bool) {
	o, ok := m.Options[key]
	return o, ok
}

// OptionKeys lists the option keys in catalogue order.
func (m MotorConfig) OptionKeys() []string {
	if !m.RequiresOption() {
		return nil
	}
	return append([]string(nil), optionOrder[m.HP]...)
}

var motorOrder = []string{"5", "7.5", "10", "15"}

var optionOrder = map[string][]string{
	"10": {"16.8", "15.4"},
}

var motors = map[string]MotorConfig{
	"5": {
		HP:            "5",
		MotorCost:     20000,
		SolarKW:       9.6,
		SolarCost:     307200,
		TotalCost:     327200,
		OutputPerHour: 60,
		Warranty:      Warranty{Motor: "2 years", Solar: "25 years"},
	},
	"7.5": {
		HP:            "7.5",
		MotorCost:     30000,
		SolarKW:       9.6,
		SolarCost:     307200,
		TotalCost:     337200,
		OutputPerHour: 75,
		Warranty:      Warranty{Motor: "2 years", Solar: "25 years"},
	},
	"10": {
		HP:            "10",
		MotorCost:     40000,
		OutputPerHour: 100,
		Warranty:      Warranty{Motor: "3 years", Solar: "25 years"},
		Options: map[string]SolarOption{
			"16.8": {SolarKW: 16.8, SolarCost: 487200, TotalCost: 527200},
			"15.4": {SolarKW: 15.4, SolarCost: 462000, TotalCost: 502000},
		},
	},
	"15": {
		HP:            "15",
		MotorCost:     52000,
		SolarKW:       23,
		SolarCost:     667000,
		TotalCost:     719000,
		OutputPerHour: 150,
		Warranty:      Warranty{Motor: "3 years", Solar: "25 years"},
	},
}

// Motor returns a copy of the motor package for hp.
func Motor(hp string) (MotorConfig, bool) {
	m, ok := motors[hp]
	if !ok {
		return MotorConfig{}, false
	}
	if m.Options != nil {
		opts := make(map[string]SolarOption, len(m.Options))
		for k, v := range m.Options {
			opts[k] = v
		}
		m.Options = opts
	}
	return m, true
}

// MotorHPs lists the supported motor ratings in ascending order.
func MotorHPs() []string {
	return append([]string(nil), motorOrder...)
}

// MotorBrand is a motor manufacturer the business installs.
type MotorBrand struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Warranty string `json:"warranty"`
}

var motorBrands = []MotorBrand{
	{Name: "Kirloskar", Category: "Premium", Warranty: "3 years"},
	{Name: "ABB", Category: "Premium", Warranty: "3 years"},
	{Name: "Crompton", Category: "Premium", Warranty: "2 years"},
	{Name: "Havells", Category: "Mid-Range", Warranty: "2 years"},
	{Name: "V-Guard", Category: "Mid-Range", Warranty: "2 years"},
	{Name: "Lakshmi", Category: "Mid-Range", Warranty: "18 months"},
	{Name: "Local Motors", Category: "Budget", Warranty: "1 year"},
}

func MotorBrands() []MotorBrand {
	return append([]MotorBrand(nil), motorBrands...)
}
