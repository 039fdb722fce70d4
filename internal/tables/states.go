package tables

// FallbackState is the profile used for any state without its own entry.
const FallbackState = "other"

// SubsidyRates are per-kW rooftop subsidy rates, in rupees, for each size band.
type SubsidyRates struct {
	UpTo2KW    float64 `json:"up_to_2kw"`
	From2To3KW float64 `json:"from_2_to_3kw"`
	Above3KW   float64 `json:"above_3kw"`
}

type StateProfile struct {
	Key                string       `json:"key"`
	Name               string       `json:"name"`
	Rates              SubsidyRates `json:"subsidy_per_kw"`
	MaxSubsidy         float64      `json:"max_subsidy"`
	Scheme             string       `json:"scheme"`
	AdditionalBenefits []string     `json:"additional_benefits"`
}

var stateOrder = []string{
	"uttar-pradesh",
	"maharashtra",
	"rajasthan",
	"gujarat",
	"madhya-pradesh",
	"bihar",
	"delhi",
	"haryana",
	"punjab",
	FallbackState,
}

var states = map[string]StateProfile{
	"uttar-pradesh": {
		Name:       "Uttar Pradesh",
		Rates:      SubsidyRates{UpTo2KW: 45000, From2To3KW: 22500, Above3KW: 0},
		MaxSubsidy: 108000,
		Scheme:     "PM Surya Ghar Yojana + State Subsidy",
		AdditionalBenefits: []string{
			"Net metering facility",
			"Faster approval process",
			"25-year panel warranty",
			"Free installation support",
		},
	},
	"maharashtra": {
		Name:       "Maharashtra",
		Rates:      SubsidyRates{UpTo2KW: 30000, From2To3KW: 15000, Above3KW: 15000},
		MaxSubsidy: 105000,
		Scheme:     "MSEDCL Solar Rooftop Scheme",
		AdditionalBenefits: []string{
			"Net metering available",
			"Online application",
			"Banking facility",
			"20% advance subsidy",
		},
	},
	"rajasthan": {
		Name:       "Rajasthan",
		Rates:      SubsidyRates{UpTo2KW: 40000, From2To3KW: 20000, Above3KW: 10000},
		MaxSubsidy: 100000,
		Scheme:     "Rajasthan Solar Energy Policy",
		AdditionalBenefits: []string{
			"Gross metering option",
			"State additional incentive",
			"Easy documentation",
			"Rural priority scheme",
		},
	},
	"gujarat": {
		Name:       "Gujarat",
		Rates:      SubsidyRates{UpTo2KW: 35000, From2To3KW: 18000, Above3KW: 12000},
		MaxSubsidy: 95000,
		Scheme:     "Gujarat Solar Power Policy",
		AdditionalBenefits: []string{
			"Net metering facility",
			"Single window clearance",
			"Agriculture subsidy extra",
			"Green energy certificate",
		},
	},
	"madhya-pradesh": {
		Name:       "Madhya Pradesh",
		Rates:      SubsidyRates{UpTo2KW: 42000, From2To3KW: 21000, Above3KW: 8000},
		MaxSubsidy: 105000,
		Scheme:     "MP Urja Vikas Nigam Scheme",
		AdditionalBenefits: []string{
			"Tribal area extra subsidy",
			"Net metering available",
			"Quick approval",
			"Maintenance support",
		},
	},
	"bihar": {
		Name:       "Bihar",
		Rates:      SubsidyRates{UpTo2KW: 45000, From2To3KW: 22500, Above3KW: 0},
		MaxSubsidy: 108000,
		Scheme:     "Bihar Solar Rooftop Yojana",
		AdditionalBenefits: []string{
			"Priority for rural areas",
			"Net metering facility",
			"Free technical support",
			"Extended warranty",
		},
	},
	"delhi": {
		Name:       "Delhi",
		Rates:      SubsidyRates{UpTo2KW: 38000, From2To3KW: 19000, Above3KW: 15000},
		MaxSubsidy: 110000,
		Scheme:     "Delhi Solar Policy 2024",
		AdditionalBenefits: []string{
			"Virtual net metering",
			"Community solar option",
			"Fast track approval",
			"Pollution reduction incentive",
		},
	},
	"haryana": {
		Name:       "Haryana",
		Rates:      SubsidyRates{UpTo2KW: 40000, From2To3KW: 20000, Above3KW: 10000},
		MaxSubsidy: 100000,
		Scheme:     "Haryana Renewable Energy Policy",
		AdditionalBenefits: []string{
			"Net metering available",
			"Agriculture extra benefit",
			"Quick disbursement",
			"Technical assistance",
		},
	},
	"punjab": {
		Name:       "Punjab",
		Rates:      SubsidyRates{UpTo2KW: 38000, From2To3KW: 19000, Above3KW: 12000},
		MaxSubsidy: 98000,
		Scheme:     "Punjab Solar Power Policy",
		AdditionalBenefits: []string{
			"Agriculture subsidy extra",
			"Net metering facility",
			"Single window clearance",
			"Free energy audit",
		},
	},
	FallbackState: {
		Name:       "Other States",
		Rates:      SubsidyRates{UpTo2KW: 30000, From2To3KW: 15000, Above3KW: 10000},
		MaxSubsidy: 78000,
		Scheme:     "PM Surya Ghar Yojana (Central)",
		AdditionalBenefits: []string{
			"Central government scheme",
			"Available nationwide",
			"Standard benefits",
			"Technical support",
		},
	},
}

func init() {
	for key, p := range states {
		p.Key = key
		states[key] = p
	}
}

// State looks up the profile stored under key, without falling back.
func State(key string) (StateProfile, bool) {
	p, ok := states[key]
	if !ok {
		return StateProfile{}, false
	}
	p.AdditionalBenefits = append([]string(nil), p.AdditionalBenefits...)
	return p, true
}

// ResolveState returns the profile for key, or the fallback profile when the
// state has no entry of its own. An unknown state is not an error.
func ResolveState(key string) StateProfile {
	if p, ok := State(key); ok {
		return p
	}
	p, _ := State(FallbackState)
	return p
}

// StateKeys lists the profile keys in display order, fallback last.
func StateKeys() []string {
	return append([]string(nil), stateOrder...)
}
