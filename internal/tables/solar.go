// Package tables holds the static price and subsidy reference data.
// Values are built once at init and never written afterwards; accessors
// hand out copies.
package tables

import "sort"

// SolarCostEntry is the Uttar Pradesh price of one on-grid system size, in rupees.
type SolarCostEntry struct {
	BaseCost     int64 `json:"base_cost"`
	Subsidy      int64 `json:"subsidy"`
	AfterSubsidy int64 `json:"after_subsidy"`
}

var solarCosts = map[int]SolarCostEntry{
	1:  {BaseCost: 65000, Subsidy: 45000, AfterSubsidy: 20000},
	2:  {BaseCost: 140000, Subsidy: 90000, AfterSubsidy: 50000},
	3:  {BaseCost: 210000, Subsidy: 108000, AfterSubsidy: 102000},
	4:  {BaseCost: 280000, Subsidy: 108000, AfterSubsidy: 172000},
	5:  {BaseCost: 350000, Subsidy: 108000, AfterSubsidy: 242000},
	6:  {BaseCost: 420000, Subsidy: 108000, AfterSubsidy: 312000},
	7:  {BaseCost: 490000, Subsidy: 108000, AfterSubsidy: 382000},
	8:  {BaseCost: 560000, Subsidy: 108000, AfterSubsidy: 452000},
	9:  {BaseCost: 630000, Subsidy: 108000, AfterSubsidy: 522000},
	10: {BaseCost: 700000, Subsidy: 108000, AfterSubsidy: 592000},
}

var solarSizes = func() []int {
	sizes := make([]int, 0, len(solarCosts))
	for kw := range solarCosts {
		sizes = append(sizes, kw)
	}
	sort.Ints(sizes)
	return sizes
}()

func SolarCost(kw int) (SolarCostEntry, bool) {
	e, ok := solarCosts[kw]
	return e, ok
}

// SolarSizes lists the supported system sizes in ascending order.
func SolarSizes() []int {
	return append([]int(nil), solarSizes...)
}
