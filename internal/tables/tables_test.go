package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolarCostsAfterSubsidy(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, SolarSizes())
	for _, kw := range SolarSizes() {
		e, ok := SolarCost(kw)
		require.True(t, ok, "size %d", kw)
		assert.Equal(t, e.BaseCost-e.Subsidy, e.AfterSubsidy, "size %d", kw)
	}
}

func TestSolarCostValues(t *testing.T) {
	e, ok := SolarCost(1)
	require.True(t, ok)
	assert.Equal(t, SolarCostEntry{BaseCost: 65000, Subsidy: 45000, AfterSubsidy: 20000}, e)

	e, ok = SolarCost(10)
	require.True(t, ok)
	assert.Equal(t, SolarCostEntry{BaseCost: 700000, Subsidy: 108000, AfterSubsidy: 592000}, e)

	_, ok = SolarCost(11)
	assert.False(t, ok)
	_, ok = SolarCost(0)
	assert.False(t, ok)
}

func TestMotorTotals(t *testing.T) {
	for _, hp := range MotorHPs() {
		m, ok := Motor(hp)
		require.True(t, ok, "hp %s", hp)
		if !m.RequiresOption() {
			assert.Equal(t, m.MotorCost+m.SolarCost, m.TotalCost, "hp %s", hp)
			continue
		}
		for _, key := range m.OptionKeys() {
			o, ok := m.Option(key)
			require.True(t, ok, "hp %s option %s", hp, key)
			assert.Equal(t, m.MotorCost+o.SolarCost, o.TotalCost, "hp %s option %s", hp, key)
		}
	}
}

func TestMotorTenHPOptions(t *testing.T) {
	m, ok := Motor("10")
	require.True(t, ok)
	assert.True(t, m.RequiresOption())
	assert.Equal(t, []string{"16.8", "15.4"}, m.OptionKeys())

	o, ok := m.Option("16.8")
	require.True(t, ok)
	assert.Equal(t, SolarOption{SolarKW: 16.8, SolarCost: 487200, TotalCost: 527200}, o)

	five, ok := Motor("5")
	require.True(t, ok)
	assert.False(t, five.RequiresOption())
	assert.Nil(t, five.OptionKeys())

	_, ok = Motor("12")
	assert.False(t, ok)
}

func TestMotorReturnsCopy(t *testing.T) {
	m, _ := Motor("10")
	delete(m.Options, "16.8")

	again, _ := Motor("10")
	_, ok := again.Option("16.8")
	assert.True(t, ok)
}

func TestStateProfiles(t *testing.T) {
	keys := StateKeys()
	require.Len(t, keys, 10)
	assert.Equal(t, FallbackState, keys[len(keys)-1])

	for _, key := range keys {
		p, ok := State(key)
		require.True(t, ok, key)
		assert.Equal(t, key, p.Key)
		assert.GreaterOrEqual(t, p.MaxSubsidy, 0.0, key)
		assert.GreaterOrEqual(t, p.Rates.UpTo2KW, 0.0, key)
		assert.GreaterOrEqual(t, p.Rates.From2To3KW, 0.0, key)
		assert.GreaterOrEqual(t, p.Rates.Above3KW, 0.0, key)
		assert.NotEmpty(t, p.Scheme, key)
		assert.NotEmpty(t, p.AdditionalBenefits, key)
	}

	up, _ := State("uttar-pradesh")
	assert.Equal(t, SubsidyRates{UpTo2KW: 45000, From2To3KW: 22500, Above3KW: 0}, up.Rates)
	assert.Equal(t, 108000.0, up.MaxSubsidy)
}

func TestResolveStateFallsBack(t *testing.T) {
	p := ResolveState("atlantis")
	assert.Equal(t, FallbackState, p.Key)
	assert.Equal(t, 78000.0, p.MaxSubsidy)

	_, ok := State("atlantis")
	assert.False(t, ok)

	assert.Equal(t, "delhi", ResolveState("delhi").Key)
}

func TestStateReturnsCopy(t *testing.T) {
	p, _ := State("bihar")
	p.AdditionalBenefits[0] = "changed"

	again, _ := State("bihar")
	assert.Equal(t, "Priority for rural areas", again.AdditionalBenefits[0])
}
