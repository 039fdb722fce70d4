package calc

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"0.05", 1, "0.1"},
		{"0.15", 1, "0.2"},
		{"1.45", 1, "1.5"},
		{"5.6018518518518519", 1, "5.6"},
		{"0.04999", 1, "0"},
		{"0.5", 0, "1"},
		{"2.5", 0, "3"},
		{"2.4999", 0, "2"},
		{"0.6219621", 0, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := RoundHalfUp(decimal.RequireFromString(tc.in), tc.places)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestRoundHalfUpFromFloat(t *testing.T) {
	// 0.05 and 2.5 are not exact in binary; the decimal conversion keeps the tie.
	assert.Equal(t, 0.1, RoundHalfUp(Dec(0.05), 1).InexactFloat64())
	assert.Equal(t, 3.0, RoundHalfUp(Dec(2.5), 0).InexactFloat64())
	assert.Equal(t, 1.3, RoundHalfUp(Dec(1.25), 1).InexactFloat64())
}

func TestErrorWrapping(t *testing.T) {
	err := NotFound("system_size_kw", "11")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.Equal(t, "system_size_kw", FieldOf(err))
	assert.Contains(t, err.Error(), `"11"`)

	err = MissingSelection("solar_option")
	assert.True(t, errors.Is(err, ErrMissingSelection))
	assert.False(t, errors.Is(err, ErrKeyNotFound))
	assert.Equal(t, "missing required selection: solar_option", err.Error())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("motor_hp", "12")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(MissingSelection("solar_option")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(Invalid("monthly_units")))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(Degenerate("motor_hp", "5")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestWriteErrorDegenerateHidesFigures(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, Degenerate("motor_hp", "5"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "cannot estimate ROI for this configuration", body["error"])
	assert.Equal(t, "motor_hp", body["field"])
}

type countingRecorder struct{ calls []string }

func (c *countingRecorder) RecordCalculation(calculator string, err error) {
	c.calls = append(c.calls, calculator)
}

func TestRecordNilSafe(t *testing.T) {
	Record(nil, "solar", nil)

	rec := &countingRecorder{}
	Record(rec, "solar", nil)
	assert.Equal(t, []string{"solar"}, rec.calls)
}
