package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitSpans(t *testing.T) {
	cases := []struct {
		unit     DurationUnit
		expected int64
	}{
		{UnitMillis, 1},
		{UnitSeconds, 1000},
		{UnitMinutes, 60_000},
		{UnitHours, 3_600_000},
		{UnitHalfdays, 43_200_000},
		{UnitDays, 86_400_000},
		{UnitWeeks, 604_800_000},
	}

	for _, c := range cases {
		t.Run(c.unit.Name(), func(t *testing.T) {
			assert.Equal(t, c.expected, c.unit.Millis())
			assert.True(t, c.unit.Precise())
			assert.True(t, c.unit.IsSupported())
		})
	}
}

func TestImpreciseUnits(t *testing.T) {
	assert.False(t, UnitMonths.Precise())
	assert.False(t, UnitYears.Precise())
	assert.True(t, UnitMonths.IsSupported())
	assert.True(t, UnitYears.IsSupported())

	// Mean spans over the Gregorian 400-year cycle.
	assert.Equal(t, int64(31_556_952_000), UnitYears.Millis())
	assert.Equal(t, UnitYears.Millis()/12, UnitMonths.Millis())
}

func TestUnitUnsupported(t *testing.T) {
	assert.False(t, UnitUnsupported.IsSupported())
	assert.Zero(t, UnitUnsupported.Millis())
	assert.Equal(t, "unsupported", UnitUnsupported.Name())
}
