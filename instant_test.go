package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstant_FromTimeRoundTrip(t *testing.T) {
	original := time.Date(2024, 2, 29, 12, 30, 45, 123_000_000, time.UTC)
	instant := FromTime(original)

	assert.Equal(t, leapDayMillis, instant.Millis())
	assert.Equal(t, original, instant.Time())
}

func TestInstant_FromTimeTruncatesToMillis(t *testing.T) {
	withNanos := time.Date(2024, 2, 29, 12, 30, 45, 123_456_789, time.UTC)
	assert.Equal(t, leapDayMillis, FromTime(withNanos).Millis())
}

func TestInstant_Get(t *testing.T) {
	instant := NewInstant(leapDayMillis)

	value, err := instant.Get(FieldTypeDayOfMonth)
	require.NoError(t, err)
	assert.Equal(t, 29, value)

	_, err = instant.Get("weekOfWeekyear")
	assert.ErrorIs(t, err, ErrUnsupportedField)
}

func TestInstant_Property_Unsupported(t *testing.T) {
	_, err := NewInstant(0).Property("weekOfWeekyear")
	assert.ErrorIs(t, err, ErrUnsupportedField)
}

func TestInstant_IsAMoment(t *testing.T) {
	// An immutable instant participates in cross-moment comparison like any
	// other calendar system.
	hour, err := NewInstant(leapDayMillis).Property(FieldTypeHourOfDay)
	require.NoError(t, err)

	result, err := hour.Compare(NewInstant(midsummerMillis)) // hour 19
	require.NoError(t, err)
	assert.Equal(t, -1, result)
}

func TestMutableInstant_SetAndAdd(t *testing.T) {
	instant := NewMutableInstant(0)

	instant.SetMillis(leapDayMillis)
	assert.Equal(t, leapDayMillis, instant.Millis())

	instant.Add(90 * time.Second)
	assert.Equal(t, leapDayMillis+90_000, instant.Millis())

	value, err := instant.Get(FieldTypeMinuteOfHour)
	require.NoError(t, err)
	assert.Equal(t, 32, value)
}

func TestMutableInstant_PropertiesShareThePosition(t *testing.T) {
	instant := NewMutableInstant(leapDayMillis)

	hour, err := instant.Property(FieldTypeHourOfDay)
	require.NoError(t, err)
	minute, err := instant.Property(FieldTypeMinuteOfHour)
	require.NoError(t, err)

	instant.Add(45 * time.Minute) // 12:30 -> 13:15

	assert.Equal(t, 13, hour.Value())
	assert.Equal(t, 15, minute.Value())
}
