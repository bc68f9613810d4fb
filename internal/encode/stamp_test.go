package encode_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlavallee/chrono/internal/encode"
)

func TestAsStamp(t *testing.T) {
	cases := []struct {
		name     string
		millis   int64
		expected [9]byte
	}{
		// 2015-07-31T19:00:15.000Z
		{"2015-07-31", 1438369215000, [9]byte{0x07, 0xDF, 0x07, 0x1F, 0x13, 0x00, 0x0F, 0x00, 0x00}},
		// 2000-01-07T12:26:14.000Z
		{"2000-01-07", 947247974000, [9]byte{0x07, 0xD0, 0x01, 0x07, 0x0C, 0x1A, 0x0E, 0x00, 0x00}},
		// 2024-02-29T12:30:45.123Z
		{"2024-02-29", 1709209845123, [9]byte{0x07, 0xE8, 0x02, 0x1D, 0x0C, 0x1E, 0x2D, 0x00, 0x7B}},
		// epoch
		{"epoch", 0, [9]byte{0x07, 0xB2, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stamp, err := encode.AsStamp(c.millis)
			require.NoError(t, err, "AsStamp should not fail for a position within the packable year range")

			var buff bytes.Buffer
			written, err := stamp.WriteTo(&buff)

			require.NoError(t, err, "WriteTo should not fail for a valid stamp")
			assert.EqualValues(t, 9, written, "a stamp should pack to exactly 9 bytes")
			assert.Equal(t, c.expected[:], buff.Bytes(), "stamp should pack its fields big-endian in significance order")
		})
	}
}

func TestAsStamp_YearOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		millis int64
	}{
		// year -5
		{"before year zero", -62325072000000},
		// year 70000
		{"beyond uint16 years", 2146819420800000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := encode.AsStamp(c.millis)
			assert.Error(t, err, "AsStamp should reject years that do not fit in a uint16")
		})
	}
}

func TestStamp_Millis_RoundTrip(t *testing.T) {
	for _, millis := range []int64{0, 1438369215000, 1709209845123, 946684799000} {
		stamp, err := encode.AsStamp(millis)
		require.NoError(t, err)
		assert.Equal(t, millis, stamp.Millis(), "Millis should invert AsStamp exactly")
	}
}
