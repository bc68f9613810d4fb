// Package encode provides a fixed-width binary representation of a
// millisecond position's calendar split, for embedding instants in packed
// records.
package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"

	"github.com/jlavallee/chrono/internal/gregorian"
)

var errYearOutOfRange = errors.New("year does not fit in a packed stamp")

// Stamp is the big-endian packed calendar split of one millisecond position.
// It packs to 9 bytes: year (2), month, day, hour, minute, second (1 each),
// millis of second (2).
type Stamp struct {
	Year           uint16
	Month          uint8
	Day            uint8
	Hour           uint8
	Minute         uint8
	Second         uint8
	MillisOfSecond uint16
}

// AsStamp splits an epoch-millisecond position into a packed stamp. The
// position's proleptic Gregorian year must fit in a uint16.
func AsStamp(ms int64) (Stamp, error) {
	year, month, day := gregorian.CivilFromMillis(ms)
	if year < 0 || year > 0xFFFF {
		return Stamp{}, fmt.Errorf("year %d: %w", year, errYearOutOfRange)
	}

	msOfDay := gregorian.FloorMod(ms, gregorian.MillisPerDay)

	return Stamp{
		Year:           uint16(year),
		Month:          uint8(month),
		Day:            uint8(day),
		Hour:           uint8(msOfDay / gregorian.MillisPerHour),
		Minute:         uint8(msOfDay / gregorian.MillisPerMinute % 60),
		Second:         uint8(msOfDay / gregorian.MillisPerSecond % 60),
		MillisOfSecond: uint16(msOfDay % gregorian.MillisPerSecond),
	}, nil
}

// Millis converts the stamp back to an epoch-millisecond position.
func (s Stamp) Millis() int64 {
	days := gregorian.DaysFromCivil(int64(s.Year), int(s.Month), int(s.Day))
	return days*gregorian.MillisPerDay +
		int64(s.Hour)*gregorian.MillisPerHour +
		int64(s.Minute)*gregorian.MillisPerMinute +
		int64(s.Second)*gregorian.MillisPerSecond +
		int64(s.MillisOfSecond)
}

// WriteTo packs the stamp to the writer, returning the number of bytes
// written.
func (s *Stamp) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)
	if err := struc.Pack(cw, s); err != nil {
		return cw.Count(), fmt.Errorf("failed to pack stamp: %w", err)
	}

	return cw.Count(), nil
}
