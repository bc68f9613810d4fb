package chrono

import "github.com/jlavallee/chrono/internal/gregorian"

// DurationUnit describes the granularity associated with one unit of a
// field's value.
//
// Fields that have no meaningful unit at all return [UnitUnsupported] rather
// than nil, so DurationUnit results from a [Field] are always safe to call.
// Absence is still expressible where it is a distinct outcome: a field with
// no natural containing range returns nil from its RangeDurationUnit.
type DurationUnit interface {
	// Name returns the unit's name, e.g. "hours".
	Name() string

	// Millis returns the span of one unit in milliseconds. For imprecise
	// units (months, years) this is the mean span over the Gregorian
	// 400-year cycle; for the unsupported unit it is zero.
	Millis() int64

	// Precise reports whether every unit has the same millisecond span.
	Precise() bool

	// IsSupported reports whether the unit represents a real granularity.
	// Only [UnitUnsupported] returns false.
	IsSupported() bool
}

type durationUnit struct {
	name      string
	millis    int64
	precise   bool
	supported bool
}

func (u *durationUnit) Name() string      { return u.name }
func (u *durationUnit) Millis() int64     { return u.millis }
func (u *durationUnit) Precise() bool     { return u.precise }
func (u *durationUnit) IsSupported() bool { return u.supported }

func (u *durationUnit) String() string { return u.name }

var (
	UnitMillis   DurationUnit = &durationUnit{"millis", 1, true, true}
	UnitSeconds  DurationUnit = &durationUnit{"seconds", gregorian.MillisPerSecond, true, true}
	UnitMinutes  DurationUnit = &durationUnit{"minutes", gregorian.MillisPerMinute, true, true}
	UnitHours    DurationUnit = &durationUnit{"hours", gregorian.MillisPerHour, true, true}
	UnitHalfdays DurationUnit = &durationUnit{"halfdays", gregorian.MillisPerDay / 2, true, true}
	UnitDays     DurationUnit = &durationUnit{"days", gregorian.MillisPerDay, true, true}
	UnitWeeks    DurationUnit = &durationUnit{"weeks", gregorian.MillisPerWeek, true, true}
	UnitMonths   DurationUnit = &durationUnit{"months", gregorian.MillisPerMonth, false, true}
	UnitYears    DurationUnit = &durationUnit{"years", gregorian.MillisPerYear, false, true}

	// UnitUnsupported is the designated no-op unit returned by fields that
	// have no duration unit. It is never nil so callers need not guard
	// against an absent reference.
	UnitUnsupported DurationUnit = &durationUnit{"unsupported", 0, false, false}
)
