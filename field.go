package chrono

import (
	"strconv"

	"golang.org/x/text/language"
)

// Field converts an absolute millisecond position into and out of one named
// calendar or time component. Implementations are stateless; the same Field
// value may back any number of properties concurrently.
//
// Locale parameters follow the package convention: language.Und selects the
// default locale.
type Field interface {
	// Type returns the field's declared type identity.
	Type() FieldType

	// Name returns the field's display name.
	Name() string

	// Get returns the field's integer value at the given position.
	Get(ms int64) int

	// Text returns the full textual symbol for the value at the given
	// position. It never fails for a valid position.
	Text(ms int64, locale language.Tag) string

	// ShortText returns the abbreviated textual symbol for the value at the
	// given position.
	ShortText(ms int64, locale language.Tag) string

	// DurationUnit returns the field's own unit. It is never nil; fields
	// with no unit return UnitUnsupported.
	DurationUnit() DurationUnit

	// RangeDurationUnit returns the field's containing unit, or nil if the
	// field has no natural range.
	RangeDurationUnit() DurationUnit

	// IsLeap reports whether the field's value at the given position is a
	// leap value.
	IsLeap(ms int64) bool

	// LeapAmount returns the magnitude of the leap adjustment at the given
	// position, zero when not leap.
	LeapAmount(ms int64) int

	// LeapDurationUnit returns the unit leap amounts are expressed in, or
	// nil if the field never leaps.
	LeapDurationUnit() DurationUnit

	// MinimumValue and MaximumValue return the field-intrinsic bounds,
	// ignoring any position.
	MinimumValue() int
	MaximumValue() int

	// MinimumValueAt and MaximumValueAt return bounds that may depend on the
	// given position, e.g. the maximum day of month depends on the month.
	MinimumValueAt(ms int64) int
	MaximumValueAt(ms int64) int

	// MaximumTextLength and MaximumShortTextLength return the longest
	// rendered width, in runes, over all values the field can take.
	MaximumTextLength(locale language.Tag) int
	MaximumShortTextLength(locale language.Tag) int

	// Remainder returns the sub-field milliseconds not captured by the
	// field's granularity at the given position. The result is non-negative
	// and strictly below the field's unit span.
	Remainder(ms int64) int64
}

// Moment is any temporal value that can report the integer value of a named
// field type under its own calendar system. Get fails for field types the
// moment's calendar system does not support.
type Moment interface {
	Get(t FieldType) (int, error)
}

// standardFields maps each FieldType to its ISO field singleton. The field
// implementations live in precise.go and calendar.go.
var standardFields = map[FieldType]Field{
	FieldTypeEra:            isoEra,
	FieldTypeYear:           isoYear,
	FieldTypeMonthOfYear:    isoMonthOfYear,
	FieldTypeDayOfMonth:     isoDayOfMonth,
	FieldTypeDayOfYear:      isoDayOfYear,
	FieldTypeDayOfWeek:      isoDayOfWeek,
	FieldTypeHalfdayOfDay:   isoHalfdayOfDay,
	FieldTypeHourOfDay:      isoHourOfDay,
	FieldTypeMinuteOfHour:   isoMinuteOfHour,
	FieldTypeMinuteOfDay:    isoMinuteOfDay,
	FieldTypeSecondOfMinute: isoSecondOfMinute,
	FieldTypeSecondOfDay:    isoSecondOfDay,
	FieldTypeMillisOfSecond: isoMillisOfSecond,
	FieldTypeMillisOfDay:    isoMillisOfDay,
}

// fieldTypeOrder is the display ordering used by FieldTypes, most to least
// significant.
var fieldTypeOrder = []FieldType{
	FieldTypeEra,
	FieldTypeYear,
	FieldTypeMonthOfYear,
	FieldTypeDayOfMonth,
	FieldTypeDayOfYear,
	FieldTypeDayOfWeek,
	FieldTypeHalfdayOfDay,
	FieldTypeHourOfDay,
	FieldTypeMinuteOfHour,
	FieldTypeMinuteOfDay,
	FieldTypeSecondOfMinute,
	FieldTypeSecondOfDay,
	FieldTypeMillisOfSecond,
	FieldTypeMillisOfDay,
}

// FieldTypes returns the standard field types in order of significance.
func FieldTypes() []FieldType {
	out := make([]FieldType, len(fieldTypeOrder))
	copy(out, fieldTypeOrder)
	return out
}

// FieldForType returns the standard ISO field for the given type.
func FieldForType(t FieldType) (Field, bool) {
	f, ok := standardFields[t]
	return f, ok
}

func numericText(value int) string {
	return strconv.Itoa(value)
}

// numericMaxLength is the widest decimal rendering over [min, max].
func numericMaxLength(min, max int) int {
	length := len(strconv.Itoa(max))
	if min < 0 {
		if l := len(strconv.Itoa(min)); l > length {
			length = l
		}
	}
	return length
}
