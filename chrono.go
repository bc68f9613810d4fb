// Package chrono provides live, read-only field views over millisecond
// instants. A [Property] binds a single calendar or time [Field] (hour of
// day, day of month, ...) to an instant and exposes derived read operations:
// value extraction, localized text, bounds, leap semantics, remainders and
// comparison. All computation is delegated to the Field; the property holds
// no state beyond its binding and re-derives everything from the instant's
// current position on every call.
package chrono

// FieldType identifies a calendar or time field independently of any
// particular Field implementation or calendar system. Two moments in
// different calendar systems can be compared through the same FieldType.
type FieldType string

const (
	FieldTypeEra            FieldType = "era"
	FieldTypeYear           FieldType = "year"
	FieldTypeMonthOfYear    FieldType = "monthOfYear"
	FieldTypeDayOfMonth     FieldType = "dayOfMonth"
	FieldTypeDayOfYear      FieldType = "dayOfYear"
	FieldTypeDayOfWeek      FieldType = "dayOfWeek"
	FieldTypeHalfdayOfDay   FieldType = "halfdayOfDay"
	FieldTypeHourOfDay      FieldType = "hourOfDay"
	FieldTypeMinuteOfHour   FieldType = "minuteOfHour"
	FieldTypeMinuteOfDay    FieldType = "minuteOfDay"
	FieldTypeSecondOfMinute FieldType = "secondOfMinute"
	FieldTypeSecondOfDay    FieldType = "secondOfDay"
	FieldTypeMillisOfSecond FieldType = "millisOfSecond"
	FieldTypeMillisOfDay    FieldType = "millisOfDay"
)

func (t FieldType) String() string {
	return string(t)
}
