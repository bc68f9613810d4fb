package chrono

import (
	"golang.org/x/text/language"

	"github.com/jlavallee/chrono/internal/gregorian"
	"github.com/jlavallee/chrono/internal/l10n"
)

// fieldText supplies localized symbols for fields whose values have names
// rather than plain decimal renderings.
type fieldText struct {
	full     func(tag language.Tag, value int) string
	short    func(tag language.Tag, value int) string
	fullLen  func(tag language.Tag) int
	shortLen func(tag language.Tag) int
}

// preciseField is a field whose value is a plain division of the position by
// a fixed-span unit, within a fixed-span range: hour of day, minute of hour,
// millis of day and friends. Zero-based, never leap.
type preciseField struct {
	typ       FieldType
	unit      DurationUnit
	rangeUnit DurationUnit
	text      *fieldText // nil for numeric rendering
}

var _ Field = &preciseField{}

func (f *preciseField) Type() FieldType { return f.typ }
func (f *preciseField) Name() string    { return string(f.typ) }

func (f *preciseField) Get(ms int64) int {
	return int(gregorian.FloorMod(ms, f.rangeUnit.Millis()) / f.unit.Millis())
}

func (f *preciseField) Text(ms int64, locale language.Tag) string {
	if f.text != nil {
		return f.text.full(locale, f.Get(ms))
	}
	return numericText(f.Get(ms))
}

func (f *preciseField) ShortText(ms int64, locale language.Tag) string {
	if f.text != nil {
		return f.text.short(locale, f.Get(ms))
	}
	return numericText(f.Get(ms))
}

func (f *preciseField) DurationUnit() DurationUnit      { return f.unit }
func (f *preciseField) RangeDurationUnit() DurationUnit { return f.rangeUnit }

func (f *preciseField) IsLeap(int64) bool              { return false }
func (f *preciseField) LeapAmount(int64) int           { return 0 }
func (f *preciseField) LeapDurationUnit() DurationUnit { return nil }

func (f *preciseField) MinimumValue() int        { return 0 }
func (f *preciseField) MinimumValueAt(int64) int { return 0 }
func (f *preciseField) MaximumValue() int        { return int(f.rangeUnit.Millis()/f.unit.Millis()) - 1 }
func (f *preciseField) MaximumValueAt(int64) int { return f.MaximumValue() }

func (f *preciseField) MaximumTextLength(locale language.Tag) int {
	if f.text != nil {
		return f.text.fullLen(locale)
	}
	return numericMaxLength(0, f.MaximumValue())
}

func (f *preciseField) MaximumShortTextLength(locale language.Tag) int {
	if f.text != nil {
		return f.text.shortLen(locale)
	}
	return numericMaxLength(0, f.MaximumValue())
}

func (f *preciseField) Remainder(ms int64) int64 {
	return gregorian.FloorMod(ms, f.unit.Millis())
}

// dayOfWeekField is precise like the fields above but one-based with ISO
// numbering (Monday = 1) and named values.
type dayOfWeekField struct{}

var _ Field = dayOfWeekField{}

func (dayOfWeekField) Type() FieldType { return FieldTypeDayOfWeek }
func (dayOfWeekField) Name() string    { return string(FieldTypeDayOfWeek) }

func (dayOfWeekField) Get(ms int64) int {
	// The epoch day 0 (1970-01-01) was a Thursday.
	day := gregorian.FloorDiv(ms, gregorian.MillisPerDay)
	return int(gregorian.FloorMod(day+3, 7)) + 1
}

func (f dayOfWeekField) Text(ms int64, locale language.Tag) string {
	return l10n.Weekday(locale, f.Get(ms))
}

func (f dayOfWeekField) ShortText(ms int64, locale language.Tag) string {
	return l10n.WeekdayShort(locale, f.Get(ms))
}

func (dayOfWeekField) DurationUnit() DurationUnit      { return UnitDays }
func (dayOfWeekField) RangeDurationUnit() DurationUnit { return UnitWeeks }

func (dayOfWeekField) IsLeap(int64) bool              { return false }
func (dayOfWeekField) LeapAmount(int64) int           { return 0 }
func (dayOfWeekField) LeapDurationUnit() DurationUnit { return nil }

func (dayOfWeekField) MinimumValue() int        { return 1 }
func (dayOfWeekField) MinimumValueAt(int64) int { return 1 }
func (dayOfWeekField) MaximumValue() int        { return 7 }
func (dayOfWeekField) MaximumValueAt(int64) int { return 7 }

func (dayOfWeekField) MaximumTextLength(locale language.Tag) int {
	return l10n.MaxWeekdayLength(locale, false)
}

func (dayOfWeekField) MaximumShortTextLength(locale language.Tag) int {
	return l10n.MaxWeekdayLength(locale, true)
}

func (dayOfWeekField) Remainder(ms int64) int64 {
	return gregorian.FloorMod(ms, gregorian.MillisPerDay)
}

var halfdayText = &fieldText{
	full:     l10n.Halfday,
	short:    l10n.Halfday,
	fullLen:  l10n.MaxHalfdayLength,
	shortLen: l10n.MaxHalfdayLength,
}

var (
	isoHalfdayOfDay   Field = &preciseField{FieldTypeHalfdayOfDay, UnitHalfdays, UnitDays, halfdayText}
	isoHourOfDay      Field = &preciseField{FieldTypeHourOfDay, UnitHours, UnitDays, nil}
	isoMinuteOfHour   Field = &preciseField{FieldTypeMinuteOfHour, UnitMinutes, UnitHours, nil}
	isoMinuteOfDay    Field = &preciseField{FieldTypeMinuteOfDay, UnitMinutes, UnitDays, nil}
	isoSecondOfMinute Field = &preciseField{FieldTypeSecondOfMinute, UnitSeconds, UnitMinutes, nil}
	isoSecondOfDay    Field = &preciseField{FieldTypeSecondOfDay, UnitSeconds, UnitDays, nil}
	isoMillisOfSecond Field = &preciseField{FieldTypeMillisOfSecond, UnitMillis, UnitSeconds, nil}
	isoMillisOfDay    Field = &preciseField{FieldTypeMillisOfDay, UnitMillis, UnitDays, nil}
	isoDayOfWeek      Field = dayOfWeekField{}
)
