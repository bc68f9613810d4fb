package chrono

import (
	"golang.org/x/text/language"

	"github.com/jlavallee/chrono/internal/gregorian"
	"github.com/jlavallee/chrono/internal/l10n"
)

// Year bounds of the standard field set: the proleptic Gregorian years
// reachable within the signed 64-bit millisecond range.
const (
	minYear = -292275054
	maxYear = 292278993
)

type yearField struct{}

var _ Field = yearField{}

func (yearField) Type() FieldType { return FieldTypeYear }
func (yearField) Name() string    { return string(FieldTypeYear) }

func (yearField) Get(ms int64) int {
	year, _, _ := gregorian.CivilFromMillis(ms)
	return int(year)
}

func (f yearField) Text(ms int64, _ language.Tag) string      { return numericText(f.Get(ms)) }
func (f yearField) ShortText(ms int64, _ language.Tag) string { return numericText(f.Get(ms)) }

func (yearField) DurationUnit() DurationUnit      { return UnitYears }
func (yearField) RangeDurationUnit() DurationUnit { return nil }

func (f yearField) IsLeap(ms int64) bool {
	return gregorian.IsLeapYear(int64(f.Get(ms)))
}

func (f yearField) LeapAmount(ms int64) int {
	if f.IsLeap(ms) {
		return 1
	}
	return 0
}

func (yearField) LeapDurationUnit() DurationUnit { return UnitDays }

func (yearField) MinimumValue() int        { return minYear }
func (yearField) MinimumValueAt(int64) int { return minYear }
func (yearField) MaximumValue() int        { return maxYear }
func (yearField) MaximumValueAt(int64) int { return maxYear }

func (yearField) MaximumTextLength(language.Tag) int {
	return numericMaxLength(minYear, maxYear)
}

func (f yearField) MaximumShortTextLength(tag language.Tag) int {
	return f.MaximumTextLength(tag)
}

func (f yearField) Remainder(ms int64) int64 {
	year, _, _ := gregorian.CivilFromMillis(ms)
	return ms - gregorian.MillisAtStartOfYear(year)
}

type monthOfYearField struct{}

var _ Field = monthOfYearField{}

func (monthOfYearField) Type() FieldType { return FieldTypeMonthOfYear }
func (monthOfYearField) Name() string    { return string(FieldTypeMonthOfYear) }

func (monthOfYearField) Get(ms int64) int {
	_, month, _ := gregorian.CivilFromMillis(ms)
	return month
}

func (f monthOfYearField) Text(ms int64, locale language.Tag) string {
	return l10n.Month(locale, f.Get(ms))
}

func (f monthOfYearField) ShortText(ms int64, locale language.Tag) string {
	return l10n.MonthShort(locale, f.Get(ms))
}

func (monthOfYearField) DurationUnit() DurationUnit      { return UnitMonths }
func (monthOfYearField) RangeDurationUnit() DurationUnit { return UnitYears }

// A leap February: the month that contains the leap day.
func (monthOfYearField) IsLeap(ms int64) bool {
	year, month, _ := gregorian.CivilFromMillis(ms)
	return month == 2 && gregorian.IsLeapYear(year)
}

func (f monthOfYearField) LeapAmount(ms int64) int {
	if f.IsLeap(ms) {
		return 1
	}
	return 0
}

func (monthOfYearField) LeapDurationUnit() DurationUnit { return UnitDays }

func (monthOfYearField) MinimumValue() int        { return 1 }
func (monthOfYearField) MinimumValueAt(int64) int { return 1 }
func (monthOfYearField) MaximumValue() int        { return 12 }
func (monthOfYearField) MaximumValueAt(int64) int { return 12 }

func (monthOfYearField) MaximumTextLength(locale language.Tag) int {
	return l10n.MaxMonthLength(locale, false)
}

func (monthOfYearField) MaximumShortTextLength(locale language.Tag) int {
	return l10n.MaxMonthLength(locale, true)
}

func (monthOfYearField) Remainder(ms int64) int64 {
	year, month, _ := gregorian.CivilFromMillis(ms)
	return ms - gregorian.MillisAtStartOfMonth(year, month)
}

type dayOfMonthField struct{}

var _ Field = dayOfMonthField{}

func (dayOfMonthField) Type() FieldType { return FieldTypeDayOfMonth }
func (dayOfMonthField) Name() string    { return string(FieldTypeDayOfMonth) }

func (dayOfMonthField) Get(ms int64) int {
	_, _, day := gregorian.CivilFromMillis(ms)
	return day
}

func (f dayOfMonthField) Text(ms int64, _ language.Tag) string      { return numericText(f.Get(ms)) }
func (f dayOfMonthField) ShortText(ms int64, _ language.Tag) string { return numericText(f.Get(ms)) }

func (dayOfMonthField) DurationUnit() DurationUnit      { return UnitDays }
func (dayOfMonthField) RangeDurationUnit() DurationUnit { return UnitMonths }

// The leap day itself: February 29th.
func (dayOfMonthField) IsLeap(ms int64) bool {
	_, month, day := gregorian.CivilFromMillis(ms)
	return month == 2 && day == 29
}

func (f dayOfMonthField) LeapAmount(ms int64) int {
	if f.IsLeap(ms) {
		return 1
	}
	return 0
}

func (dayOfMonthField) LeapDurationUnit() DurationUnit { return UnitDays }

func (dayOfMonthField) MinimumValue() int        { return 1 }
func (dayOfMonthField) MinimumValueAt(int64) int { return 1 }
func (dayOfMonthField) MaximumValue() int        { return 31 }

func (dayOfMonthField) MaximumValueAt(ms int64) int {
	year, month, _ := gregorian.CivilFromMillis(ms)
	return gregorian.DaysInMonth(year, month)
}

func (dayOfMonthField) MaximumTextLength(language.Tag) int      { return 2 }
func (dayOfMonthField) MaximumShortTextLength(language.Tag) int { return 2 }

func (dayOfMonthField) Remainder(ms int64) int64 {
	return gregorian.FloorMod(ms, gregorian.MillisPerDay)
}

type dayOfYearField struct{}

var _ Field = dayOfYearField{}

func (dayOfYearField) Type() FieldType { return FieldTypeDayOfYear }
func (dayOfYearField) Name() string    { return string(FieldTypeDayOfYear) }

func (dayOfYearField) Get(ms int64) int {
	year, month, day := gregorian.CivilFromMillis(ms)
	return gregorian.DayOfYear(year, month, day)
}

func (f dayOfYearField) Text(ms int64, _ language.Tag) string      { return numericText(f.Get(ms)) }
func (f dayOfYearField) ShortText(ms int64, _ language.Tag) string { return numericText(f.Get(ms)) }

func (dayOfYearField) DurationUnit() DurationUnit      { return UnitDays }
func (dayOfYearField) RangeDurationUnit() DurationUnit { return UnitYears }

func (dayOfYearField) IsLeap(int64) bool              { return false }
func (dayOfYearField) LeapAmount(int64) int           { return 0 }
func (dayOfYearField) LeapDurationUnit() DurationUnit { return nil }

func (dayOfYearField) MinimumValue() int        { return 1 }
func (dayOfYearField) MinimumValueAt(int64) int { return 1 }
func (dayOfYearField) MaximumValue() int        { return 366 }

func (dayOfYearField) MaximumValueAt(ms int64) int {
	year, _, _ := gregorian.CivilFromMillis(ms)
	return gregorian.DaysInYear(year)
}

func (dayOfYearField) MaximumTextLength(language.Tag) int      { return 3 }
func (dayOfYearField) MaximumShortTextLength(language.Tag) int { return 3 }

func (dayOfYearField) Remainder(ms int64) int64 {
	return gregorian.FloorMod(ms, gregorian.MillisPerDay)
}

// eraField reports 0 (BCE) for years before 1 and 1 (CE) otherwise. An era
// has no meaningful duration, so its unit is the unsupported sentinel, and no
// containing range, so its range unit is nil.
type eraField struct{}

var _ Field = eraField{}

const (
	eraBCE = 0
	eraCE  = 1
)

func (eraField) Type() FieldType { return FieldTypeEra }
func (eraField) Name() string    { return string(FieldTypeEra) }

func (eraField) Get(ms int64) int {
	year, _, _ := gregorian.CivilFromMillis(ms)
	if year < 1 {
		return eraBCE
	}
	return eraCE
}

func (f eraField) Text(ms int64, locale language.Tag) string {
	return l10n.Era(locale, f.Get(ms))
}

func (f eraField) ShortText(ms int64, locale language.Tag) string {
	return f.Text(ms, locale)
}

func (eraField) DurationUnit() DurationUnit      { return UnitUnsupported }
func (eraField) RangeDurationUnit() DurationUnit { return nil }

func (eraField) IsLeap(int64) bool              { return false }
func (eraField) LeapAmount(int64) int           { return 0 }
func (eraField) LeapDurationUnit() DurationUnit { return nil }

func (eraField) MinimumValue() int        { return eraBCE }
func (eraField) MinimumValueAt(int64) int { return eraBCE }
func (eraField) MaximumValue() int        { return eraCE }
func (eraField) MaximumValueAt(int64) int { return eraCE }

func (eraField) MaximumTextLength(locale language.Tag) int {
	return l10n.MaxEraLength(locale)
}

func (f eraField) MaximumShortTextLength(locale language.Tag) int {
	return f.MaximumTextLength(locale)
}

// The era's unit is unsupported, so there is no sub-era granularity to
// report a remainder against.
func (eraField) Remainder(int64) int64 { return 0 }

var (
	isoEra         Field = eraField{}
	isoYear        Field = yearField{}
	isoMonthOfYear Field = monthOfYearField{}
	isoDayOfMonth  Field = dayOfMonthField{}
	isoDayOfYear   Field = dayOfYearField{}
)
