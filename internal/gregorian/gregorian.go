// Package gregorian holds the integer arithmetic of the proleptic Gregorian
// calendar: conversions between epoch days and civil dates, leap year rules,
// and the millisecond spans of the fixed-length units.
//
// Conversions follow the standard era-based civil calendar algorithms, which
// are exact over the whole signed 64-bit millisecond range.
package gregorian

const (
	MillisPerSecond int64 = 1000
	MillisPerMinute       = 60 * MillisPerSecond
	MillisPerHour         = 60 * MillisPerMinute
	MillisPerDay          = 24 * MillisPerHour
	MillisPerWeek         = 7 * MillisPerDay

	// Mean spans of the variable-length units, per the Gregorian 400-year
	// cycle (146097 days). Used only as nominal unit sizes; field values are
	// always computed from the civil conversion, never from these.
	MillisPerYear  = 146097 * MillisPerDay / 400
	MillisPerMonth = MillisPerYear / 12

	// Days between 0000-03-01 and 1970-01-01, the epoch shift used by the
	// civil conversions.
	epochShiftDays = 719468

	daysPerCycle  = 146097
	yearsPerCycle = 400
)

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the remainder of FloorDiv; the result is always in
// [0, b) for positive b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}

// IsLeapYear reports whether the given proleptic Gregorian year is a leap
// year. Year 0 exists and is a leap year.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonthTable = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month of the given
// year, accounting for leap Februaries.
func DaysInMonth(year int64, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonthTable[month]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int64) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// cumulative day counts before each month in a non-leap year
var daysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DayOfYear returns the ordinal day within the year, 1-based.
func DayOfYear(year int64, month, day int) int {
	doy := daysBeforeMonth[month] + day
	if month > 2 && IsLeapYear(year) {
		doy++
	}
	return doy
}

// CivilFromDays converts a count of days since 1970-01-01 into a proleptic
// Gregorian (year, month, day).
func CivilFromDays(days int64) (year int64, month, day int) {
	z := days + epochShiftDays
	era := FloorDiv(z, daysPerCycle)
	doe := z - era*daysPerCycle                            // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	year = yoe + era*yearsPerCycle
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp) + 3
	} else {
		month = int(mp) - 9
	}
	if month <= 2 {
		year++
	}
	return year, month, day
}

// DaysFromCivil converts a proleptic Gregorian date into a count of days
// since 1970-01-01. It is the inverse of CivilFromDays.
func DaysFromCivil(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := FloorDiv(y, yearsPerCycle)
	yoe := y - era*yearsPerCycle // [0, 399]
	var mshift int64
	if month > 2 {
		mshift = int64(month) - 3
	} else {
		mshift = int64(month) + 9
	}
	doy := (153*mshift+2)/5 + int64(day) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy   // [0, 146096]
	return era*daysPerCycle + doe - epochShiftDays
}

// CivilFromMillis splits an epoch-millisecond position into its civil date.
func CivilFromMillis(ms int64) (year int64, month, day int) {
	return CivilFromDays(FloorDiv(ms, MillisPerDay))
}

// MillisAtStartOfYear returns the epoch-millisecond position of midnight on
// January 1st of the given year.
func MillisAtStartOfYear(year int64) int64 {
	return DaysFromCivil(year, 1, 1) * MillisPerDay
}

// MillisAtStartOfMonth returns the epoch-millisecond position of midnight on
// the first day of the given month.
func MillisAtStartOfMonth(year int64, month int) int64 {
	return DaysFromCivil(year, month, 1) * MillisPerDay
}
