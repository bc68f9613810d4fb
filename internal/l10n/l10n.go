// Package l10n holds the localized symbol tables for text-valued calendar
// fields: month, weekday, halfday and era names, in full and abbreviated
// form. Requested locales resolve to the closest supported language via
// golang.org/x/text language matching; language.Und resolves to English.
package l10n

import (
	"unicode/utf8"

	"golang.org/x/text/language"
)

type symbols struct {
	months        [13]string // 1-indexed
	monthsShort   [13]string
	weekdays      [8]string // 1 = Monday ... 7 = Sunday
	weekdaysShort [8]string
	halfdays      [2]string // 0 = AM, 1 = PM
	eras          [2]string // 0 = BCE, 1 = CE
}

var english = &symbols{
	months: [13]string{"", "January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	monthsShort: [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	weekdays:      [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	weekdaysShort: [8]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	halfdays:      [2]string{"AM", "PM"},
	eras:          [2]string{"BC", "AD"},
}

var german = &symbols{
	months: [13]string{"", "Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	monthsShort: [13]string{"", "Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	weekdays:      [8]string{"", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
	weekdaysShort: [8]string{"", "Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
	halfdays:      [2]string{"AM", "PM"},
	eras:          [2]string{"v. Chr.", "n. Chr."},
}

var french = &symbols{
	months: [13]string{"", "janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	monthsShort: [13]string{"", "janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc."},
	weekdays:      [8]string{"", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"},
	weekdaysShort: [8]string{"", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."},
	halfdays:      [2]string{"AM", "PM"},
	eras:          [2]string{"av. J.-C.", "ap. J.-C."},
}

var spanish = &symbols{
	months: [13]string{"", "enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	monthsShort: [13]string{"", "ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sep", "oct", "nov", "dic"},
	weekdays:      [8]string{"", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"},
	weekdaysShort: [8]string{"", "lun", "mar", "mié", "jue", "vie", "sáb", "dom"},
	halfdays:      [2]string{"AM", "PM"},
	eras:          [2]string{"a. C.", "d. C."},
}

var supported = []language.Tag{
	language.English, // default; the matcher falls back to index 0
	language.German,
	language.French,
	language.Spanish,
}

var tables = []*symbols{english, german, french, spanish}

var matcher = language.NewMatcher(supported)

func lookup(tag language.Tag) *symbols {
	if tag == language.Und {
		return english
	}
	_, index, _ := matcher.Match(tag)
	return tables[index]
}

// Month returns the full name of month n (1-12) in the closest supported
// language.
func Month(tag language.Tag, n int) string { return lookup(tag).months[n] }

// MonthShort returns the abbreviated name of month n (1-12).
func MonthShort(tag language.Tag, n int) string { return lookup(tag).monthsShort[n] }

// Weekday returns the full name of ISO weekday n (1 = Monday ... 7 = Sunday).
func Weekday(tag language.Tag, n int) string { return lookup(tag).weekdays[n] }

// WeekdayShort returns the abbreviated name of ISO weekday n.
func WeekdayShort(tag language.Tag, n int) string { return lookup(tag).weekdaysShort[n] }

// Halfday returns the name of halfday n (0 = AM, 1 = PM). There is no
// separate abbreviated form.
func Halfday(tag language.Tag, n int) string { return lookup(tag).halfdays[n] }

// Era returns the name of era n (0 = BCE, 1 = CE).
func Era(tag language.Tag, n int) string { return lookup(tag).eras[n] }

func maxLen(names []string) int {
	longest := 0
	for _, name := range names {
		if l := utf8.RuneCountInString(name); l > longest {
			longest = l
		}
	}
	return longest
}

// MaxMonthLength returns the rendered width, in runes, of the widest month
// name for the locale.
func MaxMonthLength(tag language.Tag, short bool) int {
	t := lookup(tag)
	if short {
		return maxLen(t.monthsShort[1:])
	}
	return maxLen(t.months[1:])
}

// MaxWeekdayLength returns the width of the widest weekday name.
func MaxWeekdayLength(tag language.Tag, short bool) int {
	t := lookup(tag)
	if short {
		return maxLen(t.weekdaysShort[1:])
	}
	return maxLen(t.weekdays[1:])
}

// MaxHalfdayLength returns the width of the widest halfday name.
func MaxHalfdayLength(tag language.Tag) int {
	return maxLen(lookup(tag).halfdays[:])
}

// MaxEraLength returns the width of the widest era name.
func MaxEraLength(tag language.Tag) int {
	return maxLen(lookup(tag).eras[:])
}
