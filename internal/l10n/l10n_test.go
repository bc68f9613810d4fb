package l10n_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/jlavallee/chrono/internal/l10n"
)

func TestMonth(t *testing.T) {
	cases := []struct {
		tag      language.Tag
		month    int
		expected string
		short    string
	}{
		{language.Und, 1, "January", "Jan"},
		{language.English, 7, "July", "Jul"},
		{language.German, 3, "März", "Mär"},
		{language.French, 8, "août", "août"},
		{language.Spanish, 12, "diciembre", "dic"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, l10n.Month(c.tag, c.month))
		assert.Equal(t, c.short, l10n.MonthShort(c.tag, c.month))
	}
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, "Monday", l10n.Weekday(language.Und, 1))
	assert.Equal(t, "Sunday", l10n.Weekday(language.English, 7))
	assert.Equal(t, "Mittwoch", l10n.Weekday(language.German, 3))
	assert.Equal(t, "dim.", l10n.WeekdayShort(language.French, 7))
}

func TestHalfdayAndEra(t *testing.T) {
	assert.Equal(t, "AM", l10n.Halfday(language.Und, 0))
	assert.Equal(t, "PM", l10n.Halfday(language.Und, 1))
	assert.Equal(t, "AD", l10n.Era(language.Und, 1))
	assert.Equal(t, "BC", l10n.Era(language.Und, 0))
	assert.Equal(t, "n. Chr.", l10n.Era(language.German, 1))
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	// An unsupported language must resolve to some supported table rather
	// than fail; Japanese has no table, so the matcher falls back to the
	// default (English).
	assert.Equal(t, "January", l10n.Month(language.Japanese, 1))
}

func TestRegionalVariantsResolve(t *testing.T) {
	austrian := language.MustParse("de-AT")
	assert.Equal(t, "Januar", l10n.Month(austrian, 1), "de-AT should match the German table")

	canadianFrench := language.MustParse("fr-CA")
	assert.Equal(t, "janvier", l10n.Month(canadianFrench, 1))
}

func TestMaxLengthsBoundAllValues(t *testing.T) {
	for _, tag := range []language.Tag{language.Und, language.English, language.German, language.French, language.Spanish} {
		for month := 1; month <= 12; month++ {
			assert.LessOrEqual(t, utf8.RuneCountInString(l10n.Month(tag, month)), l10n.MaxMonthLength(tag, false))
			assert.LessOrEqual(t, utf8.RuneCountInString(l10n.MonthShort(tag, month)), l10n.MaxMonthLength(tag, true))
		}

		for day := 1; day <= 7; day++ {
			assert.LessOrEqual(t, utf8.RuneCountInString(l10n.Weekday(tag, day)), l10n.MaxWeekdayLength(tag, false))
			assert.LessOrEqual(t, utf8.RuneCountInString(l10n.WeekdayShort(tag, day)), l10n.MaxWeekdayLength(tag, true))
		}

		for n := 0; n <= 1; n++ {
			assert.LessOrEqual(t, utf8.RuneCountInString(l10n.Halfday(tag, n)), l10n.MaxHalfdayLength(tag))
			assert.LessOrEqual(t, utf8.RuneCountInString(l10n.Era(tag, n)), l10n.MaxEraLength(tag))
		}
	}
}
