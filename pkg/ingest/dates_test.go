package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseReportDateISO(t *testing.T) {
	got := ParseReportDate("2017-03-28")
	require.NotNil(t, got)
	assert.Equal(t, date(2017, time.March, 28), *got)

	// Trailing time is tolerated.
	got = ParseReportDate("2021-11-02 08:15")
	require.NotNil(t, got)
	assert.Equal(t, date(2021, time.November, 2), *got)
}

func TestParseReportDateDayFirst(t *testing.T) {
	for _, text := range []string{"28.03.2017", "28/03/2017", "28-03-2017"} {
		got := ParseReportDate(text)
		require.NotNil(t, got, text)
		assert.Equal(t, date(2017, time.March, 28), *got, text)
	}
}

func TestParseReportDateMonthFirst(t *testing.T) {
	// First component cannot be a day-first date (second > 12).
	got := ParseReportDate("03/28/2017")
	require.NotNil(t, got)
	assert.Equal(t, date(2017, time.March, 28), *got)
}

func TestParseReportDateAmbiguousRefused(t *testing.T) {
	// Both components ≤ 12: could be Mar 4 or Apr 3.
	assert.Nil(t, ParseReportDate("03/04/2017"))
	assert.Nil(t, ParseReportDate("1.2.99"))
}

func TestParseReportDateTwoDigitYearPivot(t *testing.T) {
	got := ParseReportDate("28.03.50")
	require.NotNil(t, got)
	assert.Equal(t, 1950, got.Year())

	got = ParseReportDate("28.03.49")
	require.NotNil(t, got)
	assert.Equal(t, 2049, got.Year())
}

func TestParseReportDateLeapYear(t *testing.T) {
	got := ParseReportDate("29.02.2024")
	require.NotNil(t, got)
	assert.Equal(t, date(2024, time.February, 29), *got)

	// 2023 is not a leap year; Feb 29 must not normalize to Mar 1.
	assert.Nil(t, ParseReportDate("29.02.2023"))
	assert.Nil(t, ParseReportDate("2023-02-29"))
}

func TestParseReportDateGarbage(t *testing.T) {
	for _, text := range []string{"", "  ", "yesterday", "31.31.2020", "2020-13-01", "0.0.0"} {
		assert.Nil(t, ParseReportDate(text), text)
	}
}
