package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// twoDigitYearPivot: two-digit years at or above it are 19xx, below are 20xx.
const twoDigitYearPivot = 50

var (
	isoDatePattern     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	slashedDatePattern = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{2,4})$`)
)

// ParseReportDate derives a concrete date from the free-form test-date text
// printed on a report. It returns nil for empty, malformed, and genuinely
// ambiguous input; the original text is persisted regardless, so a nil here
// loses nothing.
//
// Accepted forms:
//   - ISO: 2017-03-28, optionally followed by a time.
//   - Day-first numeric (European labs): 28.03.2017, 28/03/2017, 28-03-17.
//     When both day and month are ≤ 12 the order is ambiguous and the
//     parser refuses rather than guessing.
//   - Month-first numeric is accepted only when the first component cannot
//     be a day-first date (first > 12 is impossible as a month).
//
// Two-digit years pivot at 50: 50 → 1950, 49 → 2049.
func ParseReportDate(text string) *time.Time {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if m := isoDatePattern.FindStringSubmatch(trimmed); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return makeDate(year, month, day)
	}

	if m := slashedDatePattern.FindStringSubmatch(trimmed); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year = expandTwoDigitYear(year)
		}

		switch {
		case first > 12 && second <= 12:
			// Unambiguous day-first.
			return makeDate(year, second, first)
		case first <= 12 && second > 12:
			// Unambiguous month-first.
			return makeDate(year, first, second)
		default:
			// day ≤ 12 ∧ month ≤ 12: ambiguous, refuse.
			return nil
		}
	}

	return nil
}

// expandTwoDigitYear applies the pivot: 50 → 1950, 49 → 2049.
func expandTwoDigitYear(year int) int {
	if year >= twoDigitYearPivot {
		return 1900 + year
	}
	return 2000 + year
}

// makeDate validates the calendar date, including leap-year Feb 29, and
// returns it in UTC. Invalid dates return nil.
func makeDate(year, month, day int) *time.Time {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 → Mar 2); reject anything that
	// moved.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return nil
	}
	return &t
}
