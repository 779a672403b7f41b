package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DatePrecision represents how much of a date is known.
type DatePrecision string

const (
	PrecisionYear  DatePrecision = "year"
	PrecisionMonth DatePrecision = "month"
	PrecisionDay   DatePrecision = "day"
)

// DateQualifier represents the confidence qualifier on a genealogical date.
type DateQualifier string

const (
	DateExact   DateQualifier = "exact"
	DateAbout   DateQualifier = "about"
	DateBefore  DateQualifier = "before"
	DateAfter   DateQualifier = "after"
	DateBetween DateQualifier = "between"
)

// IsValid checks if the date qualifier is a recognized value.
func (d DateQualifier) IsValid() bool {
	switch d {
	case DateExact, DateAbout, DateBefore, DateAfter, DateBetween, "":
		return true
	default:
		return false
	}
}

// DateInfo represents a genealogical date with flexible precision, per §3 of
// the comparison core's data model.
type DateInfo struct {
	Raw       string        `json:"raw"`             // original textual form, preserved for display
	Precision DatePrecision `json:"precision"`       // year, month, or day
	Qualifier DateQualifier `json:"qualifier"`       // exact, about, before, after, between
	Year      *int          `json:"year,omitempty"`
	Month     *int          `json:"month,omitempty"`
	Day       *int          `json:"day,omitempty"`
	YearEnd   *int          `json:"year_end,omitempty"` // only set when Qualifier == DateBetween
}

// GEDCOM-style month abbreviations, kept because both example loaders in the
// pack (cacack/gedcom-go and my-family's own importer) speak this format.
var monthMap = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

var reverseMonthMap = map[int]string{
	1: "JAN", 2: "FEB", 3: "MAR", 4: "APR", 5: "MAY", 6: "JUN",
	7: "JUL", 8: "AUG", 9: "SEP", 10: "OCT", 11: "NOV", 12: "DEC",
}

// ParseDateInfo parses a loosely GEDCOM-flavored date string into a DateInfo.
// The loader builds its DateInfo values itself and the core never
// re-parses a DateInfo; tests use this to build dates from strings.
func ParseDateInfo(s string) DateInfo {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateInfo{}
	}

	di := DateInfo{Raw: s, Qualifier: DateExact}
	upper := strings.ToUpper(s)

	switch {
	case strings.HasPrefix(upper, "ABT "):
		di.Qualifier = DateAbout
		upper = strings.TrimPrefix(upper, "ABT ")
	case strings.HasPrefix(upper, "ABOUT "):
		di.Qualifier = DateAbout
		upper = strings.TrimPrefix(upper, "ABOUT ")
	case strings.HasPrefix(upper, "BEF "):
		di.Qualifier = DateBefore
		upper = strings.TrimPrefix(upper, "BEF ")
	case strings.HasPrefix(upper, "BEFORE "):
		di.Qualifier = DateBefore
		upper = strings.TrimPrefix(upper, "BEFORE ")
	case strings.HasPrefix(upper, "AFT "):
		di.Qualifier = DateAfter
		upper = strings.TrimPrefix(upper, "AFT ")
	case strings.HasPrefix(upper, "AFTER "):
		di.Qualifier = DateAfter
		upper = strings.TrimPrefix(upper, "AFTER ")
	case strings.HasPrefix(upper, "BET "):
		di.Qualifier = DateBetween
		upper = strings.TrimPrefix(upper, "BET ")
	}

	if di.Qualifier == DateBetween {
		parts := strings.SplitN(upper, " AND ", 2)
		if len(parts) == 2 {
			parseSimpleDate(strings.TrimSpace(parts[0]), &di.Year, &di.Month, &di.Day)
			var endMonth, endDay *int
			parseSimpleDate(strings.TrimSpace(parts[1]), &di.YearEnd, &endMonth, &endDay)
			di.Precision = precisionOf(di.Year, di.Month, di.Day)
			return di
		}
	}

	parseSimpleDate(upper, &di.Year, &di.Month, &di.Day)
	di.Precision = precisionOf(di.Year, di.Month, di.Day)
	return di
}

func precisionOf(year, month, day *int) DatePrecision {
	switch {
	case day != nil:
		return PrecisionDay
	case month != nil:
		return PrecisionMonth
	default:
		return PrecisionYear
	}
}

// parseSimpleDate parses a simple date like "1 JAN 1850", "JAN 1850", or "1850".
func parseSimpleDate(s string, year, month, day **int) {
	parts := strings.Fields(strings.TrimSpace(s))

	switch len(parts) {
	case 1:
		if y, err := strconv.Atoi(parts[0]); err == nil {
			*year = &y
		}
	case 2:
		if m, ok := monthMap[parts[0]]; ok {
			*month = &m
			if y, err := strconv.Atoi(parts[1]); err == nil {
				*year = &y
			}
		}
	case 3:
		if d, err := strconv.Atoi(parts[0]); err == nil {
			*day = &d
		}
		if m, ok := monthMap[parts[1]]; ok {
			*month = &m
		}
		if y, err := strconv.Atoi(parts[2]); err == nil {
			*year = &y
		}
	}
}

// String returns the original textual form if available, else a formatted one.
func (d DateInfo) String() string {
	if d.Raw != "" {
		return d.Raw
	}
	return d.Format()
}

// Format generates a GEDCOM-flavored date string from the parsed components.
func (d DateInfo) Format() string {
	if d.Year == nil {
		return ""
	}

	if d.Qualifier == DateBetween {
		return fmt.Sprintf("BET %s AND %s", formatSimpleDate(d.Year, d.Month, d.Day), yearOnly(d.YearEnd))
	}

	var prefix string
	switch d.Qualifier {
	case DateAbout:
		prefix = "ABT "
	case DateBefore:
		prefix = "BEF "
	case DateAfter:
		prefix = "AFT "
	}
	return prefix + formatSimpleDate(d.Year, d.Month, d.Day)
}

func formatSimpleDate(year, month, day *int) string {
	if year == nil {
		return ""
	}
	var parts []string
	if day != nil {
		parts = append(parts, strconv.Itoa(*day))
	}
	if month != nil && *month >= 1 && *month <= 12 {
		parts = append(parts, reverseMonthMap[*month])
	}
	parts = append(parts, strconv.Itoa(*year))
	return strings.Join(parts, " ")
}

func yearOnly(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

// IsEmpty returns true if the date has no year, the minimum needed to compare.
func (d DateInfo) IsEmpty() bool {
	return d.Year == nil
}

// ToTime converts the DateInfo to a time.Time for sorting, filling a missing
// month or day with 1. The qualifier and YearEnd are not considered.
func (d DateInfo) ToTime() time.Time {
	if d.Year == nil {
		return time.Time{}
	}
	month := time.January
	day := 1
	if d.Month != nil {
		month = time.Month(*d.Month)
	}
	if d.Day != nil {
		day = *d.Day
	}
	return time.Date(*d.Year, month, day, 0, 0, 0, 0, time.UTC)
}

// Validate checks that the date's numeric components are in range.
func (d DateInfo) Validate() error {
	if !d.Qualifier.IsValid() {
		return fmt.Errorf("invalid qualifier: %s", d.Qualifier)
	}
	if d.Month != nil && (*d.Month < 1 || *d.Month > 12) {
		return fmt.Errorf("invalid month: %d", *d.Month)
	}
	if d.Day != nil && (*d.Day < 1 || *d.Day > 31) {
		return fmt.Errorf("invalid day: %d", *d.Day)
	}
	if d.Qualifier == DateBetween && d.YearEnd == nil {
		return fmt.Errorf("between date missing year_end")
	}
	return nil
}

// Before returns true if this date sorts before the other date.
func (d DateInfo) Before(other DateInfo) bool {
	return d.ToTime().Before(other.ToTime())
}

// After returns true if this date sorts after the other date.
func (d DateInfo) After(other DateInfo) bool {
	return d.ToTime().After(other.ToTime())
}
