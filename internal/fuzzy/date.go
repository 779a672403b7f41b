package fuzzy

import "github.com/cacack/wavematch/internal/domain"

// CompareDates implements §4.2's date-similarity ladder. Both arguments may
// be nil or empty (unknown).
func CompareDates(a, b *domain.DateInfo) float64 {
	aKnown := a != nil && a.Year != nil
	bKnown := b != nil && b.Year != nil

	if !aKnown && !bKnown {
		return 0.50
	}
	if !aKnown || !bKnown {
		return 0.30
	}

	if a.Qualifier == domain.DateBetween {
		if *b.Year >= *a.Year && *b.Year <= *a.YearEnd {
			return 0.90
		}
	}
	if b.Qualifier == domain.DateBetween {
		if *a.Year >= *b.Year && *a.Year <= *b.YearEnd {
			return 0.90
		}
	}

	if a.Qualifier == domain.DateBefore && *b.Year < *a.Year {
		return 0.85
	}
	if b.Qualifier == domain.DateBefore && *a.Year < *b.Year {
		return 0.85
	}
	if a.Qualifier == domain.DateAfter && *b.Year > *a.Year {
		return 0.85
	}
	if b.Qualifier == domain.DateAfter && *a.Year > *b.Year {
		return 0.85
	}

	deltaYear := *a.Year - *b.Year
	if deltaYear < 0 {
		deltaYear = -deltaYear
	}

	score := yearDeltaScore(deltaYear, sameMonth(a, b), sameDay(a, b))

	if hasAboutQualifier(a, b) {
		if deltaYear <= 2 && score < 0.85 {
			score = 0.85
		} else if deltaYear <= 5 && score < 0.70 {
			score = 0.70
		}
	}

	return score
}

func yearDeltaScore(deltaYear int, sameMonth, sameDay bool) float64 {
	if deltaYear == 0 {
		switch {
		case sameMonth && sameDay:
			return 1.00
		case sameMonth:
			return 0.95
		default:
			return 0.92
		}
	}
	switch {
	case deltaYear == 1:
		return 0.88
	case deltaYear == 2:
		return 0.78
	case deltaYear == 3:
		return 0.68
	case deltaYear == 4:
		return 0.58
	case deltaYear == 5:
		return 0.48
	case deltaYear <= 7:
		return 0.35
	case deltaYear <= 10:
		return 0.20
	case deltaYear <= 15:
		return 0.10
	default:
		return 0
	}
}

func sameMonth(a, b *domain.DateInfo) bool {
	return a.Month != nil && b.Month != nil && *a.Month == *b.Month
}

func sameDay(a, b *domain.DateInfo) bool {
	return sameMonth(a, b) && a.Day != nil && b.Day != nil && *a.Day == *b.Day
}

func hasAboutQualifier(a, b *domain.DateInfo) bool {
	return a.Qualifier == domain.DateAbout || b.Qualifier == domain.DateAbout
}
