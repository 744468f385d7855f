package domain

import "time"

// AgeBucket is a coarse age category token accepted by the list filter.
type AgeBucket string

const (
	AgeUpToHalfYear  AgeBucket = "0_0.5"
	AgeHalfYearToOne AgeBucket = "0.5_1"
	AgeOneToThree    AgeBucket = "1_3"
	AgeThreeToSeven  AgeBucket = "3_7"
	AgeSevenAndOlder AgeBucket = "7_inf"
	AgeUnknown       AgeBucket = "unknown"
)

// maxAgeMonths caps the open-ended bucket so it still translates to a bounded range.
const maxAgeMonths = 100 * 12

// ageBounds are calendar offsets in months from today.
type ageBounds struct {
	lower int
	upper int
}

var bucketBounds = map[AgeBucket]ageBounds{
	AgeUpToHalfYear:  {0, 6},
	AgeHalfYearToOne: {6, 12},
	AgeOneToThree:    {12, 36},
	AgeThreeToSeven:  {36, 84},
	AgeSevenAndOlder: {84, maxAgeMonths},
}

// AgeBuckets lists every bucket in display order.
func AgeBuckets() []AgeBucket {
	return []AgeBucket{
		AgeUpToHalfYear, AgeHalfYearToOne, AgeOneToThree,
		AgeThreeToSeven, AgeSevenAndOlder, AgeUnknown,
	}
}

func (b AgeBucket) String() string { return string(b) }

func (b AgeBucket) IsValid() bool {
	if b == AgeUnknown {
		return true
	}
	_, ok := bucketBounds[b]
	return ok
}

// Label is the Russian filter label.
func (b AgeBucket) Label() string {
	switch b {
	case AgeUpToHalfYear:
		return "До 6 месяцев"
	case AgeHalfYearToOne:
		return "6-12 месяцев"
	case AgeOneToThree:
		return "1-3 года"
	case AgeThreeToSeven:
		return "3-7 лет"
	case AgeSevenAndOlder:
		return "Старше 7 лет"
	case AgeUnknown:
		return "Возраст неизвестен"
	}
	return string(b)
}

// ParseAgeBucket validates a filter token.
func ParseAgeBucket(s string) (AgeBucket, error) {
	b := AgeBucket(s)
	if !b.IsValid() {
		return "", NewValidationError("age_category", "unknown age category "+s)
	}
	return b, nil
}

// Range returns the inclusive birth-date range [from, to] for the bucket:
// today-upper <= birth_date <= today-lower. ok is false for AgeUnknown, which
// matches a missing birth date instead of a range.
func (b AgeBucket) Range(today time.Time) (from, to time.Time, ok bool) {
	bounds, found := bucketBounds[b]
	if !found {
		return time.Time{}, time.Time{}, false
	}
	today = DateOnly(today)
	return addMonthsClamped(today, -bounds.upper), addMonthsClamped(today, -bounds.lower), true
}

// Contains reports whether birth falls inside the bucket range as of today.
func (b AgeBucket) Contains(birth *time.Time, today time.Time) bool {
	if b == AgeUnknown {
		return birth == nil
	}
	if birth == nil {
		return false
	}
	from, to, ok := b.Range(today)
	if !ok {
		return false
	}
	d := DateOnly(*birth)
	return !d.Before(from) && !d.After(to)
}

// ClassifyAge returns the first bucket containing birth. Boundary dates belong to the
// younger bucket. Dates in the future or beyond the cap return "".
func ClassifyAge(birth *time.Time, today time.Time) AgeBucket {
	if birth == nil {
		return AgeUnknown
	}
	for _, b := range AgeBuckets() {
		if b != AgeUnknown && b.Contains(birth, today) {
			return b
		}
	}
	return ""
}

// CalendarDiff returns the calendar-aware difference between birth and today.
// A birth date after today yields zeros.
func CalendarDiff(birth, today time.Time) (years, months, days int) {
	birth, today = DateOnly(birth), DateOnly(today)
	if birth.After(today) {
		return 0, 0, 0
	}

	total := (today.Year()-birth.Year())*12 + int(today.Month()-birth.Month())
	anchor := addMonthsClamped(birth, total)
	if anchor.After(today) {
		total--
		anchor = addMonthsClamped(birth, total)
	}

	days = int(today.Sub(anchor).Hours() / 24)
	return total / 12, total % 12, days
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// addMonthsClamped shifts t by n months, clamping the day to the target month's
// length (Aug 31 - 6 months = Feb 28/29), unlike time.AddDate which overflows.
func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	idx := int(m) - 1 + n
	y += idx / 12
	idx %= 12
	if idx < 0 {
		idx += 12
		y--
	}
	month := time.Month(idx + 1)
	if last := daysIn(y, month); d > last {
		d = last
	}
	return time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
