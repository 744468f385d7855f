package locale

import (
	"fmt"
	"strings"
	"time"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Formatter renders human-readable values for one locale.
type Formatter interface {
	// FormatAge renders the age of an animal born at birth as of today.
	FormatAge(birth *time.Time, today time.Time) string
}

// unitFormatter formats ages from per-unit plural forms.
type unitFormatter struct {
	plural  func(int) Form
	years   forms
	months  forms
	days    forms
	unknown string
}

func (f unitFormatter) FormatAge(birth *time.Time, today time.Time) string {
	if birth == nil {
		return f.unknown
	}
	years, months, days := domain.CalendarDiff(*birth, today)

	parts := make([]string, 0, 2)
	if years > 0 {
		parts = append(parts, f.unit(years, f.years))
	}
	if months > 0 {
		parts = append(parts, f.unit(months, f.months))
	}
	if len(parts) == 0 {
		return f.unit(days, f.days)
	}
	return strings.Join(parts, ", ")
}

func (f unitFormatter) unit(n int, fs forms) string {
	return fmt.Sprintf("%d %s", n, fs.pick(f.plural(n)))
}

// Russian formats with Russian plural agreement.
var Russian Formatter = unitFormatter{
	plural:  PluralRu,
	years:   forms{"год", "года", "лет"},
	months:  forms{"месяц", "месяца", "месяцев"},
	days:    forms{"день", "дня", "дней"},
	unknown: "Неизвестно",
}

// English formats with English plural agreement.
var English Formatter = unitFormatter{
	plural:  PluralEn,
	years:   forms{"year", "", "years"},
	months:  forms{"month", "", "months"},
	days:    forms{"day", "", "days"},
	unknown: "Unknown",
}
