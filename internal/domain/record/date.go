package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout - формат поля createdAt (день.месяц.год)
const DateLayout = "02.01.2006"

// DateError описывает строку, которую не удалось разобрать как DD.MM.YYYY
type DateError struct {
	Value  string
	Reason string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("malformed date %q: %s", e.Value, e.Reason)
}

func (e *DateError) Unwrap() error {
	return ErrMalformedDate
}

// ParseDate разбирает дату вида DD.MM.YYYY в календарный день (полночь UTC).
// Однозначные день и месяц допускаются, несуществующие даты (31.02) - нет.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return time.Time{}, &DateError{Value: s, Reason: "expected three dot-separated parts"}
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return time.Time{}, &DateError{Value: s, Reason: "non-numeric or non-positive part"}
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if month > 12 {
		return time.Time{}, &DateError{Value: s, Reason: "month out of range"}
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, &DateError{Value: s, Reason: "no such calendar day"}
	}

	return t, nil
}

// FormatDate форматирует календарный день как DD.MM.YYYY
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalendarDay отбрасывает время и зону, оставляя только день
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CurrentLabels возвращает подписи "Joriy kun / oy / yil" для дашборда
func CurrentLabels(now time.Time) (day, month, year string) {
	return now.Format("02.01.2006"), now.Format("01.2006"), now.Format("2006")
}
