package record

import (
	"strings"
	"time"
)

// DateRange - явный диапазон дат. Действует только когда заданы оба конца.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Complete сообщает, что заданы оба конца диапазона
func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// Criteria - все входы фильтра дашборда. Нулевое значение ничего не отсекает.
type Criteria struct {
	Status   StatusFilter
	Search   string
	Bucket   DateBucket
	Range    DateRange
	Employee string
}

// Counts - числа для карточек дашборда, считаются по всей коллекции
type Counts struct {
	Total      int `json:"total" yaml:"total"`
	InProgress int `json:"jarayonda" yaml:"jarayonda"`
	Completed  int `json:"bajarilgan" yaml:"bajarilgan"`
}

// View - результат фильтрации
type View struct {
	Records []Record `json:"records" yaml:"records"`
	Counts  Counts   `json:"counts" yaml:"counts"`
}

// DefaultCriteria - фильтр "показать всё"
func DefaultCriteria() Criteria {
	return Criteria{
		Status: StatusAll,
		Bucket: BucketAll,
	}
}

// Validate проверяет значения перечислений
func (c Criteria) Validate() error {
	if err := c.Status.Validate(); err != nil {
		return err
	}
	return c.Bucket.Validate()
}

// Apply фильтрует записи, сохраняя исходный порядок.
// Счётчики статусов всегда считаются по нефильтрованной коллекции.
func Apply(records []Record, c Criteria, now time.Time) View {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if c.Matches(rec, now) {
			out = append(out, rec)
		}
	}

	return View{
		Records: out,
		Counts:  CountStatuses(records),
	}
}

// CountStatuses считает записи по статусам
func CountStatuses(records []Record) Counts {
	counts := Counts{Total: len(records)}
	for _, rec := range records {
		switch rec.Status {
		case StatusInProgress:
			counts.InProgress++
		case StatusCompleted:
			counts.Completed++
		}
	}
	return counts
}

// Matches проверяет одну запись против всех предикатов (логическое И)
func (c Criteria) Matches(rec Record, now time.Time) bool {
	return c.matchStatus(rec) &&
		c.matchSearch(rec) &&
		c.matchEmployee(rec) &&
		c.matchDate(rec, now)
}

func (c Criteria) matchStatus(rec Record) bool {
	if c.Status == "" || c.Status == StatusAll {
		return true
	}
	return rec.Status == Status(c.Status)
}

func (c Criteria) matchSearch(rec Record) bool {
	if c.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.FullName), strings.ToLower(c.Search))
}

func (c Criteria) matchEmployee(rec Record) bool {
	if c.Employee == "" {
		return true
	}
	return rec.Assignee == c.Employee
}

// matchDate: явный диапазон перекрывает быстрый фильтр для записей с createdAt
func (c Criteria) matchDate(rec Record, now time.Time) bool {
	match := c.matchBucket(rec, now)

	if c.Range.Complete() && rec.CreatedAt != "" {
		day, err := ParseDate(rec.CreatedAt)
		if err != nil {
			return false
		}
		start := CalendarDay(*c.Range.Start).AddDate(0, 0, -1)
		end := CalendarDay(*c.Range.End).AddDate(0, 0, 1)
		match = day.After(start) && day.Before(end)
	}

	return match
}

func (c Criteria) matchBucket(rec Record, now time.Time) bool {
	if c.Bucket == "" || c.Bucket == BucketAll {
		return true
	}
	if rec.CreatedAt == "" {
		return false
	}

	day, err := ParseDate(rec.CreatedAt)
	if err != nil {
		return false
	}

	ny, nm, nd := now.Date()
	switch c.Bucket {
	case BucketDay:
		return day.Year() == ny && day.Month() == nm && day.Day() == nd
	case BucketMonth:
		return day.Year() == ny && day.Month() == nm
	case BucketYear:
		return day.Year() == ny
	default:
		return true
	}
}
