package record

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Status string

const (
	StatusInProgress Status = "jarayonda"
	StatusCompleted  Status = "bajarilgan"
)

func (Status) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: "string",
		Enum: []any{
			string(StatusInProgress),
			string(StatusCompleted),
		},
		Description: "Статус обращения",
		Examples:    []any{StatusInProgress},
	}
}

// Validate принимает только jarayonda и bajarilgan
func (s Status) Validate() error {
	switch s {
	case StatusInProgress, StatusCompleted:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

// Known сообщает, что статус - одно из двух допустимых значений.
// Любое другое значение фильтр считает "не заданным".
func (s Status) Known() bool {
	return s.Validate() == nil
}

func (s Status) String() string {
	return string(s)
}

// DisplayName возвращает заголовок таблицы для статуса.
func (s Status) DisplayName() string {
	switch s {
	case StatusInProgress:
		return "JARAYONDA"
	case StatusCompleted:
		return "BAJARILGAN"
	default:
		return "MUROJATLAR"
	}
}

// DateBucket - быстрый фильтр по дате создания
type DateBucket string

const (
	BucketAll   DateBucket = "all"
	BucketDay   DateBucket = "day"
	BucketMonth DateBucket = "month"
	BucketYear  DateBucket = "year"
)

func (b DateBucket) Validate() error {
	switch b {
	case "", BucketAll, BucketDay, BucketMonth, BucketYear:
		return nil
	}
	return fmt.Errorf("неверный фильтр даты: %s", string(b))
}

// StatusFilter - значение фильтра по статусу: "all" или конкретный статус
type StatusFilter string

const StatusAll StatusFilter = "all"

func (f StatusFilter) Validate() error {
	if f == "" || f == StatusAll {
		return nil
	}
	return Status(f).Validate()
}

// Title возвращает заголовок таблицы для текущего фильтра
func (f StatusFilter) Title() string {
	return Status(f).DisplayName()
}
