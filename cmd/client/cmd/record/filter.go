package record

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"murojaat/internal/domain/record"
)

// filterFlags - флаги фильтра дашборда, общие для list, stats и export
type filterFlags struct {
	status   string
	search   string
	employee string
	period   string
	from     string
	to       string
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.status, "status", "s", string(record.StatusAll), "статус: all, jarayonda, bajarilgan")
	fs.StringVarP(&f.search, "search", "q", "", "поиск по ФИО без учёта регистра")
	fs.StringVarP(&f.employee, "employee", "e", "", "только записи сотрудника")
	fs.StringVarP(&f.period, "period", "p", string(record.BucketAll), "период: all, day, month, year")
	fs.StringVar(&f.from, "from", "", "начало диапазона DD.MM.YYYY (вместе с --to)")
	fs.StringVar(&f.to, "to", "", "конец диапазона DD.MM.YYYY (вместе с --from)")
}

// criteria собирает и проверяет фильтр. Диапазон действует только с обеими датами.
func (f *filterFlags) criteria() (record.Criteria, error) {
	c := record.Criteria{
		Status:   record.StatusFilter(f.status),
		Search:   f.search,
		Employee: f.employee,
		Bucket:   record.DateBucket(f.period),
	}
	if err := c.Validate(); err != nil {
		return record.Criteria{}, err
	}

	var err error
	if c.Range.Start, err = parseFlagDate("from", f.from); err != nil {
		return record.Criteria{}, err
	}
	if c.Range.End, err = parseFlagDate("to", f.to); err != nil {
		return record.Criteria{}, err
	}
	return c, nil
}

func parseFlagDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := record.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &d, nil
}
