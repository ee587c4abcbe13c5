package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"murojaat/internal/domain/record"
)

// field связывает флаг формы с полем записи
type field struct {
	flag  string
	label string
	value string
	draft func(d *record.Draft) *string
	patch func(p *record.Patch) **string
}

func formFields() []*field {
	return []*field{
		{flag: "mahalla", label: "Mahalla nomi",
			draft: func(d *record.Draft) *string { return &d.Neighborhood },
			patch: func(p *record.Patch) **string { return &p.Neighborhood }},
		{flag: "full-name", label: "Ism familya",
			draft: func(d *record.Draft) *string { return &d.FullName },
			patch: func(p *record.Patch) **string { return &p.FullName }},
		{flag: "passport", label: "Pasport seriyasi",
			draft: func(d *record.Draft) *string { return &d.PassportSeries },
			patch: func(p *record.Patch) **string { return &p.PassportSeries }},
		{flag: "phone", label: "Telefon raqam",
			draft: func(d *record.Draft) *string { return &d.Phone },
			patch: func(p *record.Patch) **string { return &p.Phone }},
		{flag: "birth-date", label: "Tug'ilgan sanasi",
			draft: func(d *record.Draft) *string { return &d.BirthDate },
			patch: func(p *record.Patch) **string { return &p.BirthDate }},
		{flag: "specialty", label: "Ma'lumoti / mutaxassisligi",
			draft: func(d *record.Draft) *string { return &d.Specialty },
			patch: func(p *record.Patch) **string { return &p.Specialty }},
		{flag: "interests", label: "Qiziqishlari",
			draft: func(d *record.Draft) *string { return &d.Interests },
			patch: func(p *record.Patch) **string { return &p.Interests }},
		{flag: "assignee", label: "Biriktirilgan xodim",
			draft: func(d *record.Draft) *string { return &d.Assignee },
			patch: func(p *record.Patch) **string { return &p.Assignee }},
		{flag: "work-done", label: "Amalga oshirgan ishi",
			draft: func(d *record.Draft) *string { return &d.WorkDone },
			patch: func(p *record.Patch) **string { return &p.WorkDone }},
	}
}

func registerFields(fs *pflag.FlagSet, fields []*field) {
	for _, f := range fields {
		fs.StringVar(&f.value, f.flag, "", f.label)
	}
}

// buildDraft заполняет черновик из флагов, недостающие поля спрашивает у in.
// skip - поля, которые не спрашиваются (исполнитель для сотрудника).
func buildDraft(fields []*field, in io.Reader, out io.Writer, prompt bool, skip map[string]bool) record.Draft {
	var d record.Draft
	reader := bufio.NewReader(in)
	for _, f := range fields {
		v := f.value
		if v == "" && prompt && !skip[f.flag] {
			fmt.Fprintf(out, "%s: ", f.label)
			line, _ := reader.ReadString('\n')
			v = strings.TrimSpace(line)
		}
		*f.draft(&d) = v
	}
	return d
}

// buildPatch берёт только явно переданные флаги
func buildPatch(fs *pflag.FlagSet, fields []*field) record.Patch {
	var p record.Patch
	for _, f := range fields {
		if fs.Changed(f.flag) {
			*f.patch(&p) = record.StringPtr(f.value)
		}
	}
	return p
}
