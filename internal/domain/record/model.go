package record

import (
	"murojaat/internal/model"
)

// Record - обращение гражданина в том виде, в каком его отдаёт бэкенд.
// CreatedAt приходит строкой DD.MM.YYYY, а не ISO-меткой.
type Record struct {
	ID             model.ID `json:"id" yaml:"id"`
	Neighborhood   string   `json:"mahallaNomi" yaml:"mahallaNomi"`
	FullName       string   `json:"ismFamilya" yaml:"ismFamilya"`
	PassportSeries string   `json:"pasportSeriyasi" yaml:"pasportSeriyasi"`
	Phone          string   `json:"telefonRaqam" yaml:"telefonRaqam"`
	BirthDate      string   `json:"tugilganSanasi" yaml:"tugilganSanasi"`
	Specialty      string   `json:"malumotMutahassislik" yaml:"malumotMutahassislik"`
	Interests      string   `json:"qiziqishlari" yaml:"qiziqishlari"`
	Assignee       string   `json:"biriktirilganXodim" yaml:"biriktirilganXodim"`
	WorkDone       string   `json:"amalgaOshirganIshi" yaml:"amalgaOshirganIshi"`
	Status         Status   `json:"status,omitempty" yaml:"status,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// Draft - поля формы создания. Статус и дату создания выставляет сервер.
type Draft struct {
	Neighborhood   string `json:"mahallaNomi" yaml:"mahallaNomi"`
	FullName       string `json:"ismFamilya" yaml:"ismFamilya"`
	PassportSeries string `json:"pasportSeriyasi" yaml:"pasportSeriyasi"`
	Phone          string `json:"telefonRaqam" yaml:"telefonRaqam"`
	BirthDate      string `json:"tugilganSanasi" yaml:"tugilganSanasi"`
	Specialty      string `json:"malumotMutahassislik" yaml:"malumotMutahassislik"`
	Interests      string `json:"qiziqishlari" yaml:"qiziqishlari"`
	Assignee       string `json:"biriktirilganXodim" yaml:"biriktirilganXodim"`
	WorkDone       string `json:"amalgaOshirganIshi" yaml:"amalgaOshirganIshi"`
}

// Patch - частичное изменение записи; nil означает "оставить как есть"
type Patch struct {
	Neighborhood   *string `json:"mahallaNomi,omitempty" yaml:"mahallaNomi,omitempty"`
	FullName       *string `json:"ismFamilya,omitempty" yaml:"ismFamilya,omitempty"`
	PassportSeries *string `json:"pasportSeriyasi,omitempty" yaml:"pasportSeriyasi,omitempty"`
	Phone          *string `json:"telefonRaqam,omitempty" yaml:"telefonRaqam,omitempty"`
	BirthDate      *string `json:"tugilganSanasi,omitempty" yaml:"tugilganSanasi,omitempty"`
	Specialty      *string `json:"malumotMutahassislik,omitempty" yaml:"malumotMutahassislik,omitempty"`
	Interests      *string `json:"qiziqishlari,omitempty" yaml:"qiziqishlari,omitempty"`
	Assignee       *string `json:"biriktirilganXodim,omitempty" yaml:"biriktirilganXodim,omitempty"`
	WorkDone       *string `json:"amalgaOshirganIshi,omitempty" yaml:"amalgaOshirganIshi,omitempty"`
	Status         *Status `json:"status,omitempty" yaml:"status,omitempty"`
}

// Draft возвращает редактируемые поля записи
func (r Record) Draft() Draft {
	return Draft{
		Neighborhood:   r.Neighborhood,
		FullName:       r.FullName,
		PassportSeries: r.PassportSeries,
		Phone:          r.Phone,
		BirthDate:      r.BirthDate,
		Specialty:      r.Specialty,
		Interests:      r.Interests,
		Assignee:       r.Assignee,
		WorkDone:       r.WorkDone,
	}
}

// Apply накладывает патч на копию записи. Идентификатор и дата создания не меняются.
func (p Patch) Apply(r Record) Record {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&r.Neighborhood, p.Neighborhood)
	set(&r.FullName, p.FullName)
	set(&r.PassportSeries, p.PassportSeries)
	set(&r.Phone, p.Phone)
	set(&r.BirthDate, p.BirthDate)
	set(&r.Specialty, p.Specialty)
	set(&r.Interests, p.Interests)
	set(&r.Assignee, p.Assignee)
	set(&r.WorkDone, p.WorkDone)
	if p.Status != nil {
		r.Status = *p.Status
	}

	return r
}

// IsEmpty сообщает, что патч ничего не меняет
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// StringPtr - хелпер для сборки патчей
func StringPtr(s string) *string {
	return &s
}
