package fakeapi

import (
	"errors"
	gosync "sync"
	"time"

	"murojaat/internal/domain/employee"
	"murojaat/internal/domain/image"
	"murojaat/internal/domain/record"
	"murojaat/internal/model"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrLoginTaken = errors.New("login already exists")
)

// Admin - учётная запись администратора
type Admin struct {
	ID       model.ID
	Username string
	Password string
	Name     string
}

type storedImage struct {
	image.Attachment
	recordID model.ID
}

// Store - in-memory состояние бэкенда. Порядок вставки сохраняется.
type Store struct {
	mu        gosync.RWMutex
	seq       int
	records   []record.Record
	images    []storedImage
	employees []employee.Credential
	admins    []Admin
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) nextID() model.ID {
	s.seq++
	return model.NumericID(int64(s.seq))
}

// AddAdmin регистрирует администратора
func (s *Store) AddAdmin(username, password, name string) Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := Admin{ID: s.nextID(), Username: username, Password: password, Name: name}
	s.admins = append(s.admins, a)
	return a
}

func (s *Store) FindAdmin(username, password string) (Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if a.Username == username && a.Password == password {
			return a, true
		}
	}
	return Admin{}, false
}

// Records возвращает все записи, либо только закреплённые за assignee
func (s *Store) Records(assignee string) []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.Record, 0, len(s.records))
	for _, r := range s.records {
		if assignee == "" || r.Assignee == assignee {
			out = append(out, r)
		}
	}
	return out
}

// CreateRecord назначает id, статус "jarayonda" и дату создания
func (s *Store) CreateRecord(d record.Draft) record.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := record.Record{
		ID:             s.nextID(),
		Neighborhood:   d.Neighborhood,
		FullName:       d.FullName,
		PassportSeries: d.PassportSeries,
		Phone:          d.Phone,
		BirthDate:      d.BirthDate,
		Specialty:      d.Specialty,
		Interests:      d.Interests,
		Assignee:       d.Assignee,
		WorkDone:       d.WorkDone,
		Status:         record.StatusInProgress,
		CreatedAt:      record.FormatDate(s.now()),
	}
	s.records = append(s.records, r)
	return r
}

// PutRecord добавляет запись как есть (для заполнения тестовыми данными)
func (s *Store) PutRecord(r record.Record) record.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = s.nextID()
	}
	s.records = append(s.records, r)
	return r
}

func (s *Store) UpdateRecord(id model.ID, r record.Record) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID.Equal(id) {
			r.ID = s.records[i].ID
			if r.CreatedAt == "" {
				r.CreatedAt = s.records[i].CreatedAt
			}
			if r.Status == "" {
				r.Status = s.records[i].Status
			}
			s.records[i] = r
			return r, nil
		}
	}
	return record.Record{}, ErrNotFound
}

func (s *Store) GetRecord(id model.ID) (record.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID.Equal(id) {
			return r, true
		}
	}
	return record.Record{}, false
}

// DeleteRecord удаляет запись вместе с её изображениями
func (s *Store) DeleteRecord(id model.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID.Equal(id) {
			s.records = append(s.records[:i:i], s.records[i+1:]...)
			kept := s.images[:0]
			for _, img := range s.images {
				if img.recordID != id {
					kept = append(kept, img)
				}
			}
			s.images = kept
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Images(recordID model.ID) []image.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]image.Attachment, 0)
	for _, img := range s.images {
		if img.recordID.Equal(recordID) {
			out = append(out, img.Attachment)
		}
	}
	return out
}

func (s *Store) AddImage(recordID model.ID, data, description string) image.Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := image.Attachment{ID: s.nextID(), ImageData: data, Description: description}
	s.images = append(s.images, storedImage{Attachment: a, recordID: recordID})
	return a
}

// ImageOwner возвращает id записи, которой принадлежит изображение
func (s *Store) ImageOwner(id model.ID) (model.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, img := range s.images {
		if img.ID.Equal(id) {
			return img.recordID, true
		}
	}
	return model.ID{}, false
}

func (s *Store) DeleteImage(id model.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.images {
		if s.images[i].ID.Equal(id) {
			s.images = append(s.images[:i:i], s.images[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Employees() []employee.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]employee.Credential, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) CreateEmployee(f employee.Form) (employee.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.Login == f.Login {
			return employee.Credential{}, ErrLoginTaken
		}
	}
	c := employee.Credential{ID: s.nextID(), Name: f.Name, Login: f.Login, Password: f.Password}
	s.employees = append(s.employees, c)
	return c, nil
}

func (s *Store) UpdateEmployee(id model.ID, c employee.Credential) (employee.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.employees {
		if s.employees[i].ID.Equal(id) {
			idx = i
		} else if s.employees[i].Login == c.Login {
			return employee.Credential{}, ErrLoginTaken
		}
	}
	if idx < 0 {
		return employee.Credential{}, ErrNotFound
	}
	c.ID = s.employees[idx].ID
	s.employees[idx] = c
	return c, nil
}

func (s *Store) DeleteEmployee(id model.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID.Equal(id) {
			s.employees = append(s.employees[:i:i], s.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) FindEmployee(login, password string) (employee.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.Login == login && e.Password == password {
			return e, true
		}
	}
	return employee.Credential{}, false
}
