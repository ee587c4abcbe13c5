package client

import (
	"context"
	"errors"
	"net/http"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"murojaat/internal/domain/record"
	"murojaat/internal/model"
)

// Synchronizer держит кэш записей дашборда и синхронизирует его с сервером.
// Кэш меняется только после подтверждения сервером.
type Synchronizer struct {
	gate
	validator *record.Validator

	mu    gosync.RWMutex
	cache []record.Record
}

func NewSynchronizer(g gate, validator *record.Validator) *Synchronizer {
	g.log = g.log.With(slog.String("component", "synchronizer"))
	return &Synchronizer{
		gate:      g,
		validator: validator,
	}
}

// Load загружает все записи роли и заменяет кэш
func (s *Synchronizer) Load(ctx context.Context) ([]record.Record, error) {
	sess, err := s.session(OpLoadRecords)
	if err != nil {
		return nil, err
	}

	var list []record.Record
	if err := s.call(ctx, OpLoadRecords, sess, http.MethodGet, s.role.RecordsPath, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []record.Record{}
	}

	s.mu.Lock()
	s.cache = list
	s.mu.Unlock()

	s.log.Debug("records loaded", slog.Int("count", len(list)))
	return clone(list), nil
}

// Create отправляет новую запись и добавляет в кэш то, что вернул сервер
func (s *Synchronizer) Create(ctx context.Context, draft record.Draft) (record.Record, error) {
	sess, err := s.session(OpCreateRecord)
	if err != nil {
		return record.Record{}, err
	}

	if s.role.ForceAssignee {
		draft.Assignee = sess.AssigneeName()
	}
	if err := s.validator.ValidateDraft(ctx, draft); err != nil {
		return record.Record{}, validationFailed(OpCreateRecord, err)
	}

	var created record.Record
	if err := s.call(ctx, OpCreateRecord, sess, http.MethodPost, s.role.RecordsPath, draft, &created); err != nil {
		return record.Record{}, err
	}
	if created.ID.IsZero() {
		return record.Record{}, &APIError{Op: OpCreateRecord, Kind: ErrNetworkFailure, Err: errors.New("server returned record without id")}
	}

	s.mu.Lock()
	if i := s.indexOf(created.ID); i >= 0 {
		s.cache[i] = created
	} else {
		s.cache = append(s.cache, created)
	}
	s.mu.Unlock()

	s.log.Info("record created", slog.String("id", created.ID.String()))
	return created, nil
}

// Update отправляет полную запись (кэш + патч) и заменяет её в кэше по id
func (s *Synchronizer) Update(ctx context.Context, id model.ID, patch record.Patch) (record.Record, error) {
	sess, err := s.session(OpUpdateRecord)
	if err != nil {
		return record.Record{}, err
	}

	current, ok := s.Get(id)
	if !ok {
		return record.Record{}, notFound(OpUpdateRecord)
	}

	next := patch.Apply(current)
	next.ID = current.ID
	if s.role.ForceAssignee {
		next.Assignee = sess.AssigneeName()
	}
	if err := s.validator.ValidateRecord(ctx, next); err != nil {
		return record.Record{}, validationFailed(OpUpdateRecord, err)
	}

	var updated record.Record
	if err := s.call(ctx, OpUpdateRecord, sess, http.MethodPut, s.role.RecordPath(id.String()), next, &updated); err != nil {
		return record.Record{}, err
	}
	if updated.ID.IsZero() {
		updated = next
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.cache[i] = updated
	}
	s.mu.Unlock()

	s.log.Info("record updated", slog.String("id", id.String()))
	return updated, nil
}

// Delete удаляет запись. Неизвестный id - ErrNotFound без обращения к серверу.
func (s *Synchronizer) Delete(ctx context.Context, id model.ID) error {
	sess, err := s.session(OpDeleteRecord)
	if err != nil {
		return err
	}

	if _, ok := s.Get(id); !ok {
		return notFound(OpDeleteRecord)
	}

	if err := s.call(ctx, OpDeleteRecord, sess, http.MethodDelete, s.role.RecordPath(id.String()), nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.cache = append(s.cache[:i:i], s.cache[i+1:]...)
	}
	s.mu.Unlock()

	s.log.Info("record deleted", slog.String("id", id.String()))
	return nil
}

// Records возвращает копию кэша в серверном порядке
func (s *Synchronizer) Records() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.cache)
}

func (s *Synchronizer) Get(id model.ID) (record.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.cache[i], true
	}
	return record.Record{}, false
}

// View применяет фильтр к кэшу
func (s *Synchronizer) View(c record.Criteria, now time.Time) record.View {
	return record.Apply(s.Records(), c, now)
}

// indexOf вызывается под блокировкой
func (s *Synchronizer) indexOf(id model.ID) int {
	for i := range s.cache {
		if s.cache[i].ID.Equal(id) {
			return i
		}
	}
	return -1
}

func clone(list []record.Record) []record.Record {
	out := make([]record.Record, len(list))
	copy(out, list)
	return out
}
