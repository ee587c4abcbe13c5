package fakeapi

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"murojaat/internal/domain/employee"
	"murojaat/internal/domain/record"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed - начальные данные тестового бэкенда
type Seed struct {
	Admins []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admins"`
	Employees []employee.Form `yaml:"employees"`
	Records   []record.Record `yaml:"records"`
}

// DecodeSeed читает YAML с начальными данными
func DecodeSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &seed, nil
}

// DefaultSeed - встроенный набор: один администратор, два сотрудника и несколько записей
func DefaultSeed() *Seed {
	var seed Seed
	if err := yaml.Unmarshal(defaultSeed, &seed); err != nil {
		panic(err)
	}
	return &seed
}

// Apply заполняет хранилище. Записи без даты получают сегодняшнюю.
func (seed *Seed) Apply(s *Store) error {
	for _, a := range seed.Admins {
		s.AddAdmin(a.Username, a.Password, a.Name)
	}
	for _, f := range seed.Employees {
		if _, err := s.CreateEmployee(f); err != nil {
			return fmt.Errorf("seed employee %s: %w", f.Login, err)
		}
	}
	for _, r := range seed.Records {
		if r.CreatedAt == "" {
			r.CreatedAt = record.FormatDate(s.now())
		}
		if r.Status == "" {
			r.Status = record.StatusInProgress
		}
		s.PutRecord(r)
	}
	return nil
}
