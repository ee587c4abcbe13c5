package record

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"
)

// draftSchema повторяет форму дашборда: все поля обязательны
const draftSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "record draft",
	"type": "object",
	"required": [
		"mahallaNomi", "ismFamilya", "pasportSeriyasi", "telefonRaqam",
		"tugilganSanasi", "malumotMutahassislik", "qiziqishlari",
		"biriktirilganXodim", "amalgaOshirganIshi"
	],
	"properties": {
		"mahallaNomi":          {"type": "string", "minLength": 1},
		"ismFamilya":           {"type": "string", "minLength": 1},
		"pasportSeriyasi":      {"type": "string", "minLength": 1},
		"telefonRaqam":         {"type": "string", "minLength": 1},
		"tugilganSanasi":       {"type": "string", "minLength": 1},
		"malumotMutahassislik": {"type": "string", "minLength": 1},
		"qiziqishlari":         {"type": "string", "minLength": 1},
		"biriktirilganXodim":   {"type": "string", "minLength": 1},
		"amalgaOshirganIshi":   {"type": "string", "minLength": 1},
		"status":               {"enum": ["jarayonda", "bajarilgan"]}
	}
}`

// ValidationError перечисляет поля, не прошедшие проверку
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidData, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}

// Validator проверяет черновики и полные записи перед отправкой на сервер
type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(draftSchema), rs); err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	return &Validator{schema: rs}, nil
}

// MustValidator паникует, если встроенная схема не компилируется
func MustValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateDraft проверяет поля формы создания
func (v *Validator) ValidateDraft(ctx context.Context, d Draft) error {
	return v.validate(ctx, d)
}

// ValidateRecord проверяет запись после наложения патча
func (v *Validator) ValidateRecord(ctx context.Context, r Record) error {
	return v.validate(ctx, r)
}

func (v *Validator) validate(ctx context.Context, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	verrs, err := v.schema.ValidateBytes(ctx, data)
	if err != nil {
		return fmt.Errorf("validate record: %w", err)
	}
	if len(verrs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(verrs))
	seen := make(map[string]struct{}, len(verrs))
	for _, ke := range verrs {
		name := strings.TrimPrefix(ke.PropertyPath, "/")
		if name == "" {
			name = ke.Message
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	sort.Strings(fields)

	return &ValidationError{Fields: fields}
}
