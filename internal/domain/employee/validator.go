package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/qri-io/jsonschema"
)

const (
	MinLoginLen = 3
	MaxLoginLen = 32
)

const formSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "employee form",
	"type": "object",
	"required": ["name", "login", "password"],
	"properties": {
		"name":     {"type": "string", "minLength": 1},
		"login":    {"type": "string", "minLength": 1},
		"password": {"type": "string", "minLength": 1}
	}
}`

// FieldError - ошибка формы с перечнем полей
type FieldError struct {
	Fields []string
	Reason string
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(e.Fields, ", "))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(formSchema), rs); err != nil {
		return nil, fmt.Errorf("compile employee schema: %w", err)
	}
	return &Validator{schema: rs}, nil
}

func MustValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateForm проверяет форму сотрудника: обязательные поля и допустимый логин
func (v *Validator) ValidateForm(ctx context.Context, f Form) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal employee: %w", err)
	}

	verrs, err := v.schema.ValidateBytes(ctx, data)
	if err != nil {
		return fmt.Errorf("validate employee: %w", err)
	}
	if len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, ke := range verrs {
			name := strings.TrimPrefix(ke.PropertyPath, "/")
			if name == "" {
				name = ke.Message
			}
			fields = append(fields, name)
		}
		sort.Strings(fields)
		return &FieldError{Fields: fields}
	}

	return ValidateLogin(f.Login)
}

// ValidateLogin валидирует логин
func ValidateLogin(login string) error {
	if len(login) < MinLoginLen {
		return &FieldError{Fields: []string{"login"}, Reason: fmt.Sprintf("must be at least %d characters", MinLoginLen)}
	}

	if len(login) > MaxLoginLen {
		return &FieldError{Fields: []string{"login"}, Reason: fmt.Sprintf("must be at most %d characters", MaxLoginLen)}
	}

	for _, r := range login {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return &FieldError{Fields: []string{"login"}, Reason: "can only contain letters, digits, '_', '-', '.'"}
		}
	}

	return nil
}
