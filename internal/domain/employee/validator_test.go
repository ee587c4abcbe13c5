package employee

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murojaat/internal/model"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name        string
		login       string
		wantErr     bool
		expectedErr string
	}{
		{
			name:    "valid login",
			login:   "karimov1",
			wantErr: false,
		},
		{
			name:        "too short",
			login:       "ab",
			wantErr:     true,
			expectedErr: "must be at least 3 characters",
		},
		{
			name:        "too long",
			login:       strings.Repeat("a", 33),
			wantErr:     true,
			expectedErr: "must be at most 32 characters",
		},
		{
			name:    "valid with dot and dash",
			login:   "a.karimov-2",
			wantErr: false,
		},
		{
			name:        "invalid space",
			login:       "a karimov",
			wantErr:     true,
			expectedErr: "can only contain letters, digits, '_', '-', '.'",
		},
		{
			name:    "cyrillic letters allowed",
			login:   "каримов",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.login)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_ValidateForm(t *testing.T) {
	v := MustValidator()
	ctx := context.Background()

	require.NoError(t, v.ValidateForm(ctx, Form{Name: "Karimov A.", Login: "karimov", Password: "1"}))

	err := v.ValidateForm(ctx, Form{Login: "karimov"})
	require.Error(t, err)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{"name", "password"}, fe.Fields)

	err = v.ValidateForm(ctx, Form{Name: "A", Login: "a b", Password: "x"})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{"login"}, fe.Fields)
}

func TestPatch_Apply(t *testing.T) {
	orig := Credential{ID: model.NewID("7"), Name: "Ali", Login: "ali", Password: "old"}
	pw := "new"

	got := Patch{Password: &pw}.Apply(orig)
	assert.Equal(t, Credential{ID: model.NewID("7"), Name: "Ali", Login: "ali", Password: "new"}, got)
	assert.Equal(t, "old", orig.Password)
	assert.True(t, Patch{}.IsEmpty())
}

func TestNames(t *testing.T) {
	list := []Credential{
		{ID: model.NewID("1"), Name: "Karimov"},
		{ID: model.NewID("2"), Name: " "},
		{ID: model.NewID("3"), Name: "Rahimov"},
		{ID: model.NewID("4"), Name: "Karimov"},
	}
	assert.Equal(t, []string{"Karimov", "Rahimov"}, Names(list))
	assert.Empty(t, Names(nil))

	c, ok := Find(list, model.NewID("3"))
	require.True(t, ok)
	assert.Equal(t, "Rahimov", c.Name)
	_, ok = Find(list, model.NewID("99"))
	assert.False(t, ok)
}

func TestCredential_Masked(t *testing.T) {
	c := Credential{Name: "Ali", Password: "secret"}
	assert.Equal(t, "********", c.Masked().Password)
	assert.Equal(t, "", Credential{}.Masked().Password)
}
