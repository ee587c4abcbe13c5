package record

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murojaat/internal/model"
)

func validDraft() Draft {
	return Draft{
		Neighborhood:   "Navbahor",
		FullName:       "Ali Valiyev",
		PassportSeries: "AB1234567",
		Phone:          "+998901234567",
		BirthDate:      "1990-05-01",
		Specialty:      "Oliy, muhandis",
		Interests:      "Sport",
		Assignee:       "Karimov",
		WorkDone:       "Maslahat berildi",
	}
}

func TestValidator_ValidateDraft(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateDraft(ctx, validDraft()))
	})

	t.Run("empty full name", func(t *testing.T) {
		d := validDraft()
		d.FullName = ""

		err := v.ValidateDraft(ctx, d)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidData)
		assert.Contains(t, err.Error(), "ismFamilya")
	})

	t.Run("empty draft lists several fields", func(t *testing.T) {
		err := v.ValidateDraft(ctx, Draft{})
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.NotEmpty(t, ve.Fields)
	})
}

func TestValidator_ValidateRecord(t *testing.T) {
	v := MustValidator()
	ctx := context.Background()

	d := validDraft()
	rec := Record{
		ID: model.NewID("1"),
		Neighborhood:   d.Neighborhood,
		FullName:       d.FullName,
		PassportSeries: d.PassportSeries,
		Phone:          d.Phone,
		BirthDate:      d.BirthDate,
		Specialty:      d.Specialty,
		Interests:      d.Interests,
		Assignee:       d.Assignee,
		WorkDone:       d.WorkDone,
		Status:         StatusCompleted,
		CreatedAt:      "15.01.2024",
	}
	assert.NoError(t, v.ValidateRecord(ctx, rec))

	rec.Status = "done"
	assert.ErrorIs(t, v.ValidateRecord(ctx, rec), ErrInvalidData)
}

func TestPatch_Apply(t *testing.T) {
	orig := Record{ID: model.NewID("7"), FullName: "Ali", Assignee: "A", Status: StatusInProgress, CreatedAt: "01.01.2024"}
	done := StatusCompleted

	got := Patch{FullName: StringPtr("Vali"), Status: &done}.Apply(orig)

	assert.Equal(t, "Vali", got.FullName)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "A", got.Assignee)
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.CreatedAt, got.CreatedAt)
	assert.Equal(t, "Ali", orig.FullName)

	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{WorkDone: StringPtr("")}.IsEmpty())
}
