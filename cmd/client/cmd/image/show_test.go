package image

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"murojaat/internal/domain/image"
	"murojaat/internal/model"
)

func TestPick(t *testing.T) {
	list := []image.Attachment{
		{ID: model.NumericID(10)},
		{ID: model.NumericID(11)},
		{ID: model.NumericID(12)},
	}

	tests := []struct {
		name    string
		n       int
		wantID  string
		wantPos int
	}{
		{name: "first", n: 1, wantID: "10", wantPos: 1},
		{name: "middle", n: 2, wantID: "11", wantPos: 2},
		{name: "past the end clamps to last", n: 9, wantID: "12", wantPos: 3},
		{name: "zero clamps to first", n: 0, wantID: "10", wantPos: 1},
		{name: "negative clamps to first", n: -4, wantID: "10", wantPos: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att, pos, ok := pick(list, tt.n)
			assert.True(t, ok)
			assert.Equal(t, tt.wantID, att.ID.String())
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestPick_Empty(t *testing.T) {
	_, _, ok := pick(nil, 1)
	assert.False(t, ok)
}
