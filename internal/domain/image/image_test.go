package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachment_DataURL(t *testing.T) {
	a := Attachment{ImageData: "QUJD"}
	assert.Equal(t, "data:image/jpeg;base64,QUJD", a.DataURL())

	// уже готовый data URL не дублирует префикс
	a = Attachment{ImageData: "data:image/png;base64,QUJD"}
	assert.Equal(t, "data:image/png;base64,QUJD", a.DataURL())

	b, err := a.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("ABC"), b)
}

func TestNewUpload(t *testing.T) {
	req := NewUpload([]byte("ABC"), "  front  ", true)
	assert.Equal(t, UploadRequest{ImageData: "QUJD", Description: "front"}, req)

	req = NewUpload([]byte("ABC"), "front", false)
	assert.Empty(t, req.Description)
}

func TestCarousel_Select(t *testing.T) {
	tests := []struct {
		name  string
		count int
		index int
		want  int
	}{
		{name: "inside", count: 3, index: 1, want: 1},
		{name: "past end clamps to last", count: 3, index: 10, want: 2},
		{name: "negative clamps to first", count: 3, index: -4, want: 0},
		{name: "empty list", count: 0, index: 2, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCarousel(tt.count)
			assert.Equal(t, tt.want, c.Select(tt.index))
			assert.Equal(t, tt.want, c.Selected())
		})
	}
}

func TestCarousel_ResetKeepsIndexValid(t *testing.T) {
	c := NewCarousel(5)
	c.Select(4)

	// после удаления изображений индекс не должен указывать за край
	c.Reset(2)
	assert.Equal(t, 1, c.Selected())

	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 0, c.Prev())
	assert.Equal(t, 0, c.Prev())

	c.Reset(0)
	assert.Equal(t, -1, c.Selected())
}
