package record

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "regular", in: "15.01.2024", want: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{name: "single digits", in: "5.3.2024", want: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", in: " 01.12.2023 ", want: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", in: "29.02.2024", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{name: "iso layout", in: "2024-01-15", wantErr: true},
		{name: "two parts", in: "15.01", wantErr: true},
		{name: "four parts", in: "15.01.2024.1", wantErr: true},
		{name: "letters", in: "aa.01.2024", wantErr: true},
		{name: "month 13", in: "01.13.2024", wantErr: true},
		{name: "no such day", in: "31.02.2024", wantErr: true},
		{name: "zero day", in: "00.01.2024", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedDate))

				var de *DateError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, tt.in, de.Value)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	d := time.Date(2024, time.July, 4, 13, 45, 0, 0, time.Local)
	s := FormatDate(d)
	assert.Equal(t, "04.07.2024", s)

	back, err := ParseDate(s)
	require.NoError(t, err)
	assert.True(t, CalendarDay(d).Equal(back))
}

func TestCurrentLabels(t *testing.T) {
	now := time.Date(2024, time.September, 3, 10, 0, 0, 0, time.Local)
	d, m, y := CurrentLabels(now)

	assert.Equal(t, "03.09.2024", d)
	assert.Equal(t, "09.2024", m)
	assert.Equal(t, "2024", y)
}
