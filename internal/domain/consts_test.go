package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "monday", want: Monday},
		{input: "Thursday", want: Thursday},
		{input: "  FRIDAY  ", want: Friday},
		{input: "sun", want: Sunday},
		{input: "wed", want: Wednesday},
		{input: "someday", wantErr: true},
		{input: "", wantErr: true},
		{input: "1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWeekday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("23:01")
	require.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 1, minute)

	hour, minute, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Zero(t, hour)
	assert.Zero(t, minute)

	for _, input := range []string{"24:00", "9:5:1", "nine", "", "12h30"} {
		_, _, err := ParseClock(input)
		assert.ErrorIs(t, err, ErrInvalidClock, "input %q", input)
	}
}

func TestParseBirthday(t *testing.T) {
	got, err := ParseBirthday(" 03-14 ")
	require.NoError(t, err)
	assert.Equal(t, "03-14", got)

	for _, input := range []string{"13-01", "02-30", "3-14", "1985-03-14", ""} {
		_, err := ParseBirthday(input)
		assert.ErrorIs(t, err, ErrInvalidBirthday, "input %q", input)
	}
}

func TestISOWeekday(t *testing.T) {
	assert.Equal(t, Monday, ISOWeekday(time.Monday))
	assert.Equal(t, Saturday, ISOWeekday(time.Saturday))
	assert.Equal(t, Sunday, ISOWeekday(time.Sunday))
}
