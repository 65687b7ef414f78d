package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Clock
		wantErr bool
	}{
		{name: "padded", input: "07:05:09", want: Clock{7, 5, 9}},
		{name: "unpadded", input: "7:5:9", want: Clock{7, 5, 9}},
		{name: "spaces", input: " 23 : 59 : 59 ", want: Clock{23, 59, 59}},
		{name: "midnight", input: "00:00:00", want: Clock{}},
		{name: "hour 24", input: "24:00:00", wantErr: true},
		{name: "minute 60", input: "12:60:00", wantErr: true},
		{name: "negative", input: "-1:00:00", wantErr: true},
		{name: "two fields", input: "12:00", wantErr: true},
		{name: "letters", input: "ab:cd:ef", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClock)
				assert.False(t, IsValidTime(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValidTime(tt.input))
		})
	}
}

func TestClock_Format(t *testing.T) {
	c := Clock{Hour: 5, Minute: 7, Second: 1}
	assert.Equal(t, "05:07:01", c.String())
	assert.Equal(t, 5*3600+7*60+1, c.Seconds())
}

func TestTimesEqual(t *testing.T) {
	assert.True(t, TimesEqual("7:05:00", "07:05:00"))
	assert.True(t, TimesEqual(" 7:5:0", "07:05:00 "))
	assert.False(t, TimesEqual("07:05:00", "07:05:01"))
	assert.False(t, TimesEqual("25:00:00", "25:00:00"))
	assert.False(t, TimesEqual("07:05", "07:05"))
}
