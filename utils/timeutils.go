package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidClock is returned for strings that are not a HH:MM:SS time of day.
var ErrInvalidClock = errors.New("invalid clock time, want HH:MM:SS")

// Clock is a time of day with second precision.
type Clock struct {
	Hour, Minute, Second int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Seconds returns the number of seconds since midnight.
func (c Clock) Seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// ParseClock parses HH:MM:SS with hours 0-23 and minutes/seconds 0-59.
// Spaces around each field are ignored and fields need not be zero padded.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	var f [3]int
	limits := [3]int{23, 59, 59}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > limits[i] {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		f[i] = n
	}
	return Clock{Hour: f[0], Minute: f[1], Second: f[2]}, nil
}

// IsValidTime reports whether s parses as a clock time.
func IsValidTime(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// TimesEqual reports whether a and b are valid and denote the same time,
// so "7:05:00" equals "07:05:00".
func TimesEqual(a, b string) bool {
	ca, err := ParseClock(a)
	if err != nil {
		return false
	}
	cb, err := ParseClock(b)
	if err != nil {
		return false
	}
	return ca == cb
}
