package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// the backend assumes a fixed timezone, every time value crossing the
// api boundary is shifted by this amount
const BackendOffsetHours = 2

const (
	PeriodAM = "ص"
	PeriodPM = "م"
)

const apiInstantLayout = "2006-01-02T15:04:05"

var ErrBadTime = errors.New("malformed time value")

var timePattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?:\s*(ص|م|[AaPp][Mm]))?\s*$`)

// To24Hour accepts "HH:MM", "hh:MM ص|م" or "hh:MM AM|PM" and returns a
// zero padded 24 hour "HH:MM".
func To24Hour(text string) (string, error) {
	match := timePattern.FindStringSubmatch(text)
	if match == nil {
		return "", ErrBadTime
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	if hour > 23 || minute > 59 {
		return "", ErrBadTime
	}

	period := strings.ToUpper(match[3])
	switch {
	case period == PeriodPM || period == "PM":
		if hour > 12 {
			return "", ErrBadTime
		}
		if hour < 12 {
			hour += 12
		}
	case period == PeriodAM || period == "AM":
		if hour > 12 {
			return "", ErrBadTime
		}
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// To12Hour converts a 24 hour "HH:MM" to "hh:MM ص|م" with the Arabic
// period letter.
func To12Hour(text string) (string, error) {
	hour, minute, err := splitClock(text)
	if err != nil {
		return "", err
	}

	period := PeriodAM
	if hour >= 12 {
		period = PeriodPM
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour, minute, period), nil
}

// ShiftForBackend subtracts the backend offset from a wall clock time
// before it is written upstream. plain hour arithmetic, wraps modulo 24
// with no day to borrow from near midnight.
func ShiftForBackend(text string) (string, error) {
	return shiftClock(text, -BackendOffsetHours)
}

// ShiftFromBackend adds the backend offset to a stored wall clock time
// for display.
func ShiftFromBackend(text string) (string, error) {
	return shiftClock(text, BackendOffsetHours)
}

func shiftClock(text string, hours int) (string, error) {
	hour, minute, err := splitClock(text)
	if err != nil {
		return "", err
	}
	hour = ((hour+hours)%24 + 24) % 24
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func splitClock(text string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 {
		return 0, 0, ErrBadTime
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrBadTime
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrBadTime
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrBadTime
	}
	return hour, minute, nil
}

// ShiftInstantForAPI subtracts the backend offset from a full
// timestamp, date aware so it rolls across midnight, and formats it
// without a zone suffix the way the api expects.
func ShiftInstantForAPI(t time.Time) string {
	return t.Add(-BackendOffsetHours * time.Hour).Format(apiInstantLayout)
}

// ShiftInstantFromAPI parses a stored instant and adds the backend
// offset back for display.
func ShiftInstantFromAPI(text string) (time.Time, error) {
	t, err := time.Parse(apiInstantLayout, strings.TrimSuffix(strings.TrimSpace(text), "Z"))
	if err != nil {
		return time.Time{}, ErrBadTime
	}
	return t.Add(BackendOffsetHours * time.Hour), nil
}
