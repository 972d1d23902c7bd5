package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WeekdaySet holds the days of the week that count as billable workdays.
//
// On the wire it is a list of English day names ("Monday", "tuesday", ...).
// An object of name → bool is also accepted, which is how some stored drafts
// keep their checkbox state.
type WeekdaySet map[time.Weekday]bool

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	s := make(WeekdaySet, len(days))
	for _, d := range days {
		s[d] = true
	}
	return s
}

// MondayToFriday is the usual seminar week.
func MondayToFriday() WeekdaySet {
	return NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s[d]
}

// Len counts the days actually enabled.
func (s WeekdaySet) Len() int {
	n := 0
	for _, on := range s {
		if on {
			n++
		}
	}
	return n
}

// Labels returns the enabled day names from Sunday to Saturday.
func (s WeekdaySet) Labels() []string {
	out := make([]string, 0, len(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s[d] {
			out = append(out, d.String())
		}
	}
	return out
}

// ParseWeekday resolves an English day name, case-insensitively. Three-letter
// abbreviations are accepted too.
func ParseWeekday(label string) (time.Weekday, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if l == name || (len(l) == 3 && strings.HasPrefix(name, l)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", label)
}

// WeekdaySetFromLabels builds a set from day names.
func WeekdaySetFromLabels(labels []string) (WeekdaySet, error) {
	s := make(WeekdaySet, len(labels))
	for _, l := range labels {
		d, err := ParseWeekday(l)
		if err != nil {
			return nil, err
		}
		s[d] = true
	}
	return s, nil
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Labels())
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = WeekdaySet{}
		return nil
	case len(data) > 0 && data[0] == '{':
		var flags map[string]bool
		if err := json.Unmarshal(data, &flags); err != nil {
			return err
		}
		out := make(WeekdaySet, len(flags))
		for label, on := range flags {
			d, err := ParseWeekday(label)
			if err != nil {
				return err
			}
			if on {
				out[d] = true
			}
		}
		*s = out
		return nil
	default:
		var labels []string
		if err := json.Unmarshal(data, &labels); err != nil {
			return fmt.Errorf("active workdays must be a list of day names: %w", err)
		}
		out, err := WeekdaySetFromLabels(labels)
		if err != nil {
			return err
		}
		*s = out
		return nil
	}
}
