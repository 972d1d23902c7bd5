package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"Monday":     time.Monday,
		"sunday":     time.Sunday,
		"SATURDAY":   time.Saturday,
		" Thursday ": time.Thursday,
		"wed":        time.Wednesday,
	} {
		got, err := ParseWeekday(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %v, got %v err=%v", in, want, got, err)
		}
	}

	if _, err := ParseWeekday("funday"); err == nil {
		t.Fatalf("expected error for unknown day")
	}
}

func TestWeekdaySet_JSON(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		var s WeekdaySet
		if err := json.Unmarshal([]byte(`["Friday","monday","Monday"]`), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Len() != 2 || !s.Contains(time.Monday) || !s.Contains(time.Friday) {
			t.Fatalf("unexpected set: %v", s.Labels())
		}
	})

	t.Run("flags object", func(t *testing.T) {
		var s WeekdaySet
		if err := json.Unmarshal([]byte(`{"Monday":true,"Tuesday":false,"Sunday":true}`), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		labels := s.Labels()
		if len(labels) != 2 || labels[0] != "Sunday" || labels[1] != "Monday" {
			t.Fatalf("unexpected labels: %v", labels)
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		var s WeekdaySet
		if err := json.Unmarshal([]byte(`["Mon","Holiday"]`), &s); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("marshal in week order", func(t *testing.T) {
		b, err := json.Marshal(NewWeekdaySet(time.Friday, time.Monday))
		if err != nil || string(b) != `["Monday","Friday"]` {
			t.Fatalf("unexpected json: %s err=%v", b, err)
		}
	})
}
