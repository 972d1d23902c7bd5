package request

import (
	"encoding/json"
	"testing"
)

func TestCreateQuoteRequest_ResolveSeminarID(t *testing.T) {
	r := CreateQuoteRequest{SeminarID: " sem-1 "}
	if got := r.ResolveSeminarID(); got != "sem-1" {
		t.Fatalf("expected sem-1, got %q", got)
	}
	if got := (CreateQuoteRequest{SeminarID: "  "}).ResolveSeminarID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCreateQuoteRequest_DecodesKeyedCollections(t *testing.T) {
	body := `{
		"seminar_id": "sem-1",
		"title": "Spring retreat",
		"state": {
			"arrival_date": "2024-03-07",
			"departure_date": "2024-03-11",
			"active_workdays": ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday"],
			"participant_count": 10,
			"services": {"board": {"name": "Full board", "enabled": true, "cost_price": 100, "time_basis": "per_day", "is_default": true}},
			"teachers": [{"name": "Ana", "hourly_rate": 50}],
			"coordinators": {}
		}
	}`

	var r CreateQuoteRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.State.Services) != 1 || r.State.Services[0].Name != "Full board" {
		t.Fatalf("unexpected services: %+v", r.State.Services)
	}
	if len(r.State.Teachers) != 1 || len(r.State.Coordinators) != 0 {
		t.Fatalf("unexpected staff: %+v / %+v", r.State.Teachers, r.State.Coordinators)
	}
	if r.State.ActiveWorkdays.Len() != 5 || !r.State.HasDates() {
		t.Fatalf("unexpected calendar: %+v", r.State)
	}
}
