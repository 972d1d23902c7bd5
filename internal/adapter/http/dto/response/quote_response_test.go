package response

import (
	"encoding/json"
	"testing"
	"time"

	"seminar_billing/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:        "q-1",
		SeminarID: "sem-1",
		Title:     "Spring retreat",
		Status:    entities.QuoteStatusApproved,
		State:     entities.QuoteState{ParticipantCount: 12},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.QuoteID != "q-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.SeminarID != "sem-1" || res.Status != "approved" || res.State.ParticipantCount != 12 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromQuoteWithSummary_FlattensQuote(t *testing.T) {
	res := FromQuoteWithSummary(entities.Quote{ID: "q-1"}, entities.QuoteSummary{BaseCost: 6900})

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["id"] != "q-1" {
		t.Fatalf("expected embedded quote fields at top level: %v", m)
	}
	summary, ok := m["summary"].(map[string]any)
	if !ok || summary["base_cost"] != float64(6900) {
		t.Fatalf("unexpected summary: %v", m["summary"])
	}
	state, ok := m["state"].(map[string]any)
	if !ok {
		t.Fatalf("expected state object: %v", m["state"])
	}
	if _, ok := state["services"].([]any); !ok {
		t.Fatalf("expected services serialized as array: %v", state["services"])
	}
}

func TestFromQuotes(t *testing.T) {
	if got := FromQuotes(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	got := FromQuotes([]entities.Quote{{ID: "a"}, {ID: "b"}})
	if len(got) != 2 || got[1].ID != "b" {
		t.Fatalf("unexpected list: %+v", got)
	}
}
