package repository

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"testing"
	"time"

	"seminar_billing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleState() entities.QuoteState {
	return entities.QuoteState{
		ArrivalDate:           entities.NewDate(2024, time.March, 7),
		DepartureDate:         entities.NewDate(2024, time.March, 11),
		ActiveWorkdays:        entities.MondayToFriday(),
		ParticipantCount:      10,
		StandardTeachingHours: 6,
		Services: entities.Collection[entities.QuoteService]{
			{Name: "Full board", Enabled: true, CostPrice: 100, TimeBasis: entities.TimeBasisPerDay, IsDefault: true},
			{Name: "Excursion", Enabled: true, CostPrice: 40, TimeBasis: entities.TimeBasisOneOff, ParticipantOverride: entities.IntPtr(4)},
		},
		Teachers:                         entities.Collection[entities.Teacher]{{Name: "Ana", HourlyRate: 50}},
		Coordinators:                     entities.Collection[entities.Coordinator]{{Name: "Carla", DailyRate: 200, Enabled: true}},
		ManualSellingPricePerParticipant: 1000,
	}
}

func TestQuoteStateDoc_RoundTrip(t *testing.T) {
	in := sampleState()
	out, err := fromQuoteStateDoc(toQuoteStateDoc(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestQuoteStateDoc_UndatedDraft(t *testing.T) {
	doc := toQuoteStateDoc(entities.QuoteState{})
	if doc.ArrivalDate != "" || doc.DepartureDate != "" {
		t.Fatalf("expected empty dates, got %q/%q", doc.ArrivalDate, doc.DepartureDate)
	}
	if doc.Services == nil || doc.Teachers == nil || doc.Coordinators == nil {
		t.Fatalf("expected empty, non-nil lists")
	}

	s, err := fromQuoteStateDoc(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.HasDates() {
		t.Fatalf("expected undated state")
	}
}

func TestFromQuoteStateDoc_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  quoteStateDoc
	}{
		{"bad arrival", quoteStateDoc{ArrivalDate: "07/03/2024"}},
		{"bad departure", quoteStateDoc{DepartureDate: "soon"}},
		{"bad weekday", quoteStateDoc{ActiveWorkdays: []string{"Funday"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fromQuoteStateDoc(tt.doc); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestQuoteItem_RoundTripThroughAttributeValues(t *testing.T) {
	created := time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:        "q-1",
		SeminarID: "sem-1",
		Title:     "Spring retreat",
		Status:    entities.QuoteStatusDraft,
		State:     sampleState(),
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := decodeQuoteItem(av)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(q, got) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", q, got)
	}
}

func TestNormalizeCollectionAttributes_IndexKeyedServices(t *testing.T) {
	services := map[string]types.AttributeValue{}
	for i := 0; i < 12; i++ {
		services[strconv.Itoa(i)] = &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"name":       &types.AttributeValueMemberS{Value: fmt.Sprintf("svc%d", i)},
			"enabled":    &types.AttributeValueMemberBOOL{Value: true},
			"cost_price": &types.AttributeValueMemberN{Value: "10"},
			"time_basis": &types.AttributeValueMemberS{Value: "one_off"},
		}}
	}
	item := map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "q-1"},
		"status": &types.AttributeValueMemberS{Value: "draft"},
		"state": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"services": &types.AttributeValueMemberM{Value: services},
		}},
	}

	q, err := decodeQuoteItem(item)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(q.State.Services) != 12 {
		t.Fatalf("expected 12 services, got %d", len(q.State.Services))
	}
	for i, s := range q.State.Services {
		if want := fmt.Sprintf("svc%d", i); s.Name != want {
			t.Fatalf("index %d: expected %s, got %s", i, want, s.Name)
		}
	}
}

func TestCollectionKeyLess(t *testing.T) {
	keys := []string{"b", "10", "a", "2", "02", "0"}
	sort.Slice(keys, func(i, j int) bool { return collectionKeyLess(keys[i], keys[j]) })

	want := []string{"0", "02", "2", "10", "a", "b"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
}

func TestNormalizeCollectionAttributes_KeyedServices(t *testing.T) {
	svc := func(name string, cost string) types.AttributeValue {
		return &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"name":       &types.AttributeValueMemberS{Value: name},
			"enabled":    &types.AttributeValueMemberBOOL{Value: true},
			"cost_price": &types.AttributeValueMemberN{Value: cost},
			"time_basis": &types.AttributeValueMemberS{Value: "one_off"},
			"is_default": &types.AttributeValueMemberBOOL{Value: true},
		}}
	}
	item := map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "q-1"},
		"status": &types.AttributeValueMemberS{Value: "draft"},
		"state": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"active_workdays": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			"services": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"b-venue":   svc("Venue", "300"),
				"a-board":   svc("Board", "100"),
				"c-transit": svc("Transit", "50"),
			}},
			"teachers": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		}},
	}

	q, err := decodeQuoteItem(item)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	names := make([]string, 0, len(q.State.Services))
	for _, s := range q.State.Services {
		names = append(names, s.Name)
	}
	want := []string{"Board", "Venue", "Transit"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected services in key order %v, got %v", want, names)
	}
	if q.State.Services[1].CostPrice != 300 {
		t.Fatalf("unexpected cost: %v", q.State.Services[1].CostPrice)
	}
}

func TestNormalizeCollectionAttributes_LeavesListsAlone(t *testing.T) {
	list := &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: "x"}}}
	state := map[string]types.AttributeValue{"teachers": list}
	normalizeCollectionAttributes(state)
	if state["teachers"] != list {
		t.Fatalf("list attribute should be untouched")
	}
}

func TestQuotePaymentItem_RoundTrip(t *testing.T) {
	p := entities.QuotePayment{
		ID:                 "mp-1",
		QuoteID:            "q-1",
		Amount:             10000,
		Date:               time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":1}`),
	}
	got := fromQuotePaymentItem(toQuotePaymentItem(p))
	if !reflect.DeepEqual(p, got) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", p, got)
	}
}

func TestMergeNames(t *testing.T) {
	a := map[string]string{"#a": "a"}
	b := map[string]string{"#b": "b"}
	if got := mergeNames(nil, b); !reflect.DeepEqual(got, b) {
		t.Fatalf("unexpected merge: %v", got)
	}
	got := mergeNames(a, b)
	if len(got) != 2 || got["#a"] != "a" || got["#b"] != "b" {
		t.Fatalf("unexpected merge: %v", got)
	}
}

func TestTableOrDefault(t *testing.T) {
	if tableOrDefault("", "quotes") != "quotes" || tableOrDefault("custom", "quotes") != "custom" {
		t.Fatalf("unexpected table name resolution")
	}
}
