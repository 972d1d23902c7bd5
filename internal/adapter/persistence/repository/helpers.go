package repository

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"seminar_billing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// quoteStateDoc is the stored shape of entities.QuoteState, shared by the
// DynamoDB and MongoDB repositories. Dates are kept as YYYY-MM-DD strings and
// the workday set as a list of day names.
type quoteStateDoc struct {
	ArrivalDate                      string           `dynamodbav:"arrival_date,omitempty" bson:"arrival_date,omitempty"`
	DepartureDate                    string           `dynamodbav:"departure_date,omitempty" bson:"departure_date,omitempty"`
	ActiveWorkdays                   []string         `dynamodbav:"active_workdays" bson:"active_workdays"`
	ParticipantCount                 int              `dynamodbav:"participant_count" bson:"participant_count"`
	StandardTeachingHours            float64          `dynamodbav:"standard_teaching_hours" bson:"standard_teaching_hours"`
	Services                         []serviceDoc     `dynamodbav:"services" bson:"services"`
	Teachers                         []teacherDoc     `dynamodbav:"teachers" bson:"teachers"`
	Coordinators                     []coordinatorDoc `dynamodbav:"coordinators" bson:"coordinators"`
	ManualSellingPricePerParticipant float64          `dynamodbav:"manual_selling_price_per_participant" bson:"manual_selling_price_per_participant"`
}

type serviceDoc struct {
	Name                string  `dynamodbav:"name" bson:"name"`
	Enabled             bool    `dynamodbav:"enabled" bson:"enabled"`
	CostPrice           float64 `dynamodbav:"cost_price" bson:"cost_price"`
	TimeBasis           string  `dynamodbav:"time_basis" bson:"time_basis"`
	IsDefault           bool    `dynamodbav:"is_default" bson:"is_default"`
	ParticipantOverride *int    `dynamodbav:"participant_override,omitempty" bson:"participant_override,omitempty"`
}

type teacherDoc struct {
	Name       string  `dynamodbav:"name" bson:"name"`
	HourlyRate float64 `dynamodbav:"hourly_rate" bson:"hourly_rate"`
}

type coordinatorDoc struct {
	Name      string  `dynamodbav:"name" bson:"name"`
	DailyRate float64 `dynamodbav:"daily_rate" bson:"daily_rate"`
	Enabled   bool    `dynamodbav:"enabled" bson:"enabled"`
}

func toQuoteStateDoc(s entities.QuoteState) quoteStateDoc {
	doc := quoteStateDoc{
		ArrivalDate:                      s.ArrivalDate.String(),
		DepartureDate:                    s.DepartureDate.String(),
		ActiveWorkdays:                   s.ActiveWorkdays.Labels(),
		ParticipantCount:                 s.ParticipantCount,
		StandardTeachingHours:            s.StandardTeachingHours,
		Services:                         make([]serviceDoc, 0, len(s.Services)),
		Teachers:                         make([]teacherDoc, 0, len(s.Teachers)),
		Coordinators:                     make([]coordinatorDoc, 0, len(s.Coordinators)),
		ManualSellingPricePerParticipant: s.ManualSellingPricePerParticipant,
	}
	for _, svc := range s.Services {
		doc.Services = append(doc.Services, serviceDoc{
			Name:                svc.Name,
			Enabled:             svc.Enabled,
			CostPrice:           svc.CostPrice,
			TimeBasis:           string(svc.TimeBasis),
			IsDefault:           svc.IsDefault,
			ParticipantOverride: svc.ParticipantOverride,
		})
	}
	for _, t := range s.Teachers {
		doc.Teachers = append(doc.Teachers, teacherDoc{Name: t.Name, HourlyRate: t.HourlyRate})
	}
	for _, c := range s.Coordinators {
		doc.Coordinators = append(doc.Coordinators, coordinatorDoc{Name: c.Name, DailyRate: c.DailyRate, Enabled: c.Enabled})
	}
	return doc
}

func fromQuoteStateDoc(doc quoteStateDoc) (entities.QuoteState, error) {
	arrival, err := entities.ParseDate(doc.ArrivalDate)
	if err != nil {
		return entities.QuoteState{}, fmt.Errorf("arrival_date: %w", err)
	}
	departure, err := entities.ParseDate(doc.DepartureDate)
	if err != nil {
		return entities.QuoteState{}, fmt.Errorf("departure_date: %w", err)
	}
	workdays, err := entities.WeekdaySetFromLabels(doc.ActiveWorkdays)
	if err != nil {
		return entities.QuoteState{}, fmt.Errorf("active_workdays: %w", err)
	}

	s := entities.QuoteState{
		ArrivalDate:                      arrival,
		DepartureDate:                    departure,
		ActiveWorkdays:                   workdays,
		ParticipantCount:                 doc.ParticipantCount,
		StandardTeachingHours:            doc.StandardTeachingHours,
		Services:                         make(entities.Collection[entities.QuoteService], 0, len(doc.Services)),
		Teachers:                         make(entities.Collection[entities.Teacher], 0, len(doc.Teachers)),
		Coordinators:                     make(entities.Collection[entities.Coordinator], 0, len(doc.Coordinators)),
		ManualSellingPricePerParticipant: doc.ManualSellingPricePerParticipant,
	}
	for _, svc := range doc.Services {
		s.Services = append(s.Services, entities.QuoteService{
			Name:                svc.Name,
			Enabled:             svc.Enabled,
			CostPrice:           svc.CostPrice,
			TimeBasis:           entities.TimeBasis(svc.TimeBasis),
			IsDefault:           svc.IsDefault,
			ParticipantOverride: svc.ParticipantOverride,
		})
	}
	for _, t := range doc.Teachers {
		s.Teachers = append(s.Teachers, entities.Teacher{Name: t.Name, HourlyRate: t.HourlyRate})
	}
	for _, c := range doc.Coordinators {
		s.Coordinators = append(s.Coordinators, entities.Coordinator{Name: c.Name, DailyRate: c.DailyRate, Enabled: c.Enabled})
	}
	return s, nil
}

var collectionAttributes = []string{"services", "teachers", "coordinators"}

// normalizeCollectionAttributes rewrites keyed (M) service/teacher/coordinator
// attributes of a stored state into lists ordered by key, so items written by
// clients that key their collections decode like ours.
func normalizeCollectionAttributes(state map[string]types.AttributeValue) {
	for _, name := range collectionAttributes {
		m, ok := state[name].(*types.AttributeValueMemberM)
		if !ok {
			continue
		}
		keys := make([]string, 0, len(m.Value))
		for k := range m.Value {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return collectionKeyLess(keys[i], keys[j]) })
		list := make([]types.AttributeValue, 0, len(keys))
		for _, k := range keys {
			list = append(list, m.Value[k])
		}
		state[name] = &types.AttributeValueMemberL{Value: list}
	}
}

// collectionKeyLess orders index keys ("0", "1", ..., "10") numerically
// ahead of any other key, and everything else as text.
func collectionKeyLess(a, b string) bool {
	ai, aErr := strconv.ParseUint(a, 10, 64)
	bi, bErr := strconv.ParseUint(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}

// normalizeQuoteItem applies normalizeCollectionAttributes to the state of a
// raw quote item.
func normalizeQuoteItem(item map[string]types.AttributeValue) {
	if st, ok := item["state"].(*types.AttributeValueMemberM); ok {
		normalizeCollectionAttributes(st.Value)
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}
