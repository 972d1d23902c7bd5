package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seminar_billing/internal/domain/entities"
	"seminar_billing/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const paymentsCollection = "quote_payments"

type quotePaymentDocument struct {
	ID                 string                 `bson:"_id"`
	QuoteID            string                 `bson:"quote_id"`
	Amount             float64                `bson:"amount"`
	Date               time.Time              `bson:"date"`
	Status             string                 `bson:"status"`
	ProviderPayload    map[string]interface{} `bson:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `bson:"provider_payload_raw,omitempty"`
}

type QuotePaymentMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentMongoRepository)(nil)

func NewQuotePaymentMongoRepository(db *mongo.Database) *QuotePaymentMongoRepository {
	return &QuotePaymentMongoRepository{coll: db.Collection(paymentsCollection)}
}

func (r *QuotePaymentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "quote_id", Value: 1}, {Key: "date", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	return nil
}

func (r *QuotePaymentMongoRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	if _, err := r.coll.InsertOne(ctx, toQuotePaymentDocument(p)); err != nil {
		return entities.QuotePayment{}, err
	}
	return p, nil
}

func (r *QuotePaymentMongoRepository) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	var doc quotePaymentDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.QuotePayment{}, nil
	}
	if err != nil {
		return entities.QuotePayment{}, err
	}
	return fromQuotePaymentDocument(doc), nil
}

func (r *QuotePaymentMongoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"quote_id": quoteID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []quotePaymentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]entities.QuotePayment, 0, len(docs))
	for _, doc := range docs {
		items = append(items, fromQuotePaymentDocument(doc))
	}
	return items, nil
}

func toQuotePaymentDocument(p entities.QuotePayment) quotePaymentDocument {
	return quotePaymentDocument{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Amount:             p.Amount,
		Date:               p.Date.UTC(),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromQuotePaymentDocument(doc quotePaymentDocument) entities.QuotePayment {
	p := entities.QuotePayment{
		ID:              doc.ID,
		QuoteID:         doc.QuoteID,
		Amount:          doc.Amount,
		Date:            doc.Date.UTC(),
		Status:          entities.PaymentStatus(doc.Status),
		ProviderPayload: doc.ProviderPayload,
	}
	if doc.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(doc.ProviderPayloadRaw)
	}
	return p
}
