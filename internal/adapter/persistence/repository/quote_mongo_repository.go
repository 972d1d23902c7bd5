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

const quotesCollection = "quotes"

type quoteDocument struct {
	ID        string        `bson:"_id"`
	SeminarID string        `bson:"seminar_id"`
	Title     string        `bson:"title"`
	Status    string        `bson:"status"`
	State     quoteStateDoc `bson:"state"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// QuoteMongoRepository persists Quote drafts in MongoDB, one document per
// quote keyed by its id.
type QuoteMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IQuoteRepository = (*QuoteMongoRepository)(nil)

func NewQuoteMongoRepository(db *mongo.Database) *QuoteMongoRepository {
	return &QuoteMongoRepository{coll: db.Collection(quotesCollection)}
}

// EnsureIndexes creates the seminar_id lookup index.
func (r *QuoteMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "seminar_id", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create quote indexes: %w", err)
	}
	return nil
}

func (r *QuoteMongoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if _, err := r.coll.InsertOne(ctx, toQuoteDocument(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteMongoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var doc quoteDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteDocument(doc)
}

func (r *QuoteMongoRepository) ListBySeminarID(ctx context.Context, seminarID string) ([]entities.Quote, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"seminar_id": seminarID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	quotes := make([]entities.Quote, 0)
	for cur.Next(ctx) {
		var doc quoteDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		q, err := fromQuoteDocument(doc)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return quotes, nil
}

// UpdateState replaces the state of a draft. A missing or non-draft quote
// yields a zero Quote.
func (r *QuoteMongoRepository) UpdateState(ctx context.Context, id string, state entities.QuoteState) (entities.Quote, error) {
	return r.findOneAndSet(ctx,
		bson.M{"_id": id, "status": string(entities.QuoteStatusDraft)},
		bson.M{"state": toQuoteStateDoc(state)},
	)
}

func (r *QuoteMongoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.findOneAndSet(ctx, bson.M{"_id": id}, bson.M{"status": string(status)})
}

func (r *QuoteMongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *QuoteMongoRepository) findOneAndSet(ctx context.Context, filter bson.M, set bson.M) (entities.Quote, error) {
	set["updated_at"] = time.Now().UTC()

	var doc quoteDocument
	err := r.coll.FindOneAndUpdate(ctx, filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteDocument(doc)
}

func toQuoteDocument(q entities.Quote) quoteDocument {
	return quoteDocument{
		ID:        q.ID,
		SeminarID: q.SeminarID,
		Title:     q.Title,
		Status:    string(q.Status),
		State:     toQuoteStateDoc(q.State),
		CreatedAt: q.CreatedAt.UTC(),
		UpdatedAt: q.UpdatedAt.UTC(),
	}
}

func fromQuoteDocument(doc quoteDocument) (entities.Quote, error) {
	state, err := fromQuoteStateDoc(doc.State)
	if err != nil {
		return entities.Quote{}, err
	}
	return entities.Quote{
		ID:        doc.ID,
		SeminarID: doc.SeminarID,
		Title:     doc.Title,
		Status:    entities.QuoteStatus(doc.Status),
		State:     state,
		CreatedAt: doc.CreatedAt.UTC(),
		UpdatedAt: doc.UpdatedAt.UTC(),
	}, nil
}
