package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"seminar_billing/internal/domain/entities"
	"seminar_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesSeminarIDIndex   = "seminar_id-index"
)

type quoteItem struct {
	ID        string        `dynamodbav:"id"`
	SeminarID string        `dynamodbav:"seminar_id"`
	Title     string        `dynamodbav:"title"`
	Status    string        `dynamodbav:"status"`
	State     quoteStateDoc `dynamodbav:"state"`
	CreatedAt string        `dynamodbav:"created_at"`
	UpdatedAt string        `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote drafts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: seminar_id-index (PK: seminar_id)
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	return decodeQuoteItem(out.Item)
}

func (r *QuoteDynamoRepository) ListBySeminarID(ctx context.Context, seminarID string) ([]entities.Quote, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesSeminarIDIndex),
		KeyConditionExpression: aws.String("seminar_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: seminarID},
		},
	})

	quotes := make([]entities.Quote, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			q, err := decodeQuoteItem(raw)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.Before(quotes[j].CreatedAt)
	})
	return quotes, nil
}

// UpdateState replaces the state of a draft. A missing or non-draft quote
// yields a zero Quote.
func (r *QuoteDynamoRepository) UpdateState(ctx context.Context, id string, state entities.QuoteState) (entities.Quote, error) {
	stateAV, err := attributevalue.Marshal(toQuoteStateDoc(state))
	if err != nil {
		return entities.Quote{}, err
	}
	return r.update(ctx, id,
		"SET #state = :state, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :draft",
		map[string]types.AttributeValue{
			":state": stateAV,
			":draft": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusDraft)},
		},
		map[string]string{
			"#state":  "state",
			"#status": "status",
		},
	)
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id,
		"SET #status = :status, #updated_at = :updated_at",
		"attribute_exists(#id)",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{
			"#status": "status",
		},
	)
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	condition string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Quote, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	return decodeQuoteItem(out.Attributes)
}

func decodeQuoteItem(raw map[string]types.AttributeValue) (entities.Quote, error) {
	normalizeQuoteItem(raw)
	var it quoteItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:        q.ID,
		SeminarID: q.SeminarID,
		Title:     q.Title,
		Status:    string(q.Status),
		State:     toQuoteStateDoc(q.State),
		CreatedAt: formatTime(q.CreatedAt),
		UpdatedAt: formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	state, err := fromQuoteStateDoc(it.State)
	if err != nil {
		return entities.Quote{}, err
	}
	return entities.Quote{
		ID:        it.ID,
		SeminarID: it.SeminarID,
		Title:     it.Title,
		Status:    entities.QuoteStatus(it.Status),
		State:     state,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}
