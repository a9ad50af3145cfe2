package repository

import (
	"context"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/infrastructure/database"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type suggestionItem struct {
	ID                 string                    `dynamodbav:"id"`
	BusinessID         string                    `dynamodbav:"business_id"`
	JobID              string                    `dynamodbav:"job_id"`
	TargetDate         string                    `dynamodbav:"target_date"`
	TargetTime         string                    `dynamodbav:"target_time"`
	EstimatedHours     float64                   `dynamodbav:"estimated_hours"`
	AllSuggestions     []entities.TechSuggestion `dynamodbav:"all_suggestions"`
	TopRecommendation  entities.TechSuggestion   `dynamodbav:"top_recommendation"`
	Status             string                    `dynamodbav:"status"`
	SelectedTechID     string                    `dynamodbav:"selected_tech_id"`
	WasTopPickSelected bool                      `dynamodbav:"was_top_pick_selected"`
	ResponseLatencyMs  int64                     `dynamodbav:"response_latency_ms"`
	RejectionReason    string                    `dynamodbav:"rejection_reason"`
	ActionedBy         string                    `dynamodbav:"actioned_by"`
	ActionedAt         string                    `dynamodbav:"actioned_at"`
	Degraded           bool                      `dynamodbav:"degraded"`
	GeneratedBy        string                    `dynamodbav:"generated_by"`
	CreatedAt          string                    `dynamodbav:"created_at"`
	UpdatedAt          string                    `dynamodbav:"updated_at"`
	ExpiresAt          string                    `dynamodbav:"expires_at"`
	DeletedAt          string                    `dynamodbav:"deleted_at"`
}

// SuggestionDynamoRepository persists dispatch suggestions.
//
// Table requirements:
//   - PK: id
//   - GSI business_id-created_at-index (analytics window)
//   - GSI status-created_at-index (expiry sweep)
type SuggestionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISuggestionRepository = (*SuggestionDynamoRepository)(nil)

func NewSuggestionDynamoRepository(ddb *dynamodb.Client, tableName string) *SuggestionDynamoRepository {
	return &SuggestionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SuggestionDynamoRepository) Create(ctx context.Context, s entities.DispatchSuggestion) (entities.DispatchSuggestion, error) {
	av, err := attributevalue.MarshalMap(toSuggestionItem(s))
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	return s, nil
}

func (r *SuggestionDynamoRepository) GetByID(ctx context.Context, businessID, id string) (entities.DispatchSuggestion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": strAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	if len(out.Item) == 0 {
		return entities.DispatchSuggestion{}, nil
	}
	var it suggestionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DispatchSuggestion{}, err
	}
	if it.BusinessID != businessID {
		return entities.DispatchSuggestion{}, nil
	}
	return fromSuggestionItem(it), nil
}

func (r *SuggestionDynamoRepository) SaveOutcome(ctx context.Context, s entities.DispatchSuggestion) (entities.DispatchSuggestion, error) {
	av, err := attributevalue.MarshalMap(toSuggestionItem(s))
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	expr, names, values := setExpression(av, "id", "business_id", "created_at")
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": strAttr(s.ID)},
		ConditionExpression: aws.String("attribute_exists(#id) AND #business = :business AND #status = :pending"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":       "id",
			"#business": "business_id",
			"#status":   "status",
		}),
		ExpressionAttributeValues: mergeValues(values, map[string]types.AttributeValue{
			":business": strAttr(s.BusinessID),
			":pending":  strAttr(string(entities.SuggestionStatusPending)),
		}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return entities.DispatchSuggestion{}, nil
			}
			return entities.DispatchSuggestion{}, interfaces.ErrConditionFailed
		}
		return entities.DispatchSuggestion{}, err
	}
	var it suggestionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DispatchSuggestion{}, err
	}
	return fromSuggestionItem(it), nil
}

func (r *SuggestionDynamoRepository) RevertOutcome(ctx context.Context, recorded, reopened entities.DispatchSuggestion) (entities.DispatchSuggestion, error) {
	av, err := attributevalue.MarshalMap(toSuggestionItem(reopened))
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	expr, names, values := setExpression(av, "id", "business_id", "created_at")
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": strAttr(reopened.ID)},
		ConditionExpression: aws.String("attribute_exists(#id) AND #business = :business AND #status = :recorded AND #actioned_at = :actioned_at"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":          "id",
			"#business":    "business_id",
			"#status":      "status",
			"#actioned_at": "actioned_at",
		}),
		ExpressionAttributeValues: mergeValues(values, map[string]types.AttributeValue{
			":business":    strAttr(reopened.BusinessID),
			":recorded":    strAttr(string(recorded.Status)),
			":actioned_at": strAttr(formatTimePtr(recorded.ActionedAt)),
		}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return entities.DispatchSuggestion{}, nil
			}
			return entities.DispatchSuggestion{}, interfaces.ErrConditionFailed
		}
		return entities.DispatchSuggestion{}, err
	}
	var it suggestionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DispatchSuggestion{}, err
	}
	return fromSuggestionItem(it), nil
}

func (r *SuggestionDynamoRepository) ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]entities.DispatchSuggestion, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.BusinessCreatedIndex),
		KeyConditionExpression: aws.String("#b = :b AND #c BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#b": "business_id",
			"#c": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":b":    strAttr(businessID),
			":from": strAttr(formatTime(from)),
			":to":   strAttr(formatTime(to)),
		},
	}, 0)
}

// ListPendingCreatedBefore reads the oldest pending suggestions first.
func (r *SuggestionDynamoRepository) ListPendingCreatedBefore(ctx context.Context, before time.Time, limit int) ([]entities.DispatchSuggestion, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.StatusCreatedIndex),
		KeyConditionExpression: aws.String("#s = :pending AND #c < :before"),
		ExpressionAttributeNames: map[string]string{
			"#s": "status",
			"#c": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": strAttr(string(entities.SuggestionStatusPending)),
			":before":  strAttr(formatTime(before)),
		},
		ScanIndexForward: aws.Bool(true),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	return r.query(ctx, in, limit)
}

// query drains the paginator, stopping once limit items were read (limit <= 0
// reads everything).
func (r *SuggestionDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput, limit int) ([]entities.DispatchSuggestion, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	var out []entities.DispatchSuggestion
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalItems[suggestionItem](page.Items)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromSuggestionItem(it))
			if limit > 0 && len(out) == limit {
				return out, nil
			}
		}
	}
	return out, nil
}

func toSuggestionItem(s entities.DispatchSuggestion) suggestionItem {
	return suggestionItem{
		ID:                 s.ID,
		BusinessID:         s.BusinessID,
		JobID:              s.JobID,
		TargetDate:         s.TargetDate,
		TargetTime:         s.TargetTime,
		EstimatedHours:     s.EstimatedHours,
		AllSuggestions:     s.AllSuggestions,
		TopRecommendation:  s.TopRecommendation,
		Status:             string(s.Status),
		SelectedTechID:     s.SelectedTechID,
		WasTopPickSelected: s.WasTopPickSelected,
		ResponseLatencyMs:  s.ResponseLatencyMs,
		RejectionReason:    s.RejectionReason,
		ActionedBy:         s.ActionedBy,
		ActionedAt:         formatTimePtr(s.ActionedAt),
		Degraded:           s.Degraded,
		GeneratedBy:        s.GeneratedBy,
		CreatedAt:          formatTime(s.CreatedAt),
		UpdatedAt:          formatTime(s.UpdatedAt),
		ExpiresAt:          formatTime(s.ExpiresAt),
		DeletedAt:          formatTimePtr(s.DeletedAt),
	}
}

func fromSuggestionItem(it suggestionItem) entities.DispatchSuggestion {
	return entities.DispatchSuggestion{
		ID:                 it.ID,
		BusinessID:         it.BusinessID,
		JobID:              it.JobID,
		TargetDate:         it.TargetDate,
		TargetTime:         it.TargetTime,
		EstimatedHours:     it.EstimatedHours,
		AllSuggestions:     it.AllSuggestions,
		TopRecommendation:  it.TopRecommendation,
		Status:             entities.SuggestionStatus(it.Status),
		SelectedTechID:     it.SelectedTechID,
		WasTopPickSelected: it.WasTopPickSelected,
		ResponseLatencyMs:  it.ResponseLatencyMs,
		RejectionReason:    it.RejectionReason,
		ActionedBy:         it.ActionedBy,
		ActionedAt:         parseTimePtr(it.ActionedAt),
		Degraded:           it.Degraded,
		GeneratedBy:        it.GeneratedBy,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		ExpiresAt:          parseTime(it.ExpiresAt),
		DeletedAt:          parseTimePtr(it.DeletedAt),
	}
}
