package repository

import (
	"context"
	"strconv"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/infrastructure/database"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// versionSK is the sort key of the per-day version item. Entry ids are UUIDs
// and never collide with it.
const versionSK = "#version"

type scheduleEntryItem struct {
	DayKey           string   `dynamodbav:"day_key"`
	ID               string   `dynamodbav:"id"`
	BusinessID       string   `dynamodbav:"business_id"`
	TechID           string   `dynamodbav:"tech_id"`
	JobID            string   `dynamodbav:"job_id"`
	ScheduledDate    string   `dynamodbav:"scheduled_date"`
	StartTime        string   `dynamodbav:"start_time"`
	EndTime          string   `dynamodbav:"end_time"`
	EstimatedHours   float64  `dynamodbav:"estimated_hours"`
	Status           string   `dynamodbav:"status"`
	Order            int      `dynamodbav:"order"`
	ConflictOverride bool     `dynamodbav:"conflict_override"`
	ConflictsWith    []string `dynamodbav:"conflicts_with,omitempty"`
	CreatedBy        string   `dynamodbav:"created_by"`
	StartedAt        string   `dynamodbav:"started_at"`
	CompletedAt      string   `dynamodbav:"completed_at"`
	CancelledAt      string   `dynamodbav:"cancelled_at"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
	DeletedAt        string   `dynamodbav:"deleted_at"`
}

type dayVersionItem struct {
	DayKey  string `dynamodbav:"day_key"`
	ID      string `dynamodbav:"id"`
	Version int64  `dynamodbav:"version"`
}

// ScheduleEntryDynamoRepository persists schedule entries in DynamoDB.
//
// Table requirements:
//   - PK: day_key (business_id#tech_id#date), SK: id
//   - GSI: entry_id-index (PK: id)
//
// Each day partition carries a version item. Writes that depend on the day's
// contents (create, reorder) run in a transaction that bumps the version
// conditionally, so two writers that read the same version cannot both win.
type ScheduleEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScheduleEntryRepository = (*ScheduleEntryDynamoRepository)(nil)

func NewScheduleEntryDynamoRepository(ddb *dynamodb.Client, tableName string) *ScheduleEntryDynamoRepository {
	return &ScheduleEntryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ScheduleEntryDynamoRepository) ListDay(ctx context.Context, businessID, techID, date string) (interfaces.DayEntries, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#k = :k"),
		ExpressionAttributeNames:  map[string]string{"#k": "day_key"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":k": strAttr(entities.DayKey(businessID, techID, date))},
		ConsistentRead:            aws.Bool(true),
	})
	var out interfaces.DayEntries
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return interfaces.DayEntries{}, err
		}
		for _, item := range page.Items {
			if id, ok := item["id"].(*types.AttributeValueMemberS); ok && id.Value == versionSK {
				var v dayVersionItem
				if err := attributevalue.UnmarshalMap(item, &v); err != nil {
					return interfaces.DayEntries{}, err
				}
				out.Version = v.Version
				continue
			}
			var it scheduleEntryItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return interfaces.DayEntries{}, err
			}
			out.Entries = append(out.Entries, fromScheduleEntryItem(it))
		}
	}
	return out, nil
}

// bumpVersion is the transaction step that moves the day from expected to
// expected+1.
func (r *ScheduleEntryDynamoRepository) bumpVersion(dayKey string, expected int64) types.TransactWriteItem {
	cond := "#v = :expected"
	values := map[string]types.AttributeValue{
		":next":     numAttr(expected + 1),
		":expected": numAttr(expected),
	}
	if expected == 0 {
		cond = "attribute_not_exists(#v)"
		delete(values, ":expected")
	}
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"day_key": strAttr(dayKey), "id": strAttr(versionSK)},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String("SET #v = :next"),
		ExpressionAttributeNames:  map[string]string{"#v": "version"},
		ExpressionAttributeValues: values,
	}}
}

func (r *ScheduleEntryDynamoRepository) CreateEntry(ctx context.Context, e entities.ScheduleEntry, expectedVersion int64) (entities.ScheduleEntry, error) {
	it := toScheduleEntryItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			r.bumpVersion(it.DayKey, expectedVersion),
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if transactionCancelled(err) {
		return entities.ScheduleEntry{}, interfaces.ErrVersionConflict
	}
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	return e, nil
}

func (r *ScheduleEntryDynamoRepository) UpdateOrders(ctx context.Context, businessID, techID, date string, orders map[string]int, expectedVersion int64) error {
	dayKey := entities.DayKey(businessID, techID, date)
	items := []types.TransactWriteItem{r.bumpVersion(dayKey, expectedVersion)}
	for id, o := range orders {
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:                aws.String(r.tableName),
			Key:                      map[string]types.AttributeValue{"day_key": strAttr(dayKey), "id": strAttr(id)},
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			UpdateExpression:         aws.String("SET #order = :order"),
			ExpressionAttributeNames: map[string]string{"#id": "id", "#order": "order"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":order": &types.AttributeValueMemberN{Value: strconv.Itoa(o)},
			},
		}})
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if transactionCancelled(err) {
		return interfaces.ErrVersionConflict
	}
	return err
}

// GetByID resolves an entry through the entry_id-index. The index is
// eventually consistent.
func (r *ScheduleEntryDynamoRepository) GetByID(ctx context.Context, businessID, id string) (entities.ScheduleEntry, error) {
	if id == versionSK {
		return entities.ScheduleEntry{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(database.EntryIDIndex),
		KeyConditionExpression:    aws.String("#id = :id"),
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":id": strAttr(id)},
	})
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	items, err := unmarshalItems[scheduleEntryItem](out.Items)
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	for _, it := range items {
		if it.BusinessID == businessID {
			return fromScheduleEntryItem(it), nil
		}
	}
	return entities.ScheduleEntry{}, nil
}

func (r *ScheduleEntryDynamoRepository) UpdateStatus(ctx context.Context, e entities.ScheduleEntry, from entities.ScheduleEntryStatus) (entities.ScheduleEntry, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"day_key": strAttr(entities.DayKey(e.BusinessID, e.TechID, e.ScheduledDate)),
			"id":      strAttr(e.ID),
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression: aws.String("SET #status = :status, #started_at = :started_at, " +
			"#completed_at = :completed_at, #cancelled_at = :cancelled_at, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#started_at":   "started_at",
			"#completed_at": "completed_at",
			"#cancelled_at": "cancelled_at",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":         strAttr(string(from)),
			":status":       strAttr(string(e.Status)),
			":started_at":   strAttr(formatTimePtr(e.StartedAt)),
			":completed_at": strAttr(formatTimePtr(e.CompletedAt)),
			":cancelled_at": strAttr(formatTimePtr(e.CancelledAt)),
			":updated_at":   strAttr(formatTime(e.UpdatedAt)),
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return entities.ScheduleEntry{}, nil
			}
			return entities.ScheduleEntry{}, interfaces.ErrConditionFailed
		}
		return entities.ScheduleEntry{}, err
	}
	var it scheduleEntryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ScheduleEntry{}, err
	}
	return fromScheduleEntryItem(it), nil
}

func toScheduleEntryItem(e entities.ScheduleEntry) scheduleEntryItem {
	return scheduleEntryItem{
		DayKey:           entities.DayKey(e.BusinessID, e.TechID, e.ScheduledDate),
		ID:               e.ID,
		BusinessID:       e.BusinessID,
		TechID:           e.TechID,
		JobID:            e.JobID,
		ScheduledDate:    e.ScheduledDate,
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		EstimatedHours:   e.EstimatedHours,
		Status:           string(e.Status),
		Order:            e.Order,
		ConflictOverride: e.ConflictOverride,
		ConflictsWith:    e.ConflictsWith,
		CreatedBy:        e.CreatedBy,
		StartedAt:        formatTimePtr(e.StartedAt),
		CompletedAt:      formatTimePtr(e.CompletedAt),
		CancelledAt:      formatTimePtr(e.CancelledAt),
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
		DeletedAt:        formatTimePtr(e.DeletedAt),
	}
}

func fromScheduleEntryItem(it scheduleEntryItem) entities.ScheduleEntry {
	return entities.ScheduleEntry{
		ID:               it.ID,
		BusinessID:       it.BusinessID,
		TechID:           it.TechID,
		JobID:            it.JobID,
		ScheduledDate:    it.ScheduledDate,
		StartTime:        it.StartTime,
		EndTime:          it.EndTime,
		EstimatedHours:   it.EstimatedHours,
		Status:           entities.ScheduleEntryStatus(it.Status),
		Order:            it.Order,
		ConflictOverride: it.ConflictOverride,
		ConflictsWith:    it.ConflictsWith,
		CreatedBy:        it.CreatedBy,
		StartedAt:        parseTimePtr(it.StartedAt),
		CompletedAt:      parseTimePtr(it.CompletedAt),
		CancelledAt:      parseTimePtr(it.CancelledAt),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
		DeletedAt:        parseTimePtr(it.DeletedAt),
	}
}
