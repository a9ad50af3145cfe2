package repository

import (
	"context"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type technicianItem struct {
	BusinessID     string                       `dynamodbav:"business_id"`
	ID             string                       `dynamodbav:"id"`
	Name           string                       `dynamodbav:"name"`
	Email          string                       `dynamodbav:"email"`
	Phone          string                       `dynamodbav:"phone"`
	Status         string                       `dynamodbav:"status"`
	CurrentJobID   string                       `dynamodbav:"current_job_id"`
	NextJobID      string                       `dynamodbav:"next_job_id"`
	Location       *entities.TechnicianLocation `dynamodbav:"location,omitempty"`
	LocationTsMs   int64                        `dynamodbav:"location_ts_ms,omitempty"`
	Certifications []string                     `dynamodbav:"certifications"`
	Skills         entities.Skills              `dynamodbav:"skills"`
	WeeklySchedule entities.WeeklySchedule      `dynamodbav:"weekly_schedule"`
	Performance    entities.PerformanceStats    `dynamodbav:"performance"`
	Availability   []entities.AvailabilityEntry `dynamodbav:"availability"`
	IsActive       bool                         `dynamodbav:"is_active"`
	Version        int64                        `dynamodbav:"version"`
	CreatedAt      string                       `dynamodbav:"created_at"`
	UpdatedAt      string                       `dynamodbav:"updated_at"`
	DeletedAt      string                       `dynamodbav:"deleted_at"`
}

// TechnicianDynamoRepository persists technicians in DynamoDB.
//
// Table requirements:
//   - PK: business_id (string), SK: id (string)
//
// The live location is written only through UpdateLocation, guarded by
// location_ts_ms so that an older report never overwrites a newer one.
type TechnicianDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITechnicianRepository = (*TechnicianDynamoRepository)(nil)

func NewTechnicianDynamoRepository(ddb *dynamodb.Client, tableName string) *TechnicianDynamoRepository {
	return &TechnicianDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TechnicianDynamoRepository) key(businessID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"business_id": strAttr(businessID), "id": strAttr(id)}
}

func (r *TechnicianDynamoRepository) Create(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	av, err := attributevalue.MarshalMap(toTechnicianItem(t))
	if err != nil {
		return entities.Technician{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Technician{}, err
	}
	return t, nil
}

func (r *TechnicianDynamoRepository) GetByID(ctx context.Context, businessID, id string) (entities.Technician, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(businessID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Technician{}, err
	}
	if len(out.Item) == 0 {
		return entities.Technician{}, nil
	}
	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func (r *TechnicianDynamoRepository) ListByBusiness(ctx context.Context, businessID string) ([]entities.Technician, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#b = :b"),
		ExpressionAttributeNames:  map[string]string{"#b": "business_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":b": strAttr(businessID)},
	})
	var out []entities.Technician
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalItems[technicianItem](page.Items)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromTechnicianItem(it))
		}
	}
	return out, nil
}

// Update rewrites every attribute except the live location, guarded by the
// version read by the caller.
func (r *TechnicianDynamoRepository) Update(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	item := toTechnicianItem(t)
	item.Version = t.Version + 1
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return entities.Technician{}, err
	}
	expr, names, values := setExpression(av, "business_id", "id", "location", "location_ts_ms")
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 r.key(t.BusinessID, t.ID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":      "id",
			"#version": "version",
		}),
		ExpressionAttributeValues:           mergeValues(values, map[string]types.AttributeValue{":expected": numAttr(t.Version)}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return entities.Technician{}, nil
			}
			return entities.Technician{}, interfaces.ErrConditionFailed
		}
		return entities.Technician{}, err
	}
	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func (r *TechnicianDynamoRepository) UpdateLocation(ctx context.Context, businessID, id string, loc entities.TechnicianLocation) (entities.Technician, error) {
	locAV, err := attributevalue.Marshal(loc)
	if err != nil {
		return entities.Technician{}, err
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 r.key(businessID, id),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#ts) OR #ts <= :ts)"),
		UpdateExpression:    aws.String("SET #loc = :loc, #ts = :ts, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#loc":        "location",
			"#ts":         "location_ts_ms",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":loc":        locAV,
			":ts":         numAttr(loc.Timestamp.UnixMilli()),
			":updated_at": strAttr(formatTime(loc.Timestamp)),
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return entities.Technician{}, nil
			}
			return entities.Technician{}, interfaces.ErrConditionFailed
		}
		return entities.Technician{}, err
	}
	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func toTechnicianItem(t entities.Technician) technicianItem {
	it := technicianItem{
		BusinessID:     t.BusinessID,
		ID:             t.ID,
		Name:           t.Name,
		Email:          t.Email,
		Phone:          t.Phone,
		Status:         string(t.Status),
		CurrentJobID:   t.CurrentJobID,
		NextJobID:      t.NextJobID,
		Location:       t.Location,
		Certifications: t.Certifications,
		Skills:         t.Skills,
		WeeklySchedule: t.WeeklySchedule,
		Performance:    t.Performance,
		Availability:   t.Availability,
		IsActive:       t.IsActive,
		Version:        t.Version,
		CreatedAt:      formatTime(t.CreatedAt),
		UpdatedAt:      formatTime(t.UpdatedAt),
		DeletedAt:      formatTimePtr(t.DeletedAt),
	}
	if t.Location != nil {
		it.LocationTsMs = t.Location.Timestamp.UnixMilli()
	}
	return it
}

func fromTechnicianItem(it technicianItem) entities.Technician {
	return entities.Technician{
		ID:             it.ID,
		BusinessID:     it.BusinessID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		Status:         entities.TechnicianStatus(it.Status),
		CurrentJobID:   it.CurrentJobID,
		NextJobID:      it.NextJobID,
		Location:       it.Location,
		Certifications: it.Certifications,
		Skills:         it.Skills,
		WeeklySchedule: it.WeeklySchedule,
		Performance:    it.Performance,
		Availability:   it.Availability,
		IsActive:       it.IsActive,
		Version:        it.Version,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		DeletedAt:      parseTimePtr(it.DeletedAt),
	}
}
