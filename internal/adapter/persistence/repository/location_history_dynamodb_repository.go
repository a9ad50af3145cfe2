package repository

import (
	"context"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type locationSampleItem struct {
	TechKey    string   `dynamodbav:"tech_key"`
	RecordedAt string   `dynamodbav:"recorded_at"`
	BusinessID string   `dynamodbav:"business_id"`
	TechID     string   `dynamodbav:"tech_id"`
	Longitude  float64  `dynamodbav:"longitude"`
	Latitude   float64  `dynamodbav:"latitude"`
	Accuracy   *float64 `dynamodbav:"accuracy,omitempty"`
	// ExpiresAt is epoch seconds, as the DynamoDB TTL requires.
	ExpiresAt int64 `dynamodbav:"expires_at"`
}

// LocationHistoryDynamoRepository appends technician location samples.
//
// Table requirements:
//   - PK: tech_key (business_id#tech_id), SK: recorded_at
//   - TTL attribute: expires_at
type LocationHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.ILocationHistoryRepository = (*LocationHistoryDynamoRepository)(nil)

func NewLocationHistoryDynamoRepository(ddb *dynamodb.Client, tableName string) *LocationHistoryDynamoRepository {
	return &LocationHistoryDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func techKey(businessID, techID string) string {
	return businessID + "#" + techID
}

func (r *LocationHistoryDynamoRepository) Append(ctx context.Context, s entities.LocationSample) error {
	av, err := attributevalue.MarshalMap(locationSampleItem{
		TechKey:    techKey(s.BusinessID, s.TechID),
		RecordedAt: formatTime(s.RecordedAt),
		BusinessID: s.BusinessID,
		TechID:     s.TechID,
		Longitude:  s.Longitude,
		Latitude:   s.Latitude,
		Accuracy:   s.Accuracy,
		ExpiresAt:  s.ExpiresAt.Unix(),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// List returns samples recorded at or after since. TTL deletion lags, so
// expired samples are filtered out here as well.
func (r *LocationHistoryDynamoRepository) List(ctx context.Context, businessID, techID string, since time.Time) ([]entities.LocationSample, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#k = :k AND #r >= :since"),
		FilterExpression:       aws.String("#exp > :now"),
		ExpressionAttributeNames: map[string]string{
			"#k":   "tech_key",
			"#r":   "recorded_at",
			"#exp": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k":     strAttr(techKey(businessID, techID)),
			":since": strAttr(formatTime(since)),
			":now":   numAttr(r.now().Unix()),
		},
	})
	var out []entities.LocationSample
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalItems[locationSampleItem](page.Items)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, entities.LocationSample{
				BusinessID: it.BusinessID,
				TechID:     it.TechID,
				GeoPoint:   entities.GeoPoint{Longitude: it.Longitude, Latitude: it.Latitude},
				Accuracy:   it.Accuracy,
				RecordedAt: parseTime(it.RecordedAt),
				ExpiresAt:  time.Unix(it.ExpiresAt, 0).UTC(),
			})
		}
	}
	return out, nil
}
