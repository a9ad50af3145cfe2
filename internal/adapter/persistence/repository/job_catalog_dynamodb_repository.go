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

type jobItem struct {
	BusinessID             string   `dynamodbav:"business_id"`
	ID                     string   `dynamodbav:"id"`
	Vertical               string   `dynamodbav:"vertical"`
	ServiceType            string   `dynamodbav:"service_type"`
	RequiredCertifications []string `dynamodbav:"required_certifications"`
	Address                string   `dynamodbav:"address"`
	Longitude              *float64 `dynamodbav:"longitude,omitempty"`
	Latitude               *float64 `dynamodbav:"latitude,omitempty"`
	CustomerID             string   `dynamodbav:"customer_id"`
	PreferredTechID        string   `dynamodbav:"preferred_tech_id"`
	EstimatedHours         float64  `dynamodbav:"estimated_hours"`
}

// JobCatalogDynamoRepository is a read model of the jobs owned by the
// surrounding system, fed by `dispatchctl jobs import`.
//
// Table requirements:
//   - PK: business_id, SK: id
type JobCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobCatalog = (*JobCatalogDynamoRepository)(nil)

func NewJobCatalogDynamoRepository(ddb *dynamodb.Client, tableName string) *JobCatalogDynamoRepository {
	return &JobCatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *JobCatalogDynamoRepository) GetJob(ctx context.Context, businessID, jobID string) (entities.JobDetails, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"business_id": strAttr(businessID),
			"id":          strAttr(jobID),
		},
	})
	if err != nil {
		return entities.JobDetails{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobDetails{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobDetails{}, err
	}
	j := entities.JobDetails{
		ID:                     it.ID,
		BusinessID:             it.BusinessID,
		Vertical:               entities.Vertical(it.Vertical),
		ServiceType:            entities.ServiceType(it.ServiceType),
		RequiredCertifications: it.RequiredCertifications,
		Address:                it.Address,
		CustomerID:             it.CustomerID,
		PreferredTechID:        it.PreferredTechID,
		EstimatedHours:         it.EstimatedHours,
	}
	if it.Longitude != nil && it.Latitude != nil {
		j.Location = &entities.GeoPoint{Longitude: *it.Longitude, Latitude: *it.Latitude}
	}
	return j, nil
}

// Put upserts a job.
func (r *JobCatalogDynamoRepository) Put(ctx context.Context, j entities.JobDetails) error {
	it := jobItem{
		BusinessID:             j.BusinessID,
		ID:                     j.ID,
		Vertical:               string(j.Vertical),
		ServiceType:            string(j.ServiceType),
		RequiredCertifications: j.RequiredCertifications,
		Address:                j.Address,
		CustomerID:             j.CustomerID,
		PreferredTechID:        j.PreferredTechID,
		EstimatedHours:         j.EstimatedHours,
	}
	if j.Location != nil {
		it.Longitude = aws.Float64(j.Location.Longitude)
		it.Latitude = aws.Float64(j.Location.Latitude)
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
