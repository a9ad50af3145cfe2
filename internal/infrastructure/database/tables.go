package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	appconfig "dispatch_service/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Index names shared with the repositories.
const (
	EntryIDIndex          = "entry_id-index"
	BusinessCreatedIndex  = "business_id-created_at-index"
	StatusCreatedIndex    = "status-created_at-index"
	LocationHistoryTTLKey = "expires_at"
)

// TableSpecs returns the CreateTable input for every table the service uses.
//
//   - technicians: PK business_id, SK id
//   - schedule_entries: PK day_key, SK id; GSI entry_id-index on id
//   - dispatch_suggestions: PK id; GSIs on (business_id, created_at) and (status, created_at)
//   - technician_location_history: PK tech_key, SK recorded_at; TTL on expires_at
//   - jobs: PK business_id, SK id
func TableSpecs(cfg appconfig.Config) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(cfg.TechniciansTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("business_id", "id"),
			KeySchema:            keys("business_id", "id"),
		},
		{
			TableName:            aws.String(cfg.ScheduleEntriesTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("day_key", "id"),
			KeySchema:            keys("day_key", "id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName:  aws.String(EntryIDIndex),
					KeySchema:  keys("id", ""),
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
		},
		{
			TableName:            aws.String(cfg.SuggestionsTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("id", "business_id", "status", "created_at"),
			KeySchema:            keys("id", ""),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName:  aws.String(BusinessCreatedIndex),
					KeySchema:  keys("business_id", "created_at"),
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
				{
					IndexName:  aws.String(StatusCreatedIndex),
					KeySchema:  keys("status", "created_at"),
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
		},
		{
			TableName:            aws.String(cfg.LocationHistoryTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("tech_key", "recorded_at"),
			KeySchema:            keys("tech_key", "recorded_at"),
		},
		{
			TableName:            aws.String(cfg.JobsTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("business_id", "id"),
			KeySchema:            keys("business_id", "id"),
		},
	}
}

// EnsureTables creates missing tables and waits until they are active.
// Existing tables are left untouched.
func EnsureTables(ctx context.Context, client *dynamodb.Client, cfg appconfig.Config) error {
	waiter := dynamodb.NewTableExistsWaiter(client)
	for _, spec := range TableSpecs(cfg) {
		name := aws.ToString(spec.TableName)
		_, err := client.CreateTable(ctx, spec)
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			slog.Debug("table already exists", "table", name)
			continue
		case err != nil:
			return fmt.Errorf("create table %s: %w", name, err)
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: spec.TableName}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		slog.Info("table created", "table", name)
	}

	_, err := client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(cfg.LocationHistoryTable),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String(LocationHistoryTTLKey),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		// Re-enabling an enabled TTL is a validation error; it is not fatal.
		slog.Warn("location history ttl not updated", "table", cfg.LocationHistoryTable, "error", err)
	}
	return nil
}

func attrs(names ...string) []types.AttributeDefinition {
	out := make([]types.AttributeDefinition, 0, len(names))
	for _, n := range names {
		out = append(out, types.AttributeDefinition{AttributeName: aws.String(n), AttributeType: types.ScalarAttributeTypeS})
	}
	return out
}

// keys builds a hash key schema, with a range key when sort is non-empty.
func keys(hash, sort string) []types.KeySchemaElement {
	out := []types.KeySchemaElement{{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash}}
	if sort != "" {
		out = append(out, types.KeySchemaElement{AttributeName: aws.String(sort), KeyType: types.KeyTypeRange})
	}
	return out
}
