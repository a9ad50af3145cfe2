package database

import (
	"context"
	"os"

	appconfig "dispatch_service/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// LoadAWSConfig builds the shared AWS config.
//
// When DYNAMODB_ENDPOINT is set (DynamoDB Local, LocalStack) static
// credentials are used, read from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY
// and defaulting to "local". Otherwise the default credential chain applies.
func LoadAWSConfig(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.DynamoDBEndpoint != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// NewDynamoDBClient returns a client pointed at cfg.DynamoDBEndpoint when set.
func NewDynamoDBClient(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// ConnectDynamoDB loads the AWS config and builds the DynamoDB client.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.Config) (*dynamodb.Client, aws.Config, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, aws.Config{}, err
	}
	return NewDynamoDBClient(awsCfg, cfg.DynamoDBEndpoint), awsCfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
