package database

import (
	"context"

	"odonto_docs/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// NewAWSConfig loads the shared SDK configuration used by DynamoDB, S3 and SQS.
func NewAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	// Local emulators do not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// ConnectDynamoDB creates a DynamoDB client. DYNAMODB_ENDPOINT overrides the
// service endpoint (e.g. http://dynamodb:8000).
func ConnectDynamoDB(awsCfg aws.Config, cfg config.Config) *dynamodb.Client {
	if cfg.DynamoDBEndpoint != "" {
		zap.S().Infof("[database][dynamodb] using custom endpoint %s", cfg.DynamoDBEndpoint)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}
