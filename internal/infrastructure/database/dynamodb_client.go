package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the client the job repository runs on.
//
// Point DYNAMODB_ENDPOINT at a local instance (e.g. http://dynamodb:8000) to
// run against the compose stack; local DynamoDB ignores credentials but the
// SDK insists on having some, hence the "local" fallbacks for
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY. AWS_REGION defaults to
// us-east-1.
func ConnectDynamoDB() *dynamodb.Client {
	ctx := context.Background()

	region := envOr("AWS_REGION", "us-east-1")
	creds := credentials.NewStaticCredentialsProvider(
		envOr("AWS_ACCESS_KEY_ID", "local"),
		envOr("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		log.Fatalf("[database][dynamodb] config load failed err=%v", err)
	}

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	if endpoint != "" {
		log.Printf("[database][dynamodb] using local endpoint url=%s region=%s", endpoint, region)
	}
	return client
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
