package awslib

import (
	"cmp"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/artie-labs/materializer/lib/config"
)

const defaultMaxAttempts = 5

// NewConfig loads the default AWS config, static credentials from [awsSettings] take precedence when set.
func NewConfig(ctx context.Context, awsSettings *config.AWS) (aws.Config, error) {
	var region string
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRetryMaxAttempts(defaultMaxAttempts)}
	if awsSettings != nil {
		region = awsSettings.Region
		if awsSettings.AccessKeyID != "" && awsSettings.SecretAccessKey != "" {
			creds := credentials.NewStaticCredentialsProvider(awsSettings.AccessKeyID, awsSettings.SecretAccessKey, awsSettings.SessionToken)
			opts = append(opts, awsconfig.WithCredentialsProvider(creds))
		}
	}

	if region = cmp.Or(region, os.Getenv("AWS_REGION")); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return cfg, nil
}
