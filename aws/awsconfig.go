package aws

import (
	"context"
	"fmt"

	aws2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// LoadAWSConfig loads the default credential chain for a region and,
// when roleArn is set, layers an AssumeRole provider on top so the sync
// can run against a target account.
func LoadAWSConfig(ctx context.Context, region string, roleArn string) (aws2.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
	)
	if err != nil {
		return aws2.Config{}, fmt.Errorf("loading AWS config for region %s: %w", region, err)
	}

	if roleArn != "" {
		stsClient := sts.NewFromConfig(cfg)
		cfg.Credentials = aws2.NewCredentialsCache(
			stscreds.NewAssumeRoleProvider(stsClient, roleArn, func(o *stscreds.AssumeRoleOptions) {
				o.RoleSessionName = "dashboard-sync-session"
			}),
		)
	}

	return cfg, nil
}
