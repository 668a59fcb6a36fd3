// Package aws wraps the AWS service calls the pipeline consumes: the
// Resource Groups Tagging API for discovery and CloudWatch for dashboard
// publishing, plus the clients the preflight checks probe.
package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"
)

// Clients bundles the per-run AWS service clients. All share one config,
// so they target the same region and credentials.
type Clients struct {
	Tagging    *resourcegroupstaggingapi.Client
	CloudWatch *cloudwatch.Client
	EC2        *ec2.Client
	ECS        *ecs.Client
	ELB        *elasticloadbalancingv2.Client
	STS        *sts.Client
}

// NewClients creates the service clients for one run.
func NewClients(cfg aws.Config, logger zerolog.Logger) *Clients {
	logger.Debug().Str("region", cfg.Region).Msg("📊 Dashboard Sync: creating AWS clients")
	return &Clients{
		Tagging:    resourcegroupstaggingapi.NewFromConfig(cfg),
		CloudWatch: cloudwatch.NewFromConfig(cfg),
		EC2:        ec2.NewFromConfig(cfg),
		ECS:        ecs.NewFromConfig(cfg),
		ELB:        elasticloadbalancingv2.NewFromConfig(cfg),
		STS:        sts.NewFromConfig(cfg),
	}
}
