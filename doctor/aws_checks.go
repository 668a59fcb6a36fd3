package doctor

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Narrow API surfaces so checks run against stubs in tests.

type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type RegionsAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

type TaggingProbeAPI interface {
	GetResources(ctx context.Context, params *resourcegroupstaggingapi.GetResourcesInput, optFns ...func(*resourcegroupstaggingapi.Options)) (*resourcegroupstaggingapi.GetResourcesOutput, error)
}

type DashboardsAPI interface {
	ListDashboards(ctx context.Context, params *cloudwatch.ListDashboardsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.ListDashboardsOutput, error)
}

type ClustersAPI interface {
	ListClusters(ctx context.Context, params *ecs.ListClustersInput, optFns ...func(*ecs.Options)) (*ecs.ListClustersOutput, error)
}

type LoadBalancersAPI interface {
	DescribeLoadBalancers(ctx context.Context, params *elasticloadbalancingv2.DescribeLoadBalancersInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error)
}

// IdentityCheck verifies the resolved credentials actually work.
type IdentityCheck struct {
	Client CallerIdentityAPI
}

func (c *IdentityCheck) Name() string { return "sts caller identity" }

func (c *IdentityCheck) Run(ctx context.Context) Result {
	out, err := c.Client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Result{Name: c.Name(), Status: StatusFail, Message: err.Error()}
	}
	return Result{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("account %s as %s", aws.ToString(out.Account), aws.ToString(out.Arn)),
	}
}

// RegionCheck verifies the configured region exists.
type RegionCheck struct {
	Client RegionsAPI
	Region string
}

func (c *RegionCheck) Name() string { return "region validity" }

func (c *RegionCheck) Run(ctx context.Context) Result {
	out, err := c.Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{AllRegions: aws.Bool(true)})
	if err != nil {
		// Region listing needs ec2:DescribeRegions, which not every role
		// grants; treat that as inconclusive rather than broken.
		return Result{Name: c.Name(), Status: StatusWarn, Message: err.Error()}
	}
	for _, region := range out.Regions {
		if aws.ToString(region.RegionName) == c.Region {
			return Result{Name: c.Name(), Status: StatusPass, Message: c.Region}
		}
	}
	return Result{Name: c.Name(), Status: StatusFail, Message: fmt.Sprintf("region %s not found", c.Region)}
}

// TaggingAccessCheck probes the discovery backend with a one-resource page.
type TaggingAccessCheck struct {
	Client   TaggingProbeAPI
	TagKey   string
	TagValue string
}

func (c *TaggingAccessCheck) Name() string { return "tagging api access" }

func (c *TaggingAccessCheck) Run(ctx context.Context) Result {
	out, err := c.Client.GetResources(ctx, &resourcegroupstaggingapi.GetResourcesInput{
		TagFilters:       []types.TagFilter{{Key: aws.String(c.TagKey), Values: []string{c.TagValue}}},
		ResourcesPerPage: aws.Int32(1),
	})
	if err != nil {
		return Result{Name: c.Name(), Status: StatusFail, Message: err.Error()}
	}
	if len(out.ResourceTagMappingList) == 0 {
		return Result{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("reachable, but no resources tagged %s=%s", c.TagKey, c.TagValue),
		}
	}
	return Result{Name: c.Name(), Status: StatusPass, Message: "reachable"}
}

// DashboardAccessCheck probes the publish backend.
type DashboardAccessCheck struct {
	Client DashboardsAPI
	Prefix string
}

func (c *DashboardAccessCheck) Name() string { return "cloudwatch dashboard access" }

func (c *DashboardAccessCheck) Run(ctx context.Context) Result {
	out, err := c.Client.ListDashboards(ctx, &cloudwatch.ListDashboardsInput{
		DashboardNamePrefix: aws.String(c.Prefix),
	})
	if err != nil {
		return Result{Name: c.Name(), Status: StatusFail, Message: err.Error()}
	}
	return Result{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d dashboards with prefix %s", len(out.DashboardEntries), c.Prefix),
	}
}

// ECSAccessCheck probes ECS list permissions.
type ECSAccessCheck struct {
	Client ClustersAPI
}

func (c *ECSAccessCheck) Name() string { return "ecs access" }

func (c *ECSAccessCheck) Run(ctx context.Context) Result {
	out, err := c.Client.ListClusters(ctx, &ecs.ListClustersInput{MaxResults: aws.Int32(1)})
	if err != nil {
		return Result{Name: c.Name(), Status: StatusFail, Message: err.Error()}
	}
	if len(out.ClusterArns) == 0 {
		return Result{Name: c.Name(), Status: StatusWarn, Message: "reachable, no clusters visible"}
	}
	return Result{Name: c.Name(), Status: StatusPass, Message: "reachable"}
}

// ELBAccessCheck probes ELBv2 describe permissions.
type ELBAccessCheck struct {
	Client LoadBalancersAPI
}

func (c *ELBAccessCheck) Name() string { return "elbv2 access" }

func (c *ELBAccessCheck) Run(ctx context.Context) Result {
	out, err := c.Client.DescribeLoadBalancers(ctx, &elasticloadbalancingv2.DescribeLoadBalancersInput{
		PageSize: aws.Int32(1),
	})
	if err != nil {
		return Result{Name: c.Name(), Status: StatusFail, Message: err.Error()}
	}
	if len(out.LoadBalancers) == 0 {
		return Result{Name: c.Name(), Status: StatusWarn, Message: "reachable, no load balancers visible"}
	}
	return Result{Name: c.Name(), Status: StatusPass, Message: "reachable"}
}
