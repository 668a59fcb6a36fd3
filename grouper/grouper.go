// Package grouper partitions the flat discovery output into per-cluster
// buckets of load balancers and services.
package grouper

import (
	"aws-dashboard-project/arn"
	"aws-dashboard-project/model"
)

// UnknownCluster is the bucket for resources carrying no cluster tag at
// all. A cluster tag present with an empty-string value is a distinct
// bucket named "" and is not folded into this one.
const UnknownCluster = "unknown"

// Group partitions mappings by the value of clusterTagKey. It returns the
// cluster names in first-occurrence order alongside the buckets, so runs
// iterate deterministically. Resources that are neither load balancers
// nor ECS services are skipped, as are mappings without a resource ARN.
func Group(mappings []model.ResourceTagMapping, clusterTagKey string) ([]string, map[string]*model.ClusterGroup) {
	order := make([]string, 0)
	groups := make(map[string]*model.ClusterGroup)

	for _, mapping := range mappings {
		if mapping.ResourceARN == "" {
			continue
		}

		kind := arn.Classify(mapping.ResourceARN)
		if kind == arn.KindOther {
			continue
		}

		clusterName := UnknownCluster
		if value, ok := mapping.TagValue(clusterTagKey); ok {
			clusterName = value
		}

		group, ok := groups[clusterName]
		if !ok {
			group = &model.ClusterGroup{ClusterName: clusterName}
			groups[clusterName] = group
			order = append(order, clusterName)
		}

		switch kind {
		case arn.KindLoadBalancer:
			group.LoadBalancers = append(group.LoadBalancers, mapping.ResourceARN)
		case arn.KindService:
			group.Services = append(group.Services, mapping.ResourceARN)
		}
	}

	return order, groups
}
