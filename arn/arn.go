// Package arn parses AWS resource ARNs just far enough to classify them
// and pull out the fields the dashboards need. Malformed input degrades
// into sentinel values instead of errors, so one odd resource cannot
// abort a run.
package arn

import "strings"

const (
	loadBalancerMarker = "loadbalancer/"
	serviceMarker      = "service/"

	elbServicePrefix = ":elasticloadbalancing:"
	ecsServicePrefix = ":ecs:"

	// UnknownCluster and UnknownService label resources whose ARN is too
	// short to carry the expected segments.
	UnknownCluster = "unknown-cluster"
	UnknownService = "unknown-service"
)

// Kind classifies a discovered resource.
type Kind int

const (
	// KindOther covers everything the dashboards have no use for; such
	// resources are silently dropped during grouping.
	KindOther Kind = iota
	KindLoadBalancer
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindLoadBalancer:
		return "load-balancer"
	case KindService:
		return "service"
	default:
		return "other"
	}
}

// Classify reports whether the ARN names an ECS service, an ELBv2 load
// balancer, or something else.
func Classify(resourceARN string) Kind {
	switch {
	case strings.Contains(resourceARN, ecsServicePrefix) && strings.Contains(resourceARN, serviceMarker):
		return KindService
	case strings.Contains(resourceARN, elbServicePrefix) && strings.Contains(resourceARN, loadBalancerMarker):
		return KindLoadBalancer
	default:
		return KindOther
	}
}

// Dimension extracts the CloudWatch LoadBalancer dimension from a load
// balancer ARN: the substring after "loadbalancer/", e.g. "app/web/abc".
// ARNs without the marker are returned unchanged.
func Dimension(loadBalancerARN string) string {
	if i := strings.Index(loadBalancerARN, loadBalancerMarker); i >= 0 {
		return loadBalancerARN[i+len(loadBalancerMarker):]
	}
	return loadBalancerARN
}

// ClusterAndService extracts the cluster and service names from an ECS
// service ARN of the form ".../service/<cluster>/<service>". Missing
// segments come back as UnknownCluster / UnknownService.
func ClusterAndService(serviceARN string) (string, string) {
	parts := strings.Split(serviceARN, "/")
	cluster, service := UnknownCluster, UnknownService
	if len(parts) > 1 && parts[1] != "" {
		cluster = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		service = parts[2]
	}
	return cluster, service
}

// Parsed is the typed result of parsing one resource ARN. Fields are
// populated according to Kind; sentinel values stand in for anything the
// ARN did not carry.
type Parsed struct {
	Kind      Kind
	Dimension string // load balancers only
	Cluster   string // services only
	Service   string // services only
}

// Parse classifies the ARN and extracts the fields relevant to its kind.
func Parse(resourceARN string) Parsed {
	p := Parsed{Kind: Classify(resourceARN)}
	switch p.Kind {
	case KindLoadBalancer:
		p.Dimension = Dimension(resourceARN)
	case KindService:
		p.Cluster, p.Service = ClusterAndService(resourceARN)
	}
	return p
}
