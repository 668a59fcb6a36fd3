package arn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimension(t *testing.T) {
	tests := []struct {
		name string
		arn  string
		want string
	}{
		{
			name: "alb arn returns suffix after marker",
			arn:  "arn:aws:elasticloadbalancing:us-east-1:1:loadbalancer/app/web/abc",
			want: "app/web/abc",
		},
		{
			name: "marker at start",
			arn:  "loadbalancer/net/internal/xyz",
			want: "net/internal/xyz",
		},
		{
			name: "no marker returns input unchanged",
			arn:  "arn:aws:ec2:us-east-1:1:instance/i-123",
			want: "arn:aws:ec2:us-east-1:1:instance/i-123",
		},
		{
			name: "empty string",
			arn:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dimension(tt.arn))
		})
	}
}

func TestClusterAndService(t *testing.T) {
	tests := []struct {
		name        string
		arn         string
		wantCluster string
		wantService string
	}{
		{
			name:        "well formed service arn",
			arn:         "arn:aws:ecs:us-east-1:1:service/prod/api",
			wantCluster: "prod",
			wantService: "api",
		},
		{
			name:        "missing service segment",
			arn:         "arn:aws:ecs:us-east-1:1:service/prod",
			wantCluster: "prod",
			wantService: UnknownService,
		},
		{
			name:        "no slashes at all",
			arn:         "arn:aws:ecs:us-east-1:1:service",
			wantCluster: UnknownCluster,
			wantService: UnknownService,
		},
		{
			name:        "empty segments fall back to sentinels",
			arn:         "service//",
			wantCluster: UnknownCluster,
			wantService: UnknownService,
		},
		{
			name:        "extra segments are ignored",
			arn:         "arn:aws:ecs:us-east-1:1:service/prod/api/extra",
			wantCluster: "prod",
			wantService: "api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cluster, service := ClusterAndService(tt.arn)
			assert.Equal(t, tt.wantCluster, cluster)
			assert.Equal(t, tt.wantService, service)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		arn  string
		want Kind
	}{
		{
			name: "ecs service",
			arn:  "arn:aws:ecs:us-east-1:1:service/prod/api",
			want: KindService,
		},
		{
			name: "alb",
			arn:  "arn:aws:elasticloadbalancing:us-east-1:1:loadbalancer/app/web/abc",
			want: KindLoadBalancer,
		},
		{
			name: "elb target group is other",
			arn:  "arn:aws:elasticloadbalancing:us-east-1:1:targetgroup/web/abc",
			want: KindOther,
		},
		{
			name: "ecs task is other",
			arn:  "arn:aws:ecs:us-east-1:1:task/prod/abc123",
			want: KindOther,
		},
		{
			name: "unrelated resource",
			arn:  "arn:aws:s3:::my-bucket",
			want: KindOther,
		},
		{
			name: "empty string",
			arn:  "",
			want: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.arn))
		})
	}
}

func TestParse(t *testing.T) {
	lb := Parse("arn:aws:elasticloadbalancing:us-east-1:1:loadbalancer/app/web/abc")
	assert.Equal(t, KindLoadBalancer, lb.Kind)
	assert.Equal(t, "app/web/abc", lb.Dimension)
	assert.Empty(t, lb.Cluster)

	svc := Parse("arn:aws:ecs:us-east-1:1:service/prod/api")
	assert.Equal(t, KindService, svc.Kind)
	assert.Equal(t, "prod", svc.Cluster)
	assert.Equal(t, "api", svc.Service)
	assert.Empty(t, svc.Dimension)

	other := Parse("arn:aws:s3:::my-bucket")
	assert.Equal(t, KindOther, other.Kind)
}
