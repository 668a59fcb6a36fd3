package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aws-dashboard-project/model"
)

const testRegion = "us-east-1"

func prodGroup(loadBalancers, services []string) *model.ClusterGroup {
	return &model.ClusterGroup{
		ClusterName:   "prod",
		LoadBalancers: loadBalancers,
		Services:      services,
	}
}

// assertNoOverlap checks the layout invariant: no two widgets on one
// dashboard share an (x,y) origin.
func assertNoOverlap(t *testing.T, widgets []model.Widget) {
	t.Helper()
	seen := make(map[string]bool, len(widgets))
	for _, w := range widgets {
		origin := fmt.Sprintf("%d,%d", w.X, w.Y)
		require.False(t, seen[origin], "duplicate widget origin %s", origin)
		seen[origin] = true
	}
}

func TestBuildExecutiveLoadBalancerOnly(t *testing.T) {
	// Scenario: one tagged ALB, no services. Exactly the two ALB rows,
	// no ECS widget.
	group := prodGroup(
		[]string{"arn:aws:elasticloadbalancing:us-east-1:1:loadbalancer/app/web/abc"},
		nil,
	)

	widgets := BuildExecutive(group, testRegion)
	require.Len(t, widgets, 2)
	assertNoOverlap(t, widgets)

	traffic := widgets[0]
	assert.Equal(t, "metric", traffic.Type)
	assert.Equal(t, 0, traffic.X)
	assert.Equal(t, 0, traffic.Y)
	assert.Equal(t, 12, traffic.Width)
	assert.Equal(t, 6, traffic.Height)
	assert.Equal(t, "Sum", traffic.Properties.Stat)
	assert.Equal(t, int32(60), traffic.Properties.Period)
	assert.Equal(t, testRegion, traffic.Properties.Region)
	require.Len(t, traffic.Properties.Metrics, 3)
	assert.Equal(t,
		[]string{"AWS/ApplicationELB", "RequestCount", "LoadBalancer", "app/web/abc"},
		traffic.Properties.Metrics[0].Metric)
	assert.Equal(t,
		[]string{"AWS/ApplicationELB", "HTTPCode_Target_4XX_Count", "LoadBalancer", "app/web/abc"},
		traffic.Properties.Metrics[1].Metric)
	assert.Equal(t,
		[]string{"AWS/ApplicationELB", "HTTPCode_Target_5XX_Count", "LoadBalancer", "app/web/abc"},
		traffic.Properties.Metrics[2].Metric)

	latency := widgets[1]
	assert.Equal(t, 0, latency.X)
	assert.Equal(t, 6, latency.Y)
	require.Len(t, latency.Properties.Metrics, 1)
	assert.Equal(t,
		[]string{"AWS/ApplicationELB", "TargetResponseTime", "LoadBalancer", "app/web/abc"},
		latency.Properties.Metrics[0].Metric)
	require.NotNil(t, latency.Properties.Metrics[0].Options)
	assert.Equal(t, "p95", latency.Properties.Metrics[0].Options.Stat)
}

func TestBuildExecutiveFullGroup(t *testing.T) {
	group := prodGroup(
		[]string{"arn:aws:elasticloadbalancing:us-east-1:1:loadbalancer/app/web/abc"},
		[]string{"arn:aws:ecs:us-east-1:1:service/prod/api"},
	)

	widgets := BuildExecutive(group, testRegion)
	require.Len(t, widgets, 3)
	assertNoOverlap(t, widgets)

	ecs := widgets[2]
	assert.Equal(t, 0, ecs.X)
	assert.Equal(t, 12, ecs.Y)
	assert.Equal(t, "Average", ecs.Properties.Stat)
	require.Len(t, ecs.Properties.Metrics, 4)
	assert.Equal(t,
		[]string{"AWS/ECS", "CPUUtilization", "ClusterName", "prod"},
		ecs.Properties.Metrics[0].Metric)
	assert.Equal(t,
		[]string{"ECS/ContainerInsights", "RunningTaskCount", "ClusterName", "prod"},
		ecs.Properties.Metrics[2].Metric)
	assert.Equal(t,
		[]string{"ECS/ContainerInsights", "DesiredTaskCount", "ClusterName", "prod"},
		ecs.Properties.Metrics[3].Metric)
}

func TestBuildExecutiveServicesOnlyStartsAtTop(t *testing.T) {
	group := prodGroup(nil, []string{"arn:aws:ecs:us-east-1:1:service/prod/api"})

	widgets := BuildExecutive(group, testRegion)
	require.Len(t, widgets, 1)
	assert.Equal(t, 0, widgets[0].Y, "absent ALB rows must not reserve vertical space")
}

func TestBuildExecutiveEmptyGroup(t *testing.T) {
	widgets := BuildExecutive(prodGroup(nil, nil), testRegion)
	assert.Empty(t, widgets)
}
