package dashboard

import (
	"fmt"

	"aws-dashboard-project/arn"
	"aws-dashboard-project/model"
)

// BuildDeveloper renders the detail view: full-width ALB and aggregate
// rows, then per-service widget grids three columns wide, then a trailing
// ALB error/latency pair. Blocks that have no resources are skipped
// without reserving vertical space.
func BuildDeveloper(group *model.ClusterGroup, region string) []model.Widget {
	var widgets []model.Widget
	cur := cursor{}

	if len(group.LoadBalancers) > 0 {
		widgets = append(widgets, tlsErrorsWidget(cur, group.LoadBalancers, region))
		cur = cur.nextRow()
	}

	if len(group.Services) > 0 {
		clusterName, _ := arn.ClusterAndService(group.Services[0])
		widgets = append(widgets, aggregateTasksWidget(cur, clusterName, region))
		cur = cur.nextRow()

		var block cursor
		block, widgets = serviceGrid(cur, group.Services, region, widgets, serviceUtilizationWidget)
		cur = block.alignRow()

		block, widgets = serviceGrid(cur, group.Services, region, widgets, serviceTasksWidget)
		cur = block.alignRow()
	}

	if len(group.LoadBalancers) > 0 {
		widgets = append(widgets,
			albErrorsWidget(cur, group.LoadBalancers, region),
			albLatencyWidget(cursor{x: fullWidth, y: cur.y}, group.LoadBalancers, region, "ALB p95 Latency"),
		)
	}

	return widgets
}

// serviceGrid lays out one 8x6 widget per service, wrapping every third
// widget onto a new row.
func serviceGrid(cur cursor, services []string, region string, widgets []model.Widget, build func(cursor, string, string) model.Widget) (cursor, []model.Widget) {
	for _, svc := range services {
		widgets = append(widgets, build(cur, svc, region))
		cur = cur.nextCell()
	}
	return cur, widgets
}

func tlsErrorsWidget(cur cursor, loadBalancers []string, region string) model.Widget {
	metrics := make([]model.MetricQuery, 0, len(loadBalancers))
	for _, lb := range loadBalancers {
		metrics = append(metrics, albQuery(metricTLSErrors, arn.Dimension(lb), nil))
	}
	return metricWidget(cur, fullWidth, region, "ALB TLS Negotiation Errors", statSum, metrics)
}

func aggregateTasksWidget(cur cursor, clusterName, region string) model.Widget {
	metrics := []model.MetricQuery{
		taskCountSearch(metricRunningTaskCount, clusterName, "running", "Running tasks"),
		taskCountSearch(metricDesiredTaskCount, clusterName, "desired", "Desired tasks"),
	}
	return metricWidget(cur, fullWidth, region, "ECS Running vs Desired Tasks", "", metrics)
}

func serviceUtilizationWidget(cur cursor, serviceARN, region string) model.Widget {
	clusterName, serviceName := arn.ClusterAndService(serviceARN)
	metrics := []model.MetricQuery{
		serviceQuery(namespaceECS, metricCPUUtilization, clusterName, serviceName),
		serviceQuery(namespaceECS, metricMemUtilization, clusterName, serviceName),
	}
	title := fmt.Sprintf("%s CPU/Memory", serviceName)
	return metricWidget(cur, gridWidth, region, title, statAverage, metrics)
}

func serviceTasksWidget(cur cursor, serviceARN, region string) model.Widget {
	clusterName, serviceName := arn.ClusterAndService(serviceARN)
	metrics := []model.MetricQuery{
		serviceQuery(namespaceContainerInsights, metricRunningTaskCount, clusterName, serviceName),
		serviceQuery(namespaceContainerInsights, metricDesiredTaskCount, clusterName, serviceName),
	}
	title := fmt.Sprintf("%s Tasks", serviceName)
	return metricWidget(cur, gridWidth, region, title, statAverage, metrics)
}

func albErrorsWidget(cur cursor, loadBalancers []string, region string) model.Widget {
	metrics := make([]model.MetricQuery, 0, 2*len(loadBalancers))
	for _, lb := range loadBalancers {
		dim := arn.Dimension(lb)
		metrics = append(metrics,
			albQuery(metric4xxCount, dim, nil),
			albQuery(metric5xxCount, dim, nil),
		)
	}
	return metricWidget(cur, fullWidth, region, "ALB 4xx/5xx Errors", statSum, metrics)
}
