package dashboard

import (
	"aws-dashboard-project/arn"
	"aws-dashboard-project/model"
)

// BuildExecutive renders the rollup view: at most three full-width rows
// stacked top to bottom, each emitted only when its resources exist.
func BuildExecutive(group *model.ClusterGroup, region string) []model.Widget {
	var widgets []model.Widget
	cur := cursor{}

	if len(group.LoadBalancers) > 0 {
		widgets = append(widgets, albTrafficWidget(cur, group.LoadBalancers, region))
		cur = cur.nextRow()

		widgets = append(widgets, albLatencyWidget(cur, group.LoadBalancers, region, "ALB p95 Latency"))
		cur = cur.nextRow()
	}

	if len(group.Services) > 0 {
		// Cluster-level utilization keys off the ECS cluster name from
		// the first service ARN, not off the tag-derived group name.
		clusterName, _ := arn.ClusterAndService(group.Services[0])
		widgets = append(widgets, ecsUtilizationWidget(cur, clusterName, region))
	}

	return widgets
}

func albTrafficWidget(cur cursor, loadBalancers []string, region string) model.Widget {
	metrics := make([]model.MetricQuery, 0, 3*len(loadBalancers))
	for _, lb := range loadBalancers {
		dim := arn.Dimension(lb)
		metrics = append(metrics,
			albQuery(metricRequestCount, dim, nil),
			albQuery(metric4xxCount, dim, nil),
			albQuery(metric5xxCount, dim, nil),
		)
	}
	return metricWidget(cur, fullWidth, region, "ALB Traffic & Errors", statSum, metrics)
}

func albLatencyWidget(cur cursor, loadBalancers []string, region, title string) model.Widget {
	metrics := make([]model.MetricQuery, 0, len(loadBalancers))
	for _, lb := range loadBalancers {
		metrics = append(metrics, albQuery(metricTargetLatency, arn.Dimension(lb), &model.QueryOptions{Stat: statP95}))
	}
	return metricWidget(cur, fullWidth, region, title, "", metrics)
}

func ecsUtilizationWidget(cur cursor, clusterName, region string) model.Widget {
	metrics := []model.MetricQuery{
		clusterQuery(namespaceECS, metricCPUUtilization, clusterName),
		clusterQuery(namespaceECS, metricMemUtilization, clusterName),
		clusterQuery(namespaceContainerInsights, metricRunningTaskCount, clusterName),
		clusterQuery(namespaceContainerInsights, metricDesiredTaskCount, clusterName),
	}
	return metricWidget(cur, fullWidth, region, "ECS Cluster Utilization", statAverage, metrics)
}
