package dashboard

import (
	"fmt"

	"aws-dashboard-project/model"
)

// CloudWatch namespaces and metric names used by the builders.
const (
	namespaceALB = "AWS/ApplicationELB"
	namespaceECS = "AWS/ECS"
	// Container Insights carries the task-count metrics; plain AWS/ECS
	// only has CPU and memory.
	namespaceContainerInsights = "ECS/ContainerInsights"

	metricRequestCount     = "RequestCount"
	metric4xxCount         = "HTTPCode_Target_4XX_Count"
	metric5xxCount         = "HTTPCode_Target_5XX_Count"
	metricTargetLatency    = "TargetResponseTime"
	metricTLSErrors        = "ClientTLSNegotiationErrorCount"
	metricCPUUtilization   = "CPUUtilization"
	metricMemUtilization   = "MemoryUtilization"
	metricRunningTaskCount = "RunningTaskCount"
	metricDesiredTaskCount = "DesiredTaskCount"

	dimLoadBalancer = "LoadBalancer"
	dimClusterName  = "ClusterName"
	dimServiceName  = "ServiceName"

	statSum     = "Sum"
	statAverage = "Average"
	statP95     = "p95"
)

// albQuery builds a flat query against AWS/ApplicationELB dimensioned by
// the load balancer identity.
func albQuery(metricName, lbDimension string, opts *model.QueryOptions) model.MetricQuery {
	return model.MetricQuery{
		Metric:  []string{namespaceALB, metricName, dimLoadBalancer, lbDimension},
		Options: opts,
	}
}

// clusterQuery builds a flat cluster-level ECS query.
func clusterQuery(namespace, metricName, clusterName string) model.MetricQuery {
	return model.MetricQuery{
		Metric: []string{namespace, metricName, dimClusterName, clusterName},
	}
}

// serviceQuery builds a flat per-service ECS query.
func serviceQuery(namespace, metricName, clusterName, serviceName string) model.MetricQuery {
	return model.MetricQuery{
		Metric: []string{namespace, metricName, dimClusterName, clusterName, dimServiceName, serviceName},
	}
}

// taskCountSearch builds a server-side search summing a task-count metric
// across every service in the cluster. The per-service identity is not
// known to CloudWatch ahead of query time, so the aggregate has to be a
// search rather than an enumerated query list.
func taskCountSearch(metricName, clusterName, id, label string) model.MetricQuery {
	expression := fmt.Sprintf(
		"SUM(SEARCH('{%s,%s,%s} MetricName=\"%s\" %s=\"%s\"', '%s', %d))",
		namespaceContainerInsights, dimClusterName, dimServiceName,
		metricName, dimClusterName, clusterName, statAverage, defaultPeriod,
	)
	return model.MetricQuery{
		Search: &model.SearchQuery{Expression: expression, ID: id, Label: label},
	}
}

// metricWidget assembles a positioned timeSeries widget.
func metricWidget(cur cursor, width int, region, title, stat string, metrics []model.MetricQuery) model.Widget {
	return model.Widget{
		Type:   "metric",
		X:      cur.x,
		Y:      cur.y,
		Width:  width,
		Height: rowHeight,
		Properties: model.MetricSpec{
			Region:  region,
			View:    model.ViewTimeSeries,
			Period:  defaultPeriod,
			Stat:    stat,
			Title:   title,
			Metrics: metrics,
		},
	}
}
