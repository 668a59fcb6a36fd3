package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricQueryMarshalFlat(t *testing.T) {
	q := MetricQuery{
		Metric: []string{"AWS/ApplicationELB", "RequestCount", "LoadBalancer", "app/web/abc"},
	}

	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `["AWS/ApplicationELB","RequestCount","LoadBalancer","app/web/abc"]`, string(out))
}

func TestMetricQueryMarshalFlatWithOptions(t *testing.T) {
	q := MetricQuery{
		Metric:  []string{"AWS/ApplicationELB", "TargetResponseTime", "LoadBalancer", "app/web/abc"},
		Options: &QueryOptions{Stat: "p95"},
	}

	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t,
		`["AWS/ApplicationELB","TargetResponseTime","LoadBalancer","app/web/abc",{"stat":"p95"}]`,
		string(out))
}

func TestMetricQueryMarshalSearch(t *testing.T) {
	q := MetricQuery{
		Search: &SearchQuery{
			Expression: `SUM(SEARCH('...', 'Average', 60))`,
			ID:         "running",
			Label:      "Running tasks",
		},
	}

	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"expression":"SUM(SEARCH('...', 'Average', 60))","id":"running","label":"Running tasks"}]`,
		string(out))
}

func TestDashboardBodyMarshal(t *testing.T) {
	body := DashboardBody{
		Widgets: []Widget{
			{
				Type:   "metric",
				X:      0,
				Y:      6,
				Width:  12,
				Height: 6,
				Properties: MetricSpec{
					Region: "us-east-1",
					View:   ViewTimeSeries,
					Period: 60,
					Stat:   "Sum",
					Title:  "ALB Traffic & Errors",
					Metrics: []MetricQuery{
						{Metric: []string{"AWS/ApplicationELB", "RequestCount", "LoadBalancer", "app/web/abc"}},
					},
				},
			},
		},
	}

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"widgets": [{
			"type": "metric", "x": 0, "y": 6, "width": 12, "height": 6,
			"properties": {
				"region": "us-east-1",
				"view": "timeSeries",
				"period": 60,
				"stat": "Sum",
				"title": "ALB Traffic & Errors",
				"metrics": [["AWS/ApplicationELB","RequestCount","LoadBalancer","app/web/abc"]]
			}
		}]
	}`, string(out))
}

func TestTagValue(t *testing.T) {
	m := ResourceTagMapping{
		ResourceARN: "arn:aws:ecs:us-east-1:1:service/prod/api",
		Tags: []Tag{
			{Key: "Team", Value: "NodeJS"},
			{Key: "Cluster", Value: ""},
		},
	}

	v, ok := m.TagValue("Team")
	assert.True(t, ok)
	assert.Equal(t, "NodeJS", v)

	v, ok = m.TagValue("Cluster")
	assert.True(t, ok, "empty-string tag value still counts as present")
	assert.Equal(t, "", v)

	_, ok = m.TagValue("Env")
	assert.False(t, ok)
}
