// Package model holds the data types handed between the pipeline stages:
// discovered tag mappings, per-cluster resource buckets, widget descriptors
// and the run summary returned to the invoker.
package model

// Tag is a single resource tag key/value pair.
type Tag struct {
	Key   string
	Value string
}

// ResourceTagMapping is one resource returned by tag-based discovery,
// identified by its ARN together with all tags attached to it.
type ResourceTagMapping struct {
	ResourceARN string
	Tags        []Tag
}

// TagValue returns the value of the tag with the given key and whether it
// was present. An empty-string value is a valid, present value.
func (m ResourceTagMapping) TagValue(key string) (string, bool) {
	for _, t := range m.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// ClusterGroup is the per-cluster bucket of discovered resource ARNs.
// It is mutated only while grouping; the widget builders treat it as
// read-only input.
type ClusterGroup struct {
	ClusterName   string
	LoadBalancers []string
	Services      []string
}

// RunSummary describes one completed sync run.
type RunSummary struct {
	RunID               string   `json:"runId"`
	Clusters            []string `json:"clusters"`
	DashboardsPublished int      `json:"dashboardsPublished"`
	// FailedDashboards lists dashboard names whose publish failed. A
	// failure here never aborts the rest of the run.
	FailedDashboards []string `json:"failedDashboards,omitempty"`
}
