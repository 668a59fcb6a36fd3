package model

import "encoding/json"

// ViewTimeSeries is the only widget view this project renders.
const ViewTimeSeries = "timeSeries"

// DashboardBody is the top-level CloudWatch dashboard document. Marshalled
// as-is into the PutDashboard body.
type DashboardBody struct {
	Widgets []Widget `json:"widgets"`
}

// Dashboard pairs a derived dashboard name with its widget list. Built
// fresh every run; publishing fully replaces any prior document of the
// same name.
type Dashboard struct {
	Name    string
	Widgets []Widget
}

// Widget is one positioned metric widget on the dashboard grid.
type Widget struct {
	Type       string     `json:"type"`
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Properties MetricSpec `json:"properties"`
}

// MetricSpec is the widget properties block: where the metrics live and
// how to render them. Metrics order is significant, it drives legend and
// series ordering.
type MetricSpec struct {
	Region  string        `json:"region"`
	View    string        `json:"view"`
	Period  int32         `json:"period"`
	Stat    string        `json:"stat,omitempty"`
	Title   string        `json:"title"`
	Metrics []MetricQuery `json:"metrics"`
}

// QueryOptions are per-query rendering options appended to a flat metric
// tuple, e.g. a percentile statistic.
type QueryOptions struct {
	Stat  string `json:"stat,omitempty"`
	Label string `json:"label,omitempty"`
}

// SearchQuery is a server-evaluated expression query, used when the
// dimension set is not known client-side ahead of query time.
type SearchQuery struct {
	Expression string `json:"expression"`
	ID         string `json:"id,omitempty"`
	Label      string `json:"label,omitempty"`
}

// MetricQuery is one line on a widget: either a flat dimensioned metric
// tuple (namespace, metric name, dimension pairs, optional options) or a
// search expression. Exactly one of Metric or Search is set.
type MetricQuery struct {
	Metric  []string
	Options *QueryOptions
	Search  *SearchQuery
}

// MarshalJSON renders the query in the CloudWatch dashboard body format:
// a flat tuple marshals to ["ns","name","dim","value",...,{options}], a
// search query to [{"expression":...}].
func (q MetricQuery) MarshalJSON() ([]byte, error) {
	if q.Search != nil {
		return json.Marshal([]any{q.Search})
	}
	parts := make([]any, 0, len(q.Metric)+1)
	for _, p := range q.Metric {
		parts = append(parts, p)
	}
	if q.Options != nil {
		parts = append(parts, q.Options)
	}
	return json.Marshal(parts)
}
