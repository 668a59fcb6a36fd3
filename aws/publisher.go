package aws

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/rs/zerolog"

	"aws-dashboard-project/model"
)

// CloudWatchAPI is the slice of the CloudWatch API the publisher needs.
// Satisfied by *cloudwatch.Client.
type CloudWatchAPI interface {
	PutDashboard(ctx context.Context, params *cloudwatch.PutDashboardInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutDashboardOutput, error)
}

// Publisher upserts dashboard documents into CloudWatch. PutDashboard has
// full-replace semantics keyed by name, so publishing is idempotent.
type Publisher struct {
	client CloudWatchAPI
	logger zerolog.Logger
}

func NewPublisher(client CloudWatchAPI, logger zerolog.Logger) *Publisher {
	return &Publisher{client: client, logger: logger}
}

// Publish serializes the widget list and writes it under name, fully
// replacing any prior document. Backend errors come back as PublishError.
func (p *Publisher) Publish(ctx context.Context, name string, widgets []model.Widget) error {
	body, err := json.Marshal(model.DashboardBody{Widgets: widgets})
	if err != nil {
		return &model.PublishError{Dashboard: name, Err: err}
	}

	out, err := p.client.PutDashboard(ctx, &cloudwatch.PutDashboardInput{
		DashboardName: aws.String(name),
		DashboardBody: aws.String(string(body)),
	})
	if err != nil {
		return &model.PublishError{Dashboard: name, Err: err}
	}

	for _, msg := range out.DashboardValidationMessages {
		p.logger.Warn().Msgf("📊 Dashboard Sync: dashboard %s validation: %s (%s)", name, aws.ToString(msg.Message), aws.ToString(msg.DataPath))
	}

	p.logger.Info().Msgf("📊 Dashboard Sync: published dashboard %s with %d widgets", name, len(widgets))
	return nil
}
