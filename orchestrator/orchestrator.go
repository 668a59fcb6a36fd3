// Package orchestrator ties the pipeline stages into one run: discover
// tagged resources, group them by cluster, build both dashboard variants
// per cluster and publish them.
package orchestrator

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"aws-dashboard-project/config"
	"aws-dashboard-project/dashboard"
	"aws-dashboard-project/grouper"
	"aws-dashboard-project/model"
)

// Discoverer crawls the tag-query backend. Implemented by aws.Discovery.
type Discoverer interface {
	Discover(ctx context.Context, tagKey, tagValue string) ([]model.ResourceTagMapping, error)
}

// Publisher upserts one dashboard document. Implemented by aws.Publisher.
type Publisher interface {
	Publish(ctx context.Context, name string, widgets []model.Widget) error
}

// Orchestrator receives its collaborators at construction so tests can
// substitute stubs for the AWS-backed implementations.
type Orchestrator struct {
	discovery Discoverer
	publisher Publisher
	cfg       config.Config
	logger    zerolog.Logger
}

func New(discovery Discoverer, publisher Publisher, cfg config.Config, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		discovery: discovery,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run executes one sync. A discovery failure aborts the whole run before
// anything is published; a publish failure is logged, recorded in the
// summary and does not stop the remaining clusters.
func (o *Orchestrator) Run(ctx context.Context) (model.RunSummary, error) {
	summary := model.RunSummary{RunID: uuid.NewString()}

	mappings, err := o.discovery.Discover(ctx, o.cfg.TagKey, o.cfg.TagValue)
	if err != nil {
		o.logger.Err(err).Msg("📊 Dashboard Sync: discovery failed, aborting run")
		return summary, err
	}

	order, groups := grouper.Group(mappings, o.cfg.ClusterTagKey)
	o.logger.Info().Msgf("📊 Dashboard Sync: grouped %d resources into %d clusters", len(mappings), len(order))

	for _, clusterName := range order {
		group := groups[clusterName]
		o.logger.Info().Msgf("📊 Dashboard Sync: cluster %s: %d load balancers, %d services", clusterName, len(group.LoadBalancers), len(group.Services))

		dashboards := []model.Dashboard{
			{Name: o.cfg.ExecPrefix + clusterName, Widgets: dashboard.BuildExecutive(group, o.cfg.Region)},
			{Name: o.cfg.DevPrefix + clusterName, Widgets: dashboard.BuildDeveloper(group, o.cfg.Region)},
		}

		for _, d := range dashboards {
			if err := o.publisher.Publish(ctx, d.Name, d.Widgets); err != nil {
				o.logger.Warn().Msgf("📊 Dashboard Sync: failed to publish %s: %v", d.Name, err)
				summary.FailedDashboards = append(summary.FailedDashboards, d.Name)
				continue
			}
			summary.DashboardsPublished++
		}

		summary.Clusters = append(summary.Clusters, clusterName)
	}

	o.logger.Info().Msgf("📊 Dashboard Sync: run %s complete: %d clusters, %d dashboards published, %d failed", summary.RunID, len(summary.Clusters), summary.DashboardsPublished, len(summary.FailedDashboards))
	return summary, nil
}
