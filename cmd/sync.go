package cmd

import (
	"github.com/spf13/cobra"

	cwaws "aws-dashboard-project/aws"
	"aws-dashboard-project/orchestrator"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Discover tagged resources and publish both dashboards per cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		awsCfg, err := cwaws.LoadAWSConfig(ctx, cfg.Region, cfg.RoleARN)
		if err != nil {
			logger.Err(err).Msg("📊 Dashboard Sync: AWS configuration failed")
			return err
		}

		clients := cwaws.NewClients(awsCfg, logger)
		orch := orchestrator.New(
			cwaws.NewDiscovery(clients.Tagging, logger),
			cwaws.NewPublisher(clients.CloudWatch, logger),
			cfg,
			logger,
		)

		summary, err := orch.Run(ctx)
		if err != nil {
			return err
		}

		logger.Info().
			Str("runId", summary.RunID).
			Strs("clusters", summary.Clusters).
			Int("dashboardsPublished", summary.DashboardsPublished).
			Strs("failedDashboards", summary.FailedDashboards).
			Msg("📊 Dashboard Sync: run summary")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
