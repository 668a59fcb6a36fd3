package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cwaws "aws-dashboard-project/aws"
	"aws-dashboard-project/doctor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check AWS credentials, region and API permissions before a run",
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

		checks := []doctor.Check{
			&doctor.IdentityCheck{Client: clients.STS},
			&doctor.RegionCheck{Client: clients.EC2, Region: cfg.Region},
			&doctor.TaggingAccessCheck{Client: clients.Tagging, TagKey: cfg.TagKey, TagValue: cfg.TagValue},
			&doctor.DashboardAccessCheck{Client: clients.CloudWatch, Prefix: cfg.ExecPrefix},
			&doctor.ECSAccessCheck{Client: clients.ECS},
			&doctor.ELBAccessCheck{Client: clients.ELB},
		}

		results := doctor.RunAll(ctx, checks)
		for _, r := range results {
			switch r.Status {
			case doctor.StatusPass:
				logger.Info().Msgf("✅ %s: %s", r.Name, r.Message)
			case doctor.StatusWarn:
				logger.Warn().Msgf("⚠️ %s: %s", r.Name, r.Message)
			default:
				logger.Error().Msgf("❌ %s: %s", r.Name, r.Message)
			}
		}

		if doctor.HasFailures(results) {
			return fmt.Errorf("doctor found failing checks")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
