// Package cmd wires the dashsync command tree: sync runs the pipeline
// once, doctor runs the AWS preflight checks.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"aws-dashboard-project/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo receives the build metadata injected via ldflags.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "dashsync",
	Short: "Generate CloudWatch dashboards for tagged ECS clusters",
	Long: `dashsync discovers load balancers and ECS services sharing a common tag,
groups them by cluster and publishes an executive and a developer
CloudWatch dashboard per cluster.`,
	SilenceUsage: true,
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String(config.KeyRegion, config.DefaultRegion, "AWS region to discover in and stamp into widgets")
	flags.String(config.KeyTagKey, config.DefaultTagKey, "tag key selecting the resources to discover")
	flags.String(config.KeyTagValue, config.DefaultTagValue, "tag value the discovery filter matches")
	flags.String(config.KeyClusterTagKey, config.DefaultClusterTagKey, "tag whose value names the logical cluster")
	flags.String(config.KeyExecPrefix, config.DefaultExecPrefix, "name prefix for executive dashboards")
	flags.String(config.KeyDevPrefix, config.DefaultDevPrefix, "name prefix for developer dashboards")
	flags.String(config.KeyRoleARN, "", "IAM role to assume before calling AWS")
}

// loadConfig resolves flags over environment over defaults.
func loadConfig() (config.Config, error) {
	v := config.New()
	if err := config.BindFlags(v, rootCmd.PersistentFlags()); err != nil {
		return config.Config{}, fmt.Errorf("binding flags: %w", err)
	}
	return config.FromViper(v), nil
}

// newLogger builds the console logger shared by all commands.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
