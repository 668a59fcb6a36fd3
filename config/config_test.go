package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := FromViper(New())

	assert.Equal(t, "Team", cfg.TagKey)
	assert.Equal(t, "NodeJS", cfg.TagValue)
	assert.Equal(t, "Cluster", cfg.ClusterTagKey)
	assert.Equal(t, "Executive-", cfg.ExecPrefix)
	assert.Equal(t, "Developer-", cfg.DevPrefix)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Empty(t, cfg.RoleARN)
}

func TestEnvOverridesIndividually(t *testing.T) {
	t.Setenv("DASHSYNC_CLUSTER_TAG_KEY", "Env")
	t.Setenv("DASHSYNC_REGION", "eu-west-2")

	cfg := FromViper(New())

	assert.Equal(t, "Env", cfg.ClusterTagKey)
	assert.Equal(t, "eu-west-2", cfg.Region)
	// Untouched settings keep their defaults.
	assert.Equal(t, "Team", cfg.TagKey)
	assert.Equal(t, "Executive-", cfg.ExecPrefix)
}

func TestFlagsWinOverEnv(t *testing.T) {
	t.Setenv("DASHSYNC_TAG_VALUE", "FromEnv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyTagValue, DefaultTagValue, "")
	require.NoError(t, flags.Parse([]string{"--tag-value=FromFlag"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))

	assert.Equal(t, "FromFlag", FromViper(v).TagValue)
}
