// Package config reads the runtime configuration once at process start.
// Every setting has a default and can be overridden individually, either
// by flag or by a DASHSYNC_-prefixed environment variable (dashes become
// underscores, e.g. DASHSYNC_CLUSTER_TAG_KEY).
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Viper keys, shared with the CLI flag names.
const (
	KeyTagKey        = "tag-key"
	KeyTagValue      = "tag-value"
	KeyClusterTagKey = "cluster-tag-key"
	KeyExecPrefix    = "exec-prefix"
	KeyDevPrefix     = "dev-prefix"
	KeyRegion        = "region"
	KeyRoleARN       = "role-arn"
)

// Defaults.
const (
	DefaultTagKey        = "Team"
	DefaultTagValue      = "NodeJS"
	DefaultClusterTagKey = "Cluster"
	DefaultExecPrefix    = "Executive-"
	DefaultDevPrefix     = "Developer-"
	DefaultRegion        = "us-east-1"
)

// Config is the resolved runtime configuration.
type Config struct {
	// TagKey/TagValue select which resources discovery crawls.
	TagKey   string
	TagValue string
	// ClusterTagKey is the tag whose value names the logical cluster.
	ClusterTagKey string
	// ExecPrefix/DevPrefix derive the two dashboard names per cluster.
	ExecPrefix string
	DevPrefix  string
	// Region is targeted by the AWS clients and stamped into every
	// widget's metric properties.
	Region string
	// RoleARN, when set, is assumed before any API call.
	RoleARN string
}

// New returns a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTagKey, DefaultTagKey)
	v.SetDefault(KeyTagValue, DefaultTagValue)
	v.SetDefault(KeyClusterTagKey, DefaultClusterTagKey)
	v.SetDefault(KeyExecPrefix, DefaultExecPrefix)
	v.SetDefault(KeyDevPrefix, DefaultDevPrefix)
	v.SetDefault(KeyRegion, DefaultRegion)
	v.SetDefault(KeyRoleARN, "")

	v.SetEnvPrefix("DASHSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds a command's flags over the env/default layers. Flags
// win over environment, environment wins over defaults.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	return v.BindPFlags(flags)
}

// FromViper resolves the final configuration values.
func FromViper(v *viper.Viper) Config {
	return Config{
		TagKey:        v.GetString(KeyTagKey),
		TagValue:      v.GetString(KeyTagValue),
		ClusterTagKey: v.GetString(KeyClusterTagKey),
		ExecPrefix:    v.GetString(KeyExecPrefix),
		DevPrefix:     v.GetString(KeyDevPrefix),
		Region:        v.GetString(KeyRegion),
		RoleARN:       v.GetString(KeyRoleARN),
	}
}
