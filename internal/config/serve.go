package config

import (
	"time"

	"github.com/spf13/pflag"
)

// ServeConfig holds configuration for the tool server.
type ServeConfig struct {
	Config
	Listen       string
	Tools        []string
	Metrics      bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadServe merges config file, environment variables, and flags into ServeConfig.
// An empty Tools list means every tool.
func LoadServe(cfgFile string, flags *pflag.FlagSet) (ServeConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ServeConfig{}, err
	}

	return ServeConfig{
		Config:       fromViper(v),
		Listen:       v.GetString("listen"),
		Tools:        getStringSlice(v, "tools"),
		Metrics:      v.GetBool("metrics"),
		ReadTimeout:  v.GetDuration("read-timeout"),
		WriteTimeout: v.GetDuration("write-timeout"),
	}, nil
}
