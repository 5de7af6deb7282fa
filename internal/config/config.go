package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	LogLevel       string
	Timeout        time.Duration
	LlamaAPIURL    string
	LlamaCoinsURL  string
	DexScreenerURL string
	Currency       string
	Out            string
	PGDSN          string
	Twitter        TwitterConfig
}

// TwitterConfig holds the X API endpoint, plugin identity and OAuth1 keys.
type TwitterConfig struct {
	APIURL            string
	PluginID          string
	PluginName        string
	Description       string
	APIKey            string
	APISecretKey      string
	AccessToken       string
	AccessTokenSecret string
}

// HasCredentials reports whether every OAuth1 key is set.
func (t TwitterConfig) HasCredentials() bool {
	return t.APIKey != "" && t.APISecretKey != "" && t.AccessToken != "" && t.AccessTokenSecret != ""
}

// twitterEnv maps credential keys to the unprefixed variables most setups already export.
var twitterEnv = map[string]string{
	"twitter-api-key":             "TWITTER_API_KEY",
	"twitter-api-secret-key":      "TWITTER_API_SECRET_KEY",
	"twitter-access-token":        "TWITTER_ACCESS_TOKEN",
	"twitter-access-token-secret": "TWITTER_ACCESS_TOKEN_SECRET",
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return Config{}, err
	}
	return fromViper(v), nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("DEFISKILLS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, env := range twitterEnv {
		prefixed := "DEFISKILLS_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetDefault("log-level", "info")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("llama-api-url", "https://api.llama.fi")
	v.SetDefault("llama-coins-url", "https://coins.llama.fi")
	v.SetDefault("dexscreener-url", "https://api.dexscreener.com")
	v.SetDefault("currency", "$")
	v.SetDefault("twitter-api-url", "https://api.twitter.com")
	v.SetDefault("listen", ":8080")
	v.SetDefault("metrics", true)
	v.SetDefault("read-timeout", 15*time.Second)
	v.SetDefault("write-timeout", 60*time.Second)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		LogLevel:       v.GetString("log-level"),
		Timeout:        v.GetDuration("timeout"),
		LlamaAPIURL:    v.GetString("llama-api-url"),
		LlamaCoinsURL:  v.GetString("llama-coins-url"),
		DexScreenerURL: v.GetString("dexscreener-url"),
		Currency:       v.GetString("currency"),
		Out:            v.GetString("out"),
		PGDSN:          v.GetString("pg-dsn"),
		Twitter: TwitterConfig{
			APIURL:            v.GetString("twitter-api-url"),
			PluginID:          v.GetString("twitter-plugin-id"),
			PluginName:        v.GetString("twitter-plugin-name"),
			Description:       v.GetString("twitter-plugin-description"),
			APIKey:            v.GetString("twitter-api-key"),
			APISecretKey:      v.GetString("twitter-api-secret-key"),
			AccessToken:       v.GetString("twitter-access-token"),
			AccessTokenSecret: v.GetString("twitter-access-token-secret"),
		},
	}
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
