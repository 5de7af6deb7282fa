package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "https://api.llama.fi", cfg.LlamaAPIURL)
	assert.Equal(t, "https://coins.llama.fi", cfg.LlamaCoinsURL)
	assert.Equal(t, "https://api.dexscreener.com", cfg.DexScreenerURL)
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, "", cfg.Out)
	assert.False(t, cfg.Twitter.HasCredentials())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("currency: \"€\"\ntimeout: 5s\nlog-level: warn\n"), 0o644))

	t.Setenv("DEFISKILLS_TIMEOUT", "7s")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--log-level=debug"}))

	cfg, err := Load(file, flags)
	require.NoError(t, err)

	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadTwitterCredentials(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TWITTER_API_KEY", "k")
	t.Setenv("TWITTER_API_SECRET_KEY", "s")
	t.Setenv("TWITTER_ACCESS_TOKEN", "t")
	t.Setenv("TWITTER_ACCESS_TOKEN_SECRET", "ts")
	t.Setenv("DEFISKILLS_TWITTER_ACCESS_TOKEN", "prefixed")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.Twitter.HasCredentials())
	assert.Equal(t, "k", cfg.Twitter.APIKey)
	assert.Equal(t, "prefixed", cfg.Twitter.AccessToken)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadServe(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DEFISKILLS_TOOLS", "protocol_tvl_tool, ,dexscreener_token_liquidity_metrics")

	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.String("listen", ":8080", "")
	require.NoError(t, flags.Parse([]string{"--listen=127.0.0.1:9000"}))

	cfg, err := LoadServe("", flags)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, []string{"protocol_tvl_tool", "dexscreener_token_liquidity_metrics"}, cfg.Tools)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "https://api.llama.fi", cfg.LlamaAPIURL)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
