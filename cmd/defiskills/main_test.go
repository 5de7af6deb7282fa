package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	for _, env := range []string{"TWITTER_API_KEY", "TWITTER_API_SECRET_KEY", "TWITTER_ACCESS_TOKEN", "TWITTER_ACCESS_TOKEN_SECRET"} {
		t.Setenv(env, "")
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level=error"))
	err := root.Execute()
	return out.String(), err
}

func TestToolsAnthropicExport(t *testing.T) {
	out, err := execute(t, "tools", "--format", "anthropic")
	require.NoError(t, err)

	var defs []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &defs))

	var names []string
	for _, def := range defs {
		names = append(names, def["name"].(string))
	}
	assert.Equal(t, []string{
		"coin_percentage_change_tool",
		"defi_llama_fees_overview",
		"dexscreener_token_liquidity_metrics",
		"protocol_fees_tool",
		"protocol_tvl_tool",
	}, names)
}

func TestToolsTableFiltered(t *testing.T) {
	out, err := execute(t, "tools", "--only", "protocol_tvl_tool")
	require.NoError(t, err)
	assert.Contains(t, out, "protocol_tvl_tool")
	assert.NotContains(t, out, "protocol_fees_tool")
}

func TestTVLCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tvl/aave", r.URL.Path)
		_, _ = w.Write([]byte(`42.5`))
	}))
	defer srv.Close()

	out, err := execute(t, "tvl", "aave", "--llama-api-url", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Protocol: aave\nCurrent TVL: $42.5\n", out)
}

func TestLiquidityCommandWritesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pepe", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"pairs":[{"chainId":"ethereum","fdv":10,"marketCap":20,"liquidity":{"usd":5},"baseToken":{"name":"Pepe"}}]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	out, err := execute(t, "liquidity", "pepe", "--dexscreener-url", srv.URL, "--out", dir+"/snapshots.jsonl")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 10.0, result["medianFDV"])
	assert.Contains(t, result["mostActivePair"], "ethereum")
	assert.FileExists(t, dir+"/snapshots.jsonl")
}

func TestTweetRequiresCredentials(t *testing.T) {
	_, err := execute(t, "tweet", "post_tweet", "--text", "gm")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "credentials"))
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
