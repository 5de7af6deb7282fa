package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defiskills/internal/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := tools.NewRegistry()
	reg.RegisterAll(
		tools.New("echo", "echoes msg",
			tools.ObjectSchema(map[string]interface{}{"msg": tools.StringProperty("message")}, "msg"),
			func(_ context.Context, args tools.Args) (interface{}, error) {
				return args.String("msg", "")
			},
		),
		tools.New("id", "returns the id",
			tools.ObjectSchema(map[string]interface{}{"tweet_id": tools.IDProperty("id")}),
			func(_ context.Context, args tools.Args) (interface{}, error) {
				return args.ID("tweet_id")
			},
		),
		tools.New("broken", "always fails", tools.ObjectSchema(nil),
			func(context.Context, tools.Args) (interface{}, error) {
				return nil, errors.New("upstream down")
			},
		),
	)
	return New(reg, Config{Metrics: true}, nil)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDPassthrough(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}

func TestListTools(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/tools", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []toolInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, "broken", out[0].Name)
	assert.Equal(t, "echo", out[1].Name)
	assert.Equal(t, "object", out[1].Schema["type"])
	assert.Equal(t, []interface{}{"msg"}, out[1].Schema["required"])
}

func TestCallTool(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/tools/echo", `{"msg":"gm"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tool":"echo","result":"gm"}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/tools/id", `{"tweet_id":1850000000000000001}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tool":"id","result":"1850000000000000001"}`, rec.Body.String())
}

func TestCallToolErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{name: "unknown tool", path: "/tools/nope", body: `{}`, code: http.StatusNotFound},
		{name: "malformed body", path: "/tools/echo", body: `[1,2]`, code: http.StatusBadRequest},
		{name: "wrong arg type", path: "/tools/echo", body: `{"msg":1}`, code: http.StatusBadRequest},
		{name: "tool failure", path: "/tools/broken", body: ``, code: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.code, rec.Code)

			var resp callResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/tools/echo", `{"msg":"x"}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `defiskills_tools_calls_total{outcome="ok",tool="echo"} 1`)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	reg := tools.NewRegistry()
	s := New(reg, Config{Listen: "127.0.0.1:0"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
