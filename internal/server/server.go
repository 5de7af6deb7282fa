// Package server serves the tool registry over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"defiskills/internal/tools"
)

const (
	defaultListen   = ":8080"
	shutdownTimeout = 10 * time.Second
	maxRequestBytes = 1 << 20
)

// Config configures the tool server.
type Config struct {
	Listen       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// Metrics exposes GET /metrics when true.
	Metrics bool
}

// Server is the HTTP front of a tool registry.
type Server struct {
	cfg      Config
	registry *tools.Registry
	metrics  *Metrics
	logger   *zap.Logger
	engine   *gin.Engine
}

type toolInfo struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Schema      map[string]interface{} `json:"schema"`
}

type callResponse struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// New builds the gin engine and routes.
func New(registry *tools.Registry, cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Listen == "" {
		cfg.Listen = defaultListen
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		cfg:      cfg,
		registry: registry,
		metrics:  NewMetrics(),
		logger:   logger,
		engine:   engine,
	}

	engine.Use(gin.Recovery(), requestID(), requestLogger(logger, s.metrics))
	engine.GET("/healthz", s.health)
	engine.GET("/tools", s.listTools)
	engine.POST("/tools/:name", s.callTool)
	if cfg.Metrics {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	}
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("tool server listening", zap.String("addr", s.cfg.Listen), zap.Strings("tools", s.registry.Names()))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("tool server shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listTools(c *gin.Context) {
	list := s.registry.List()
	out := make([]toolInfo, 0, len(list))
	for _, tool := range list {
		out = append(out, toolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
			Schema:      tool.Schema().JSON(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) callTool(c *gin.Context) {
	name := c.Param("name")
	if _, ok := s.registry.Get(name); !ok {
		c.JSON(http.StatusNotFound, callResponse{Tool: name, Error: fmt.Sprintf("%s: %s", tools.ErrUnknownTool, name)})
		return
	}

	args, err := decodeArgs(c.Request.Body)
	if err != nil {
		s.metrics.ToolCalls.WithLabelValues(name, "bad_request").Inc()
		c.JSON(http.StatusBadRequest, callResponse{Tool: name, Error: err.Error()})
		return
	}

	start := time.Now()
	result, err := s.registry.Call(c.Request.Context(), name, args)
	s.metrics.ToolDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		s.metrics.ToolCalls.WithLabelValues(name, "ok").Inc()
		c.JSON(http.StatusOK, callResponse{Tool: name, Result: result})
	case errors.Is(err, tools.ErrInvalidArgs):
		s.metrics.ToolCalls.WithLabelValues(name, "bad_request").Inc()
		c.JSON(http.StatusBadRequest, callResponse{Tool: name, Error: err.Error()})
	default:
		s.metrics.ToolCalls.WithLabelValues(name, "error").Inc()
		s.logger.Error("tool call failed", zap.String("tool", name), zap.Error(err))
		c.JSON(http.StatusBadGateway, callResponse{Tool: name, Error: err.Error()})
	}
}

// decodeArgs reads a JSON object body. An empty body means no arguments.
// Numbers stay json.Number so large ids keep their precision.
func decodeArgs(body io.Reader) (tools.Args, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxRequestBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", tools.ErrInvalidArgs, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return tools.Args{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var args tools.Args
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("%w: body must be a JSON object: %v", tools.ErrInvalidArgs, err)
	}
	if args == nil {
		args = tools.Args{}
	}
	return args, nil
}
