package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/render"
)

// DefaultMaxPoints bounds a single request body.
const DefaultMaxPoints = 1_000_000

// shutdownGrace is how long in-flight requests may run after cancellation.
const shutdownGrace = 5 * time.Second

// Config wires a Server. Zero fields fall back to defaults; a nil Closest
// selects closest.DefaultOptions.
type Config struct {
	Addr      string
	Closest   *closest.Options
	Render    render.Options
	MaxPoints int
	Logger    logrus.FieldLogger
	Registry  *prometheus.Registry
}

// Server is the HTTP surface over closest, hull and render.
type Server struct {
	cfg     Config
	closest closest.Options
	log     logrus.FieldLogger
	metrics *metrics
	router  *gin.Engine
}

// NewServer builds the router and registers metrics.
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	opts := closest.DefaultOptions()
	if cfg.Closest != nil {
		opts = *cfg.Closest
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = DefaultMaxPoints
	}
	if cfg.Render.Width == 0 {
		cfg.Render = render.DefaultOptions()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	s := &Server{cfg: cfg, closest: opts, log: cfg.Logger, metrics: newMetrics(cfg.Registry)}

	r := gin.New()
	r.Use(gin.Recovery(), s.observe)
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/closest", s.postClosest)
			v1.POST("/hull", s.postHull)
			v1.POST("/render", s.postRender)
		}
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	s.router = r

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// observe counts and logs every request after it has been handled.
func (s *Server) observe(c *gin.Context) {
	start := time.Now()
	c.Next()

	endpoint := c.FullPath()
	if endpoint == "" {
		endpoint = "unmatched"
	}
	code := c.Writer.Status()
	s.metrics.requests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()

	entry := s.log.WithFields(logrus.Fields{
		"method":   c.Request.Method,
		"path":     c.Request.URL.Path,
		"status":   code,
		"duration": time.Since(start),
	})
	if len(c.Errors) > 0 {
		entry.WithError(c.Errors.Last()).Warn("request failed")
		return
	}
	entry.Debug("request served")
}

func getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
