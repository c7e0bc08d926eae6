// Package server exposes the search engine over HTTP with gin.
//
// Routes:
//
//	GET  /healthz
//	GET  /v1/algorithms
//	POST /v1/search
//	POST /v1/compare
//	POST /v1/inspect
//
// Each request is tagged with an X-Request-ID and logged through logrus.
// Every request evaluates its own grid; nothing is shared between requests
// except the Result cache.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Config holds settings for a Router.
type Config struct {
	Addr        string // Address to listen on
	Mode        string // gin mode: debug, release or test
	BaseURL     string // Prefix for versioned routes
	Controllers []Controller
}

// Router wires controllers and middleware into a gin engine.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
}

// NewRouter creates a Router from config.
func NewRouter(config Config) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}

	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Handler builds the gin engine.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog())

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", r.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logrus.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
