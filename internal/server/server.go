// Package server implements the results service: it accepts finished
// surveys, scores them and serves them back by id.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/questions"
)

// DefaultShutdownPeriod bounds graceful shutdown when none is configured.
const DefaultShutdownPeriod = 5 * time.Second

// ResultStore persists scored results.
type ResultStore interface {
	Save(ctx context.Context, res endpoint.Result) error
	// Get returns an error wrapping endpoint.ErrNotFound for unknown ids.
	Get(ctx context.Context, id string) (*endpoint.Result, error)
}

// Options configures a Server. Results is required.
type Options struct {
	Results ResultStore
	// Bank, when set, restricts answers to its question ids and is served
	// on /api/questions.
	Bank   *questions.Bank
	TestID string
	Logger *zap.Logger
	// NewID generates result ids. Defaults to random UUIDs.
	NewID func() string
}

// Server is the results HTTP service.
type Server struct {
	results ResultStore
	bank    atomic.Pointer[questions.Bank]
	testID  string
	log     *zap.Logger
	newID   func() string
	engine  *gin.Engine
}

// New builds the service and its routes.
func New(opts Options) *Server {
	s := &Server{
		results: opts.Results,
		testID:  opts.TestID,
		log:     opts.Logger,
		newID:   opts.NewID,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.testID == "" && opts.Bank != nil {
		s.testID = opts.Bank.ID
	}
	s.bank.Store(opts.Bank)

	RegisterMetrics()

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	api.POST("/results", s.createResult)
	api.GET("/results/:id", s.getResult)
	api.GET("/questions", s.getQuestions)

	// Navigation target handed to clients after a successful submission.
	r.GET("/result/:id", s.getResult)

	s.engine = r
	return s
}

// SetBank swaps the question bank used to check and serve submissions.
// bank must not be nil.
// It is safe to call while serving.
func (s *Server) SetBank(bank *questions.Bank) {
	s.bank.Store(bank)
	s.log.Info("question bank updated",
		zap.String("bank_id", bank.ID), zap.String("version", bank.Version), zap.Int("questions", len(bank.Questions)))
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string, shutdownPeriod time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, shutdownPeriod)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownPeriod time.Duration) error {
	if shutdownPeriod <= 0 {
		shutdownPeriod = DefaultShutdownPeriod
	}
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("results service listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down results service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
