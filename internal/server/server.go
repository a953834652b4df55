package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/metrics"
	"github.com/Lllllllleong/legaldocassistant/internal/models"
	"github.com/Lllllllleong/legaldocassistant/internal/services"
)

// Analyzer runs the document analysis flow.
type Analyzer interface {
	Analyze(ctx context.Context, sub models.Submission) (*services.Analysis, error)
}

// Chatter continues a conversation.
type Chatter interface {
	Reply(ctx context.Context, req models.ChatRequest) (string, error)
}

// Server holds the state for the REST API server.
type Server struct {
	cfg      config.Config
	analyzer Analyzer
	chatter  Chatter
	metrics  *metrics.Metrics
	router   *gin.Engine
}

// UseReleaseMode switches gin to release mode unless GIN_MODE is set.
func UseReleaseMode() {
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// NewServer creates a new Server instance.
func NewServer(cfg config.Config, analyzer Analyzer, chatter Chatter, m *metrics.Metrics) *Server {
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	r.Use(gin.Recovery(), requestLogger(), m.Middleware())

	s := &Server{
		cfg:      cfg,
		analyzer: analyzer,
		chatter:  chatter,
		metrics:  m,
		router:   r,
	}
	s.setupRoutes()
	return s
}

// ServeHTTP lets the server be mounted as a plain http.Handler, e.g. as a Cloud Function.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/analyze", s.analyzeReady)
	api.POST("/analyze", s.limitBody(), s.handleAnalyze)
	api.GET("/chat", s.chatReady)
	api.POST("/chat", s.handleChat)
	api.GET("/health", s.healthCheck)

	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
