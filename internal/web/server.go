package web

import (
	"context"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/racuca/AIHistoryLine/internal/timeline"
)

// Generator produces a timeline of events for a topic.
type Generator interface {
	Generate(ctx context.Context, topic string) ([]timeline.Event, error)
}

// Server is the AIHistoryLine web server
type Server struct {
	generator Generator
	router    *gin.Engine

	// One generation in flight at a time; submissions while busy are
	// rejected rather than queued.
	busy atomic.Bool
}

// NewServer creates a new web server
func NewServer(generator Generator) *Server {
	router := gin.Default()

	s := &Server{
		generator: generator,
		router:    router,
	}

	// Load templates
	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	// Web routes
	router.GET("/", s.handleIndex)
	router.GET("/healthz", s.handleHealthz)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/timeline", s.handleAPITimeline)
	}

	return s
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
