package web

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/racuca/AIHistoryLine/internal/timeline"
)

const maxTopicSize = 10 << 10 // 10KB

// errGenerationFailed is the one message users see for any failure of the
// request cycle: transport, service and decode errors all collapse into it.
// The specific cause is logged server-side only.
const errGenerationFailed = "Failed to generate the timeline. Please try again."

// timelineRequest is the body of POST /api/timeline
type timelineRequest struct {
	Topic string `json:"topic"`
}

// Web handlers

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "AIHistoryLine",
	})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// API handlers

func (s *Server) handleAPITimeline(c *gin.Context) {
	var req timelineRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "topic required",
		})
		return
	}

	if len(topic) > maxTopicSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "topic exceeds maximum size of 10KB",
		})
		return
	}

	if !s.busy.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "a generation is already in progress",
		})
		return
	}
	defer s.busy.Store(false)

	id := generationID()
	log.Printf("[%s] generating timeline for topic %q", id, topic)

	events, err := s.generator.Generate(c.Request.Context(), topic)
	if err != nil {
		log.Printf("[%s] generation failed: %v", id, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   errGenerationFailed,
		})
		return
	}

	sorted := timeline.Sort(events)
	log.Printf("[%s] generated %d events", id, len(sorted))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"topic":   topic,
		"events":  sorted,
		"count":   len(sorted),
	})
}

func generationID() string {
	return fmt.Sprintf("gen-%s", uuid.New().String()[:8])
}
