package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/schema"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/logger"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/metrics"
)

// RecordInteraction appends one visitor event to the interaction log.
// The timestamp is always stamped server-side; the request payload has no
// created_at field, so callers cannot backdate events.
func (h *PortfolioHandler) RecordInteraction(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
		Event     string `json:"event"`
		Value     string `json:"value"`
		Path      string `json:"path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		unprocessable(c, err)
		return
	}

	rec := schema.Interaction{
		SessionID: req.SessionID,
		Event:     req.Event,
		Value:     req.Value,
		Path:      req.Path,
		CreatedAt: time.Now().UTC(),
	}
	if err := rec.Validate(); err != nil {
		unprocessable(c, err)
		return
	}

	id, err := h.store.Insert(c.Request.Context(), schema.CollectionInteraction, rec)
	if err != nil {
		logger.Errorf("interactions: insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	metrics.DocumentsInserted.WithLabelValues(schema.CollectionInteraction).Inc()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}
