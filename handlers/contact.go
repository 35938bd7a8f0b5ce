package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/schema"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/logger"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/metrics"
)

// SubmitContact stores a contact-form message. Write failures surface as
// 500 so the frontend can tell the visitor their message was not saved.
func (h *PortfolioHandler) SubmitContact(c *gin.Context) {
	var msg schema.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		unprocessable(c, err)
		return
	}
	if err := msg.Validate(); err != nil {
		unprocessable(c, err)
		return
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	id, err := h.store.Insert(c.Request.Context(), schema.CollectionMessage, msg)
	if err != nil {
		logger.Errorf("contact: insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	metrics.DocumentsInserted.WithLabelValues(schema.CollectionMessage).Inc()
	logger.Debugf("contact: stored message %s from %s", id, msg.Email)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}
