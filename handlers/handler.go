// Package handlers exposes the public HTTP API of the portfolio backend.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/config"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/store"
)

// PortfolioHandler holds dependencies for the public API endpoints.
type PortfolioHandler struct {
	cfg   *config.Config
	store store.Gateway
}

func NewPortfolioHandler(cfg *config.Config, st store.Gateway) *PortfolioHandler {
	return &PortfolioHandler{cfg: cfg, store: st}
}

// Register wires every public route onto the given group.
func (h *PortfolioHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.GET("/test", h.TestDatabase)
	rg.POST("/ai/suggest", h.Suggest)
	rg.POST("/contact", h.SubmitContact)
	rg.POST("/interactions", h.RecordInteraction)
	rg.GET("/testimonials", h.GetTestimonials)
	rg.GET("/projects", h.GetProjects)
	rg.GET("/schema", h.GetSchema)
}

// unprocessable answers a request whose payload failed binding or
// validation. Field violations render as a field→message map, anything
// else as a bare string.
func unprocessable(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": verrs})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
