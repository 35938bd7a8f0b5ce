package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/schema"
)

// GetSchema exposes the record-kind registry for admin tooling.
func (h *PortfolioHandler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, schema.DescribeAll())
}
