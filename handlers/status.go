package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is a liveness check for uptime monitors.
func (h *PortfolioHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio backend is running"})
}

// TestDatabase reports the store connection state in a human-readable
// form used by the frontend's diagnostics page.
func (h *PortfolioHandler) TestDatabase(c *gin.Context) {
	set := func(ok bool) string {
		if ok {
			return "✅ Set"
		}
		return "❌ Not Set"
	}

	response := gin.H{
		"backend":           "✅ Running",
		"database":          "⚠️  Available but not initialized",
		"database_url":      set(h.cfg.MongoDB.URI != ""),
		"database_name":     set(h.cfg.MongoDB.Database != ""),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	diag := h.store.Diagnostics(c.Request.Context())
	if diag.Connected {
		response["connection_status"] = "Connected"
		if diag.ListErr != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(diag.ListErr.Error(), 50)
		} else {
			response["database"] = "✅ Connected & Working"
			cols := diag.Collections
			if cols == nil {
				cols = []string{}
			}
			if len(cols) > 10 {
				cols = cols[:10]
			}
			response["collections"] = cols
		}
	}

	c.JSON(http.StatusOK, response)
}
