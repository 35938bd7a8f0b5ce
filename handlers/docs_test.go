package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestDocsEndpoints(t *testing.T) {
	g := gin.New()
	RegisterDocs(g)

	req := httptest.NewRequest("GET", "/docs", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "swagger-ui")
	require.Contains(t, w.Body.String(), "/openapi.json")

	req2 := httptest.NewRequest("GET", "/openapi.json", nil)
	w2 := httptest.NewRecorder()
	g.ServeHTTP(w2, req2)
	require.Equal(t, 200, w2.Code)

	// body must be a JSON object, not a double-encoded string
	var doc map[string]any
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &doc))
	require.Equal(t, "3.0.0", doc["openapi"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, p := range []string{"/", "/test", "/ai/suggest", "/contact", "/interactions", "/testimonials", "/projects", "/schema"} {
		require.Contains(t, paths, p)
	}
}
