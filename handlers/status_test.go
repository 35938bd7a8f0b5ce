package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/config"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{}, nil)

	w := performJSON(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Portfolio backend is running", got["message"])
}

func TestTestDatabaseDisconnected(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{}, &config.Config{})

	w := performJSON(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "✅ Running", got["backend"])
	assert.Equal(t, "⚠️  Available but not initialized", got["database"])
	assert.Equal(t, "❌ Not Set", got["database_url"])
	assert.Equal(t, "❌ Not Set", got["database_name"])
	assert.Equal(t, "Not Connected", got["connection_status"])
	assert.Equal(t, []any{}, got["collections"])
}

func TestTestDatabaseConnected(t *testing.T) {
	cfg := &config.Config{}
	cfg.MongoDB.URI = "mongodb://localhost:27017"
	cfg.MongoDB.Database = "portfolio"
	gw := &fakeGateway{diag: store.Diagnostics{Connected: true, Collections: []string{"message", "project"}}}
	r := newTestRouter(t, gw, cfg)

	w := performJSON(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "✅ Connected & Working", got["database"])
	assert.Equal(t, "✅ Set", got["database_url"])
	assert.Equal(t, "✅ Set", got["database_name"])
	assert.Equal(t, "Connected", got["connection_status"])
	assert.Equal(t, []any{"message", "project"}, got["collections"])
}

func TestTestDatabaseListError(t *testing.T) {
	longErr := errors.New(strings.Repeat("x", 80))
	gw := &fakeGateway{diag: store.Diagnostics{Connected: true, ListErr: longErr}}
	r := newTestRouter(t, gw, &config.Config{})

	w := performJSON(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	db, ok := got["database"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(db, "⚠️  Connected but Error: "), "got %q", db)
	// error text capped at 50 runes
	assert.Equal(t, 50, utf8.RuneCountInString(strings.TrimPrefix(db, "⚠️  Connected but Error: ")))
	assert.Equal(t, "Connected", got["connection_status"])
	assert.Equal(t, []any{}, got["collections"])
}

func TestTestDatabaseCapsCollections(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("col%02d", i)
	}
	gw := &fakeGateway{diag: store.Diagnostics{Connected: true, Collections: names}}
	r := newTestRouter(t, gw, &config.Config{})

	w := performJSON(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Collections []string `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Collections, 10)
	assert.Equal(t, "col00", got.Collections[0])
}
