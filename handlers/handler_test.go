package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/config"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeGateway is a scriptable store.Gateway for handler tests.
type fakeGateway struct {
	insertID  string
	insertErr error
	docs      []bson.M
	fetchErr  error
	diag      store.Diagnostics

	insertedCollection string
	insertedDoc        any
}

func (f *fakeGateway) Insert(_ context.Context, collection string, doc any) (string, error) {
	f.insertedCollection = collection
	f.insertedDoc = doc
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if f.insertID == "" {
		return "65f000000000000000000000", nil
	}
	return f.insertID, nil
}

func (f *fakeGateway) FetchAll(_ context.Context, _ string) ([]bson.M, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.docs, nil
}

func (f *fakeGateway) Diagnostics(_ context.Context) store.Diagnostics {
	return f.diag
}

func newTestRouter(t *testing.T, gw store.Gateway, cfg *config.Config) *gin.Engine {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	r := gin.New()
	h := NewPortfolioHandler(cfg, gw)
	h.Register(r.Group("/"))
	return r
}

func performJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
