package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Gateway used in tests and for dry-run seeding.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]bson.M)}
}

func (m *Memory) Insert(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	id := primitive.NewObjectID()
	stored["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = append(m.data[collection], stored)
	return id.Hex(), nil
}

func (m *Memory) FetchAll(_ context.Context, collection string) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := make([]bson.M, 0, len(m.data[collection]))
	docs = append(docs, m.data[collection]...)
	return docs, nil
}

func (m *Memory) Diagnostics(_ context.Context) Diagnostics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return Diagnostics{Connected: true, Collections: names}
}
