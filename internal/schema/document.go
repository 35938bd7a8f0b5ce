package schema

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// FromDocument decodes a raw store document into dst and validates the
// result. The store's internal _id field is dropped before decoding so
// record types never carry storage identifiers.
func FromDocument(doc bson.M, dst Record) error {
	trimmed := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		trimmed[k] = v
	}
	raw, err := bson.Marshal(trimmed)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := bson.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	return nil
}
