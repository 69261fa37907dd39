// Package docstore is a thin document store adapter. It stores and returns
// documents as given and does not validate them.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fundrise/internal/domain"
)

// IDField is the identifier key of every stored document.
const IDField = "_id"

// ErrNoDocuments is returned when a lookup or update matches nothing.
var ErrNoDocuments = fmt.Errorf("no documents in result: %w", domain.ErrNotFound)

// Filter matches documents whose fields equal the given values. The IDField
// key takes the identifier in string form.
type Filter map[string]any

// ByID returns a filter selecting a single document by identifier.
func ByID(id string) Filter {
	return Filter{IDField: id}
}

// Store is implemented by every document store backend.
type Store interface {
	// Insert stores doc in collection and returns its new identifier.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// Find decodes matching documents into out, which must point to a slice.
	// A limit <= 0 returns every match.
	Find(ctx context.Context, collection string, filter Filter, limit int64, out any) error
	// Increment atomically adds delta to a numeric field of one document.
	Increment(ctx context.Context, collection, id, field string, delta float64) error
	// Collections lists the collection names present in the store.
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	// Name is the database name, for diagnostics.
	Name() string
	Close(ctx context.Context) error
}

// FindOne returns the first document matching filter.
func FindOne[T any](ctx context.Context, s Store, collection string, filter Filter) (*T, error) {
	var items []T
	if err := s.Find(ctx, collection, filter, 1, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoDocuments
	}
	return &items[0], nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// filterID extracts the identifier from a filter value.
func filterID(v any) (primitive.ObjectID, error) {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id, nil
	case string:
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return primitive.NilObjectID, domain.Invalid(fmt.Sprintf("invalid %s %q", IDField, id))
		}
		return oid, nil
	default:
		return primitive.NilObjectID, domain.Invalid(fmt.Sprintf("unsupported %s type %T", IDField, v))
	}
}

// encodeJSONDocument converts doc to its JSON object form without an
// identifier, for the backends that keep documents as JSON.
func encodeJSONDocument(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if body == nil {
		return nil, fmt.Errorf("encode document: %T is not an object", doc)
	}
	delete(body, IDField)
	return body, nil
}

// jsonFilterValue normalizes a filter value to what encoding/json would
// produce when decoding a stored document.
func jsonFilterValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeJSONDocuments decodes JSON objects into out, a pointer to a slice.
func decodeJSONDocuments(docs []json.RawMessage, out any) error {
	if docs == nil {
		docs = []json.RawMessage{}
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("decode documents: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode documents: %w", err)
	}
	return nil
}
