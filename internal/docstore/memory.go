package docstore

import (
	"context"
	"encoding/json"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryDoc struct {
	id   string
	body map[string]any
}

// Memory is an in-process Store. Documents are kept in their JSON form so
// reads behave like the other backends.
type Memory struct {
	name string

	mu          sync.RWMutex
	collections map[string][]*memoryDoc
}

// NewMemory returns an empty in-process store.
func NewMemory(name string) *Memory {
	return &Memory{name: name, collections: make(map[string][]*memoryDoc)}
}

func (m *Memory) Insert(_ context.Context, collection string, doc any) (string, error) {
	body, err := encodeJSONDocument(doc)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID().Hex()
	body[IDField] = id

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], &memoryDoc{id: id, body: body})
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) Find(_ context.Context, collection string, filter Filter, limit int64, out any) error {
	match, err := m.matcher(filter)
	if err != nil {
		return err
	}

	m.mu.RLock()
	var docs []json.RawMessage
	for _, d := range m.collections[collection] {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		if !match(d) {
			continue
		}
		raw, err := json.Marshal(d.body)
		if err != nil {
			m.mu.RUnlock()
			return err
		}
		docs = append(docs, raw)
	}
	m.mu.RUnlock()

	return decodeJSONDocuments(docs, out)
}

func (m *Memory) matcher(filter Filter) (func(*memoryDoc) bool, error) {
	want := make(map[string]any, len(filter))
	var id string
	for k, v := range filter {
		if k == IDField {
			oid, err := filterID(v)
			if err != nil {
				return nil, err
			}
			id = oid.Hex()
			continue
		}
		nv, err := jsonFilterValue(v)
		if err != nil {
			return nil, err
		}
		want[k] = nv
	}
	return func(d *memoryDoc) bool {
		if id != "" && d.id != id {
			return false
		}
		for k, v := range want {
			got, ok := d.body[k]
			if !ok || !reflect.DeepEqual(got, v) {
				return false
			}
		}
		return true
	}, nil
}

func (m *Memory) Increment(_ context.Context, collection, id, field string, delta float64) error {
	oid, err := filterID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.collections[collection] {
		if d.id != oid.Hex() {
			continue
		}
		current, _ := d.body[field].(float64)
		d.body[field] = current + delta
		return nil
	}
	return ErrNoDocuments
}

func (m *Memory) Collections(context.Context) ([]string, error) {
	m.mu.RLock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Name() string { return m.name }

func (m *Memory) Close(context.Context) error { return nil }
