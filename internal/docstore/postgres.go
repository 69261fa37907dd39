package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const qCreateDocuments = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	doc JSONB NOT NULL,
	seq BIGSERIAL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (collection, id)
);
`

const qCreateDocumentsSeqIndex = `
CREATE INDEX IF NOT EXISTS documents_collection_seq_idx ON documents (collection, seq);
`

const qInsertDocument = `
INSERT INTO documents (collection, id, doc)
VALUES ($1, $2, $3::jsonb);
`

// The update takes a row lock, so concurrent increments serialize instead of
// overwriting each other.
const qIncrementField = `
UPDATE documents
SET doc = jsonb_set(doc, ARRAY[$3::text], to_jsonb(COALESCE((doc->>$3::text)::numeric, 0) + $4::numeric))
WHERE collection = $1 AND id = $2;
`

const qListCollections = `
SELECT DISTINCT collection FROM documents ORDER BY collection;
`

// pgQuerier is the subset of *pgxpool.Pool the backend runs statements on.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// Postgres keeps every collection in a single JSONB table keyed by
// (collection, id).
type Postgres struct {
	db     pgQuerier
	pool   *pgxpool.Pool
	dbname string
}

// NewPostgres wraps pool and makes sure the documents table exists.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*Postgres, error) {
	p := &Postgres{db: pool, pool: pool, dbname: pool.Config().ConnConfig.Database}
	if err := p.initSchema(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Postgres) initSchema(ctx context.Context) error {
	for _, stmt := range []string{qCreateDocuments, qCreateDocumentsSeqIndex} {
		if _, err := p.db.Exec(ctx, stmt); err != nil {
			return unavailable("create documents table", err)
		}
	}
	return nil
}

func (p *Postgres) Insert(ctx context.Context, collection string, doc any) (string, error) {
	body, err := encodeJSONDocument(doc)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	id := primitive.NewObjectID().Hex()
	if _, err := p.db.Exec(ctx, qInsertDocument, collection, id, string(raw)); err != nil {
		return "", unavailable("insert "+collection, err)
	}
	return id, nil
}

// buildFindQuery renders the select for a collection, filter and limit.
// Non-identifier fields are matched with JSONB containment.
func buildFindQuery(collection string, filter Filter, limit int64) (string, []any, error) {
	var b strings.Builder
	args := []any{collection}
	b.WriteString("SELECT doc || jsonb_build_object('_id', id) FROM documents WHERE collection = $1")

	fields := make(map[string]any, len(filter))
	for k, v := range filter {
		if k == IDField {
			oid, err := filterID(v)
			if err != nil {
				return "", nil, err
			}
			args = append(args, oid.Hex())
			b.WriteString(" AND id = $" + strconv.Itoa(len(args)))
			continue
		}
		fields[k] = v
	}
	if len(fields) > 0 {
		raw, err := json.Marshal(fields)
		if err != nil {
			return "", nil, fmt.Errorf("encode filter: %w", err)
		}
		args = append(args, string(raw))
		b.WriteString(" AND doc @> $" + strconv.Itoa(len(args)) + "::jsonb")
	}
	b.WriteString(" ORDER BY seq")
	if limit > 0 {
		args = append(args, limit)
		b.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	return b.String(), args, nil
}

func (p *Postgres) Find(ctx context.Context, collection string, filter Filter, limit int64, out any) error {
	query, args, err := buildFindQuery(collection, filter, limit)
	if err != nil {
		return err
	}
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return unavailable("find "+collection, err)
	}
	raws, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return unavailable("find "+collection, err)
	}
	docs := make([]json.RawMessage, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, raw)
	}
	return decodeJSONDocuments(docs, out)
}

func (p *Postgres) Increment(ctx context.Context, collection, id, field string, delta float64) error {
	oid, err := filterID(id)
	if err != nil {
		return err
	}
	tag, err := p.db.Exec(ctx, qIncrementField, collection, oid.Hex(), field, delta)
	if err != nil {
		return unavailable("increment "+collection+"."+field, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoDocuments
	}
	return nil
}

func (p *Postgres) Collections(ctx context.Context) ([]string, error) {
	rows, err := p.db.Query(ctx, qListCollections)
	if err != nil {
		return nil, unavailable("list collections", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, unavailable("list collections", err)
	}
	return names, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.db.Ping(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (p *Postgres) Name() string { return p.dbname }

func (p *Postgres) Close(context.Context) error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
