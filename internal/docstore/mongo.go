package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabaseName is used when neither the configuration nor the
// connection string names a database.
const DefaultDatabaseName = "fundrise"

// Mongo is a Store backed by a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to uri and pings the server. An empty dbName falls back to
// the database in the connection string.
func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	if dbName == "" {
		dbName = databaseFromURI(uri)
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, unavailable("connect mongo", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, unavailable("ping mongo", err)
	}
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func databaseFromURI(uri string) string {
	cs, err := connstring.Parse(uri)
	if err != nil || cs.Database == "" {
		return DefaultDatabaseName
	}
	return cs.Database
}

// buildMongoFilter translates a Filter into a bson query, turning the string
// identifier into an ObjectID.
func buildMongoFilter(filter Filter) (bson.M, error) {
	out := bson.M{}
	for k, v := range filter {
		if k == IDField {
			oid, err := filterID(v)
			if err != nil {
				return nil, err
			}
			out[IDField] = oid
			continue
		}
		out[k] = v
	}
	return out, nil
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", unavailable("insert "+collection, err)
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (m *Mongo) Find(ctx context.Context, collection string, filter Filter, limit int64, out any) error {
	query, err := buildMongoFilter(filter)
	if err != nil {
		return err
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := m.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return unavailable("find "+collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return unavailable("find "+collection, err)
	}
	return nil
}

func (m *Mongo) Increment(ctx context.Context, collection, id, field string, delta float64) error {
	oid, err := filterID(id)
	if err != nil {
		return err
	}
	res, err := m.db.Collection(collection).UpdateOne(ctx,
		bson.M{IDField: oid},
		bson.M{"$inc": bson.M{field: delta}},
	)
	if err != nil {
		return unavailable("increment "+collection+"."+field, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocuments
	}
	return nil
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, unavailable("list collections", err)
	}
	return names, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, nil); err != nil {
		return unavailable("ping mongo", err)
	}
	return nil
}

func (m *Mongo) Name() string { return m.db.Name() }

func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return err
	}
	return nil
}
