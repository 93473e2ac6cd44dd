package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	"github.com/srikanthravipati27/environment-hub/internal/domain/repository"
)

type ContentRepository struct {
	db *mongo.Database
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{db: db}
}

// List returns every document of the collection, unfiltered and unpaginated.
func (r *ContentRepository) List(ctx context.Context, coll entity.Collection) ([]entity.ContentItem, error) {
	cur, err := r.db.Collection(string(coll)).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll, err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll, err)
	}
	items := make([]entity.ContentItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, toContentItem(d))
	}
	return items, nil
}

func (r *ContentRepository) GetByID(ctx context.Context, coll entity.Collection, id string) (entity.ContentItem, error) {
	var doc bson.M
	err := r.db.Collection(string(coll)).FindOne(ctx, idFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %q: %w", coll, id, err)
	}
	return toContentItem(doc), nil
}

// Insert stores doc in coll and returns the generated identifier. An "id"
// field is not stored; the store assigns _id.
func (r *ContentRepository) Insert(ctx context.Context, coll entity.Collection, doc map[string]any) (string, error) {
	d := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "id" {
			continue
		}
		d[k] = v
	}
	res, err := r.db.Collection(string(coll)).InsertOne(ctx, d)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", coll, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// idFilter matches an identifier in its ObjectID form when it parses as
// one, and always in its plain string form for documents imported with
// custom ids.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

func toContentItem(doc bson.M) entity.ContentItem {
	item := make(entity.ContentItem, len(doc)+1)
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		item[k] = v
	}
	switch id := doc["_id"].(type) {
	case primitive.ObjectID:
		item["id"] = id.Hex()
	case nil:
	default:
		item["id"] = fmt.Sprint(id)
	}
	return item
}

var _ repository.ContentRepository = (*ContentRepository)(nil)
