// Package seed loads the sample content shipped with the application into a
// document store.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	repo "github.com/srikanthravipati27/environment-hub/internal/domain/repository"
)

//go:embed content.json assets/*.svg
var files embed.FS

// imageKey names the embedded asset of a document; it is replaced by
// imageURLKey once the asset is published.
const (
	imageKey    = "image"
	imageURLKey = "imageUrl"
)

// Store is a content repository that can also be written to.
type Store interface {
	repo.ContentRepository
	Insert(ctx context.Context, coll entity.Collection, doc map[string]any) (string, error)
}

// ImageUploader publishes an embedded asset and returns its public URL.
type ImageUploader func(ctx context.Context, name string, data []byte) (string, error)

// Content returns the sample documents keyed by collection.
func Content() (map[entity.Collection][]map[string]any, error) {
	raw, err := files.ReadFile("content.json")
	if err != nil {
		return nil, err
	}
	var out map[entity.Collection][]map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode content.json: %w", err)
	}
	return out, nil
}

// Load inserts the sample documents into dst. Collections that already hold
// documents are left alone. With a nil upload the image references are
// dropped. It returns the number of inserted documents.
func Load(ctx context.Context, dst Store, upload ImageUploader) (int, error) {
	content, err := Content()
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, coll := range []entity.Collection{entity.Articles, entity.Activities, entity.Forum} {
		existing, err := dst.List(ctx, coll)
		if err != nil {
			return inserted, fmt.Errorf("list %s: %w", coll, err)
		}
		if len(existing) > 0 {
			continue
		}
		for _, doc := range content[coll] {
			if err := resolveImage(ctx, doc, upload); err != nil {
				return inserted, err
			}
			if _, err := dst.Insert(ctx, coll, doc); err != nil {
				return inserted, fmt.Errorf("insert into %s: %w", coll, err)
			}
			inserted++
		}
	}
	return inserted, nil
}

func resolveImage(ctx context.Context, doc map[string]any, upload ImageUploader) error {
	name, _ := doc[imageKey].(string)
	delete(doc, imageKey)
	if name == "" || upload == nil {
		return nil
	}
	data, err := files.ReadFile(path.Join("assets", name))
	if err != nil {
		return fmt.Errorf("read asset %s: %w", name, err)
	}
	url, err := upload(ctx, name, data)
	if err != nil {
		return fmt.Errorf("upload asset %s: %w", name, err)
	}
	doc[imageURLKey] = url
	return nil
}
