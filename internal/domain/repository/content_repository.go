package repository

import (
	"context"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
)

// ContentRepository reads the articles, activities and forum collections.
type ContentRepository interface {
	List(ctx context.Context, coll entity.Collection) ([]entity.ContentItem, error)
	GetByID(ctx context.Context, coll entity.Collection, id string) (entity.ContentItem, error)
}
