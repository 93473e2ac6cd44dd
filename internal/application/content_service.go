package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	repo "github.com/srikanthravipati27/environment-hub/internal/domain/repository"
)

var ErrContentNotFound = errors.New("content not found")

type ContentService struct {
	Repo repo.ContentRepository
}

func NewContentService(r repo.ContentRepository) *ContentService {
	return &ContentService{Repo: r}
}

func (s *ContentService) List(ctx context.Context, coll entity.Collection) ([]entity.ContentItem, error) {
	items, err := s.Repo.List(ctx, coll)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", coll, err)
	}
	return items, nil
}

func (s *ContentService) Get(ctx context.Context, coll entity.Collection, id string) (entity.ContentItem, error) {
	item, err := s.Repo.GetByID(ctx, coll, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", coll, err)
	}
	return item, nil
}
