// Package memory is an in-process document store used for local development
// (DOC_STORE=memory) and tests. Like the default MongoDB setup it has no
// unique constraints on users.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	"github.com/srikanthravipati27/environment-hub/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.NewString()
	r.users = append(r.users, *u)
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *UserRepository) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	_, err := r.GetByUserName(ctx, userName)
	return err == nil, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func (r *UserRepository) GetByUserName(_ context.Context, userName string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.UserName == userName })
}

// Len returns the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *UserRepository) find(match func(entity.User) bool) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type ContentRepository struct {
	mu    sync.RWMutex
	seq   int
	items map[entity.Collection][]entity.ContentItem
}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{items: map[entity.Collection][]entity.ContentItem{}}
}

// Put stores a copy of fields in coll and returns the assigned id.
// An "id" field in fields is used as the identifier when present.
func (r *ContentRepository) Put(coll entity.Collection, fields map[string]any) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := make(entity.ContentItem, len(fields)+1)
	for k, v := range fields {
		item[k] = v
	}
	if item.ID() == "" {
		r.seq++
		item["id"] = strconv.Itoa(r.seq)
	}
	r.items[coll] = append(r.items[coll], item)
	return item.ID()
}

// Insert is Put behind the context-aware signature used by the seed loader.
func (r *ContentRepository) Insert(_ context.Context, coll entity.Collection, doc map[string]any) (string, error) {
	return r.Put(coll, doc), nil
}

func (r *ContentRepository) List(_ context.Context, coll entity.Collection) ([]entity.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.ContentItem, 0, len(r.items[coll]))
	for _, it := range r.items[coll] {
		out = append(out, clone(it))
	}
	return out, nil
}

func (r *ContentRepository) GetByID(_ context.Context, coll entity.Collection, id string) (entity.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items[coll] {
		if it.ID() == id {
			return clone(it), nil
		}
	}
	return nil, repository.ErrNotFound
}

func clone(it entity.ContentItem) entity.ContentItem {
	cp := make(entity.ContentItem, len(it))
	for k, v := range it {
		cp[k] = v
	}
	return cp
}

var (
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.ContentRepository = (*ContentRepository)(nil)
)
