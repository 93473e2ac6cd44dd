package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	"github.com/srikanthravipati27/environment-hub/internal/infrastructure/memory"
)

func TestContentCoversEveryCollection(t *testing.T) {
	content, err := Content()
	require.NoError(t, err)
	for _, coll := range []entity.Collection{entity.Articles, entity.Activities, entity.Forum} {
		assert.NotEmpty(t, content[coll], coll)
	}
}

func TestLoadWithoutUploader(t *testing.T) {
	store := memory.NewContentRepository()
	n, err := Load(context.Background(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	articles, err := store.List(context.Background(), entity.Articles)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	for _, a := range articles {
		assert.NotContains(t, a, imageKey)
		assert.NotContains(t, a, imageURLKey)
	}
}

func TestLoadUploadsImages(t *testing.T) {
	store := memory.NewContentRepository()
	var uploaded []string
	upload := func(_ context.Context, name string, data []byte) (string, error) {
		assert.NotEmpty(t, data)
		uploaded = append(uploaded, name)
		return "https://cdn.example/" + name, nil
	}
	_, err := Load(context.Background(), store, upload)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"wetland.svg", "tree.svg"}, uploaded)

	activities, err := store.List(context.Background(), entity.Activities)
	require.NoError(t, err)
	var urls []any
	for _, a := range activities {
		if u, ok := a[imageURLKey]; ok {
			urls = append(urls, u)
		}
	}
	assert.Equal(t, []any{"https://cdn.example/tree.svg"}, urls)
}

func TestLoadSkipsPopulatedCollections(t *testing.T) {
	store := memory.NewContentRepository()
	store.Put(entity.Forum, map[string]any{"title": "existing"})

	n, err := Load(context.Background(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	threads, err := store.List(context.Background(), entity.Forum)
	require.NoError(t, err)
	assert.Len(t, threads, 1)
}

func TestLoadUploadFailure(t *testing.T) {
	boom := errors.New("bucket gone")
	upload := func(context.Context, string, []byte) (string, error) { return "", boom }
	_, err := Load(context.Background(), memory.NewContentRepository(), upload)
	assert.ErrorIs(t, err, boom)
}
