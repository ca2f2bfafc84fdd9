package search

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkuznecov/shopify_ecom/internal/models"
	"github.com/mkuznecov/shopify_ecom/internal/repo"
	"github.com/mkuznecov/shopify_ecom/internal/service"
)

func newTestSearchService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	return &Service{Repo: &repo.GormRepo{DB: db}}
}

func seed(t *testing.T, svc *Service, names ...string) {
	t.Helper()
	for _, name := range names {
		prod := models.Product{
			Name:        name,
			Price:       1,
			Stock:       1,
			Image:       "https://img.example/p.png",
			Description: "seeded",
		}
		require.NoError(t, svc.Repo.DB.Create(&prod).Error)
	}
}

func TestSearch_SubstringCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc := newTestSearchService(t)
	seed(t, svc, "Mechanical Keyboard", "Gaming Mouse", "keyboard cleaner")

	items, err := svc.Search(context.Background(), "KEYBOARD", 0, 20)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Mechanical Keyboard", items[0].Name)
	assert.Equal(t, "keyboard cleaner", items[1].Name)
}

func TestSearch_NoMatch(t *testing.T) {
	t.Parallel()

	svc := newTestSearchService(t)
	seed(t, svc, "Gaming Mouse")

	_, err := svc.Search(context.Background(), "nomatch", 0, 20)
	assert.ErrorIs(t, err, service.ErrNoMatch)
}

func TestSearch_EmptyCatalog(t *testing.T) {
	t.Parallel()

	svc := newTestSearchService(t)

	_, err := svc.Search(context.Background(), "anything", 0, 20)
	assert.ErrorIs(t, err, service.ErrNoMatch)
}

func TestSearch_EmptyKeyword(t *testing.T) {
	t.Parallel()

	svc := newTestSearchService(t)

	_, err := svc.Search(context.Background(), "", 0, 20)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestSearch_Pagination(t *testing.T) {
	t.Parallel()

	svc := newTestSearchService(t)
	seed(t, svc, "kb one", "kb two", "kb three")

	items, err := svc.Search(context.Background(), "kb", 0, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = svc.Search(context.Background(), "kb", 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "kb three", items[0].Name)
}
