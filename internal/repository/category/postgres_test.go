package category

import (
	"context"
	"testing"

	"shop-backend/internal/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Pool(t)
	repo := NewPostgres(pool)

	books, err := repo.UpsertByName(ctx, "Books")
	require.NoError(t, err)
	assert.NotZero(t, books.ID)
	assert.Equal(t, "Books", books.CategoryName)

	_, err = repo.UpsertByName(ctx, "Coffee Mugs")
	require.NoError(t, err)

	again, err := repo.UpsertByName(ctx, "Books")
	require.NoError(t, err)
	assert.Equal(t, books.ID, again.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Books", list[0].CategoryName)
	assert.Equal(t, "Coffee Mugs", list[1].CategoryName)
}
