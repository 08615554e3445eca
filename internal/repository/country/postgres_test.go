package country

import (
	"context"
	"testing"

	"shop-backend/internal/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_CountriesAndStates(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Pool(t)

	var brID, caID int
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO country (code, name) VALUES ('BR', 'Brazil') RETURNING id`).Scan(&brID))
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO country (code, name) VALUES ('CA', 'Canada') RETURNING id`).Scan(&caID))
	_, err := pool.Exec(ctx, `INSERT INTO state (name, country_id) VALUES ('Acre', $1), ('Bahia', $1), ('Alberta', $2)`, brID, caID)
	require.NoError(t, err)

	repo := NewPostgres(pool, nil)

	countries, err := repo.ListCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "BR", countries[0].Code)
	assert.Equal(t, "Canada", countries[1].Name)

	states, err := repo.ListStatesByCountryCode(ctx, "BR")
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "Acre", states[0].Name)
	assert.Equal(t, brID, states[1].CountryID)

	none, err := repo.ListStatesByCountryCode(ctx, "XX")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPostgres_DeletingCountryCascadesToStates(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Pool(t)

	var id int
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO country (code, name) VALUES ('DE', 'Germany') RETURNING id`).Scan(&id))
	_, err := pool.Exec(ctx, `INSERT INTO state (name, country_id) VALUES ('Bayern', $1)`, id)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `DELETE FROM country WHERE id = $1`, id)
	require.NoError(t, err)

	assert.Equal(t, 0, dbtest.Count(ctx, t, pool, "state"), "states cascade with their country")
}
