package repository_test

import (
	"errors"
	"testing"

	"rently/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIncrementRentalCount_FlipsSaleAtThreshold(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductRepository(db)
	u := seedUser(t, db, "alice@example.com")
	p := seedProduct(t, db, u.ID, 10000)

	for i := 1; i <= 4; i++ {
		bumped, err := repo.IncrementRentalCount(p.ID)
		require.NoError(t, err)
		assert.Equal(t, i, bumped.RentalCount)
		assert.False(t, bumped.IsForSale, "must stay off below the threshold")
	}

	bumped, err := repo.IncrementRentalCount(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, bumped.RentalCount)
	assert.True(t, bumped.IsForSale)

	// sticky across further rentals
	bumped, err = repo.IncrementRentalCount(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, bumped.RentalCount)
	assert.True(t, bumped.IsForSale)
}

func TestIncrementRentalCount_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductRepository(db)

	_, err := repo.IncrementRentalCount(9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
