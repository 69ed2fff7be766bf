package repository_test

import (
	"errors"
	"testing"

	"rently/internal/models"
	"rently/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWishlistRepository_AddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewWishlistRepository(db)
	u := seedUser(t, db, "alice@example.com")
	p := seedProduct(t, db, u.ID, 10000)

	require.NoError(t, repo.Add(u.ID, p.ID))
	require.NoError(t, repo.Add(u.ID, p.ID), "duplicate add must be a no-op")

	var rows int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Where("user_id = ?", u.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestWishlistRepository_RemoveAndList(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewWishlistRepository(db)
	u := seedUser(t, db, "alice@example.com")
	p := seedProduct(t, db, u.ID, 10000)

	require.NoError(t, repo.Add(u.ID, p.ID))
	list, err := repo.ListByUserID(u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ProductID)

	require.NoError(t, repo.Remove(u.ID, p.ID))
	err = repo.Remove(u.ID, p.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
