package repositories

import (
	"testing"
	"time"

	"artizia_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteByTokenID(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccessTokenRepository()

	tokenID := uuid.NewString()
	require.NoError(t, repo.Create(db, &models.AccessToken{
		UserID:    uuid.NewString(),
		TokenID:   tokenID,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteByTokenID(db, tokenID))

	// A second revocation of the same token reports the miss.
	err := repo.DeleteByTokenID(db, tokenID)
	assert.ErrorIs(t, err, ErrAccessTokenNotFound)
}

func TestFindByTokenID(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccessTokenRepository()

	_, err := repo.FindByTokenID(db, uuid.NewString())
	assert.ErrorIs(t, err, ErrAccessTokenNotFound)

	tokenID := uuid.NewString()
	require.NoError(t, repo.Create(db, &models.AccessToken{
		UserID:    uuid.NewString(),
		TokenID:   tokenID,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	token, err := repo.FindByTokenID(db, tokenID)
	require.NoError(t, err)
	assert.Equal(t, tokenID, token.TokenID)
}

func TestCleanExpired(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccessTokenRepository()

	userID := uuid.NewString()
	require.NoError(t, repo.Create(db, &models.AccessToken{
		UserID: userID, TokenID: uuid.NewString(), ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, repo.Create(db, &models.AccessToken{
		UserID: userID, TokenID: uuid.NewString(), ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.CleanExpired(db))

	var count int64
	db.Model(&models.AccessToken{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(t, int64(1), count)
}
