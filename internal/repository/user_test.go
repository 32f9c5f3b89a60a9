package repository

import (
	"context"
	"testing"

	"giftlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_GetByEmailMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	// Absence is not an error; callers treat nil as "no such user"
	user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_DuplicateEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Name: "First", Email: "same@example.com", Password: "pw1"}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.User{Name: "Second", Email: "same@example.com", Password: "pw2"}
	err := repo.Create(ctx, second)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Old Name", Email: "update@example.com", Password: "pw"}
	require.NoError(t, repo.Create(ctx, user))

	user.Name = "New Name"
	require.NoError(t, repo.Update(ctx, user))

	reloaded, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", reloaded.Name)
}
