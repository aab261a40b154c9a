package repository

import (
	"context"
	"testing"

	"campusconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubRepository_CRUD(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewClubRepository(db)
	ctx := context.Background()

	club := &models.Club{
		Name:               "Drama Society",
		Description:        "Stage productions every semester",
		Category:           "cultural",
		FacultyCoordinator: "Dr. Rao",
		Status:             models.ApprovalStatusPending,
	}
	require.NoError(t, repo.Create(ctx, club))
	require.NotZero(t, club.ID)

	got, err := repo.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drama Society", got.Name)

	got.Status = models.ApprovalStatusApproved
	require.NoError(t, repo.Update(ctx, got))

	reread, err := repo.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, reread.Status)

	require.NoError(t, repo.Delete(ctx, club.ID))
	_, err = repo.GetByID(ctx, club.ID)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestClubRepository_List_Filters(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewClubRepository(db)
	ctx := context.Background()

	seed := []models.Club{
		{Name: "Chess Club", Category: "games", Status: models.ApprovalStatusApproved},
		{Name: "Coding Club", Category: "technical", Status: models.ApprovalStatusApproved},
		{Name: "Film Club", Category: "cultural", Status: models.ApprovalStatusPending},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	approved, err := repo.List(ctx, models.ApprovalStatusApproved, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	technical, err := repo.List(ctx, models.ApprovalStatusApproved, "technical", 20, 0)
	require.NoError(t, err)
	require.Len(t, technical, 1)
	assert.Equal(t, "Coding Club", technical[0].Name)

	all, err := repo.List(ctx, "", "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
