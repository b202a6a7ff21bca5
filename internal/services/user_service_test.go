package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryoufit/ryoufit-backend/internal/dto"
	"github.com/ryoufit/ryoufit-backend/internal/services"
)

func TestUserCreateAndGet(t *testing.T) {
	svc := services.NewUserService(testDB(t))

	created := createTestUser(t, svc)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.LastName, got.LastName)
	assert.Equal(t, created.FirstName, got.FirstName)
	assert.Equal(t, created.Gender, got.Gender)
	assert.Equal(t, created.BirthDate, got.BirthDate)
	assert.Equal(t, []string{"高血圧"}, []string(got.MedicalHistory))
}

func TestUserMedicalHistoryDefaultsToEmptyList(t *testing.T) {
	svc := services.NewUserService(testDB(t))

	created, err := svc.Create(dto.CreateUserRequest{
		LastName:  "田中",
		FirstName: "一郎",
		Gender:    "男性",
		BirthDate: "1938-11-02",
	})
	require.NoError(t, err)
	require.NotNil(t, created.MedicalHistory)
	assert.Empty(t, created.MedicalHistory)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.MedicalHistory)
	assert.Empty(t, got.MedicalHistory)
}

func TestUserListOrderedByLastName(t *testing.T) {
	svc := services.NewUserService(testDB(t))

	for _, name := range []string{"渡辺", "伊藤", "佐藤"} {
		_, err := svc.Create(dto.CreateUserRequest{
			LastName:  name,
			FirstName: "太郎",
			Gender:    "男性",
			BirthDate: "1940-01-01",
		})
		require.NoError(t, err)
	}

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i := 1; i < len(users); i++ {
		assert.LessOrEqual(t, users[i-1].LastName, users[i].LastName)
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	svc := services.NewUserService(testDB(t))

	_, err := svc.GetByID(uuid.New())
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserPartialUpdate(t *testing.T) {
	svc := services.NewUserService(testDB(t))
	created := createTestUser(t, svc)

	updated, err := svc.Update(created.ID, dto.UpdateUserRequest{
		Gender: strPtr("男性"),
	})
	require.NoError(t, err)

	// Only the patched field changed.
	assert.Equal(t, "男性", updated.Gender)
	assert.Equal(t, created.LastName, updated.LastName)
	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.BirthDate, updated.BirthDate)
	assert.Equal(t, []string{"高血圧"}, []string(updated.MedicalHistory))
}

func TestUserUpdateNotFound(t *testing.T) {
	svc := services.NewUserService(testDB(t))

	_, err := svc.Update(uuid.New(), dto.UpdateUserRequest{Gender: strPtr("男性")})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	svc := services.NewUserService(testDB(t))
	created := createTestUser(t, svc)

	require.NoError(t, svc.Delete(created.ID))

	_, err := svc.GetByID(created.ID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(created.ID), services.ErrUserNotFound)
}
