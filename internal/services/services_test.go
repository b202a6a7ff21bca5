package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ryoufit/ryoufit-backend/internal/dto"
	"github.com/ryoufit/ryoufit-backend/internal/models"
	"github.com/ryoufit/ryoufit-backend/internal/services"
)

// testDB opens an isolated in-memory database with the production schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Measurement{}))
	return db
}

func createTestUser(t *testing.T, svc *services.UserService) *models.User {
	t.Helper()
	user, err := svc.Create(dto.CreateUserRequest{
		LastName:       "佐藤",
		FirstName:      "花子",
		Gender:         "女性",
		BirthDate:      "1941-03-15",
		MedicalHistory: []string{"高血圧"},
	})
	require.NoError(t, err)
	return user
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }
