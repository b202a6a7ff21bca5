package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ryoufit/ryoufit-backend/internal/dto"
	"github.com/ryoufit/ryoufit-backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserService owns all store access for user records. It is the only seam
// between the camelCase domain shape and the snake_case schema; the mapping
// itself lives in the model's struct tags.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns all users ordered by family name.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("last_name ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		if users[i].MedicalHistory == nil {
			users[i].MedicalHistory = []string{}
		}
	}
	return users, nil
}

// GetByID returns the user or ErrUserNotFound. Absence is a value here, not
// a store failure.
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user.MedicalHistory == nil {
		user.MedicalHistory = []string{}
	}
	return &user, nil
}

// Create inserts a new user. The caller validates required fields; this
// layer only assigns identity and normalizes the history list.
func (s *UserService) Create(req dto.CreateUserRequest) (*models.User, error) {
	history := req.MedicalHistory
	if history == nil {
		history = []string{}
	}

	user := models.User{
		ID:             uuid.New(),
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		Gender:         req.Gender,
		BirthDate:      req.BirthDate,
		MedicalHistory: history,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Update patches only the fields present in the request and returns the
// refreshed record. Missing id is ErrUserNotFound.
func (s *UserService) Update(id uuid.UUID, req dto.UpdateUserRequest) (*models.User, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if req.MedicalHistory != nil {
		history := *req.MedicalHistory
		if history == nil {
			history = []string{}
		}
		updates["medical_history"] = datatypes.NewJSONSlice(history)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return s.GetByID(id)
}

// Delete removes the user. Measurements are deliberately left in place;
// there is no cascade.
func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
