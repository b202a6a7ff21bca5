package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ryoufit/ryoufit-backend/internal/assess"
	"github.com/ryoufit/ryoufit-backend/internal/dto"
	"github.com/ryoufit/ryoufit-backend/internal/models"
)

var (
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrDuplicateDate       = errors.New("a measurement already exists for this user and date")
)

// DefaultLatestLimit is how many recent visits the latest-mode listing and
// the trend chart cover when no limit is given.
const DefaultLatestLimit = 4

// MeasurementService owns all store access for assessment records.
type MeasurementService struct {
	db *gorm.DB
}

func NewMeasurementService(db *gorm.DB) *MeasurementService {
	return &MeasurementService{db: db}
}

// List returns every measurement, newest visit first.
func (s *MeasurementService) List() ([]models.Measurement, error) {
	var ms []models.Measurement
	if err := s.db.Order("measurement_date DESC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	return ms, nil
}

// GetByID returns the measurement or ErrMeasurementNotFound.
func (s *MeasurementService) GetByID(id uuid.UUID) (*models.Measurement, error) {
	var m models.Measurement
	err := s.db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMeasurementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch measurement: %w", err)
	}
	return &m, nil
}

// ListByUser returns all of a user's measurements, newest visit first.
func (s *MeasurementService) ListByUser(userID uuid.UUID) ([]models.Measurement, error) {
	var ms []models.Measurement
	err := s.db.Where("user_id = ?", userID).Order("measurement_date DESC").Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements for user: %w", err)
	}
	return ms, nil
}

// LatestByUser returns the limit most recent visits re-sorted oldest first,
// which is the order the results table and chart render in.
func (s *MeasurementService) LatestByUser(userID uuid.UUID, limit int) ([]models.Measurement, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	var ms []models.Measurement
	err := s.db.Where("user_id = ?", userID).
		Order("measurement_date DESC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list latest measurements: %w", err)
	}
	sort.Slice(ms, func(i, j int) bool {
		return ms[i].MeasurementDate < ms[j].MeasurementDate
	})
	return ms, nil
}

// Create inserts a new visit. Best values are recomputed server-side from
// the raw trials; whatever the client precomputed is discarded. A second
// visit on the same date for the same user is ErrDuplicateDate.
func (s *MeasurementService) Create(userID uuid.UUID, req dto.CreateMeasurementRequest) (*models.Measurement, error) {
	m := models.Measurement{
		ID:              uuid.New(),
		UserID:          userID,
		MeasurementDate: req.MeasurementDate,
		Height:          floatOrZero(req.Height),
		Weight:          floatOrZero(req.Weight),
		TUG:             datatypes.NewJSONType(pairFromInput(req.TUG, true)),
		WalkingSpeed:    datatypes.NewJSONType(pairFromInput(req.WalkingSpeed, true)),
		FR:              datatypes.NewJSONType(pairFromInput(req.FR, false)),
		CS10:            intOrZero(req.CS10),
		BI:              clampBI(intOrZero(req.BI)),
		Notes:           req.Notes,
	}

	if err := s.db.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("failed to create measurement: %w", err)
	}
	return &m, nil
}

// Update patches only the fields present in the request. Touching a trial
// pair recomputes its best value; a failed write always propagates, it is
// never papered over with stale data.
func (s *MeasurementService) Update(id uuid.UUID, req dto.UpdateMeasurementRequest) (*models.Measurement, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.MeasurementDate != nil {
		updates["measurement_date"] = *req.MeasurementDate
	}
	if req.Height != nil {
		updates["height"] = *req.Height
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.TUG != nil {
		updates["tug"] = datatypes.NewJSONType(pairFromInput(*req.TUG, true))
	}
	if req.WalkingSpeed != nil {
		updates["walking_speed"] = datatypes.NewJSONType(pairFromInput(*req.WalkingSpeed, true))
	}
	if req.FR != nil {
		updates["fr"] = datatypes.NewJSONType(pairFromInput(*req.FR, false))
	}
	if req.CS10 != nil {
		updates["cs10"] = *req.CS10
	}
	if req.BI != nil {
		updates["bi"] = clampBI(*req.BI)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		err := s.db.Model(&models.Measurement{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicateDate
			}
			return nil, fmt.Errorf("failed to update measurement: %w", err)
		}
	}

	return s.GetByID(id)
}

// Delete removes the measurement or returns ErrMeasurementNotFound.
func (s *MeasurementService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&models.Measurement{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete measurement: %w", err)
	}
	return nil
}

// ChartPoints derives the trend-chart series for a user's latest visits,
// oldest first, with unpadded display dates as axis labels.
func (s *MeasurementService) ChartPoints(userID uuid.UUID, limit int) ([]dto.ChartPoint, error) {
	ms, err := s.LatestByUser(userID, limit)
	if err != nil {
		return nil, err
	}
	points := make([]dto.ChartPoint, len(ms))
	for i, m := range ms {
		points[i] = dto.ChartPoint{
			MeasurementDate: m.MeasurementDate,
			Label:           assess.FormatDate(m.MeasurementDate),
			TUG:             m.TUG.Data().Best,
			WalkingSpeed:    m.WalkingSpeed.Data().Best,
			FR:              m.FR.Data().Best,
			CS10:            m.CS10,
			BI:              m.BI,
		}
	}
	return points, nil
}

// pairFromInput turns raw form trials into the stored pair. An absent trial
// counts as missing for best-value selection but is stored as 0.
func pairFromInput(in dto.TrialPairInput, lowerIsBetter bool) models.TrialPair {
	first, second := math.NaN(), math.NaN()
	if in.First != nil {
		first = *in.First
	}
	if in.Second != nil {
		second = *in.Second
	}
	best := assess.CalculateBestValue(first, second, lowerIsBetter)
	return models.TrialPair{
		First:  zeroIfNaN(first),
		Second: zeroIfNaN(second),
		Best:   best,
	}
}

// clampBI keeps the Barthel Index inside its 0-100 scale.
func clampBI(bi int) int {
	if bi < 0 {
		return 0
	}
	if bi > 100 {
		return 100
	}
	return bi
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func zeroIfNaN(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}
