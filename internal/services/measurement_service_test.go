package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryoufit/ryoufit-backend/internal/dto"
	"github.com/ryoufit/ryoufit-backend/internal/models"
	"github.com/ryoufit/ryoufit-backend/internal/services"
)

func measurementRequest(date string) dto.CreateMeasurementRequest {
	return dto.CreateMeasurementRequest{
		MeasurementDate: date,
		Height:          floatPtr(148),
		Weight:          floatPtr(60.5),
		TUG:             dto.TrialPairInput{First: floatPtr(8.2), Second: floatPtr(7.9)},
		WalkingSpeed:    dto.TrialPairInput{First: floatPtr(5.1), Second: floatPtr(5.6)},
		FR:              dto.TrialPairInput{First: floatPtr(24.5), Second: floatPtr(28.0)},
		CS10:            intPtr(12),
		BI:              intPtr(85),
		Notes:           "初回測定",
	}
}

func TestMeasurementCreateRoundTrip(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	created, err := svc.Create(user.ID, measurementRequest("2026-08-01"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "2026-08-01", got.MeasurementDate)
	assert.Equal(t, 148.0, got.Height)
	assert.Equal(t, 60.5, got.Weight)
	assert.Equal(t, models.TrialPair{First: 8.2, Second: 7.9, Best: 7.9}, got.TUG.Data())
	assert.Equal(t, models.TrialPair{First: 5.1, Second: 5.6, Best: 5.1}, got.WalkingSpeed.Data())
	assert.Equal(t, models.TrialPair{First: 24.5, Second: 28.0, Best: 28.0}, got.FR.Data())
	assert.Equal(t, 12, got.CS10)
	assert.Equal(t, 85, got.BI)
	assert.Equal(t, "初回測定", got.Notes)
}

func TestMeasurementCreateRecomputesBest(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	// The client sent a wrong best for a lower-is-better metric; the stored
	// value must come from the trials, not the payload.
	req := measurementRequest("2026-08-01")
	req.TUG.Best = floatPtr(99)
	req.WalkingSpeed.Best = floatPtr(99)

	created, err := svc.Create(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 7.9, created.TUG.Data().Best)
	assert.Equal(t, 5.1, created.WalkingSpeed.Data().Best)
}

func TestMeasurementCreateMissingTrialFallsBack(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	req := measurementRequest("2026-08-01")
	req.TUG = dto.TrialPairInput{Second: floatPtr(9.1)}
	req.FR = dto.TrialPairInput{}

	created, err := svc.Create(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.TrialPair{First: 0, Second: 9.1, Best: 9.1}, created.TUG.Data())
	assert.Equal(t, models.TrialPair{}, created.FR.Data())
}

func TestMeasurementDuplicateDate(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	_, err := svc.Create(user.ID, measurementRequest("2026-08-01"))
	require.NoError(t, err)

	_, err = svc.Create(user.ID, measurementRequest("2026-08-01"))
	assert.ErrorIs(t, err, services.ErrDuplicateDate)

	// A different date for the same user is fine.
	_, err = svc.Create(user.ID, measurementRequest("2026-08-08"))
	assert.NoError(t, err)
}

func TestMeasurementBIClamped(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	req := measurementRequest("2026-08-01")
	req.BI = intPtr(250)
	created, err := svc.Create(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 100, created.BI)
}

func TestMeasurementPartialUpdateIdempotent(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	created, err := svc.Create(user.ID, measurementRequest("2026-08-01"))
	require.NoError(t, err)

	patch := dto.UpdateMeasurementRequest{BI: intPtr(80)}
	first, err := svc.Update(created.ID, patch)
	require.NoError(t, err)
	second, err := svc.Update(created.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, 80, first.BI)
	assert.Equal(t, 80, second.BI)

	// Nothing besides bi (and updated_at) moved.
	assert.Equal(t, created.MeasurementDate, second.MeasurementDate)
	assert.Equal(t, created.Height, second.Height)
	assert.Equal(t, created.Weight, second.Weight)
	assert.Equal(t, created.TUG.Data(), second.TUG.Data())
	assert.Equal(t, created.WalkingSpeed.Data(), second.WalkingSpeed.Data())
	assert.Equal(t, created.FR.Data(), second.FR.Data())
	assert.Equal(t, created.CS10, second.CS10)
	assert.Equal(t, created.Notes, second.Notes)
}

func TestMeasurementUpdateRecomputesTouchedPair(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	created, err := svc.Create(user.ID, measurementRequest("2026-08-01"))
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, dto.UpdateMeasurementRequest{
		FR: &dto.TrialPairInput{First: floatPtr(30), Second: floatPtr(26)},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TrialPair{First: 30, Second: 26, Best: 30}, updated.FR.Data())
	// Untouched pair preserved.
	assert.Equal(t, created.TUG.Data(), updated.TUG.Data())
}

func TestMeasurementLatestByUser(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	for _, date := range []string{"2026-05-01", "2026-06-01", "2026-07-01", "2026-08-01"} {
		_, err := svc.Create(user.ID, measurementRequest(date))
		require.NoError(t, err)
	}

	latest, err := svc.LatestByUser(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	// The two most recent visits, oldest of the two first.
	assert.Equal(t, "2026-07-01", latest[0].MeasurementDate)
	assert.Equal(t, "2026-08-01", latest[1].MeasurementDate)

	// Zero limit falls back to the default window.
	latest, err = svc.LatestByUser(user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, latest, services.DefaultLatestLimit)
}

func TestMeasurementListByUserNewestFirst(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	for _, date := range []string{"2026-05-01", "2026-07-01", "2026-06-01"} {
		_, err := svc.Create(user.ID, measurementRequest(date))
		require.NoError(t, err)
	}

	ms, err := svc.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, ms, 3)
	assert.Equal(t, "2026-07-01", ms[0].MeasurementDate)
	assert.Equal(t, "2026-05-01", ms[2].MeasurementDate)
}

func TestUserDeleteDoesNotCascade(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	created, err := svc.Create(user.ID, measurementRequest("2026-08-01"))
	require.NoError(t, err)

	require.NoError(t, users.Delete(user.ID))

	// Documented current behavior: the measurement survives as a dangling
	// reference; nothing cascades.
	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
}

func TestChartPoints(t *testing.T) {
	db := testDB(t)
	users := services.NewUserService(db)
	svc := services.NewMeasurementService(db)
	user := createTestUser(t, users)

	for _, date := range []string{"2026-07-01", "2026-08-01"} {
		_, err := svc.Create(user.ID, measurementRequest(date))
		require.NoError(t, err)
	}

	points, err := svc.ChartPoints(user.ID, 4)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "2026-07-01", points[0].MeasurementDate)
	assert.Equal(t, "2026/7/1", points[0].Label)
	assert.Equal(t, 7.9, points[0].TUG)
	assert.Equal(t, 5.1, points[0].WalkingSpeed)
	assert.Equal(t, 28.0, points[0].FR)
	assert.Equal(t, 12, points[0].CS10)
	assert.Equal(t, 85, points[0].BI)
	assert.Equal(t, "2026/8/1", points[1].Label)
}
