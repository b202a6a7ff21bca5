package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TrialPair holds the two raw readings of a paired-trial metric and the
// derived best value. Which trial is "best" depends on the metric: timed
// metrics (TUG, walking speed) take the lower reading, functional reach the
// higher one. Stored as a jsonb document, not flattened into columns.
type TrialPair struct {
	First  float64 `json:"first"`
	Second float64 `json:"second"`
	Best   float64 `json:"best"`
}

// Measurement is one assessment visit for a user. One conceptual record per
// user per date, enforced by the composite unique index.
type Measurement struct {
	ID              uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                      `gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:idx_measurements_user_date" json:"userId"`
	// Text column for the same reason as User.BirthDate: the wire and
	// display formats expect the plain ISO date, never a timestamp.
	MeasurementDate string                         `gorm:"column:measurement_date;type:varchar(10);not null;uniqueIndex:idx_measurements_user_date" json:"measurementDate"`
	Height          float64                        `gorm:"column:height" json:"height"`
	Weight          float64                        `gorm:"column:weight" json:"weight"`
	TUG             datatypes.JSONType[TrialPair]  `gorm:"column:tug;type:jsonb" json:"tug"`
	WalkingSpeed    datatypes.JSONType[TrialPair]  `gorm:"column:walking_speed;type:jsonb" json:"walkingSpeed"`
	FR              datatypes.JSONType[TrialPair]  `gorm:"column:fr;type:jsonb" json:"fr"`
	CS10            int                            `gorm:"column:cs10;default:0" json:"cs10"`
	BI              int                            `gorm:"column:bi;default:0" json:"bi"`
	Notes           string                         `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt       time.Time                      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time                      `gorm:"column:updated_at" json:"updatedAt"`
}
