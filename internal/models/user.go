package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is a registered care recipient. The gorm column tags and the json tags
// together form the one authoritative camelCase<->snake_case mapping for the
// entity; nothing else in the codebase renames user fields.
type User struct {
	ID             uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	LastName       string                       `gorm:"column:last_name;size:100;not null" json:"lastName"`
	FirstName      string                       `gorm:"column:first_name;size:100;not null" json:"firstName"`
	Gender         string                       `gorm:"column:gender;size:20;not null" json:"gender"`
	// Calendar dates stay ISO "2006-01-02" strings end to end. The column is
	// text on purpose: a date column comes back from the postgres driver as
	// time.Time and would round-trip as an RFC3339 timestamp.
	BirthDate      string                       `gorm:"column:birth_date;type:varchar(10);not null" json:"birthDate"`
	MedicalHistory datatypes.JSONSlice[string] `gorm:"column:medical_history;type:jsonb" json:"medicalHistory"`
	CreatedAt      time.Time                    `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt      time.Time                    `gorm:"column:updated_at" json:"updatedAt"`
}
