package dto

// CreateUserRequest carries the fields of a new user record. lastName,
// firstName, gender and birthDate are mandatory; medicalHistory defaults to
// an empty list.
type CreateUserRequest struct {
	LastName       string   `json:"lastName"`
	FirstName      string   `json:"firstName"`
	Gender         string   `json:"gender"`
	BirthDate      string   `json:"birthDate"`
	MedicalHistory []string `json:"medicalHistory"`
}

// UpdateUserRequest is a partial patch: nil fields are left untouched in the
// stored record.
type UpdateUserRequest struct {
	LastName       *string   `json:"lastName"`
	FirstName      *string   `json:"firstName"`
	Gender         *string   `json:"gender"`
	BirthDate      *string   `json:"birthDate"`
	MedicalHistory *[]string `json:"medicalHistory"`
}
