package dto

// TrialPairInput carries the two raw readings of a paired metric as submitted
// by the measurement form. Best is optional; the server recomputes it from
// the trials regardless of what the client sent.
type TrialPairInput struct {
	First  *float64 `json:"first"`
	Second *float64 `json:"second"`
	Best   *float64 `json:"best"`
}

// CreateMeasurementRequest is the POST /measurements payload. userId and
// measurementDate are mandatory; cs10 and bi are optional and default to 0.
type CreateMeasurementRequest struct {
	UserID          string         `json:"userId"`
	MeasurementDate string         `json:"measurementDate"`
	Height          *float64       `json:"height"`
	Weight          *float64       `json:"weight"`
	TUG             TrialPairInput `json:"tug"`
	WalkingSpeed    TrialPairInput `json:"walkingSpeed"`
	FR              TrialPairInput `json:"fr"`
	CS10            *int           `json:"cs10"`
	BI              *int           `json:"bi"`
	Notes           string         `json:"notes"`
}

// UpdateMeasurementRequest is a partial patch; in practice the results table
// PUTs only {"bi": n}, but every non-identity field is patchable. Nil fields
// are left untouched.
type UpdateMeasurementRequest struct {
	MeasurementDate *string         `json:"measurementDate"`
	Height          *float64        `json:"height"`
	Weight          *float64        `json:"weight"`
	TUG             *TrialPairInput `json:"tug"`
	WalkingSpeed    *TrialPairInput `json:"walkingSpeed"`
	FR              *TrialPairInput `json:"fr"`
	CS10            *int            `json:"cs10"`
	BI              *int            `json:"bi"`
	Notes           *string         `json:"notes"`
}
