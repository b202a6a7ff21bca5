package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

// ChartPoint is one visit on the trend chart: the five tracked metrics plus
// the unpadded display date used as the axis label. Points are returned
// oldest first.
type ChartPoint struct {
	MeasurementDate string  `json:"measurementDate"`
	Label           string  `json:"label"`
	TUG             float64 `json:"tug"`
	WalkingSpeed    float64 `json:"walkingSpeed"`
	FR              float64 `json:"fr"`
	CS10            int     `json:"cs10"`
	BI              int     `json:"bi"`
}

type ChartResponse struct {
	UserID string       `json:"userId"`
	Points []ChartPoint `json:"points"`
}
