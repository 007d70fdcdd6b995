package domain

// Failure is one entry of the table injected failures are drawn from.
type Failure struct {
	Code    string
	Message string
	Details string
}

// Response returns the failure as a response body.
func (f Failure) Response() *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetails{Code: f.Code, Message: f.Message, Details: f.Details},
	}
}

// DefaultFailures returns the injected failure table.
func DefaultFailures() []Failure {
	return []Failure{
		{Code: "INVALID_DATA", Message: "Dataset contains invalid values", Details: "Row 42 has null value"},
		{Code: "MODEL_ERROR", Message: "Prediction model failed", Details: "Insufficient data quality"},
		{Code: "TIMEOUT", Message: "Processing timeout", Details: "Model took too long to respond"},
		{Code: "VALIDATION_ERROR", Message: "Data validation failed", Details: "Expected at least 100 data points"},
	}
}

// Range is a closed interval of floats.
type Range struct {
	Min float64
	Max float64
}

// PredictionProfile holds the ranges successful predictions are sampled from.
type PredictionProfile struct {
	Probability         Range
	Confidence          Range
	ProcessingTimeMinMS int
	ProcessingTimeMaxMS int
	ModelVersion        string
}

// DefaultProfile returns the ranges the client under test expects.
func DefaultProfile() PredictionProfile {
	return PredictionProfile{
		Probability:         Range{Min: 0.65, Max: 0.95},
		Confidence:          Range{Min: 0.85, Max: 0.99},
		ProcessingTimeMinMS: 800,
		ProcessingTimeMaxMS: 2500,
		ModelVersion:        "1.0.0",
	}
}
