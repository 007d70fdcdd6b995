package domain

const unknown = "unknown"

// DataPoint is one captured sensor frame forwarded by the client.
type DataPoint struct {
	Index     uint32  `json:"index"`
	Timestamp float64 `json:"timestamp"`
	Value     float64 `json:"value"`
}

// RequestMetadata describes how the client captured the dataset.
type RequestMetadata struct {
	Port                 *string `json:"port"`
	BaudRate             *uint32 `json:"baud_rate"`
	CollectionDurationMS *uint64 `json:"collection_duration_ms"`
}

// PredictionRequest is the body of POST /api/predict.
// Every field is optional; absent fields fall back to placeholders when read.
// A present row_count must not be negative.
type PredictionRequest struct {
	DatasetID *string          `json:"dataset_id"`
	RowCount  *int64           `json:"row_count"`
	Timestamp *string          `json:"timestamp"`
	Data      []DataPoint      `json:"data"`
	Metadata  *RequestMetadata `json:"metadata"`
}

// DatasetIDOrUnknown returns the dataset id, or "unknown" when it is absent.
func (r *PredictionRequest) DatasetIDOrUnknown() string {
	if r == nil || r.DatasetID == nil {
		return unknown
	}
	return *r.DatasetID
}

// RowCountOrZero returns the declared row count, or 0 when it is absent.
func (r *PredictionRequest) RowCountOrZero() int64 {
	if r == nil || r.RowCount == nil {
		return 0
	}
	return *r.RowCount
}

// TimestampOrUnknown returns the client timestamp, or "unknown" when it is absent.
func (r *PredictionRequest) TimestampOrUnknown() string {
	if r == nil || r.Timestamp == nil {
		return unknown
	}
	return *r.Timestamp
}

// PortOrUnknown returns the serial port the dataset came from, or "unknown".
func (r *PredictionRequest) PortOrUnknown() string {
	if r == nil || r.Metadata == nil || r.Metadata.Port == nil {
		return unknown
	}
	return *r.Metadata.Port
}

// ResponseMetadata describes the synthetic model run.
type ResponseMetadata struct {
	ModelVersion     string `json:"model_version"`
	ProcessingTimeMS int    `json:"processing_time_ms"`
}

// SuccessResponse is the body returned with HTTP 200.
type SuccessResponse struct {
	Success     bool             `json:"success"`
	DatasetID   string           `json:"dataset_id"`
	Probability float64          `json:"probability"`
	Confidence  float64          `json:"confidence"`
	ProcessedAt string           `json:"processed_at"`
	Metadata    ResponseMetadata `json:"metadata"`
}

// ErrorDetails carries the failure code and its description.
type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse is the body of every non-success answer.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   ErrorDetails `json:"error"`
}

// NewErrorResponse builds an ErrorResponse without details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetails{Code: code, Message: message}}
}
