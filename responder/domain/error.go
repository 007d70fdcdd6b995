package domain

// DecodeError represents a request body that could not be decoded into a PredictionRequest.
// Its message is the one returned to the client.
type DecodeError struct {
	Cause error
}

// Error returns the error message, implementing the error interface.
func (e *DecodeError) Error() string {
	return "Invalid JSON: " + e.Cause.Error()
}

// Unwrap returns the decoder error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}
