package infrastructure

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"

	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
)

var (
	errNegativeRowCount = errors.New("row_count must be a non-negative integer")
	errNotAnObject      = errors.New("request body must be a JSON object")
)

// DecodePredictionRequest decodes a request body.
// Syntax errors, type mismatches, a null body and a negative row_count are returned
// as *responderDomain.DecodeError.
func DecodePredictionRequest(body []byte) (*responderDomain.PredictionRequest, error) {
	// null unmarshals into a struct without error
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, &responderDomain.DecodeError{Cause: errNotAnObject}
	}

	var req responderDomain.PredictionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &responderDomain.DecodeError{Cause: err}
	}
	if req.RowCount != nil && *req.RowCount < 0 {
		return nil, &responderDomain.DecodeError{Cause: errNegativeRowCount}
	}
	return &req, nil
}
