// Package infrastructure provides the HTTP side of the mock responder.
//
// Key components:
//   - PredictionHandler: serves POST /api/predict
//   - NewRouter: routes predictions, CORS preflights and everything else
//   - Middleware: request ids, access log, CORS origin, panic recovery, request serialization
package infrastructure

import (
	"context"
	"errors"
	"io"
	"net/http"

	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
)

const maxBodyBytes = 32 << 20

// PredictionService defines the contract for answering prediction requests.
type PredictionService interface {
	Predict(ctx context.Context, req *responderDomain.PredictionRequest) (responderDomain.Result, error)
}

// PredictionHandler decodes prediction requests and writes the service's answer.
type PredictionHandler struct {
	service PredictionService
	logger  responderDomain.Logger
	metrics *Metrics
}

// ServeHTTP handles one prediction request.
//
// Status codes:
//   - 200: sampled prediction
//   - 400: undecodable body, or an injected failure
//   - 500: the service failed unexpectedly
func (h *PredictionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// net/http stops the body at Content-Length
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Error("unable to read request body: %s", err.Error())
		writeError(w, http.StatusBadRequest, CodeBadRequest, "unable to read request body: "+err.Error())
		return
	}

	req, err := DecodePredictionRequest(body)
	if err != nil {
		h.logger.Error("rejecting request: %s", err.Error())
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	h.logRequest(req)

	result, err := h.service.Predict(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			h.logger.Info("request cancelled by client")
		} else {
			h.logger.Error("error processing request: %s", err.Error())
		}
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal Server Error: "+err.Error())
		return
	}

	h.metrics.ObservePrediction(result.Variant)

	status := http.StatusOK
	if result.Variant == responderDomain.VariantError {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result.Body())
}

func (h *PredictionHandler) logRequest(req *responderDomain.PredictionRequest) {
	h.logger.Info("received prediction request: dataset_id=%s row_count=%d port=%s timestamp=%s data_points=%d",
		req.DatasetIDOrUnknown(),
		req.RowCountOrZero(),
		req.PortOrUnknown(),
		req.TimestampOrUnknown(),
		len(req.Data),
	)
}

// NewPredictionHandler creates a PredictionHandler answering with service.
func NewPredictionHandler(service PredictionService, logger responderDomain.Logger, metrics *Metrics) *PredictionHandler {
	return &PredictionHandler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}
