package infrastructure

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/semaphore"

	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
)

// PredictPath is the only route answering with predictions.
const PredictPath = "/api/predict"

// NewRouter routes POST /api/predict to predict, answers OPTIONS on any path
// as a CORS preflight and everything else with 404.
func NewRouter(predict http.Handler) *mux.Router {
	router := mux.NewRouter()
	router.Methods(http.MethodOptions).HandlerFunc(handlePreflight)
	router.Handle(PredictPath, predict).Methods(http.MethodPost)

	notFound := http.HandlerFunc(handleNotFound)
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound

	return router
}

func handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusOK)
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, CodeNotFound, "Not Found")
}

// NewHTTPHandler wires the predictor behind the router and the middleware chain.
// Requests are handled one at a time.
func NewHTTPHandler(service PredictionService, logger responderDomain.Logger, metrics *Metrics) http.Handler {
	router := NewRouter(NewPredictionHandler(service, logger, metrics))

	return Chain(router,
		RequestID(),
		AccessLog(logger, metrics),
		CORS(),
		PanicRecovery(logger),
		Serialize(semaphore.NewWeighted(1), logger),
	)
}
