package infrastructure

import (
	"context"
	"fmt"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
)

// RequestIDHeader carries the id assigned to every request.
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with middlewares; the first one is the outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RequestIDFromContext returns the id assigned by RequestID, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID assigns a request id, reusing the caller's X-Request-Id when present.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

// AccessLog records every response in metrics and logs the ones that are not 200.
func AccessLog(logger responderDomain.Logger, metrics *Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			metrics.ObserveResponse(m.Code, m.Duration)
			if m.Code != http.StatusOK {
				logger.Info("%s %s -> %d in %s, request_id=%s",
					r.Method, r.URL.Path, m.Code, m.Duration, RequestIDFromContext(r.Context()),
				)
			}
		})
	}
}

// CORS opens every response to any origin.
func CORS() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			next.ServeHTTP(w, r)
		})
	}
}

// PanicRecovery converts a panic into a 500 response carrying the panic message.
func PanicRecovery(logger responderDomain.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic in handler %s %s. Panic: %v", r.Method, r.URL.Path, rec)
					writeError(w, http.StatusInternalServerError, CodeInternal, fmt.Sprintf("Internal Server Error: %v", rec))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Serialize admits requests one at a time through sem.
// A request whose context ends while queued is answered with 503.
func Serialize(sem *semaphore.Weighted, logger responderDomain.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sem.Acquire(r.Context(), 1); err != nil {
				logger.Info("request dropped while queued: %s", err.Error())
				writeError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "request cancelled while queued")
				return
			}
			defer sem.Release(1)

			next.ServeHTTP(w, r)
		})
	}
}
