package middleware

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

var requestCount int64

// RequestCount reports how many requests have been served so far
func RequestCount() int64 {
	return atomic.LoadInt64(&requestCount)
}

// statusRecorder captures the status code and body size written downstream
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// RequestLogger records request and response metadata for every call,
// independent of the authorization gate
func RequestLogger(log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&requestCount, 1)
			requestID := uuid.NewString()
			start := time.Now()

			log.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"url":        r.URL.Path,
				"ip":         r.RemoteAddr,
			}).Info("Request")

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"request_id": requestID,
				"status":     rec.status,
				"bytes":      rec.bytes,
				"duration":   time.Since(start).String(),
			}).Info("Response")
		})
	}
}
