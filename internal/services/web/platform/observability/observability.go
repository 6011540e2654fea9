// Package observability provides HTTP access logging for the web service.
package observability

import (
	"net/http"
	"time"

	"github.com/descilaunch/launchpad-web/internal/services/web/platform/httpx"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request with method, path, status, bytes,
// latency and request id. A nil logger falls back to the logrus standard
// logger.
func RequestLogger(logger logrus.FieldLogger) httpx.Middleware {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)

			requestID := httpx.RequestIDFrom(r)
			if requestID == "" {
				requestID = "-"
			}
			entry := logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     recorder.Status(),
				"bytes":      recorder.bytes,
				"latency":    time.Since(start).Round(time.Microsecond).String(),
				"request_id": requestID,
				"htmx":       httpx.IsHTMXRequest(r),
			})
			switch status := recorder.Status(); {
			case status >= http.StatusInternalServerError:
				entry.Error("http request")
			case status >= http.StatusBadRequest:
				entry.Warn("http request")
			default:
				entry.Info("http request")
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(status int) {
	if s.status == 0 {
		s.status = status
	}
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Write(payload []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(payload)
	s.bytes += n
	return n, err
}

// Status returns the written status, defaulting to 200.
func (s *statusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
