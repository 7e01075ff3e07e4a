package middlewares

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestID attaches a request id to the context, reusing the client's
// X-Request-Id header when present.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.ContextRequestIDKey, requestID)
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID, _ := r.Context().Value(constvars.ContextRequestIDKey).(string)

		m.Log.Info("API request started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
		)

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.Log.Info("API request completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Bool(constvars.LoggingSuccessKey, rec.statusCode < 400),
		)
	})
}

// ErrorHandler converts panics anywhere below into a JSON error response.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
