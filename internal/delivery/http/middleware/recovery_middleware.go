package middleware

import (
	"net/http"
	"runtime/debug"

	"medical-scheduling-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

// Handle converts a panic into a generic 500. The stack is only logged.
func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID, _ := GetRequestIDFromContext(req.Context())
				m.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"panic":      rec,
					"stack":      string(debug.Stack()),
				}).Error("Recovered from panic")
				response.InternalServerError(w, "")
			}
		}()

		next.ServeHTTP(w, req)
	})
}
