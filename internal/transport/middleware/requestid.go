package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/ops-dashboard/pkg/logger"
)

const TraceHeader = "X-Trace-ID"

// TraceID propagates X-Trace-ID, minting one when the caller sent none, and adds it to the
// request logger.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "trace_id", traceID)
		w.Header().Set(TraceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
