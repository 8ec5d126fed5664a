package testutil

import (
	"net/http"
	"time"

	"fastdrc/pkg/requestcontext"
)

// WithSession attaches a message session with a known referentienummer, as
// the session middleware would.
func WithSession(req *http.Request, referentienummer string) (*http.Request, *requestcontext.MessageSession) {
	session := requestcontext.NewSession(referentienummer)
	ctx := requestcontext.WithSession(req.Context(), session)
	return req.WithContext(ctx), session
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
