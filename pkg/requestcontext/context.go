// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; converters read them. Keeping this package free of
// net/http lets the translator import it without pulling in transport code.
//
// Usage in converters:
//
//	sess := requestcontext.Session(ctx)
//	sess.SetFunctie("GeefLijstZaakdocumenten")
//	now := requestcontext.Now(ctx)
//
// Usage in tests:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithSession(ctx, requestcontext.NewSession("ref-1"))
package requestcontext

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Context key types (unexported for encapsulation).
type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	sessionKey     struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
	ContextKeySession     = sessionKey{}
)

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// -----------------------------------------------------------------------------
// Request time
// -----------------------------------------------------------------------------

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (for non-HTTP contexts like tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}

// -----------------------------------------------------------------------------
// Message session
// -----------------------------------------------------------------------------

// MessageSession is the bookkeeping for one StUF exchange: the reference number
// stamped on the reply plus the function and kenmerk the converter records for
// logging. Converters mutate it; middleware reads it after the handler returns.
type MessageSession struct {
	mu               sync.Mutex
	referentienummer string
	functie          string
	kenmerk          string
}

// NewSession creates a session with the given reference number. An empty
// reference gets a random one.
func NewSession(referentienummer string) *MessageSession {
	if referentienummer == "" {
		referentienummer = uuid.NewString()
	}
	return &MessageSession{referentienummer: referentienummer}
}

func (s *MessageSession) Referentienummer() string {
	return s.referentienummer
}

func (s *MessageSession) SetFunctie(functie string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.functie = functie
}

func (s *MessageSession) Functie() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.functie
}

func (s *MessageSession) SetKenmerk(kenmerk string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kenmerk = kenmerk
}

func (s *MessageSession) Kenmerk() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kenmerk
}

// Session retrieves the message session. Contexts without one (tests, tools)
// get a fresh detached session so callers never nil-check.
func Session(ctx context.Context) *MessageSession {
	if s, ok := ctx.Value(ContextKeySession).(*MessageSession); ok && s != nil {
		return s
	}
	return NewSession("")
}

// WithSession injects a message session into the context.
func WithSession(ctx context.Context, s *MessageSession) context.Context {
	return context.WithValue(ctx, ContextKeySession, s)
}
