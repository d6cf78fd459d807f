package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const SessionIDKey contextKey = "session_id"

// SessionHeader carries the anonymous browsing session between requests.
const SessionHeader = "X-Session-ID"

func SetSessionContext(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID.String())
}

func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(SessionIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	sessionStr, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(sessionStr)
	if err != nil {
		return uuid.Nil, false
	}

	return sessionID, true
}
