package middleware

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type contextKey string

const (
	visitorIDKey contextKey = "visitorID"
	adminKey     contextKey = "admin"
)

var errNoVisitor = errors.New("no visitor")

// ContextWithVisitorID returns a new context with the given visitor ID set.
// This is intended for use in tests and middleware.
func ContextWithVisitorID(ctx context.Context, visitorID uuid.UUID) context.Context {
	return context.WithValue(ctx, visitorIDKey, visitorID)
}

func GetVisitorIDFromContext(ctx context.Context) (uuid.UUID, error) {
	v := ctx.Value(visitorIDKey)
	if v == nil {
		return uuid.Nil, errNoVisitor
	}

	switch id := v.(type) {
	case uuid.UUID:
		return id, nil
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, errNoVisitor
		}
		return parsed, nil
	default:
		return uuid.Nil, errNoVisitor
	}
}

func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(adminKey).(bool)
	return v
}
