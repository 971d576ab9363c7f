package middleware

import "context"

type sessionKey struct{}

// Session is the authenticated caller of one request.
type Session struct {
	UserID string
	Role   string
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
