package middleware

import "context"

type contextKey string

const ctxUserEmail contextKey = "user_email"

// UserEmailFromContext returns the verified session email, or "" on unguarded routes.
func UserEmailFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxUserEmail)
}

// WithUserEmail injects the verified identity; tests use it to stand in for SessionAuth.
func WithUserEmail(ctx context.Context, email string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserEmail, email)
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
