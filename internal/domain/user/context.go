package user

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the authenticated user. The
// principal is scoped to a single request and never stored globally.
func NewContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the authenticated user for this request, if any.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*User)
	return u, ok && u != nil
}
