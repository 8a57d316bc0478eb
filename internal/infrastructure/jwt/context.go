package jwt

import "context"

type ctxKey struct{}

// NewContext attaches the verified claims of the presented token to the
// request context so logout can revoke exactly that token.
func NewContext(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok && c != nil
}
