package browser

import "context"

type clientContextKey struct{}

// SetClientToContext stores a classification result in the context.
func SetClientToContext(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, clientContextKey{}, c)
}

// ClientFromContext retrieves the classification result stored by the
// middleware. It returns nil when classification did not run or found
// nothing.
func ClientFromContext(ctx context.Context) *Client {
	c, _ := ctx.Value(clientContextKey{}).(*Client)
	return c
}
