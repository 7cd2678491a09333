package requestid

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

const Header = "X-Request-ID"

func WithCtx(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func FromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
