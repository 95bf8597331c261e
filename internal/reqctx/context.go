package reqctx

import "context"

type ctxKey string

const keyRID ctxKey = "chat_rid"

// WithRID stores a correlation id for chat logs.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, keyRID, rid)
}

// RID returns the correlation id if present.
func RID(ctx context.Context) string {
	v, _ := ctx.Value(keyRID).(string)
	return v
}
