package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// RequestData carries per-request identity resolved by the auth middleware.
type RequestData struct {
	AgentID uuid.UUID
}

type requestDataKey struct{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, _ := ctx.Value(requestDataKey{}).(*RequestData)
	return rd
}
