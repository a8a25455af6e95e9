package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "sessionID", SessionIDCtxKey.String())
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetSessionIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "present", ctx: WithSessionID(context.Background(), "sid"), want: "sid", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithSessionID(context.Background(), "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), SessionIDCtxKey, 42)},
		{name: "different key", ctx: context.WithValue(context.Background(), contextKey("other"), "sid")},
		{name: "plain string key does not collide", ctx: context.WithValue(context.Background(), "sessionID", "sid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetSessionIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	got, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "trace-1"))
	assert.True(t, ok)
	assert.Equal(t, "trace-1", got)

	_, ok = GetTraceIDFromContext(context.Background())
	assert.False(t, ok)
}
