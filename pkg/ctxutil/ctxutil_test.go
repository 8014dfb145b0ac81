package ctxutil

import (
	"context"
	"testing"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-42")

	if got := RequestIDFromCtx(ctx); got != "req-42" {
		t.Fatalf("expected %q, got %q", "req-42", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestClientIPFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithClientIP(context.Background(), "203.0.113.7")
	if got := ClientIPFromCtx(ctx); got != "203.0.113.7" {
		t.Fatalf("expected %q, got %q", "203.0.113.7", got)
	}

	if got := ClientIPFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestContextValuesAreIndependent(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "abc")
	ctx = WithClientIP(ctx, "10.0.0.1")

	if RequestIDFromCtx(ctx) != "abc" {
		t.Error("request id lost after storing client ip")
	}
	if ClientIPFromCtx(ctx) != "10.0.0.1" {
		t.Error("client ip not stored")
	}
}
