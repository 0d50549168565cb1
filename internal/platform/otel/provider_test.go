package otel

import (
	"context"
	"testing"
)

func TestSetupIsNoopWithoutEndpoint(t *testing.T) {
	t.Setenv("HAATBAZAR_OTEL_ENDPOINT", "")

	shutdown, err := Setup(context.Background(), "storefront")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}

func TestSetupIsNoopWhenDisabled(t *testing.T) {
	t.Setenv("HAATBAZAR_OTEL_ENABLED", "false")
	t.Setenv("HAATBAZAR_OTEL_ENDPOINT", "http://localhost:4318")

	shutdown, err := Setup(context.Background(), "storefront")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}
