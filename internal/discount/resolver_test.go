package discount

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/session"
	"storefront/internal/stub"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()

	server := stub.New("test-secret", time.Hour, nil)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	cfg := config.Config{
		APIBaseURL:     ts.URL,
		RequestTimeout: 5 * time.Second,
		RetryAttempts:  3,
		RetryDelay:     time.Millisecond,
	}
	client := api.New(cfg, session.NewStore(), nil)
	return NewResolver(client, nil)
}

func TestResolvePercentageCodeWithCap(t *testing.T) {
	r := newResolver(t)

	// SAVE10 is seeded as 10% with a 15 cap and minimum order 50.
	applied, err := r.Resolve(context.Background(), "SAVE10", 200)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if applied.Code != "SAVE10" {
		t.Fatalf("unexpected code %q", applied.Code)
	}
	if applied.Amount != 15 {
		t.Fatalf("expected amount clamped to 15, got %v", applied.Amount)
	}
}

func TestResolveFixedCode(t *testing.T) {
	r := newResolver(t)

	applied, err := r.Resolve(context.Background(), "FLAT500", 200)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if applied.Amount != 500 {
		t.Fatalf("expected fixed amount 500 uncapped by subtotal, got %v", applied.Amount)
	}
}

func TestResolveUnknownCode(t *testing.T) {
	r := newResolver(t)

	if _, err := r.Resolve(context.Background(), "NOPE", 200); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestResolveInactiveCode(t *testing.T) {
	r := newResolver(t)

	// OLDCODE exists but isActive is false.
	if _, err := r.Resolve(context.Background(), "OLDCODE", 200); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode for inactive code, got %v", err)
	}
}

func TestResolveMinimumOrderGate(t *testing.T) {
	r := newResolver(t)

	_, err := r.Resolve(context.Background(), "SAVE10", 40)
	var minErr *MinimumOrderError
	if !errors.As(err, &minErr) {
		t.Fatalf("expected MinimumOrderError, got %v", err)
	}
	if minErr.Minimum != 50 {
		t.Fatalf("expected minimum 50 in error, got %v", minErr.Minimum)
	}
	if !strings.Contains(minErr.Error(), "50.00") {
		t.Fatalf("error message must include the minimum amount, got %q", minErr.Error())
	}
}

func TestResolveEmptyCode(t *testing.T) {
	r := newResolver(t)

	for _, code := range []string{"", "   "} {
		if _, err := r.Resolve(context.Background(), code, 200); !errors.Is(err, ErrEmptyCode) {
			t.Fatalf("expected ErrEmptyCode for %q, got %v", code, err)
		}
	}
}
