package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/session"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		APIBaseURL:     baseURL,
		RequestTimeout: 5 * time.Second,
		RetryAttempts:  3,
		RetryDelay:     time.Millisecond,
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	store := session.NewStore()
	return New(testConfig(ts.URL), store, nil), store
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnauthorized, KindAuthRequired},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}

	for _, tt := range tests {
		status := tt.status
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		}))

		_, err := client.GetDiscountCode(context.Background(), "ANY")
		if !IsKind(err, tt.kind) {
			t.Fatalf("status %d: expected kind %q, got %v", tt.status, tt.kind, err)
		}
	}
}

func TestNetworkErrorClassification(t *testing.T) {
	store := session.NewStore()
	client := New(testConfig("http://127.0.0.1:1"), store, nil)

	_, err := client.GetDiscountCode(context.Background(), "ANY")
	if !IsKind(err, KindNetwork) {
		t.Fatalf("expected network kind, got %v", err)
	}
}

func TestFetchCartRetriesTransientFailures(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()

		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(CartResponse{ID: "cart-1"})
	}))
	store.SetTokens("token", "")

	resp, err := client.FetchCart(context.Background())
	if err != nil {
		t.Fatalf("expected third attempt to succeed, got %v", err)
	}
	if resp.ID != "cart-1" {
		t.Fatalf("unexpected cart response: %+v", resp)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestFetchCartGivesUpAfterAttempts(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	store.SetTokens("token", "")

	if _, err := client.FetchCart(context.Background()); !IsKind(err, KindServer) {
		t.Fatalf("expected server error after retries, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", attempts)
	}
}

func TestCreateOrderIsNotRetried(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	store.SetTokens("token", "")

	if _, err := client.CreateOrder(context.Background(), CreateOrderRequest{}); err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("order submission must fail fast, got %d attempts", attempts)
	}
}

func TestUnauthorizedExpiresSessionOnce(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	store.SetTokens("stale-token", "refresh")

	expired := 0
	store.OnExpired(func() { expired++ })

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client.CreateOrder(context.Background(), CreateOrderRequest{})
		}()
	}
	wg.Wait()

	if expired != 1 {
		t.Fatalf("expected expiry hook to fire exactly once, fired %d times", expired)
	}
	if store.AccessToken() != "" {
		t.Fatal("expected token cleared after 401")
	}
}

func TestAuthedCallWithoutTokenFailsFast(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	if _, err := client.FetchCart(context.Background()); !IsKind(err, KindAuthRequired) {
		t.Fatalf("expected auth required, got %v", err)
	}
	if called {
		t.Fatal("no request should be sent without a token")
	}
}

func TestLoginStoresTokens(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			Roles:        []string{"Customer"},
		})
	}))

	resp, err := client.Login(context.Background(), "shopper@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.AccessToken != "access-1" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
	if store.AccessToken() != "access-1" || store.RefreshToken() != "refresh-1" {
		t.Fatal("expected tokens persisted in the session store")
	}
}

func TestErrorMessageShapes(t *testing.T) {
	if got := errorMessage([]byte(`{"error":"bad input"}`)); got != "bad input" {
		t.Fatalf("expected lowercase error field, got %q", got)
	}
	if got := errorMessage([]byte(`{"Message":"wrong password"}`)); got != "wrong password" {
		t.Fatalf("expected Message field, got %q", got)
	}
	if got := errorMessage([]byte("plain text")); got != "plain text" {
		t.Fatalf("expected raw body fallback, got %q", got)
	}
}
