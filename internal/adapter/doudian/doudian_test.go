package doudian

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

func testAccount() provider.Account {
	return provider.Account{
		Provider:    provider.KindDoudian,
		Name:        "test",
		Credentials: map[string]string{"app_key": "test-key", "app_secret": "test-secret"},
	}
}

func withTestServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	orig := baseURL
	baseURL = server.URL
	t.Cleanup(func() { baseURL = orig })
}

func TestAdapter_FetchBalance(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "HMAC-SHA256 Credential=test-key/") {
			t.Errorf("expected request signed with the app key, got: %s", auth)
		}
		w.Write([]byte(`{"Result":{"AvailableBalance":"2,000.00"}}`))
	})

	amount, err := New().FetchBalance(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("FetchBalance failed: %v", err)
	}

	if !amount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected 2000 yuan, got %s", amount)
	}
}

func TestAdapter_FetchBalance_MissingCredentials(t *testing.T) {
	account := provider.Account{
		Provider:    provider.KindDoudian,
		Name:        "incomplete",
		Credentials: map[string]string{"app_key": "only-key"},
	}

	_, err := New().FetchBalance(context.Background(), account)
	if err == nil {
		t.Fatal("expected error for missing app_secret credential")
	}
}

func TestAdapter_Interface(t *testing.T) {
	var _ provider.Provider = New()

	if New().ID() != provider.KindDoudian {
		t.Errorf("unexpected ID: %s", New().ID())
	}
	if New().DisplayName() != "抖店云" {
		t.Errorf("unexpected display name: %s", New().DisplayName())
	}
}
