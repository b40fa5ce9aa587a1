package volcengine

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
		Provider:    provider.KindVolcengine,
		Name:        "test",
		Credentials: map[string]string{"ak": "test-ak", "sk": "test-sk"},
	}
}

func withTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	orig := baseURL
	baseURL = server.URL
	t.Cleanup(func() { baseURL = orig })

	return server
}

func TestClient_QueryBalanceAcct(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("Action") != "QueryBalanceAcct" {
			t.Errorf("unexpected Action: %s", query.Get("Action"))
		}
		if r.Header.Get("X-Date") == "" {
			t.Error("expected X-Date header")
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "HMAC-SHA256 Credential=test-ak/") {
			t.Errorf("unexpected authorization header: %s", auth)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ResponseMetadata":{"RequestId":"req-1","Action":"QueryBalanceAcct"},"Result":{"AccountID":42,"AvailableBalance":"1,234.56"}}`))
	})

	client := NewClient("test-ak", "test-sk")

	result, err := client.QueryBalanceAcct(context.Background())
	if err != nil {
		t.Fatalf("QueryBalanceAcct failed: %v", err)
	}

	if result.Result.AvailableBalance != "1,234.56" {
		t.Errorf("unexpected AvailableBalance: %v", result.Result.AvailableBalance)
	}
}

func TestAdapter_FetchBalance_StringAmount(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Result":{"AvailableBalance":"1,234.56"}}`))
	})

	amount, err := New().FetchBalance(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("FetchBalance failed: %v", err)
	}

	if !amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("expected 1234.56 yuan, got %s", amount)
	}
}

func TestAdapter_FetchBalance_NumericAmount(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Result":{"AvailableBalance":987.65}}`))
	})

	amount, err := New().FetchBalance(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("FetchBalance failed: %v", err)
	}

	if !amount.Equal(decimal.RequireFromString("987.65")) {
		t.Errorf("expected 987.65 yuan, got %s", amount)
	}
}

func TestAdapter_FetchBalance_FallbackField(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Result":{"CashBalance":"66.00"}}`))
	})

	amount, err := New().FetchBalance(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("expected fallback to CashBalance to succeed, got %v", err)
	}

	if !amount.Equal(decimal.NewFromInt(66)) {
		t.Errorf("expected 66 yuan, got %s", amount)
	}
}

func TestAdapter_FetchBalance_APIError(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ResponseMetadata":{"Error":{"Code":"InvalidAccessKey","Message":"The access key is invalid."}}}`))
	})

	_, err := New().FetchBalance(context.Background(), testAccount())
	if err == nil {
		t.Fatal("expected error for api error response")
	}
	if !strings.Contains(err.Error(), "InvalidAccessKey") {
		t.Errorf("error should carry the vendor code, got: %v", err)
	}
}

func TestAdapter_FetchBalance_MissingField(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Result":{"AccountID":42}}`))
	})

	_, err := New().FetchBalance(context.Background(), testAccount())
	if err == nil {
		t.Fatal("expected error for missing balance field")
	}
	if !strings.Contains(err.Error(), "AvailableBalance") {
		t.Errorf("error should name the expected field, got: %v", err)
	}
}

func TestAdapter_FetchBalance_MissingCredentials(t *testing.T) {
	account := provider.Account{
		Provider:    provider.KindVolcengine,
		Name:        "incomplete",
		Credentials: map[string]string{"sk": "only-sk"},
	}

	_, err := New().FetchBalance(context.Background(), account)
	if err == nil {
		t.Fatal("expected error for missing ak credential")
	}
}

func TestAdapter_Interface(t *testing.T) {
	var _ provider.Provider = New()

	if New().ID() != provider.KindVolcengine {
		t.Errorf("unexpected ID: %s", New().ID())
	}
}
