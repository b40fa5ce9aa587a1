package aliyun

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
		Provider:    provider.KindAliyun,
		Name:        "test",
		Credentials: map[string]string{"access_key": "test-ak", "access_secret": "test-secret"},
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

func TestClient_QueryAccountBalance(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("Action") != "QueryAccountBalance" {
			t.Errorf("unexpected Action: %s", query.Get("Action"))
		}
		if query.Get("AccessKeyId") != "test-ak" {
			t.Errorf("unexpected AccessKeyId: %s", query.Get("AccessKeyId"))
		}
		if query.Get("Signature") == "" {
			t.Error("expected a Signature query parameter")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Code":"200","Success":true,"Data":{"AvailableAmount":"12,345.67","Currency":"CNY"}}`))
	})

	client := NewClient("test-ak", "test-secret")

	result, err := client.QueryAccountBalance(context.Background())
	if err != nil {
		t.Fatalf("QueryAccountBalance failed: %v", err)
	}

	if result.Data.AvailableAmount != "12,345.67" {
		t.Errorf("unexpected AvailableAmount: %s", result.Data.AvailableAmount)
	}
}

func TestAdapter_FetchBalance_StripsSeparatorsAndGlyph(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Success":true,"Data":{"AvailableAmount":"12,345.67元"}}`))
	})

	amount, err := New().FetchBalance(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("FetchBalance failed: %v", err)
	}

	if !amount.Equal(decimal.RequireFromString("12345.67")) {
		t.Errorf("expected 12345.67 yuan, got %s", amount)
	}
}

func TestAdapter_FetchBalance_FallbackField(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Success":true,"Data":{"AvailableCashAmount":"88.00"}}`))
	})

	amount, err := New().FetchBalance(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("expected fallback to AvailableCashAmount to succeed, got %v", err)
	}

	if !amount.Equal(decimal.RequireFromString("88")) {
		t.Errorf("expected 88 yuan, got %s", amount)
	}
}

func TestAdapter_FetchBalance_APIError(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Success":false,"Code":"InvalidAccessKeyId.NotFound","Message":"Specified access key is not found."}`))
	})

	_, err := New().FetchBalance(context.Background(), testAccount())
	if err == nil {
		t.Fatal("expected error for api error response")
	}
	if !strings.Contains(err.Error(), "InvalidAccessKeyId.NotFound") {
		t.Errorf("error should carry the vendor code, got: %v", err)
	}
}

func TestAdapter_FetchBalance_MissingField(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Success":true,"Data":{"Currency":"CNY"}}`))
	})

	_, err := New().FetchBalance(context.Background(), testAccount())
	if err == nil {
		t.Fatal("expected error for missing amount field")
	}
	if !strings.Contains(err.Error(), "AvailableAmount") {
		t.Errorf("error should name the expected field, got: %v", err)
	}
}

func TestAdapter_FetchBalance_MissingCredentials(t *testing.T) {
	account := provider.Account{
		Provider:    provider.KindAliyun,
		Name:        "incomplete",
		Credentials: map[string]string{"access_key": "only-key"},
	}

	_, err := New().FetchBalance(context.Background(), account)
	if err == nil {
		t.Fatal("expected error for missing access_secret credential")
	}
}

func TestAdapter_Interface(t *testing.T) {
	var _ provider.Provider = New()

	if New().ID() != provider.KindAliyun {
		t.Errorf("unexpected ID: %s", New().ID())
	}
}
