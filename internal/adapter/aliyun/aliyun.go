package aliyun

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

// Aliyun returns amounts as display strings with thousands separators
// and sometimes a trailing 元 glyph.
var amountCleaner = strings.NewReplacer(",", "", "元", "")

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ID() provider.Kind {
	return provider.KindAliyun
}

func (a *Adapter) DisplayName() string {
	return provider.KindAliyun.Label()
}

func (a *Adapter) ValidateCredentials(account provider.Account) error {
	if account.Credentials["access_key"] == "" || account.Credentials["access_secret"] == "" {
		return fmt.Errorf("aliyun account %q requires access_key and access_secret credentials", account.Name)
	}
	return nil
}

func (a *Adapter) FetchBalance(ctx context.Context, account provider.Account) (decimal.Decimal, error) {
	if err := a.ValidateCredentials(account); err != nil {
		return decimal.Zero, err
	}

	client := NewClient(account.Credentials["access_key"], account.Credentials["access_secret"])

	resp, err := client.QueryAccountBalance(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("aliyun balance query: %w", err)
	}

	if !resp.Success && resp.Message != "" {
		return decimal.Zero, fmt.Errorf("aliyun api error %s: %s", resp.Code, resp.Message)
	}

	// AvailableAmount is the documented field; AvailableCashAmount shows
	// up on older API versions.
	raw := resp.Data.AvailableAmount
	if raw == "" {
		raw = resp.Data.AvailableCashAmount
	}
	if raw == "" {
		return decimal.Zero, fmt.Errorf("aliyun response missing Data.AvailableAmount: %s", resp.raw)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(amountCleaner.Replace(raw)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("aliyun amount %q not parseable: %w", raw, err)
	}
	return amount, nil
}
