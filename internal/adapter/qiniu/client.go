package qiniu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/user/cloud-balance-monitor/internal/sign"
)

var baseURL = "https://api.qiniu.com"

const balanceOverviewPath = "/billing-api/v1/account/balance-overview"

type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	secretKey  string
}

func NewClient(accessKey, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		accessKey:  accessKey,
		secretKey:  secretKey,
	}
}

// GetBalanceOverview 查询账户余额概览
func (c *Client) GetBalanceOverview(ctx context.Context) (*balanceOverviewResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+balanceOverviewPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", sign.QiniuToken(c.accessKey, c.secretKey, http.MethodGet, balanceOverviewPath, u.Host))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var result balanceOverviewResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("non-JSON response: %s", body)
	}
	result.raw = string(body)
	return &result, nil
}
