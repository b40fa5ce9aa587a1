package huawei

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://bss.myhuaweicloud.com"

// BSS is a global service, reachable only through cn-north-1.
const balancesPath = "/v2/accounts/customer-accounts/balances"

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

// ShowCustomerAccountBalances 查询客户账户余额（余额单位为分）
func (c *Client) ShowCustomerAccountBalances(ctx context.Context) (*accountBalancesResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+balancesPath, nil)
	if err != nil {
		return nil, err
	}

	sdkDate := time.Now().UTC().Format("20060102T150405Z")
	req.Header.Set("X-Sdk-Date", sdkDate)
	req.Header.Set("Authorization", c.sign(u.Host, sdkDate))

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
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.ErrorCode != "" {
			return nil, fmt.Errorf("api error %s: %s", apiErr.ErrorCode, apiErr.ErrorMsg)
		}
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var result accountBalancesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("non-JSON response: %s", body)
	}
	result.raw = string(body)
	return &result, nil
}

// sign implements the AK/SK SDK-HMAC-SHA256 scheme. The canonical URI
// must end with a slash even though the request path does not.
func (c *Client) sign(host, sdkDate string) string {
	emptyBodyHash := sha256Hex(nil)
	canonicalRequest := fmt.Sprintf("GET\n%s/\n\nhost:%s\nx-sdk-date:%s\n\nhost;x-sdk-date\n%s",
		balancesPath, host, sdkDate, emptyBodyHash)

	stringToSign := fmt.Sprintf("SDK-HMAC-SHA256\n%s\n%s",
		sdkDate, sha256Hex([]byte(canonicalRequest)))

	mac := hmac.New(sha256.New, []byte(c.secretKey))
	mac.Write([]byte(stringToSign))
	signature := hex.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("SDK-HMAC-SHA256 Access=%s, SignedHeaders=host;x-sdk-date, Signature=%s",
		c.accessKey, signature)
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
