package volcengine

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

var baseURL = "https://open.volcengineapi.com"

const (
	service = "billing"
	region  = "cn-beijing"
	version = "2022-01-01"
)

// Client talks to the Volcengine open API. It is shared with the
// doudian adapter, whose billing endpoint speaks the same protocol, so
// the base URL is exported.
type Client struct {
	httpClient *http.Client
	BaseURL    string
	accessKey  string
	secretKey  string
}

func NewClient(accessKey, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		accessKey:  accessKey,
		secretKey:  secretKey,
	}
}

// QueryBalanceAcct 查询账户可用余额
func (c *Client) QueryBalanceAcct(ctx context.Context) (*QueryBalanceAcctResponse, error) {
	query := url.Values{}
	query.Set("Action", "QueryBalanceAcct")
	query.Set("Version", version)
	encodedQuery := query.Encode()

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/?"+encodedQuery, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	xDate := now.Format("20060102T150405Z")
	req.Header.Set("X-Date", xDate)
	req.Header.Set("Authorization", c.sign(u.Host, encodedQuery, xDate))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result QueryBalanceAcctResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("non-JSON response (status %d): %s", resp.StatusCode, body)
	}
	result.Raw = string(body)

	if apiErr := result.ResponseMetadata.Error; apiErr != nil {
		return nil, fmt.Errorf("api error %s: %s", apiErr.Code, apiErr.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}
	return &result, nil
}

// sign implements the open-API HMAC-SHA256 request signature with the
// host;x-date signed-header set and a date/region/service-scoped
// derived key.
func (c *Client) sign(host, encodedQuery, xDate string) string {
	emptyPayloadHash := sha256Hex(nil)
	canonicalRequest := fmt.Sprintf("GET\n/\n%s\nhost:%s\nx-date:%s\n\nhost;x-date\n%s",
		encodedQuery, host, xDate, emptyPayloadHash)

	shortDate := xDate[:8]
	scope := fmt.Sprintf("%s/%s/%s/request", shortDate, region, service)
	stringToSign := fmt.Sprintf("HMAC-SHA256\n%s\n%s\n%s",
		xDate, scope, sha256Hex([]byte(canonicalRequest)))

	key := hmacSHA256([]byte(c.secretKey), shortDate)
	key = hmacSHA256(key, region)
	key = hmacSHA256(key, service)
	key = hmacSHA256(key, "request")
	signature := hex.EncodeToString(hmacSHA256(key, stringToSign))

	return fmt.Sprintf("HMAC-SHA256 Credential=%s/%s, SignedHeaders=host;x-date, Signature=%s",
		c.accessKey, scope, signature)
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, msg string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msg))
	return mac.Sum(nil)
}
