package tencent

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var baseURL = "https://billing.tencentcloudapi.com"

const (
	action  = "DescribeAccountBalance"
	version = "2018-07-09"
	region  = "ap-guangzhou"
	service = "billing"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	secretID   string
	secretKey  string
}

func NewClient(secretID, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		secretID:   secretID,
		secretKey:  secretKey,
	}
}

// DescribeAccountBalance 查询账户余额（余额单位为分）
func (c *Client) DescribeAccountBalance(ctx context.Context) (*describeAccountBalanceResponse, error) {
	payload := []byte("{}")
	now := time.Now()

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-TC-Action", action)
	req.Header.Set("X-TC-Version", version)
	req.Header.Set("X-TC-Region", region)
	req.Header.Set("X-TC-Timestamp", strconv.FormatInt(now.Unix(), 10))
	req.Header.Set("Authorization", c.sign(u.Host, payload, now))

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

	var result describeAccountBalanceResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("non-JSON response: %s", body)
	}
	result.raw = string(body)
	return &result, nil
}

// sign implements the TC3-HMAC-SHA256 scheme: hashed canonical request,
// date-scoped string to sign, and a derived signing key
// (date -> service -> "tc3_request").
func (c *Client) sign(host string, payload []byte, now time.Time) string {
	canonicalRequest := fmt.Sprintf("POST\n/\n\ncontent-type:application/json\nhost:%s\n\ncontent-type;host\n%s",
		host, sha256Hex(payload))

	date := now.UTC().Format("2006-01-02")
	scope := date + "/" + service + "/tc3_request"
	stringToSign := fmt.Sprintf("TC3-HMAC-SHA256\n%d\n%s\n%s",
		now.Unix(), scope, sha256Hex([]byte(canonicalRequest)))

	key := hmacSHA256([]byte("TC3"+c.secretKey), date)
	key = hmacSHA256(key, service)
	key = hmacSHA256(key, "tc3_request")
	signature := hex.EncodeToString(hmacSHA256(key, stringToSign))

	return fmt.Sprintf("TC3-HMAC-SHA256 Credential=%s/%s, SignedHeaders=content-type;host, Signature=%s",
		c.secretID, scope, signature)
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
