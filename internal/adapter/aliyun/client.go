package aliyun

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var baseURL = "https://business.aliyuncs.com"

type Client struct {
	httpClient   *http.Client
	baseURL      string
	accessKey    string
	accessSecret string
}

func NewClient(accessKey, accessSecret string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		baseURL:      baseURL,
		accessKey:    accessKey,
		accessSecret: accessSecret,
	}
}

// QueryAccountBalance 查询账户可用余额（BssOpenApi 2017-12-14）
func (c *Client) QueryAccountBalance(ctx context.Context) (*queryAccountBalanceResponse, error) {
	params := map[string]string{
		"Action":           "QueryAccountBalance",
		"Version":          "2017-12-14",
		"Format":           "JSON",
		"AccessKeyId":      c.accessKey,
		"SignatureMethod":  "HMAC-SHA1",
		"SignatureVersion": "1.0",
		"SignatureNonce":   uuid.NewString(),
		"Timestamp":        time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
	params["Signature"] = c.sign(http.MethodGet, params)

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result queryAccountBalanceResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("non-JSON response (status %d): %s", resp.StatusCode, body)
	}
	result.raw = string(body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, code %s: %s", resp.StatusCode, result.Code, result.Message)
	}
	return &result, nil
}

// sign implements the Aliyun RPC-style signature: percent-encoded
// canonicalized query sorted by key, wrapped into
// "{METHOD}&%2F&{encodedQuery}", HMAC-SHA1 keyed by "{secret}&".
func (c *Client) sign(method string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, popEncode(k)+"="+popEncode(params[k]))
	}
	canonical := strings.Join(pairs, "&")

	stringToSign := method + "&" + popEncode("/") + "&" + popEncode(canonical)

	mac := hmac.New(sha1.New, []byte(c.accessSecret+"&"))
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// popEncode applies the POP gateway's percent-encoding variant
// (RFC 3986: space as %20, and ~ left bare).
func popEncode(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	e = strings.ReplaceAll(e, "*", "%2A")
	e = strings.ReplaceAll(e, "%7E", "~")
	return e
}
