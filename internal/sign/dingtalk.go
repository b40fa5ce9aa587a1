// Package sign implements the request-signing schemes used by the
// monitor: the DingTalk robot webhook signature and the Qiniu
// canonical-request token. Both are pure functions; the signing string
// layouts are byte-exact contracts with the remote services.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"time"
)

// DingTalk computes the robot webhook signature for one millisecond
// timestamp: HMAC-SHA256 over "{timestamp}\n{secret}" keyed by the
// secret, base64 encoded, then form-urlencoded so it can be placed
// directly into the query string.
func DingTalk(secret string, timestampMillis int64) string {
	stringToSign := fmt.Sprintf("%d\n%s", timestampMillis, secret)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(stringToSign))
	digest := mac.Sum(nil)

	return url.QueryEscape(base64.StdEncoding.EncodeToString(digest))
}

// DingTalkURL appends the timestamp and signature query parameters to a
// robot webhook URL (which already carries ?access_token=...).
func DingTalkURL(webhook, secret string, now time.Time) string {
	ts := now.UnixMilli()
	return fmt.Sprintf("%s&timestamp=%d&sign=%s", webhook, ts, DingTalk(secret, ts))
}
