package sign

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strings"
)

// QiniuSigningString builds the canonical request string signed by
// QiniuToken. The layout, including the trailing blank line, is fixed by
// the Qiniu API:
//
//	"{METHOD} {path}\nHost: {host}\n\n"
func QiniuSigningString(method, path, host string) string {
	return fmt.Sprintf("%s %s\nHost: %s\n\n", strings.ToUpper(method), path, host)
}

// QiniuToken computes the Authorization header value for a Qiniu API
// request: HMAC-SHA1 of the canonical signing string keyed by the secret
// key, base64url encoded, prefixed with the access key.
func QiniuToken(accessKey, secretKey, method, path, host string) string {
	mac := hmac.New(sha1.New, []byte(secretKey))
	mac.Write([]byte(QiniuSigningString(method, path, host)))
	digest := mac.Sum(nil)

	return fmt.Sprintf("Qiniu %s:%s", accessKey, base64.URLEncoding.EncodeToString(digest))
}
