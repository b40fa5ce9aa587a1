// Package notify delivers the rendered report through the DingTalk
// robot webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/user/cloud-balance-monitor/internal/logger"
	"github.com/user/cloud-balance-monitor/internal/sign"
)

type DingTalk struct {
	httpClient *http.Client
	webhook    string
	secret     string
	log        *logger.Logger
}

func NewDingTalk(webhook, secret string, log *logger.Logger) *DingTalk {
	return &DingTalk{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		webhook:    webhook,
		secret:     secret,
		log:        log,
	}
}

type markdownMessage struct {
	MsgType  string `json:"msgtype"`
	Markdown struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"markdown"`
}

type robotResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// Send posts a markdown message through the signed webhook URL. It is
// a single attempt: a transport failure or non-2xx status is returned
// to the caller as the run-level delivery error. The robot's own error
// code is logged but does not fail the delivery.
func (d *DingTalk) Send(ctx context.Context, title, text string) error {
	msg := markdownMessage{MsgType: "markdown"}
	msg.Markdown.Title = title
	msg.Markdown.Text = text

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	signedURL := sign.DingTalkURL(d.webhook, d.secret, time.Now())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signedURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read webhook response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook delivery failed: status %d, body: %s", resp.StatusCode, body)
	}

	var robot robotResponse
	if err := json.Unmarshal(body, &robot); err != nil {
		d.log.Warn("dingtalk response not parseable", "body", string(body))
		return nil
	}
	d.log.Info("dingtalk response", "status", resp.StatusCode, "errcode", robot.ErrCode, "errmsg", robot.ErrMsg)

	return nil
}
