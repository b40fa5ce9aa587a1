package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/cloud-balance-monitor/internal/logger"
	"github.com/user/cloud-balance-monitor/internal/notify"
	"github.com/user/cloud-balance-monitor/internal/report"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Fetch all balances and deliver the report to DingTalk",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, registry, err := setup(cmd)
		if err != nil {
			return err
		}
		if cfg.Notify.Webhook == "" || cfg.Notify.Secret == "" {
			return fmt.Errorf("notify.webhook and notify.secret must be configured")
		}

		log := logger.New(cfg.Settings.LogLevel)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Settings.Timeout)
		results := registry.FetchAll(ctx, cfg.Accounts)
		cancel()

		// The report is fully rendered before any delivery attempt;
		// delivery failure never alters its content.
		body := report.Render(results, time.Now())

		title := cfg.Notify.Title
		if title == "" {
			title = report.Title
		}

		deliverCtx, cancelDeliver := context.WithTimeout(context.Background(), cfg.Settings.Timeout)
		defer cancelDeliver()

		d := notify.NewDingTalk(cfg.Notify.Webhook, cfg.Notify.Secret, log)
		if err := d.Send(deliverCtx, title, body); err != nil {
			return fmt.Errorf("deliver report: %w", err)
		}

		log.Info("report delivered", "accounts", len(results))
		return nil
	},
}
