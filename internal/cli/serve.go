package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/cloud-balance-monitor/internal/api"
	"github.com/user/cloud-balance-monitor/internal/logger"
)

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from settings.api_port)")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to listen on")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, registry, err := setup(cmd)
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Settings.APIPort
		}
		host, _ := cmd.Flags().GetString("host")
		addr := fmt.Sprintf("%s:%d", host, port)

		log := logger.New(cfg.Settings.LogLevel)
		log.Info("starting API server", "addr", addr)

		return api.NewServer(registry, cfg, addr, log).Start()
	},
}
