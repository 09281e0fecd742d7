/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"
	"os"

	"log/slog"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdelaunay/wigorview/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the timetable api service",
	Long: `Runs the JSON api over the fetch pipeline. Logs stream to
stderr and to any browser connected to the /manage/logs websocket`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ok := loadConfig()
		if !ok {
			return
		}
		if addr, err := cmd.Flags().GetString("addr"); err == nil && addr != "" {
			cfg.Addr = addr
		}

		logHub := server.NewLogHub()
		reportLogger := setupLogging(cfg, slog.NewTextHandler(logHub, nil))

		// colored logrus output so the websocket view gets the same
		// rendering a terminal would
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
		log.SetOutput(io.MultiWriter(os.Stderr, logHub))

		fetcher := newFetcher(cfg, "serve", reportLogger)
		srv := server.New(fetcher, cfg, logHub, reportLogger)
		if err := srv.Serve(cfg.Addr); err != nil {
			reportLogger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address, overrides the configured one")
}
