package cmd

import (
	"fmt"

	"github.com/philosophercode/itinerary-rewind-demo/internal/staging"
	"github.com/philosophercode/itinerary-rewind-demo/internal/web"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the trip viewer and the photo upload screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		srv := &web.Server{
			Viewer:         newViewer(),
			Staging:        staging.New(logger),
			DataDir:        dataDir,
			Addr:           fmt.Sprintf("%s:%d", serveHost, servePort),
			Logger:         logger,
			MaxUploadBytes: cfg.Upload.MaxBytes,
		}
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
