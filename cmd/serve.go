package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refnav/internal/metric"
	"github.com/ziadkadry99/refnav/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reference pages over HTTP",
	Long:  `Renders reference pages and sidebar data on demand, with health and Prometheus metrics endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := loadStack()
	if err != nil {
		return err
	}
	defer st.log.Sync()

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = st.cfg.Server.Port
	}

	srv := server.New(server.Config{
		Port:            port,
		BasePath:        st.cfg.BasePath,
		AssetsDir:       st.cfg.AssetsDir,
		Theme:           st.cfg.Theme,
		AllowAll:        st.cfg.Server.AllowAllOrigins,
		ShutdownTimeout: st.cfg.Server.ShutdownTimeout,
	}, st.catalog, st.renderer, st.pages, metric.NewRecorder(), st.log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
