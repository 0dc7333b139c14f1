package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"textlab/internal/logger"
	"textlab/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve every analysis over HTTP for the browser client.

Endpoints:
  GET  /                     health check
  POST /api/tokenize         {text, mode}
  POST /api/analyze          {text, type}
  POST /api/perplexity       {training_text, test_text}
  POST /api/edit-distance    {source, target}
  POST /api/morph-analysis   {word}

The PORT environment variable overrides the configured port.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	services, closer, err := buildServices(cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(cfg.Server, services, logger.GetDefault())
	return srv.Run(ctx)
}
