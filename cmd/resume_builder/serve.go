package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
	serveStaticDir  string
	serveEngine     string
	serveChromePath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start an HTTP server that hosts the built client and exposes REST endpoints
for editing drafts, previewing them and exporting PDF and DOC files.

PORT, STATIC_DIR, SESSION_TTL, EXPORT_TIMEOUT, CHROME_PATH, PDF_ENGINE and
RATE_LIMIT_* environment variables are honored; flags take priority.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 3000, "Port to listen on")
	serveCmd.Flags().StringVar(&serveStaticDir, "static", "", "Directory of the built client bundle (default client/dist)")
	serveCmd.Flags().StringVar(&serveEngine, "engine", "", "PDF engine: auto, drawn or raster")
	serveCmd.Flags().StringVar(&serveChromePath, "chrome", "", "Chromium binary for the raster engine")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(serveConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("static") {
		cfg.StaticDir = serveStaticDir
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine = serveEngine
	}
	if cmd.Flags().Changed("chrome") {
		cfg.ChromePath = serveChromePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	engine, err := export.ParseEngine(cfg.Engine)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		StaticDir:     cfg.StaticDir,
		SessionTTL:    cfg.SessionTTLDuration(),
		ExportTimeout: cfg.ExportTimeoutDuration(),
		Engine:        engine,
		ChromePath:    cfg.ChromePath,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
