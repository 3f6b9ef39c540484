package main

import (
	"context"
	"flag"
	"os"

	"github.com/skillmap/skillmap/internal/pkg/logger" // Still needed for initial error logging
	"github.com/skillmap/skillmap/internal/server"
)

// @title SkillMap API
// @version 1.0
// @description API for mapping university courses to skills and competencies

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, sent as "Bearer <token>"

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration file")
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath, *envFile)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
