package main

import (
	"os"

	"github.com/campusshare/campusshare/internal/pkg/logger"
	"github.com/campusshare/campusshare/internal/server"
)

// @title CampusShare API
// @version 1.0
// @description API for the CampusShare student resource sharing platform
// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
