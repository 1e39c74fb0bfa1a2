package main

import (
	"lendhub/config"
	"lendhub/di"
	"lendhub/shared/logger"
)

// @title lendhub API
// @version 1.0
// @description Peer-to-peer item sharing service: list items, book them, and review them.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
