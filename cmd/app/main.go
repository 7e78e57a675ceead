package main

import (
	"cruisedesk/config"
	"cruisedesk/di"
	"cruisedesk/shared/logger"
)

// @title Cruisedesk API
// @version 1.0
// @description Booking management dashboard backend. Every resource route proxies the upstream booking API.
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cruisedesk_session
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
