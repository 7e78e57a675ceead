package handler

import (
	"net/http"
	"sync"

	"cruisedesk/config"
	"cruisedesk/di"
	"cruisedesk/shared/logger"
	transport "cruisedesk/transport/http"
)

var (
	app  *transport.HTTP
	once sync.Once
)

// Handler is the serverless entrypoint. The app is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
