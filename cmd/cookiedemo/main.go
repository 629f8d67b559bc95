// Command cookiedemo serves a small site exercising the cookie jar plugin:
// a visit counter, signed sign-in cookies and a signed visitor id.
package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cookiejar/pkg/config"
	"github.com/dmitrymomot/cookiejar/pkg/cookie"
	"github.com/dmitrymomot/cookiejar/pkg/httpserver"
	"github.com/dmitrymomot/cookiejar/pkg/logger"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE" envDefault:"cookiedemo"`
}

func main() {
	var (
		appCfg    appConfig
		cookieCfg cookie.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&cookieCfg)
	config.MustLoad(&serverCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Service),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	plugin := cookie.NewFromConfig(cookieCfg, cookie.WithLogger(log))
	if plugin.KeyRing().Len() == 0 {
		log.Warn("COOKIE_SECRETS is empty, signed routes will fail")
	}

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), newRouter(plugin, log)); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
