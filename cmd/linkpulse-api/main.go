// @title         Linkpulse API
// @version       0.1.0
// @description   Activity aggregation and filtered dashboard views

package main

import (
	"context"

	"github.com/joho/godotenv"

	"linkpulse/internal/platform/config"
	"linkpulse/internal/platform/logger"
	phttp "linkpulse/internal/platform/net/http"

	"linkpulse/internal/services/api"
)

func main() {
	// .env is optional, env vars win
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API, the analyzer worker starts with it
	analyzer := api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)
	defer analyzer.Close()

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
