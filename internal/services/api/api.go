// Package api provides the HTTP API for the application
package api

import (
	"linkpulse/internal/platform/config"
	"linkpulse/internal/platform/logger"
	phttp "linkpulse/internal/platform/net/http"

	"linkpulse/internal/modkit"
	"linkpulse/internal/modkit/httpkit"
	"linkpulse/internal/modkit/module"
	"linkpulse/internal/modkit/swaggerkit"

	activitymod "linkpulse/internal/services/api/activity/module"
	metamod "linkpulse/internal/services/api/meta/module"

	// Worker analyzer module (owns the aggregate and the Service port)
	analyzermod "linkpulse/internal/services/analyzer/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) *analyzermod.Module {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}

	// Construct the WORKER analyzer module first and extract its Service port
	analyzer := analyzermod.New(deps)
	svc := module.MustPortsOf[analyzermod.Ports](analyzer).Service

	// Inject that port into the activity API module
	activity := activitymod.New(
		deps,
		modkit.WithPorts(activitymod.Ports{Service: svc}),
	)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(svc)),
		analyzer, // include the worker so its ports are registered
		activity, // API module that depends on the worker's Service port
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	return analyzer
}
