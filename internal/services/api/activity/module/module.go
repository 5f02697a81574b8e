// Package module wires the activity API using modkit
package module

import (
	"net/http"

	modkit "linkpulse/internal/modkit"
	"linkpulse/internal/modkit/httpkit"
	str "linkpulse/internal/platform/strings"
	adom "linkpulse/internal/services/analyzer/domain"
	acthttp "linkpulse/internal/services/api/activity/http"
)

// Module implements the activity API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc adom.ServicePort
}

// Ports declares the required injected analyzer port
type Ports struct {
	Service adom.ServicePort
}

// New constructs the activity module around the injected analyzer port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("activity"),
		modkit.WithPrefix("/activity"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Service == nil {
		panic("activity API module requires the analyzer Service port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       injected.Service,
	}
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		acthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
