// Package module wires the analyzer worker service and exposes its port
package module

import (
	"linkpulse/internal/modkit"
	"linkpulse/internal/modkit/httpkit"
	"linkpulse/internal/services/analyzer/service"
)

// Module owns the analyzer worker lifecycle
type Module struct {
	deps  modkit.Deps
	ports Ports
	svc   *service.Svc
}

// New constructs the analyzer module and starts its worker
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	svc := service.New(service.Config{CacheCap: opts.CacheCap})

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Service: svc}
	return m
}

// Close stops the worker goroutine
func (m *Module) Close() { m.svc.Close() }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "analyzer" }

// Prefix returns the module config prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes, transports consume the port instead
func (m *Module) MountRoutes(_ httpkit.Router) {}
