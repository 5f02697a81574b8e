package module

import "linkpulse/internal/platform/config"

// Options controls the analyzer worker
type Options struct {
	CacheCap int
}

// FromConfig reads with ANALYZER_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ANALYZER_")
	return Options{
		CacheCap: c.MayInt("VIEW_CACHE_CAP", 64),
	}
}
