package module

import dom "linkpulse/internal/services/analyzer/domain"

// Ports holds the ports exposed by the analyzer module
type Ports struct {
	Service dom.ServicePort
}
