// Package modules holds the domain units composed by bootstrap. Each
// module owns its dependencies and contributes them to the HTTP layer
// and the River worker registry.
package modules

import (
	"context"

	"github.com/riverqueue/river"

	"a11ysentinel.io/sentinel/internal/api/handlers"
)

// Module is one domain unit in the composition root.
type Module interface {
	// Name identifies the module in logs.
	Name() string

	// RegisterWorkers adds the module's River workers to the shared
	// registry before the River client is built.
	RegisterWorkers(*river.Workers)

	// Shutdown releases module-local resources.
	Shutdown(context.Context) error
}

// ServerDepsContributor is implemented by modules that hand
// dependencies to the HTTP server.
type ServerDepsContributor interface {
	ContributeServerDeps(*handlers.ServerDeps)
}
