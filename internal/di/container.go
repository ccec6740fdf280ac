// Package di provides dependency injection configuration for the Triplo server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/triploapp/triplo-server/internal/config"
	"github.com/triploapp/triplo-server/internal/di/providers"
	"github.com/triploapp/triplo-server/internal/logger"
	"github.com/triploapp/triplo-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Discovery layer
	do.Provide(injector, providers.ProvideDiscoveryClient)

	// Business services
	do.Provide(injector, providers.ProvideTripService)
	do.Provide(injector, providers.ProvideDiscoveryService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*providers.DiscoveryClientHandle](injector)
	_ = do.MustInvoke[*service.TripService](injector)
	_ = do.MustInvoke[*service.DiscoveryService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Rebuild the search index from the trip collection so it never
	// drifts from the persisted state.
	return providers.RebuildSearchIndex(injector)
}
