package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/triploapp/triplo-server/internal/config"
	"github.com/triploapp/triplo-server/internal/logger"
	"github.com/triploapp/triplo-server/internal/service"
)

// ProvideTripService provides the trip service with its collection preloaded.
func ProvideTripService(i do.Injector) (*service.TripService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	searchService := do.MustInvoke[*service.SearchService](i)
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc := service.NewTripService(storeHandle.Store, searchService, log.Logger, cfg.Server.PublicURL)

	if err := svc.Load(context.Background()); err != nil {
		return nil, err
	}

	return svc, nil
}

// ProvideDiscoveryService provides the place-discovery service.
func ProvideDiscoveryService(i do.Injector) (*service.DiscoveryService, error) {
	clientHandle := do.MustInvoke[*DiscoveryClientHandle](i)
	tripService := do.MustInvoke[*service.TripService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewDiscoveryService(clientHandle.Client, tripService, log.Logger), nil
}
