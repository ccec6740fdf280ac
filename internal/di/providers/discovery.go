package providers

import (
	"github.com/samber/do/v2"

	"github.com/triploapp/triplo-server/internal/config"
	"github.com/triploapp/triplo-server/internal/discovery"
	"github.com/triploapp/triplo-server/internal/logger"
)

// DiscoveryClientHandle wraps the discovery client with shutdown capability.
type DiscoveryClientHandle struct {
	*discovery.Client
}

// Shutdown implements do.Shutdownable.
func (h *DiscoveryClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideDiscoveryClient provides the grounded place-search client.
func ProvideDiscoveryClient(i do.Injector) (*DiscoveryClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := discovery.NewClient(
		cfg.Discovery.APIKey,
		cfg.Discovery.Model,
		cfg.Discovery.BaseURL,
		log.Logger,
	)

	if client.Enabled() {
		log.Info("Discovery client initialized", "model", cfg.Discovery.Model)
	} else {
		log.Info("Discovery disabled - no API key configured")
	}

	return &DiscoveryClientHandle{Client: client}, nil
}
