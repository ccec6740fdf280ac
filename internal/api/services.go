package api

import (
	"github.com/triploapp/triplo-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Trip      *service.TripService
	Discovery *service.DiscoveryService
	Search    *service.SearchService
}
