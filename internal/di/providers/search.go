package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/triploapp/triplo-server/internal/config"
	"github.com/triploapp/triplo-server/internal/logger"
	"github.com/triploapp/triplo-server/internal/search"
	"github.com/triploapp/triplo-server/internal/service"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.SearchIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve search index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewSearchIndex(search.Options{
		DataPath: cfg.Data.BasePath,
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	docCount, _ := index.DocumentCount()
	log.Info("Search index initialized", "documents", docCount)

	return &SearchIndexHandle{SearchIndex: index}, nil
}

// ProvideSearchService provides the search service.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSearchService(indexHandle.SearchIndex, log.Logger), nil
}

// RebuildSearchIndex replaces the index contents with the current trip
// collection. The index is derived data; the trip store is the source of
// truth, so a fresh build at startup absorbs any edits made while the
// server was down.
func RebuildSearchIndex(i do.Injector) error {
	searchService := do.MustInvoke[*service.SearchService](i)
	tripService := do.MustInvoke[*service.TripService](i)
	log := do.MustInvoke[*logger.Logger](i)

	ctx := context.Background()
	trips, err := tripService.List(ctx)
	if err != nil {
		return err
	}

	if err := searchService.ReindexAll(trips); err != nil {
		return err
	}

	count, _ := searchService.DocumentCount()
	log.Info("Search index rebuilt", "trips", len(trips), "documents", count)
	return nil
}
