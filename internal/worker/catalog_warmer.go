package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// CatalogRefresher reloads the catalog and reports how many tools it holds.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// CatalogWarmer keeps the cached catalog populated so page renders rarely
// fall through to the source.
type CatalogWarmer struct {
	catalog  CatalogRefresher
	interval time.Duration
	log      *zap.Logger
}

func NewCatalogWarmer(catalog CatalogRefresher, interval time.Duration, log *zap.Logger) *CatalogWarmer {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogWarmer{
		catalog:  catalog,
		interval: interval,
		log:      log.Named("catalog_warmer"),
	}
}

// StartWorker warms once immediately and then on every tick until ctx is
// cancelled.
func (w *CatalogWarmer) StartWorker(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.warm(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CatalogWarmer) warm(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	n, err := w.catalog.Refresh(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		w.log.Warn("catalog refresh failed", zap.Error(err))
		return
	}
	w.log.Debug("catalog warmed", zap.Int("tools", n))
}
