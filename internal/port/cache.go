package port

import (
	"context"

	"github.com/olyamironova/matching-core/internal/domain"
)

// DepthCache holds the latest aggregated ladder for market-data reads,
// so depth queries do not have to synchronize with the engine.
type DepthCache interface {
	SetDepth(ctx context.Context, instrument string, d *domain.Depth) error
	GetDepth(ctx context.Context, instrument string) (*domain.Depth, error)
	Invalidate(ctx context.Context, instrument string) error
}
