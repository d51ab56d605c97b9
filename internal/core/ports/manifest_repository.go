package ports

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
)

// ManifestRepository defines the persistence contract for manifest aggregates.
// One manifest exists per (route, date); repositories enforce that key with a
// unique index so generation stays idempotent under concurrent runs.
type ManifestRepository interface {
	// Add persists a new manifest with its stops. A duplicate (route, date)
	// insert returns a ConflictError.
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	// Get retrieves a manifest aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)

	// GetByRouteAndDate retrieves the manifest for one route on one calendar
	// date, or ErrObjectNotFound if none was generated yet.
	GetByRouteAndDate(ctx context.Context, routeID kernel.UUID, date time.Time) (*manifest.Manifest, error)

	// AddStops inserts the given stops for an existing manifest, skipping
	// positions that are already present. Used when regeneration finds new
	// template stops on the route.
	AddStops(ctx context.Context, manifestID kernel.UUID, stops []*manifest.Stop) error

	// UpdateStop persists one stop's resolution. The visit timestamp is
	// write-once: an already stamped stop keeps its original value.
	UpdateStop(ctx context.Context, stop *manifest.Stop) error

	// UpdateStatus persists the manifest's lifecycle state.
	UpdateStatus(ctx context.Context, aggregate *manifest.Manifest) error

	// GetUnfinishedBefore retrieves manifests dated before the given day that
	// are not yet completed, the input to the manifest alert rule.
	GetUnfinishedBefore(ctx context.Context, day time.Time) ([]*manifest.Manifest, error)
}
