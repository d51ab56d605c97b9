package manifestrepo

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormManifestRepository implements ManifestRepository using GORM.
type GormManifestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormManifestRepository creates a new GORM manifest repository.
func NewGormManifestRepository(db *gorm.DB, tracker aggregateTracker) *GormManifestRepository {
	return &GormManifestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new manifest with its stops. A second insert for the same
// (route, date) violates the unique index and surfaces as a ConflictError.
func (r *GormManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("manifest", aggregate.RouteID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a manifest by ID with its stops ordered by position.
func (r *GormManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManifestDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manifest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRouteAndDate retrieves the manifest for one route on one calendar date.
func (r *GormManifestRepository) GetByRouteAndDate(
	ctx context.Context,
	routeID kernel.UUID,
	date time.Time,
) (*manifest.Manifest, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dto ManifestDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "route_id = ? AND date = ?", routeID.Bytes(), manifest.NormalizeDate(date)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manifest", routeID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddStops inserts new stops for an existing manifest. Positions already
// occupied are skipped via ON CONFLICT DO NOTHING, so concurrent
// regenerations cannot duplicate a stop.
func (r *GormManifestRepository) AddStops(ctx context.Context, manifestID kernel.UUID, stops []*manifest.Stop) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	if len(stops) == 0 {
		return nil
	}

	dtos := make([]ManifestStopDTO, 0, len(stops))
	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, stopFromDomain(manifestID, stop))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}

// UpdateStop persists one stop's resolution. The visit timestamp is guarded
// with COALESCE so a re-mark can never rewrite the original visit time, even
// if a stale aggregate slips through.
func (r *GormManifestRepository) UpdateStop(ctx context.Context, stop *manifest.Stop) error {
	if err := stop.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ManifestStopDTO{}).
		Where("id = ?", stop.ID().Bytes()).
		Updates(map[string]any{
			"status":     int(stop.Status()),
			"visited_at": gorm.Expr("COALESCE(visited_at, ?)", stop.VisitedAt()),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stop", stop.ID().String())
	}

	return nil
}

// UpdateStatus persists the manifest's lifecycle state.
func (r *GormManifestRepository) UpdateStatus(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ManifestDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("manifest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetUnfinishedBefore retrieves manifests dated before the given day that
// never reached completion.
func (r *GormManifestRepository) GetUnfinishedBefore(ctx context.Context, day time.Time) ([]*manifest.Manifest, error) {
	var dtos []ManifestDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("date < ? AND status != ?", manifest.NormalizeDate(day), manifest.StatusCompleted).
		Order("date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	manifests := make([]*manifest.Manifest, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		manifests = append(manifests, aggregate)
	}
	return manifests, nil
}
