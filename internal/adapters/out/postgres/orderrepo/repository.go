package orderrepo

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and opening ledger event.
// A duplicate (unit, order number) pair surfaces as a ConflictError so the
// creation use case can retry with the next number.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", aggregate.OrderNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items and full event ledger.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists a status transition with its pending ledger events.
// The status write carries the previous status in its WHERE clause; when a
// concurrent writer already moved the order, zero rows match and the method
// returns a ConflictError without inserting anything.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, previous order.Sector) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(previous)).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	for _, item := range aggregate.Items() {
		itemDTO := itemFromDomain(aggregate.ID(), item)
		err := r.db.WithContext(ctx).Model(&OrderItemDTO{}).
			Where("id = ?", itemDTO.ID).
			Update("recipe_id", itemDTO.RecipeID).Error
		if err != nil {
			return err
		}
	}

	if err := r.insertPending(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AppendEvents persists the aggregate's pending ledger events without
// touching the order row.
func (r *GormOrderRepository) AppendEvents(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.insertPending(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// CountCreatedInYear counts the unit's orders opened in the given calendar
// year.
func (r *GormOrderRepository) CountCreatedInYear(ctx context.Context, unitID kernel.UUID, year int) (int, error) {
	if err := unitID.Validate(); err != nil {
		return 0, err
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("unit_id = ? AND created_at >= ? AND created_at < ?", unitID.Bytes(), yearStart, yearEnd).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// GetActiveBefore retrieves non-terminal orders promised before the deadline.
func (r *GormOrderRepository) GetActiveBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence")
		}).
		Where("status NOT IN (?, ?) AND promised_at < ?", order.Delivered, order.Cancelled, deadline).
		Order("promised_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

func (r *GormOrderRepository) insertPending(ctx context.Context, aggregate *order.Order) error {
	pending := aggregate.PendingEvents()
	if len(pending) == 0 {
		return nil
	}

	dtos := make([]OrderEventDTO, 0, len(pending))
	for _, event := range pending {
		dtos = append(dtos, eventFromDomain(event))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}
