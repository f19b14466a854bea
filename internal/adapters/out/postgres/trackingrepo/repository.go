package trackingrepo

import (
	"context"
	"errors"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements ports.TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tracking record. Unique-key violations are classified as
// duplicate-identifier errors; the caller distinguishes a number collision
// (retryable) from an order that is already tracked (idempotent create).
func (r *GormTrackingRepository) Add(ctx context.Context, aggregate *tracking.Tracking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateIdentifierErrorWithCause("trackingNumber", dto.Number, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing tracking record.
func (r *GormTrackingRepository) Update(ctx context.Context, aggregate *tracking.Tracking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TrackingDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tracking", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tracking record by ID.
func (r *GormTrackingRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Tracking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByOrderID retrieves the tracking record that belongs to an order.
func (r *GormTrackingRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "order_id = ?", orderID.Bytes(), orderID.String())
}

// GetByNumber retrieves a tracking record by its public tracking number.
func (r *GormTrackingRepository) GetByNumber(ctx context.Context, number tracking.Number) (*tracking.Tracking, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "number = ?", number.String(), number.String())
}

func (r *GormTrackingRepository) getOne(ctx context.Context, query string, arg any, label string) (*tracking.Tracking, error) {
	var dto TrackingDTO
	if err := r.db.WithContext(ctx).First(&dto, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", label)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormTrackingHistoryRepository implements the append-only history ledger.
type GormTrackingHistoryRepository struct {
	db *gorm.DB
}

// NewGormTrackingHistoryRepository creates a new GORM history repository.
func NewGormTrackingHistoryRepository(db *gorm.DB) *GormTrackingHistoryRepository {
	return &GormTrackingHistoryRepository{db: db}
}

// Append inserts a new history event. Events are immutable once written.
func (r *GormTrackingHistoryRepository) Append(ctx context.Context, event *tracking.HistoryEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := eventFromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListFor returns all events for a tracking record, newest first.
func (r *GormTrackingHistoryRepository) ListFor(ctx context.Context, trackingID kernel.UUID) ([]*tracking.HistoryEvent, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEventDTO
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&dtos, "tracking_id = ?", trackingID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.HistoryEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := eventToDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
