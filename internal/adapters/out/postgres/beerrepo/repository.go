package beerrepo

import (
	"context"
	"errors"

	"beerorders/internal/core/domain/model/beer"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBeerRepository implements BeerRepository using GORM.
type GormBeerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBeerRepository creates a new GORM beer repository.
func NewGormBeerRepository(db *gorm.DB, tracker aggregateTracker) *GormBeerRepository {
	return &GormBeerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new beer to the database with version 0.
func (r *GormBeerRepository) Add(ctx context.Context, aggregate *beer.Beer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing beer with a compare-and-swap on the version the
// aggregate was loaded at. A write that matches no row means either the beer
// is gone or a concurrent update won; the two cases are told apart with a
// follow-up existence check.
func (r *GormBeerRepository) Update(ctx context.Context, aggregate *beer.Beer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BeerDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"name":             dto.Name,
			"style":            dto.Style,
			"upc":              dto.UPC,
			"price":            dto.Price,
			"quantity_on_hand": dto.QuantityOnHand,
			"version":          aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&BeerDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("beer", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("beer", aggregate.ID().String(), aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a beer by ID.
func (r *GormBeerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BeerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("beer", id.String())
	}

	return nil
}

// Get retrieves a beer by ID.
func (r *GormBeerRepository) Get(ctx context.Context, id kernel.UUID) (*beer.Beer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BeerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("beer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
