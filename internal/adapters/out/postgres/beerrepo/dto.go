// Package beerrepo provides data transfer objects and mapping functions for
// beer catalog persistence. It implements the repository pattern for the beer
// aggregate, handling conversion between domain entities and database rows.
package beerrepo

import (
	"time"

	"beerorders/internal/core/domain/model/beer"
	"beerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BeerDTO represents the database structure for persisting beer aggregates.
// Price is stored as a fixed-point numeric column; Version carries the
// optimistic-concurrency counter.
type BeerDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"index"`
	Style          string
	UPC            string          `gorm:"column:upc;index"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2)"`
	QuantityOnHand int
	Version        int
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for beer entities.
func (BeerDTO) TableName() string {
	return "beers"
}

// fromDomain converts a beer domain aggregate to its database representation.
func fromDomain(aggregate *beer.Beer) BeerDTO {
	return BeerDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Style:          aggregate.Style(),
		UPC:            aggregate.UPC(),
		Price:          aggregate.Price(),
		QuantityOnHand: aggregate.QuantityOnHand(),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to a beer domain aggregate using
// RestoreBeer, preserving the stored version.
func toDomain(dto BeerDTO) (*beer.Beer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return beer.RestoreBeer(id, dto.Name, dto.Style, dto.UPC, dto.Price, dto.QuantityOnHand, dto.Version)
}
