// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order and its lines are written and read as one
// aggregate: lines never change hands without their order.
package orderrepo

import (
	"time"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as its string form so rows stay readable;
// CallbackSent is indexed for the callback dispatch job's scan.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	Status       string    `gorm:"index"`
	CallbackURL  string
	CallbackSent bool `gorm:"index"`
	Version      int
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
	Lines        []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line. LineNo preserves the original request
// order of the lines within their order.
type LineDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	BeerID   uuid.UUID `gorm:"type:uuid;index"`
	Quantity int
	LineNo   int
	Version  int
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database
// representation, numbering the lines in aggregate order.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:       line.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			BeerID:   line.BeerID().Bytes(),
			Quantity: line.Quantity(),
			LineNo:   i,
			Version:  line.Version(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Status:       aggregate.Status().String(),
		CallbackURL:  aggregate.CallbackURL(),
		CallbackSent: aggregate.CallbackSent(),
		Version:      aggregate.Version(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate. Lines must
// already be sorted by LineNo; the repository's preload guarantees that.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		beerID, lineErr := kernel.UUIDFromBytes(lineDTO.BeerID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(lineID, beerID, lineDTO.Quantity, lineDTO.Version)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, customerID, status, dto.CallbackURL, dto.CallbackSent, dto.Version, lines)
}
