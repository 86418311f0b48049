// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"beerorders/internal/core/domain/model/customer"
	"beerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. Email is unique; a customer without an email is stored as NULL
// so absent addresses never collide with each other.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	Email     *string   `gorm:"uniqueIndex"`
	Phone     string
	Version   int
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database
// representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	var email *string
	if aggregate.Email() != "" {
		e := aggregate.Email()
		email = &e
	}

	return CustomerDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Email:   email,
		Phone:   aggregate.Phone(),
		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email := ""
	if dto.Email != nil {
		email = *dto.Email
	}

	return customer.RestoreCustomer(id, dto.Name, email, dto.Phone, dto.Version)
}
