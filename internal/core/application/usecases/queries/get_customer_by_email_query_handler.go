package queries

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerByEmailQueryHandler retrieves a customer by email from the
// database. The store holds a unique index on email, so an address resolves
// to at most one customer.
type GetCustomerByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByEmailQueryHandler creates a handler for email lookups.
func NewGetCustomerByEmailQueryHandler(db *gorm.DB) GetCustomerByEmailQueryHandler {
	return GetCustomerByEmailQueryHandler{db: db}
}

// Handle executes the lookup. Returns (nil, nil) when no customer is
// registered under the address.
func (h GetCustomerByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByEmailQuery,
) (*GetCustomerByEmailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			COALESCE(email, ''),
			phone,
			version,
			created_at,
			updated_at
		FROM customers
		WHERE email = ?
		LIMIT 1
	`, query.Email()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var customerResp GetCustomerByEmailQueryResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&customerResp.Name,
		&customerResp.Email,
		&customerResp.Phone,
		&customerResp.Version,
		&customerResp.CreatedAt,
		&customerResp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	customerID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return nil, idErr
	}
	customerResp.ID = customerID

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &customerResp, nil
}
