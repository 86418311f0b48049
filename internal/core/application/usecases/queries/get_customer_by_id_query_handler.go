package queries

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerByIDQueryHandler retrieves a single customer from the database.
type GetCustomerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByIDQueryHandler creates a handler for single-customer lookups.
func NewGetCustomerByIDQueryHandler(db *gorm.DB) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns (nil, nil) when the customer does not
// exist.
func (h GetCustomerByIDQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByIDQuery,
) (*GetCustomerByIDQueryResponse, error) {
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
		WHERE id = ?
	`, query.CustomerID().Bytes()).Rows()
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

	var customerResp GetCustomerByIDQueryResponse
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
