package queries

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler retrieves all customers from the database.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer listings.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers, sorted by name.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetAllCustomersQueryResponse, 0)

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
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var customerResp GetAllCustomersQueryResponse
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
		customers = append(customers, customerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
