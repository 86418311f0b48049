package queries

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllBeersQueryHandler retrieves the beer catalog from the database.
type GetAllBeersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllBeersQueryHandler creates a handler for catalog listings.
// Requires a GORM database connection for query execution.
func NewGetAllBeersQueryHandler(db *gorm.DB) GetAllBeersQueryHandler {
	return GetAllBeersQueryHandler{db: db}
}

// Handle executes the query to retrieve all beers.
// Results are sorted by name for consistent output; an empty catalog yields
// an empty slice.
func (h GetAllBeersQueryHandler) Handle(
	ctx context.Context,
	query GetAllBeersQuery,
) ([]GetAllBeersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	beers := make([]GetAllBeersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			style,
			upc,
			price,
			quantity_on_hand,
			version,
			created_at,
			updated_at
		FROM beers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var beerResp GetAllBeersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&beerResp.Name,
			&beerResp.Style,
			&beerResp.UPC,
			&beerResp.Price,
			&beerResp.QuantityOnHand,
			&beerResp.Version,
			&beerResp.CreatedAt,
			&beerResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		beerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		beerResp.ID = beerID
		beers = append(beers, beerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return beers, nil
}
