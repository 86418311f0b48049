package queries

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBeerByIDQueryHandler retrieves a single beer from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetBeerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetBeerByIDQueryHandler creates a handler for single-beer lookups.
// Requires a GORM database connection for query execution.
func NewGetBeerByIDQueryHandler(db *gorm.DB) GetBeerByIDQueryHandler {
	return GetBeerByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns (nil, nil) when the beer does not
// exist; absence of a catalog record is an ordinary answer here, not an
// error.
func (h GetBeerByIDQueryHandler) Handle(
	ctx context.Context,
	query GetBeerByIDQuery,
) (*GetBeerByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

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
		WHERE id = ?
	`, query.BeerID().Bytes()).Rows()
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

	var beerResp GetBeerByIDQueryResponse
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

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &beerResp, nil
}
