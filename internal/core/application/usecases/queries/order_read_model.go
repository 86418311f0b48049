package queries

import (
	"context"
	"database/sql"
	"time"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderQueryResponse is the read model shared by all order queries. Lines
// carry catalog fields denormalized from the beers table so a caller can
// render an order without further lookups.
type OrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Status       order.Status
	CallbackURL  string
	CallbackSent bool
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Lines        []OrderLineQueryResponse
}

// OrderLineQueryResponse is one line of an order read model.
type OrderLineQueryResponse struct {
	ID        kernel.UUID
	BeerID    kernel.UUID
	BeerName  string
	BeerStyle string
	UPC       string
	Quantity  int
}

// readOrderLines fetches the lines of one order in their original request
// order, joined with the beers table for catalog fields. A line whose beer
// has since been deleted from the catalog still appears, with empty catalog
// fields.
func readOrderLines(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]OrderLineQueryResponse, error) {
	lines := make([]OrderLineQueryResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.beer_id,
			COALESCE(b.name, ''),
			COALESCE(b.style, ''),
			COALESCE(b.upc, ''),
			l.quantity
		FROM order_lines l
		LEFT JOIN beers b ON b.id = l.beer_id
		WHERE l.order_id = ?
		ORDER BY l.line_no
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineResp OrderLineQueryResponse
		var id, beerID uuid.UUID

		err = rows.Scan(
			&id,
			&beerID,
			&lineResp.BeerName,
			&lineResp.BeerStyle,
			&lineResp.UPC,
			&lineResp.Quantity,
		)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		lineResp.ID = lineID

		lineBeerID, idErr := kernel.UUIDFromBytes(beerID[:])
		if idErr != nil {
			return nil, idErr
		}
		lineResp.BeerID = lineBeerID

		lines = append(lines, lineResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// scanOrderRow reads one orders row into the shared read model, leaving
// Lines empty for the caller to fill.
func scanOrderRow(rows *sql.Rows) (OrderQueryResponse, uuid.UUID, error) {
	var orderResp OrderQueryResponse
	var id, customerID uuid.UUID
	var status string

	err := rows.Scan(
		&id,
		&customerID,
		&status,
		&orderResp.CallbackURL,
		&orderResp.CallbackSent,
		&orderResp.Version,
		&orderResp.CreatedAt,
		&orderResp.UpdatedAt,
	)
	if err != nil {
		return OrderQueryResponse{}, uuid.UUID{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderQueryResponse{}, uuid.UUID{}, err
	}
	orderResp.ID = orderID

	orderCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderQueryResponse{}, uuid.UUID{}, err
	}
	orderResp.CustomerID = orderCustomerID

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderQueryResponse{}, uuid.UUID{}, err
	}
	orderResp.Status = orderStatus

	return orderResp, id, nil
}

const orderSelectColumns = `
		id,
		customer_id,
		status,
		callback_url,
		callback_sent,
		version,
		created_at,
		updated_at`
