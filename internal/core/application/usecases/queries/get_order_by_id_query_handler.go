package queries

import (
	"context"

	"beerorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order with its lines from the
// database. Unlike the catalog lookups, a missing order is a hard failure:
// callers on the order path always hold an identifier that is supposed to
// exist.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFound when the order does
// not exist. Lines come back in their original request order.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (*OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderSelectColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	orderResp, rawID, err := scanOrderRow(rows)
	if err != nil {
		return nil, err
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	_ = rows.Close()

	orderResp.Lines, err = readOrderLines(ctx, h.db, rawID)
	if err != nil {
		return nil, err
	}

	return &orderResp, nil
}
