package queries

import (
	"context"

	"beerorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler retrieves one customer's order history.
// The customer must exist: an unknown customer is ObjectNotFound, while a
// known customer with no orders yields an empty slice. The two cases are
// deliberately distinguishable.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for per-customer
// order listings.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the listing, oldest order first.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var customerCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(1) FROM customers WHERE id = ?
	`, query.CustomerID().Bytes()).Scan(&customerCount).Error
	if err != nil {
		return nil, err
	}
	if customerCount == 0 {
		return nil, errs.NewObjectNotFoundError("customerID", query.CustomerID())
	}

	orders := make([]OrderQueryResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderSelectColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at, id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, rawID, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
		orderIDs = append(orderIDs, rawID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	_ = rows.Close()

	for i := range orders {
		orders[i].Lines, err = readOrderLines(ctx, h.db, orderIDs[i])
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}
