// Package callback delivers order status notifications to customer supplied
// webhook URLs.
package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
)

const defaultTimeout = 10 * time.Second

// statusPayload is the JSON body posted to the callback URL.
type statusPayload struct {
	OrderID     string `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
}

// HTTPNotifier implements CallbackNotifier over plain HTTP POST. Any
// non-2xx response counts as a failed delivery so the dispatch job retries
// on its next run.
type HTTPNotifier struct {
	client *http.Client
}

// NewHTTPNotifier creates a notifier with its own timeout-bounded client.
func NewHTTPNotifier() *HTTPNotifier {
	return &HTTPNotifier{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Notify posts the order's identifier and status to the given URL.
func (n *HTTPNotifier) Notify(ctx context.Context, url string, orderID kernel.UUID, status order.Status) error {
	body, err := json.Marshal(statusPayload{
		OrderID:     orderID.String(),
		OrderStatus: status.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("callback to %s returned status %d", url, resp.StatusCode)
	}

	return nil
}
