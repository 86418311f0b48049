// Package http exposes the order management API over echo. Handlers bind
// requests, run commands or queries, and translate domain errors to HTTP
// status codes in one place.
package http

import (
	"errors"
	"net/http"
	"time"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/application/usecases/queries"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateBeer     commands.CreateBeerCommandHandler
	UpdateBeer     commands.UpdateBeerCommandHandler
	DeleteBeer     commands.DeleteBeerCommandHandler
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler
	CreateOrder    commands.CreateOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler

	GetBeerByID        queries.GetBeerByIDQueryHandler
	GetAllBeers        queries.GetAllBeersQueryHandler
	GetCustomerByID    queries.GetCustomerByIDQueryHandler
	GetAllCustomers    queries.GetAllCustomersQueryHandler
	GetCustomerByEmail queries.GetCustomerByEmailQueryHandler
	GetOrderByID       queries.GetOrderByIDQueryHandler
	GetAllOrders       queries.GetAllOrdersQueryHandler
	GetOrdersByCust    queries.GetOrdersByCustomerQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/beers", s.CreateBeer)
	api.GET("/beers", s.GetBeers)
	api.GET("/beers/:id", s.GetBeer)
	api.PUT("/beers/:id", s.UpdateBeer)
	api.DELETE("/beers/:id", s.DeleteBeer)

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.GET("/customers/by-email/:email", s.GetCustomerByEmail)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/customer/:customerId", s.GetOrdersByCustomer)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// CurrentStatus and TargetStatus are set only for rejected order
	// state transitions.
	CurrentStatus string `json:"currentStatus,omitempty"`
	TargetStatus  string `json:"targetStatus,omitempty"`
}

// respondError maps domain errors to HTTP status codes. Not-found is 404,
// a rejected state transition is 422, a lost optimistic-concurrency race or
// a uniqueness violation is 409, and validation failures are 400.
func respondError(ctx echo.Context, err error) error {
	var stateErr *order.InvalidOrderStateError
	if errors.As(err, &stateErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:          http.StatusUnprocessableEntity,
			Message:       stateErr.Error(),
			CurrentStatus: stateErr.Current.String(),
			TargetStatus:  stateErr.Target.String(),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseID(ctx echo.Context, param string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(param))
}

// BeerRequest is the payload for creating or replacing a catalog beer.
type BeerRequest struct {
	Name           string          `json:"name"`
	Style          string          `json:"style"`
	UPC            string          `json:"upc"`
	Price          decimal.Decimal `json:"price"`
	QuantityOnHand int             `json:"quantityOnHand"`
}

// BeerResponse is the JSON representation of a catalog beer.
type BeerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Style          string          `json:"style"`
	UPC            string          `json:"upc"`
	Price          decimal.Decimal `json:"price"`
	QuantityOnHand int             `json:"quantityOnHand"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func beerResponseFromRead(r queries.GetBeerByIDQueryResponse) BeerResponse {
	return BeerResponse{
		ID:             r.ID.String(),
		Name:           r.Name,
		Style:          r.Style,
		UPC:            r.UPC,
		Price:          r.Price,
		QuantityOnHand: r.QuantityOnHand,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// CreateBeer handles POST /api/v1/beers.
func (s *Server) CreateBeer(ctx echo.Context) error {
	var req BeerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	beerID := kernel.NewUUID()
	cmd, err := commands.NewCreateBeerCommand(beerID, req.Name, req.Style, req.UPC, req.Price, req.QuantityOnHand)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateBeer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondBeer(ctx, beerID, http.StatusCreated)
}

// GetBeers handles GET /api/v1/beers.
func (s *Server) GetBeers(ctx echo.Context) error {
	beers, err := s.handlers.GetAllBeers.Handle(ctx.Request().Context(), queries.NewGetAllBeersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]BeerResponse, 0, len(beers))
	for _, b := range beers {
		response = append(response, beerResponseFromRead(queries.GetBeerByIDQueryResponse(b)))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBeer handles GET /api/v1/beers/:id.
func (s *Server) GetBeer(ctx echo.Context) error {
	beerID, err := parseID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid beer id")
	}

	return s.respondBeer(ctx, beerID, http.StatusOK)
}

func (s *Server) respondBeer(ctx echo.Context, beerID kernel.UUID, status int) error {
	query, err := queries.NewGetBeerByIDQuery(beerID)
	if err != nil {
		return respondError(ctx, err)
	}

	beerResp, err := s.handlers.GetBeerByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	if beerResp == nil {
		return respondError(ctx, errs.NewObjectNotFoundError("beer", beerID.String()))
	}

	return ctx.JSON(status, beerResponseFromRead(*beerResp))
}

// UpdateBeer handles PUT /api/v1/beers/:id.
func (s *Server) UpdateBeer(ctx echo.Context) error {
	beerID, err := parseID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid beer id")
	}

	var req BeerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateBeerCommand(beerID, req.Name, req.Style, req.UPC, req.Price, req.QuantityOnHand)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateBeer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondBeer(ctx, beerID, http.StatusOK)
}

// DeleteBeer handles DELETE /api/v1/beers/:id.
func (s *Server) DeleteBeer(ctx echo.Context) error {
	beerID, err := parseID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid beer id")
	}

	cmd, err := commands.NewDeleteBeerCommand(beerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteBeer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CustomerRequest is the payload for creating or replacing a customer.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerResponse is the JSON representation of a customer.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func customerResponseFromRead(r queries.GetCustomerByIDQueryResponse) CustomerResponse {
	return CustomerResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, req.Name, req.Email, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCustomer(ctx, customerID, http.StatusCreated)
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.handlers.GetAllCustomers.Handle(ctx.Request().Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		response = append(response, customerResponseFromRead(queries.GetCustomerByIDQueryResponse(c)))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := parseID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	return s.respondCustomer(ctx, customerID, http.StatusOK)
}

func (s *Server) respondCustomer(ctx echo.Context, customerID kernel.UUID, status int) error {
	query, err := queries.NewGetCustomerByIDQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	customerResp, err := s.handlers.GetCustomerByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	if customerResp == nil {
		return respondError(ctx, errs.NewObjectNotFoundError("customer", customerID.String()))
	}

	return ctx.JSON(status, customerResponseFromRead(*customerResp))
}

// GetCustomerByEmail handles GET /api/v1/customers/by-email/:email.
func (s *Server) GetCustomerByEmail(ctx echo.Context) error {
	query, err := queries.NewGetCustomerByEmailQuery(ctx.Param("email"))
	if err != nil {
		return respondError(ctx, err)
	}

	customerResp, err := s.handlers.GetCustomerByEmail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	if customerResp == nil {
		return respondError(ctx, errs.NewObjectNotFoundError("customer", query.Email()))
	}

	return ctx.JSON(http.StatusOK, customerResponseFromRead(queries.GetCustomerByIDQueryResponse(*customerResp)))
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := parseID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	var req CustomerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, req.Name, req.Email, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCustomer(ctx, customerID, http.StatusOK)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := parseID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderLineRequest is one requested line in an order creation payload.
type OrderLineRequest struct {
	BeerID   string `json:"beerId"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CustomerID  string             `json:"customerId"`
	CallbackURL string             `json:"callbackUrl"`
	Lines       []OrderLineRequest `json:"lines"`
}

// OrderLineResponse is one line of an order in JSON form.
type OrderLineResponse struct {
	ID        string `json:"id"`
	BeerID    string `json:"beerId"`
	BeerName  string `json:"beerName"`
	BeerStyle string `json:"beerStyle"`
	UPC       string `json:"upc"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse is the JSON representation of an order with its lines.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customerId"`
	Status      string              `json:"status"`
	CallbackURL string              `json:"callbackUrl,omitempty"`
	Version     int                 `json:"version"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Lines       []OrderLineResponse `json:"lines"`
}

func orderResponseFromRead(r queries.OrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, OrderLineResponse{
			ID:        line.ID.String(),
			BeerID:    line.BeerID.String(),
			BeerName:  line.BeerName,
			BeerStyle: line.BeerStyle,
			UPC:       line.UPC,
			Quantity:  line.Quantity,
		})
	}

	return OrderResponse{
		ID:          r.ID.String(),
		CustomerID:  r.CustomerID.String(),
		Status:      r.Status.String(),
		CallbackURL: r.CallbackURL,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Lines:       lines,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	items := make([]commands.OrderLineItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		beerID, lineErr := kernel.UUIDFromString(line.BeerID)
		if lineErr != nil {
			return badRequest(ctx, "invalid beer id")
		}

		item, lineErr := commands.NewOrderLineItem(beerID, line.Quantity)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, req.CallbackURL, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orderID, http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromRead(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	return s.respondOrder(ctx, orderID, http.StatusOK)
}

func (s *Server) respondOrder(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderResp, err := s.handlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, orderResponseFromRead(*orderResp))
}

// GetOrdersByCustomer handles GET /api/v1/orders/customer/:customerId.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	customerID, err := parseID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetOrdersByCust.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromRead(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orderID, http.StatusOK)
}
