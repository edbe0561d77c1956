// Package http exposes the supply-chain operations over an Echo server.
//
// Every route runs behind the JWT middleware, so handlers always see an
// authenticated account snapshot. Authorization is checked per route through
// the domain policy before any use case runs.
package http

import (
	"context"
	"net/http"
	"slices"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/account"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/shipping"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use case handlers the server dispatches to.
type Handlers struct {
	PlaceOrder            commands.PlaceOrderCommandHandler
	EditOrder             commands.EditOrderCommandHandler
	UpdateOrderStatus     commands.UpdateOrderStatusCommandHandler
	BulkUpdateOrderStatus commands.BulkUpdateOrderStatusCommandHandler
	AdjustStock           commands.AdjustStockCommandHandler
	SetStockCounts        commands.SetStockCountsCommandHandler
	RemoveStock           commands.RemoveStockCommandHandler
	CreateProduct         commands.CreateProductCommandHandler
	DeleteProduct         commands.DeleteProductCommandHandler
	CreateDelivery        commands.CreateDeliveryCommandHandler

	GetOrders        queries.GetOrdersQueryHandler
	GetStockCounts   queries.GetStockCountsQueryHandler
	GetStockQuantity queries.GetStockQuantityQueryHandler
}

// AccountRemover deletes a user account. Satisfied by the user repository.
type AccountRemover interface {
	Remove(ctx context.Context, id kernel.UUID) error
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers   Handlers
	policy     services.AuthorizationPolicy
	roleSource account.RoleSource
	accounts   AccountRemover
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(
	handlers Handlers,
	policy services.AuthorizationPolicy,
	roleSource account.RoleSource,
	accounts AccountRemover,
) *Server {
	return &Server{
		handlers:   handlers,
		policy:     policy,
		roleSource: roleSource,
		accounts:   accounts,
	}
}

// RegisterRoutes mounts all routes behind the authentication middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("", auth)

	g.POST("/product_order/", s.PlaceOrder)
	g.GET("/product_order/", s.GetOrders)
	g.PUT("/product_order/:id", s.EditOrder)
	g.PATCH("/product_order/:id", s.UpdateOrderStatus)
	g.PATCH("/product_order/bulk-update-status/", s.BulkUpdateOrderStatus)

	g.GET("/factory_warehouse/product_counts/", s.GetStockCounts)
	g.GET("/factory_warehouse/product_counts/:product_id", s.GetStockQuantity)
	g.POST("/factory_warehouse/product_counts/", s.ReceiveStock)
	g.PUT("/factory_warehouse/product_counts/", s.SetStockCounts)
	g.DELETE("/factory_warehouse/product_counts/", s.RemoveStock)

	g.POST("/product/", s.CreateProduct)
	g.DELETE("/product/:id", s.DeleteProduct)

	g.POST("/delivery/", s.CreateDelivery)

	g.GET("/user_info/", s.UserInfo)
	g.DELETE("/user/:id", s.DeleteUser)
}

type placeOrderRequest struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	SalePointID string `json:"sale_point_id,omitempty"`
}

type orderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// PlaceOrder handles POST /product_order/ - places an order against factory stock.
func (s *Server) PlaceOrder(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionPlaceOrder); err != nil {
		return respondError(c, err)
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(c, "Invalid product_id: "+err.Error())
	}

	salePointID, err := s.callerSalePoint(user, req.SalePointID)
	if err != nil {
		return respondError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, salePointID, productID, req.Quantity)
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, orderResponse{
		OrderID: orderID.String(),
		Status:  order.InProcessing.String(),
	})
}

type orderListItem struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	SalePointID string    `json:"sale_point_id"`
	Quantity    int       `json:"quantity"`
	PlacedAt    time.Time `json:"placed_at"`
	Status      string    `json:"status"`
}

// GetOrders handles GET /product_order/ - lists the caller's sale-point orders.
func (s *Server) GetOrders(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionReadCatalog); err != nil {
		return respondError(c, err)
	}

	salePointIDs := user.SalePointIDs()
	if len(salePointIDs) == 0 {
		return c.JSON(http.StatusOK, []orderListItem{})
	}

	query, err := queries.NewGetOrdersQuery(salePointIDs)
	if err != nil {
		return respondError(c, err)
	}

	rows, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]orderListItem, len(rows))
	for i, row := range rows {
		response[i] = orderListItem{
			ID:          row.ID.String(),
			ProductID:   row.ProductID.String(),
			SalePointID: row.SalePointID.String(),
			Quantity:    row.Quantity,
			PlacedAt:    row.PlacedAt,
			Status:      row.Status,
		}
	}

	return c.JSON(http.StatusOK, response)
}

type editOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// EditOrder handles PUT /product_order/:id - replaces an order's contents.
// Orders that have left processing are locked and respond with 400.
func (s *Server) EditOrder(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionEditOrder); err != nil {
		return respondError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	var req editOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(c, "Invalid product_id: "+err.Error())
	}

	cmd, err := commands.NewEditOrderCommand(orderID, productID, req.Quantity)
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.EditOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /product_order/:id - overwrites one order's status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionUpdateOrderStatus); err != nil {
		return respondError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponse{
		OrderID: orderID.String(),
		Status:  status.String(),
	})
}

type bulkStatusRequestItem struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type bulkStatusResponse struct {
	Updated int `json:"updated"`
}

// BulkUpdateOrderStatus handles PATCH /product_order/bulk-update-status/.
// All items apply in one transaction; the first bad item undoes everything.
func (s *Server) BulkUpdateOrderStatus(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionUpdateOrderStatus); err != nil {
		return respondError(c, err)
	}

	var req []bulkStatusRequestItem
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	items := make([]commands.BulkStatusItem, 0, len(req))
	for _, item := range req {
		orderID, err := kernel.UUIDFromString(item.ID)
		if err != nil {
			return badRequest(c, "Invalid order id: "+err.Error())
		}

		status, err := order.StatusFromString(item.Status)
		if err != nil {
			return badRequest(c, "Invalid status: "+err.Error())
		}

		items = append(items, commands.BulkStatusItem{OrderID: orderID, Status: status})
	}

	cmd, err := commands.NewBulkUpdateOrderStatusCommand(items)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.handlers.BulkUpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, bulkStatusResponse{Updated: len(items)})
}

type stockCountItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type stockCountRow struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// GetStockCounts handles GET /factory_warehouse/product_counts/ - lists the
// caller's factory warehouse.
func (s *Server) GetStockCounts(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionReadCatalog); err != nil {
		return respondError(c, err)
	}

	factoryID, err := s.callerFactory(user, "")
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetStockCountsQuery(factoryID)
	if err != nil {
		return respondError(c, err)
	}

	rows, err := s.handlers.GetStockCounts.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]stockCountRow, len(rows))
	for i, row := range rows {
		response[i] = stockCountRow{
			ProductID:   row.ProductID.String(),
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetStockQuantity handles GET /factory_warehouse/product_counts/:product_id.
// Products without a ledger row report zero.
func (s *Server) GetStockQuantity(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionReadCatalog); err != nil {
		return respondError(c, err)
	}

	productID, err := kernel.UUIDFromString(c.Param("product_id"))
	if err != nil {
		return badRequest(c, "Invalid product_id: "+err.Error())
	}

	factoryID, err := s.callerFactory(user, "")
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetStockQuantityQuery(factoryID, productID)
	if err != nil {
		return respondError(c, err)
	}

	quantity, err := s.handlers.GetStockQuantity.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, stockCountItem{
		ProductID: productID.String(),
		Quantity:  quantity,
	})
}

// ReceiveStock handles POST /factory_warehouse/product_counts/ - credits the
// caller's factory ledger with produced quantities.
func (s *Server) ReceiveStock(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionMutateStock); err != nil {
		return respondError(c, err)
	}

	factoryID, items, err := s.bindStockItems(c, user)
	if err != nil {
		return err
	}

	for _, item := range items {
		productID, parseErr := kernel.UUIDFromString(item.ProductID)
		if parseErr != nil {
			return badRequest(c, "Invalid product_id: "+parseErr.Error())
		}

		cmd, cmdErr := commands.NewAdjustStockCommand(factoryID, productID, item.Quantity)
		if cmdErr != nil {
			return badRequest(c, cmdErr.Error())
		}

		if handleErr := s.handlers.AdjustStock.Handle(c.Request().Context(), cmd); handleErr != nil {
			return respondError(c, handleErr)
		}
	}

	return c.NoContent(http.StatusCreated)
}

// SetStockCounts handles PUT /factory_warehouse/product_counts/ - declares
// absolute quantities; zero counts prune their ledger rows.
func (s *Server) SetStockCounts(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionMutateStock); err != nil {
		return respondError(c, err)
	}

	factoryID, items, err := s.bindStockItems(c, user)
	if err != nil {
		return err
	}

	counts := make([]commands.StockCount, 0, len(items))
	for _, item := range items {
		productID, parseErr := kernel.UUIDFromString(item.ProductID)
		if parseErr != nil {
			return badRequest(c, "Invalid product_id: "+parseErr.Error())
		}

		counts = append(counts, commands.StockCount{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewSetStockCountsCommand(factoryID, counts)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.handlers.SetStockCounts.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type removeStockRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// RemoveStock handles DELETE /factory_warehouse/product_counts/ - drops the
// ledger rows for the given products. Unstocked products are skipped.
func (s *Server) RemoveStock(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionMutateStock); err != nil {
		return respondError(c, err)
	}

	var req removeStockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	factoryID, err := s.callerFactory(user, "")
	if err != nil {
		return respondError(c, err)
	}

	productIDs := make([]kernel.UUID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		productID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(c, "Invalid product_id: "+parseErr.Error())
		}
		productIDs = append(productIDs, productID)
	}

	cmd, err := commands.NewRemoveStockCommand(factoryID, productIDs)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.handlers.RemoveStock.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type createProductRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Weight      string `json:"weight"`
	CategoryID  string `json:"category_id,omitempty"`
	Description string `json:"description,omitempty"`
	FactoryID   string `json:"factory_id,omitempty"`
}

type createProductResponse struct {
	ProductID string `json:"product_id"`
}

// CreateProduct handles POST /product/ - registers a product and adds it to
// the creator's factory catalog.
func (s *Server) CreateProduct(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionCreateProduct); err != nil {
		return respondError(c, err)
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return badRequest(c, "Invalid price: "+err.Error())
	}

	weight, err := kernel.MoneyFromString(req.Weight)
	if err != nil {
		return badRequest(c, "Invalid weight: "+err.Error())
	}

	var categoryID *kernel.UUID
	if req.CategoryID != "" {
		parsed, parseErr := kernel.UUIDFromString(req.CategoryID)
		if parseErr != nil {
			return badRequest(c, "Invalid category_id: "+parseErr.Error())
		}
		categoryID = &parsed
	}

	factoryID, err := s.callerFactory(user, req.FactoryID)
	if err != nil {
		return respondError(c, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, factoryID, req.Name, price, weight, categoryID, req.Description)
	if err != nil {
		return badRequest(c, "Invalid product data: "+err.Error())
	}

	if err = s.handlers.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, createProductResponse{ProductID: productID.String()})
}

// DeleteProduct handles DELETE /product/:id. Products still carried by a
// factory or referenced by orders respond with 400.
func (s *Server) DeleteProduct(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionDeleteProduct); err != nil {
		return respondError(c, err)
	}

	productID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.handlers.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type createDeliveryRequest struct {
	CarrierID string   `json:"carrier_id,omitempty"`
	Cost      string   `json:"cost"`
	Date      string   `json:"date"`
	Priority  int      `json:"priority"`
	OrderIDs  []string `json:"order_ids"`
}

type createDeliveryResponse struct {
	DeliveryID string `json:"delivery_id"`
}

// CreateDelivery handles POST /delivery/ - records a shipment and links it to
// existing orders.
func (s *Server) CreateDelivery(c echo.Context) error {
	user := currentUser(c)
	if err := s.policy.Authorize(user, services.ActionCreateDelivery); err != nil {
		return respondError(c, err)
	}

	var req createDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cost, err := kernel.MoneyFromString(req.Cost)
	if err != nil {
		return badRequest(c, "Invalid cost: "+err.Error())
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return badRequest(c, "Invalid date: "+err.Error())
	}

	carrierID, err := s.callerCarrier(user, req.CarrierID)
	if err != nil {
		return respondError(c, err)
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		orderID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(c, "Invalid order id: "+parseErr.Error())
		}
		orderIDs = append(orderIDs, orderID)
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, carrierID, cost, date, shipping.Priority(req.Priority), orderIDs)
	if err != nil {
		return badRequest(c, "Invalid delivery data: "+err.Error())
	}

	if err = s.handlers.CreateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, createDeliveryResponse{DeliveryID: deliveryID.String()})
}

type userInfoResponse struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Groups   []string `json:"groups"`
	IsAdmin  bool     `json:"is_admin"`
}

// UserInfo handles GET /user_info/ - describes the authenticated caller.
func (s *Server) UserInfo(c echo.Context) error {
	user := currentUser(c)
	if err := user.Validate(); err != nil {
		return respondError(c, err)
	}

	groups := user.Groups()
	if groups == nil {
		groups = []string{}
	}

	return c.JSON(http.StatusOK, userInfoResponse{
		Username: user.Username(),
		Email:    user.Email(),
		Role:     account.ResolveRole(user, s.roleSource).String(),
		Groups:   groups,
		IsAdmin:  user.IsAdmin(),
	})
}

// DeleteUser handles DELETE /user/:id. Users may delete themselves; admins
// may delete anyone.
func (s *Server) DeleteUser(c echo.Context) error {
	user := currentUser(c)

	targetID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid user id: "+err.Error())
	}

	if err = s.policy.AuthorizeUserDelete(user, targetID); err != nil {
		return respondError(c, err)
	}

	if err = s.accounts.Remove(c.Request().Context(), targetID); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) bindStockItems(c echo.Context, user account.User) (kernel.UUID, []stockCountItem, error) {
	var items []stockCountItem
	if err := c.Bind(&items); err != nil {
		return kernel.UUID{}, nil, badRequest(c, "Invalid request body")
	}

	factoryID, err := s.callerFactory(user, "")
	if err != nil {
		return kernel.UUID{}, nil, respondError(c, err)
	}

	return factoryID, items, nil
}

// callerFactory resolves the factory a stock or catalog mutation applies to.
// An explicit factory id is honored only for admins and for the caller's own
// affiliations; otherwise the caller's first affiliation applies.
func (s *Server) callerFactory(user account.User, explicit string) (kernel.UUID, error) {
	return s.resolveAffiliation(user, user.FactoryIDs(), explicit, "factory_id")
}

func (s *Server) callerSalePoint(user account.User, explicit string) (kernel.UUID, error) {
	return s.resolveAffiliation(user, user.SalePointIDs(), explicit, "sale_point_id")
}

func (s *Server) callerCarrier(user account.User, explicit string) (kernel.UUID, error) {
	return s.resolveAffiliation(user, user.CarrierIDs(), explicit, "carrier_id")
}

func (s *Server) resolveAffiliation(
	user account.User,
	affiliated []kernel.UUID,
	explicit string,
	paramName string,
) (kernel.UUID, error) {
	if explicit != "" {
		id, err := kernel.UUIDFromString(explicit)
		if err != nil {
			return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
		}

		if account.ResolveRole(user, s.roleSource) == account.RoleAdmin {
			return id, nil
		}
		if slices.ContainsFunc(affiliated, id.IsEqual) {
			return id, nil
		}

		return kernel.UUID{}, services.ErrPermissionDenied
	}

	if len(affiliated) > 0 {
		return affiliated[0], nil
	}

	return kernel.UUID{}, services.ErrPermissionDenied
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
