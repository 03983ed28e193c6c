package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/auth"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/service"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, identity entities.Identity, req service.PlaceOrderRequest) (service.PlaceOrderResult, error)
	QuoteCoupon(ctx context.Context, code string, total decimal.Decimal) (entities.Coupon, decimal.Decimal, error)
	RedeemCoupon(ctx context.Context, identity entities.Identity, code string, total decimal.Decimal) (decimal.Decimal, error)
}

type OrderManager interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	OpenOrder(ctx context.Context, identity entities.Identity, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, identity entities.Identity, q service.ListQuery) (entities.OrderPage, error)
	ListVendorOrders(ctx context.Context, identity entities.Identity, q service.ListQuery) (entities.OrderPage, error)
	UpdateOrder(ctx context.Context, identity entities.Identity, orderID string, patch entities.OrderPatch) (entities.Order, error)
	DeleteOrder(ctx context.Context, identity entities.Identity, orderID string) error
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	authn      middleware.Authenticator
	cookieName string
	placer     OrderPlacer
	orders     OrderManager
}

func NewHTTPHandler(logger *slog.Logger, authn middleware.Authenticator, cookieName string, placer OrderPlacer, orders OrderManager) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   validator.New(),
		authn:      authn,
		cookieName: cookieName,
		placer:     placer,
		orders:     orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.authn, h.cookieName))

		r.Post("/orders", h.PlaceOrder)
		r.Get("/orders/{id}", h.GetOrderByID)

		r.Get("/coupons/{code}", h.QuoteCoupon)
		r.Post("/coupons/{code}/redeem", h.RedeemCoupon)

		r.Route("/admin/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Get("/{id}", h.OpenOrder)
			r.Put("/{id}", h.UpdateOrder)
			r.Delete("/{id}", h.DeleteOrder)
		})

		r.Get("/vendor/orders", h.ListVendorOrders)
	})
}

// PlaceOrder creates an order.
// @Summary      Place an order
// @Description  Prices the items, applies an optional coupon, reserves stock and stores the order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order  body      PlaceOrderRequest  true  "Order"
// @Success      201    {object}  PlaceOrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Validation or coupon error"
// @Failure      401    {object}  utils.ErrorResponse "Missing or invalid credential"
// @Failure      403    {object}  utils.ErrorResponse "Email not verified"
// @Failure      409    {object}  utils.ErrorResponse "Coupon already used or stock exhausted"
// @Failure      500    {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body PlaceOrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.placer.PlaceOrder(ctx, middleware.IdentityFrom(ctx), PlaceOrderJSONToRequest(body))
	if err != nil {
		h.writeError(w, r, err, "failed to place order")
		return
	}

	utils.WriteJSON(w, PlaceOrderResponse{
		OrderID:     res.OrderID,
		OrderNo:     res.OrderNo,
		Total:       res.Total.StringFixed(2),
		Backordered: res.Backordered,
	}, http.StatusCreated)
}

// GetOrderByID returns an order.
// @Summary      Get order by id
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		h.writeError(w, r, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// QuoteCoupon prices a coupon without consuming it.
// @Summary      Quote a coupon
// @Tags         coupons
// @Produce      json
// @Param        code   path      string  true  "Coupon code"
// @Param        total  query     number  false "Order subtotal"
// @Success      200    {object}  CouponQuote
// @Failure      400    {object}  utils.ErrorResponse "Coupon expired or bad total"
// @Failure      404    {object}  utils.ErrorResponse "Coupon not found"
// @Failure      500    {object}  utils.ErrorResponse "Internal server error"
// @Router       /coupons/{code} [get]
func (h *HTTPHandler) QuoteCoupon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	total := decimal.Zero
	if raw := r.URL.Query().Get("total"); raw != "" {
		var err error
		total, err = decimal.NewFromString(raw)
		if err != nil {
			utils.WriteError(w, "invalid total", http.StatusBadRequest)
			return
		}
	}

	coupon, amount, err := h.placer.QuoteCoupon(ctx, code, total)
	if errors.Is(err, entities.ErrCouponNotFound) {
		utils.WriteError(w, "coupon not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeError(w, r, err, "failed to quote coupon")
		return
	}

	utils.WriteJSON(w, CouponQuoteToJSON(coupon, amount), http.StatusOK)
}

// RedeemCoupon consumes a coupon for the caller.
// @Summary      Redeem a coupon
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string               true  "Coupon code"
// @Param        body  body      RedeemCouponRequest  true  "Total to price against"
// @Success      200   {object}  RedeemCouponResponse
// @Failure      400   {object}  utils.ErrorResponse "Coupon expired"
// @Failure      401   {object}  utils.ErrorResponse "Missing or invalid credential"
// @Failure      404   {object}  utils.ErrorResponse "Coupon not found"
// @Failure      409   {object}  utils.ErrorResponse "Coupon already used"
// @Failure      500   {object}  utils.ErrorResponse "Internal server error"
// @Router       /coupons/{code}/redeem [post]
func (h *HTTPHandler) RedeemCoupon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	var body RedeemCouponRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	discount, err := h.placer.RedeemCoupon(ctx, middleware.IdentityFrom(ctx), code, body.Total)
	if errors.Is(err, entities.ErrCouponNotFound) {
		utils.WriteError(w, "coupon not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeError(w, r, err, "failed to redeem coupon")
		return
	}

	utils.WriteJSON(w, RedeemCouponResponse{Code: code, Discount: discount.StringFixed(2)}, http.StatusOK)
}

// ListOrders returns a page of orders for admins.
// @Summary      List orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page, from 1"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Customer name pattern"
// @Param        shop    query     string  false  "Shop slug"
// @Success      200     {object}  OrdersPage
// @Failure      400     {object}  utils.ErrorResponse "Invalid search pattern"
// @Failure      401     {object}  utils.ErrorResponse "Missing or invalid credential"
// @Failure      403     {object}  utils.ErrorResponse "Not an admin"
// @Failure      404     {object}  utils.ErrorResponse "Shop not found"
// @Failure      500     {object}  utils.ErrorResponse "Internal server error"
// @Router       /admin/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := listQuery(r)
	q.Shop = r.URL.Query().Get("shop")

	page, err := h.orders.ListOrders(ctx, middleware.IdentityFrom(ctx), q)
	if err != nil {
		h.writeError(w, r, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrderPageEntityToJSON(page), http.StatusOK)
}

// ListVendorOrders returns a page of orders for the caller's shop.
// @Summary      List vendor orders
// @Tags         vendor
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page, from 1"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Customer name pattern"
// @Success      200     {object}  OrdersPage
// @Failure      401     {object}  utils.ErrorResponse "Missing or invalid credential"
// @Failure      403     {object}  utils.ErrorResponse "Not a vendor"
// @Failure      404     {object}  utils.ErrorResponse "Shop not found"
// @Failure      500     {object}  utils.ErrorResponse "Internal server error"
// @Router       /vendor/orders [get]
func (h *HTTPHandler) ListVendorOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.orders.ListVendorOrders(ctx, middleware.IdentityFrom(ctx), listQuery(r))
	if err != nil {
		h.writeError(w, r, err, "failed to list vendor orders")
		return
	}

	utils.WriteJSON(w, OrderPageEntityToJSON(page), http.StatusOK)
}

// OpenOrder returns an order to an admin and marks its notification opened.
// @Summary      Get order as admin
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse "Missing or invalid credential"
// @Failure      403  {object}  utils.ErrorResponse "Not an admin"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /admin/orders/{id} [get]
func (h *HTTPHandler) OpenOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.orders.OpenOrder(ctx, middleware.IdentityFrom(ctx), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "failed to open order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrder applies a partial update.
// @Summary      Update order
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order id"
// @Param        body  body      UpdateOrderRequest  true  "Fields to change"
// @Success      200   {object}  Order
// @Failure      400   {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401   {object}  utils.ErrorResponse "Missing or invalid credential"
// @Failure      403   {object}  utils.ErrorResponse "Not an admin"
// @Failure      404   {object}  utils.ErrorResponse "Order not found"
// @Failure      500   {object}  utils.ErrorResponse "Internal server error"
// @Router       /admin/orders/{id} [put]
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body UpdateOrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if body.Status != nil && !entities.OrderStatus(*body.Status).Valid() {
		utils.WriteJSON(w, utils.ValidationErrorResponse{
			Message: "invalid request",
			Fields:  map[string]string{"Status": "oneof"},
		}, http.StatusBadRequest)
		return
	}

	order, err := h.orders.UpdateOrder(ctx, middleware.IdentityFrom(ctx), chi.URLParam(r, "id"), UpdateOrderJSONToPatch(body))
	if err != nil {
		h.writeError(w, r, err, "failed to update order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder removes an order with its notification and history link.
// @Summary      Delete order
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  utils.ErrorResponse "Deleted"
// @Failure      401  {object}  utils.ErrorResponse "Missing or invalid credential"
// @Failure      403  {object}  utils.ErrorResponse "Not an admin"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /admin/orders/{id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.orders.DeleteOrder(ctx, middleware.IdentityFrom(ctx), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "failed to delete order")
		return
	}

	utils.WriteJSON(w, utils.ErrorResponse{Message: "order deleted"}, http.StatusOK)
}

func listQuery(r *http.Request) service.ListQuery {
	return service.ListQuery{
		Page:   utils.QueryInt(r, "page", 1),
		Limit:  utils.QueryInt(r, "limit", 10),
		Search: r.URL.Query().Get("search"),
	}
}

// writeError maps domain and auth errors to status codes. Anything unknown is
// logged and reported as 500.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrEmailNotVerified):
		utils.WriteError(w, "email is not verified", http.StatusForbidden)
	case errors.Is(err, auth.ErrForbidden):
		utils.WriteError(w, "access denied", http.StatusForbidden)

	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrShopNotFound):
		utils.WriteError(w, "shop not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrEmptyOrder):
		utils.WriteError(w, "please provide item(s)", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrInvalidSearch):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrCouponNotFound):
		utils.WriteError(w, "coupon not found", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCouponExpired):
		utils.WriteError(w, "coupon is expired", http.StatusBadRequest)

	case errors.Is(err, entities.ErrCouponAlreadyRedeemed):
		utils.WriteError(w, "coupon already redeemed", http.StatusConflict)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, err.Error(), http.StatusConflict)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.WarnContext(r.Context(), msg, slog.Any("error", err))
		utils.WriteError(w, "request timed out", http.StatusServiceUnavailable)

	default:
		h.logger.ErrorContext(r.Context(), msg,
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
