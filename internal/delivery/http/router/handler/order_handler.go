package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rangriti/internal/delivery/http/response"
	"rangriti/internal/domain/entity"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the purchase and ledger endpoints.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// BuyNow places a single-unit order for the product at its live price.
func (h *OrderHandler) BuyNow(c echo.Context) error {
	buyerID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	order, err := h.uc.BuyNow(c.Request().Context(), buyerID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// Checkout converts every cart line into an order at its snapshot price.
func (h *OrderHandler) Checkout(c echo.Context) error {
	buyerID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.Checkout(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderViews(orders), "Checkout completed successfully")
}

// ListBuyerOrders returns the buyer's order history, newest first.
func (h *OrderHandler) ListBuyerOrders(c echo.Context) error {
	buyerID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.ListBuyerOrders(c.Request().Context(), buyerID, listOrdersInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orderPageView{
		Orders:   toOrderViews(output.Orders),
		pageView: pageView{Page: output.Page, Limit: output.Limit, Total: output.Total},
	}, "Orders retrieved successfully")
}

// ListArtistOrders returns the artist's incoming orders, newest first.
func (h *OrderHandler) ListArtistOrders(c echo.Context) error {
	artistID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.ListArtistOrders(c.Request().Context(), artistID, listOrdersInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orderPageView{
		Orders:   toOrderViews(output.Orders),
		pageView: pageView{Page: output.Page, Limit: output.Limit, Total: output.Total},
	}, "Orders retrieved successfully")
}

// UpdateOrderStatus applies a lifecycle transition to an order owned by
// the authenticated artist.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	artistID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), artistID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order status updated successfully")
}

func listOrdersInput(c echo.Context) *usecase.ListOrdersInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return &usecase.ListOrdersInput{Page: page, Limit: limit}
}
