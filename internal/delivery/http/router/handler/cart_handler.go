package handler

import (
	"log/slog"
	"net/http"

	"rangriti/internal/delivery/http/response"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the cart endpoints.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addToCartRequest struct {
	ProductID uuid.UUID `json:"productId"`
}

// GetCart returns the buyer's cart with derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	buyerID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.uc.GetCart(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "Cart retrieved successfully")
}

// AddToCart adds one unit of the product to the buyer's cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	buyerID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if req.ProductID == uuid.Nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID is required")
	}

	cart, err := h.uc.AddToCart(c.Request().Context(), buyerID, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "Product added to cart")
}

// UpdateCart sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateCart(c echo.Context) error {
	buyerID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.UpdateCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if input.ProductID == uuid.Nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID is required")
	}

	cart, err := h.uc.UpdateCart(c.Request().Context(), buyerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "Cart updated successfully")
}
