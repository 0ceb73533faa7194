package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"rangriti/internal/delivery/http/response"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the catalogue endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns one catalogue page. All supplied filters combine
// with AND; list-valued filters accept comma-separated values.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Categories:  splitCSV(c.QueryParam("category")),
		ArtistNames: splitCSV(c.QueryParam("artist")),
	}

	var parseErr error
	input.MinPrice = parseFloatParam(c.QueryParam("minPrice"), &parseErr)
	input.MaxPrice = parseFloatParam(c.QueryParam("maxPrice"), &parseErr)
	input.MinRating = parseFloatParam(c.QueryParam("minRating"), &parseErr)
	if parseErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid numeric filter value")
	}

	switch c.QueryParam("availability") {
	case "", "all":
	case "instock":
		inStock := true
		input.InStock = &inStock
	default:
		return response.BadRequest(c, "INVALID_INPUT", "Invalid availability filter")
	}

	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalogPageView{
		Products: toProductViews(output.Products),
		pageView: pageView{Page: output.Page, Limit: output.Limit, Total: output.Total},
	}, "Products retrieved successfully")
}

// GetProduct returns a single listing.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product retrieved successfully")
}

// CreateProduct creates a listing owned by the authenticated artist.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	artistID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), artistID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// UpdateProduct applies a partial update to a listing owned by the
// authenticated artist.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	artistID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), artistID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// DeleteProduct removes a listing owned by the authenticated artist.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	artistID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), artistID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}

func parseFloatParam(raw string, parseErr *error) *float64 {
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*parseErr = err

		return nil
	}

	return &value
}
