package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"estore/internal/errors"
	"estore/internal/logger"
	"estore/internal/model"
	"estore/internal/service"
)

// InventoryHandler handles store item CRUD endpoints.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateItemRequest represents a new store item.
type CreateItemRequest struct {
	Name     string `json:"name"`
	Model    string `json:"model"`
	Quantity string `json:"Qty"`
}

// UpdateItemRequest carries a partial update; only supplied fields change.
type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Model    *string `json:"model"`
	Quantity *string `json:"Qty"`
}

// CreateItemResponse represents a successful insert.
type CreateItemResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// UpdateItemResponse reports whether any field actually changed.
type UpdateItemResponse struct {
	Success  bool `json:"success"`
	Modified bool `json:"modified"`
}

// DeleteItemResponse reports whether a deletion occurred.
type DeleteItemResponse struct {
	Success bool `json:"success"`
}

// ListItems godoc
// @Summary List all store items
// @Tags inventory
// @Produce json
// @Success 200 {array} model.StoreItem
// @Router /Store-Items [get]
func (h *InventoryHandler) ListItems(c echo.Context) error {
	items, err := h.inventoryService.List(c.Request().Context())
	if err != nil {
		// An unready store lists as empty, matching the historical contract.
		if err == errors.ErrStoreUnavailable {
			return c.JSON(http.StatusOK, []model.StoreItem{})
		}
		logger.L().Error("list items failed", zap.Error(err))
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if items == nil {
		items = []model.StoreItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// GetItem godoc
// @Summary Get a store item by id
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} model.StoreItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /Store-Items/{id} [get]
func (h *InventoryHandler) GetItem(c echo.Context) error {
	item, err := h.inventoryService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			logger.L().Error("get item failed", zap.String("id", c.Param("id")), zap.Error(err))
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	// Absent item serializes as null, not an error.
	return c.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary Create a store item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item fields"
// @Success 200 {object} CreateItemResponse
// @Failure 503 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /Store-Items [post]
func (h *InventoryHandler) CreateItem(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item := &model.StoreItem{
		Name:     req.Name,
		Model:    req.Model,
		Quantity: req.Quantity,
	}
	id, err := h.inventoryService.Create(c.Request().Context(), item)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			logger.L().Error("create item failed", zap.Error(err))
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CreateItemResponse{
		Success: true,
		ID:      id.String(),
	})
}

// UpdateItem godoc
// @Summary Update a store item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body UpdateItemRequest true "Fields to change"
// @Success 200 {object} UpdateItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /Store-Items/{id} [put]
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}

	modified, err := h.inventoryService.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			logger.L().Error("update item failed", zap.String("id", c.Param("id")), zap.Error(err))
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UpdateItemResponse{
		Success:  true,
		Modified: modified,
	})
}

// DeleteItem godoc
// @Summary Delete a store item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} DeleteItemResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /Store-Items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	deleted, err := h.inventoryService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			logger.L().Error("delete item failed", zap.String("id", c.Param("id")), zap.Error(err))
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// Deleting a missing id reports success:false, not an error.
	return c.JSON(http.StatusOK, DeleteItemResponse{Success: deleted})
}
