package api

import (
	"errors"
	"net/http"

	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	resdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/response"
	"github.com/bothrasports-ops/arena-manager/internal/handler/httperr"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/commands"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary List inventory
// @Description List all drink items ordered by name
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InventoryItemResponse
// @Failure 401 {object} httperr.Response
// @Router /inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	views, err := h.inventoryQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInventoryItemViews(views))
}

// @Summary Add inventory item
// @Description Add a drink item with a positive price
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInventoryItemRequest true "Item request"
// @Success 201 {object} resdto.InventoryItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.inventoryCommands.AddItem(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Name must be non-empty and price must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInventoryItemView(view))
}

// @Summary Update item price
// @Description Change the price of an existing drink item
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateInventoryPriceRequest true "Price update"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [patch]
func (h *InventoryHandler) UpdatePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.UpdateInventoryPriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.inventoryCommands.UpdatePrice(c.Request.Context(), id, *req.Price); err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Inventory item not found", nil)
		case errors.Is(err, commands.ErrItemValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Price must not be negative", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete inventory item
// @Description Remove a drink item; existing bookings keep their price snapshots
// @Tags inventory
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	if err := h.inventoryCommands.DeleteItem(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Inventory item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
