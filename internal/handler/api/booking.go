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

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Record a completed booking with optional drink purchases and extra hours
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInventoryEmpty):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No drinks available in inventory", nil)
		case errors.Is(err, commands.ErrDrinkNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Drink not found", nil)
		case errors.Is(err, commands.ErrBookingValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List all bookings newest first, with aggregate stats over the filtered set
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param search query string false "Customer name or phone number substring"
// @Param platform query string false "Platform filter, or 'all'"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := queries.BookingFilter{
		Search:   c.Query("search"),
		Platform: c.Query("platform"),
	}

	result, err := h.bookingQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListResult(result))
}

// @Summary Get booking
// @Description Get a booking with its drink breakdown
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	detail, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingDetailView(detail))
}
