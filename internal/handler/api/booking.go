package api

import (
	"net/http"

	reqdto "moveit-backend/internal/handler/dto/request"
	resdto "moveit-backend/internal/handler/dto/response"
	"moveit-backend/internal/handler/httperr"
	"moveit-backend/internal/handler/middleware"
	"moveit-backend/internal/pkg/errs"
	"moveit-backend/internal/usecase/commands"
	"moveit-backend/internal/usecase/queries"

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
// @Description Confirm a booking after the payment gateway redirect
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking confirmation"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/create [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user context missing"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking date range", nil)
		case errs.Is(err, commands.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		case errs.Is(err, commands.ErrCarUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Car is not available for booking", nil)
		case errs.Is(err, commands.ErrPaymentCancelled):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment was cancelled", nil)
		case errs.Is(err, commands.ErrPaymentUnresolved):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"Payment state could not be resolved, contact support before retrying", nil)
		case errs.Is(err, commands.ErrChargeMismatch):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
				"Submitted figures do not match the server calculation", nil)
		case errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking validation failed", nil)
		case errs.Is(err, commands.ErrDuplicateTransactionRef):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"Transaction reference was already used for a different booking", nil)
		case errs.Is(err, commands.ErrBookingNotRecorded):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"Payment was captured but the booking could not be recorded, retry with the same transaction reference", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Cancel booking
// @Description Cancel an upcoming booking before its rental window starts
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/cancel/{id} [put]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user context missing"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.bookingCommands.CancelBooking(c.Request.Context(), actorID, role.String(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, queries.ErrBookingAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Cannot cancel another user's booking", nil)
		case errs.Is(err, commands.ErrBookingNotCancellable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking can no longer be cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get user bookings
// @Description List bookings that belong to the given user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/user/{userId} [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user context missing"), "Unauthorized", nil)
		return
	}

	role, _ := middleware.GetUserRole(c)
	if targetID != actorID && role.String() != "admin" {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("actor does not own the requested bookings"),
			"Cannot read another user's bookings", nil)
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), targetID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a single booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user context missing"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.bookingQueries.GetByID(c.Request.Context(), actorID, role.String(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, queries.ErrBookingAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Cannot read another user's booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List all bookings
// @Description Admin view of every booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
