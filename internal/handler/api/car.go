package api

import (
	"net/http"

	reqdto "moveit-backend/internal/handler/dto/request"
	resdto "moveit-backend/internal/handler/dto/response"
	"moveit-backend/internal/handler/httperr"
	"moveit-backend/internal/pkg/errs"
	"moveit-backend/internal/usecase/commands"
	"moveit-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	carCommands commands.CarCommands
	carQueries  queries.CarQueries
}

func NewCarHandler(carCommands commands.CarCommands, carQueries queries.CarQueries) *CarHandler {
	return &CarHandler{
		carCommands: carCommands,
		carQueries:  carQueries,
	}
}

// @Summary List cars
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.CarResponse
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	views, err := h.carQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarViews(views))
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} httperr.Response
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.carQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrCarNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Create car
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Car"
// @Success 201 {object} resdto.CarResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cars/create [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.carCommands.CreateCar(c.Request.Context(), req)
	if err != nil {
		h.writeCarError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCarView(view))
}

// @Summary Update car
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarRequest true "Fields to change"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cars/update/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateCarRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.carCommands.UpdateCar(c.Request.Context(), id, req)
	if err != nil {
		h.writeCarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Delete car
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cars/delete/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.carCommands.DeleteCar(c.Request.Context(), id); err != nil {
		h.writeCarError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CarHandler) writeCarError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrCarNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
	case errs.Is(err, commands.ErrBrandNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Brand not found", nil)
	case errs.Is(err, commands.ErrDuplicatePlate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Plate number already registered", nil)
	case errs.Is(err, commands.ErrCarHasBookings):
		httperr.AbortWithError(c, http.StatusConflict, err, "Car has bookings and cannot be deleted", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Car validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
