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

type BrandHandler struct {
	brandCommands commands.BrandCommands
	brandQueries  queries.BrandQueries
}

func NewBrandHandler(brandCommands commands.BrandCommands, brandQueries queries.BrandQueries) *BrandHandler {
	return &BrandHandler{
		brandCommands: brandCommands,
		brandQueries:  brandQueries,
	}
}

// @Summary List brands
// @Tags brands
// @Produce json
// @Success 200 {array} resdto.BrandResponse
// @Router /brands [get]
func (h *BrandHandler) ListBrands(c *gin.Context) {
	views, err := h.brandQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBrandViews(views))
}

// @Summary Get brand
// @Tags brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} resdto.BrandResponse
// @Failure 404 {object} httperr.Response
// @Router /brands/{id} [get]
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.brandQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBrandNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Brand not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBrandView(view))
}

// @Summary Create brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBrandRequest true "Brand"
// @Success 201 {object} resdto.BrandResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /brands/create [post]
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req reqdto.CreateBrandRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.brandCommands.CreateBrand(c.Request.Context(), req)
	if err != nil {
		h.writeBrandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBrandView(view))
}

// @Summary Update brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Param request body reqdto.UpdateBrandRequest true "Fields to change"
// @Success 200 {object} resdto.BrandResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /brands/update/{id} [put]
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateBrandRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.brandCommands.UpdateBrand(c.Request.Context(), id, req)
	if err != nil {
		h.writeBrandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBrandView(view))
}

// @Summary Delete brand
// @Tags brands
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /brands/delete/{id} [delete]
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.brandCommands.DeleteBrand(c.Request.Context(), id); err != nil {
		h.writeBrandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BrandHandler) writeBrandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrBrandNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Brand not found", nil)
	case errs.Is(err, commands.ErrDuplicateBrand):
		httperr.AbortWithError(c, http.StatusConflict, err, "Brand name already registered", nil)
	case errs.Is(err, commands.ErrBrandHasCars):
		httperr.AbortWithError(c, http.StatusConflict, err, "Brand has cars and cannot be deleted", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Brand validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
