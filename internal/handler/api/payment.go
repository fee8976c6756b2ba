package api

import (
	"net/http"

	reqdto "moveit-backend/internal/handler/dto/request"
	resdto "moveit-backend/internal/handler/dto/response"
	"moveit-backend/internal/handler/httperr"
	"moveit-backend/internal/handler/middleware"
	"moveit-backend/internal/pkg/errs"
	"moveit-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Initialize payment
// @Description Price the selected window and request a gateway checkout link
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitializePaymentRequest true "Payment request"
// @Success 200 {object} resdto.InitializePaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/initialize [post]
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user context missing"), "Unauthorized", nil)
		return
	}

	var req reqdto.InitializePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.paymentCommands.InitializePayment(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking date range", nil)
		case errs.Is(err, commands.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		case errs.Is(err, commands.ErrCarUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Car is not available for booking", nil)
		case errs.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errs.Is(err, commands.ErrPaymentInitFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway is unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.InitializePaymentResponse{
		PaymentLink:    result.PaymentLink,
		TransactionRef: result.TransactionRef,
		NumberOfDays:   result.NumberOfDays,
		TotalAmount:    result.TotalAmount,
		Currency:       result.Currency,
	})
}
