//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"moveit-backend/internal/domain/user"
	"moveit-backend/internal/handler/api"
	resdto "moveit-backend/internal/handler/dto/response"
	"moveit-backend/internal/pkg/errs"
	"moveit-backend/internal/usecase/commands"
	"moveit-backend/internal/usecase/queries"
	"moveit-backend/tests/common/builder"
	"moveit-backend/tests/common/httptest"
	"moveit-backend/tests/common/testutil"
	commandsmock "moveit-backend/tests/mock/commands"
	queriesmock "moveit-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	// identity injected by the stub auth middleware, mutable per test
	userID uuid.UUID
	role   user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.role = user.RoleCustomer

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	}

	s.router.POST("/bookings/create", authMiddleware, s.handler.CreateBooking)
	s.router.PUT("/bookings/cancel/:id", authMiddleware, s.handler.CancelBooking)
	s.router.GET("/bookings/user/:userId", authMiddleware, s.handler.GetUserBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings/create"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for a confirmed booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CreateBookingResult{Booking: returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("Toyota Corolla", body.CarName)
		s.Equal(int64(250000), body.TotalAmount)
		s.Equal("upcoming", body.Status)
	})

	s.Run("success: a replayed confirmation still returns 201", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CreateBookingResult{Booking: returnView, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: car_id", mutate: testutil.Field("car_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_date", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_date", mutate: testutil.Field("end_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: number_of_days", mutate: testutil.Field("number_of_days", nil), expectCode: http.StatusBadRequest},
			{name: "zero number_of_days", mutate: testutil.Field("number_of_days", 0), expectCode: http.StatusBadRequest},
			{name: "missing field: payment_status", mutate: testutil.Field("payment_status", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: transaction_ref", mutate: testutil.Field("transaction_ref", nil), expectCode: http.StatusBadRequest},
			{name: "malformed car_id", mutate: testutil.Field("car_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid date range",
				commandsError:  errs.Mark(errs.New("end before start"), commands.ErrInvalidDateRange),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking date range",
			},
			{
				name:           "car not found",
				commandsError:  commands.ErrCarNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
			},
			{
				name:           "car unavailable",
				commandsError:  commands.ErrCarUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "payment cancelled",
				commandsError:  commands.ErrPaymentCancelled,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment was cancelled",
			},
			{
				name:           "payment unresolved",
				commandsError:  errs.Mark(errs.New("gateway reports status failed"), commands.ErrPaymentUnresolved),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "contact support",
			},
			{
				name:           "charge mismatch",
				commandsError:  errs.Mark(errs.New("verified amount does not cover the booking total"), commands.ErrChargeMismatch),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "do not match",
			},
			{
				name:           "payment captured but booking not recorded",
				commandsError:  errs.Mark(errs.New("insert failed"), commands.ErrBookingNotRecorded),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "retry with the same transaction reference",
			},
			{
				name:           "transaction reference reused for a different booking",
				commandsError:  errs.Mark(errs.New("stored booking differs"), commands.ErrDuplicateTransactionRef),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already used for a different booking",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetUserBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	returnViews := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success: owner reads own bookings", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/user/"+s.userID.String(), nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: admin reads another user's bookings", func() {
		s.role = user.RoleAdmin
		defer func() { s.role = user.RoleCustomer }()

		otherID := uuid.New()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), otherID).Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/user/"+otherID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for another user's bookings", func() {
		otherID := uuid.New()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/user/"+otherID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user's bookings")
	})

	s.Run("error: 400 Bad Request for malformed user ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/user/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	returnView := builder.NewBookingBuilder().BuildView()
	returnView.Status = "cancelled"

	s.Run("success: returns the cancelled booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.userID, "customer", returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/cancel/"+returnView.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 409 Conflict once the rental has started", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.userID, "customer", id).
			Return(nil, commands.ErrBookingNotCancellable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/cancel/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer be cancelled")
	})

	s.Run("error: 404 Not Found", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.userID, "customer", id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/cancel/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.userID, "customer", id).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/cancel/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user's booking")
	})

	s.Run("error: 400 Bad Request for malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/cancel/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, "customer", returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 404 Not Found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, "customer", id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, "customer", id).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user's booking")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns every booking", func() {
		returnViews := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}
