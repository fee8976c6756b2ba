//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	reqdto "moveit-backend/internal/handler/dto/request"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/gateway"
	"moveit-backend/internal/pkg/clock"
	"moveit-backend/internal/pkg/config"
	"moveit-backend/internal/pkg/errs"
	"moveit-backend/internal/usecase/commands"
	"moveit-backend/tests/common/builder"
	commandsmock "moveit-backend/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	carRepo  *commandsmock.MockCarRepository
	userRepo *commandsmock.MockUserRepository
	gateway  *commandsmock.MockPaymentGateway
	uc       commands.PaymentCommands
}

func (s *PaymentUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.carRepo = commandsmock.NewMockCarRepository(s.mockCtrl)
	s.userRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)

	s.uc = commands.NewPaymentUseCase(
		s.carRepo,
		s.userRepo,
		s.gateway,
		clock.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
		config.GatewayConfig{Currency: "NGN"},
	)
}

func (s *PaymentUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentUseCaseSuite(t *testing.T) {
	suite.Run(t, new(PaymentUseCaseTestSuite))
}

// requireIs matches against sentinels attached with errs.Mark, which the
// standard library's errors.Is cannot see.
func (s *PaymentUseCaseTestSuite) requireIs(err, target error) {
	s.T().Helper()
	s.Require().Error(err)
	s.Require().True(errs.Is(err, target), "error %v does not match %v", err, target)
}

func (s *PaymentUseCaseTestSuite) request(b *builder.BookingBuilder) reqdto.InitializePaymentRequest {
	return reqdto.InitializePaymentRequest{
		CarID:     b.CarID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

func (s *PaymentUseCaseTestSuite) TestInitializePayment() {
	b := builder.NewBookingBuilder()
	userID := uuid.New()

	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)
	s.userRepo.EXPECT().FindCustomerByID(gomock.Any(), userID).Return(&commands.CustomerSnapshot{
		ID:    userID,
		Email: "test@example.com",
		Name:  "Test Customer",
	}, nil)

	var sent gateway.InitializeRequest
	s.gateway.EXPECT().
		InitializePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error) {
			sent = req
			return &gateway.InitializeResult{PaymentLink: "https://checkout.flutterwave.com/pay/abc123"}, nil
		})

	result, err := s.uc.InitializePayment(context.Background(), s.request(b), userID)

	s.Require().NoError(err)
	s.Equal("https://checkout.flutterwave.com/pay/abc123", result.PaymentLink)
	s.Equal(5, result.NumberOfDays)
	s.Equal(int64(250000), result.TotalAmount)
	s.Equal("NGN", result.Currency)
	s.True(strings.HasPrefix(result.TransactionRef, "booking-"))

	s.Equal(result.TransactionRef, sent.TxRef)
	s.Equal(int64(250000), sent.Amount)
	s.Equal("test@example.com", sent.Customer.Email)
	s.Equal("Toyota Corolla", sent.Narrative)
}

func (s *PaymentUseCaseTestSuite) TestPastDatesAreRejected() {
	b := builder.NewBookingBuilder().WithDates(
		time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC),
	)

	result, err := s.uc.InitializePayment(context.Background(), s.request(b), uuid.New())

	s.requireIs(err, commands.ErrInvalidDateRange)
	s.Nil(result)
}

func (s *PaymentUseCaseTestSuite) TestCustomerNotFound() {
	b := builder.NewBookingBuilder()
	userID := uuid.New()

	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)
	s.userRepo.EXPECT().
		FindCustomerByID(gomock.Any(), userID).
		Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	result, err := s.uc.InitializePayment(context.Background(), s.request(b), userID)

	s.requireIs(err, commands.ErrCustomerNotFound)
	s.Nil(result)
}

func (s *PaymentUseCaseTestSuite) TestGatewayFailure() {
	b := builder.NewBookingBuilder()
	userID := uuid.New()

	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)
	s.userRepo.EXPECT().FindCustomerByID(gomock.Any(), userID).Return(&commands.CustomerSnapshot{
		ID:    userID,
		Email: "test@example.com",
		Name:  "Test Customer",
	}, nil)
	s.gateway.EXPECT().
		InitializePayment(gomock.Any(), gomock.Any()).
		Return(nil, gateway.ErrGatewayRejected)

	result, err := s.uc.InitializePayment(context.Background(), s.request(b), userID)

	s.requireIs(err, commands.ErrPaymentInitFailed)
	s.Nil(result)
}
