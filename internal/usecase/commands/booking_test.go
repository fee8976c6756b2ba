//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/infra/gateway"
	"moveit-backend/internal/pkg/clock"
	"moveit-backend/internal/pkg/config"
	"moveit-backend/internal/pkg/errs"
	"moveit-backend/internal/usecase/commands"
	"moveit-backend/internal/usecase/queries"
	"moveit-backend/tests/common/builder"
	commandsmock "moveit-backend/tests/mock/commands"
	queriesmock "moveit-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	bookingRepo      *commandsmock.MockBookingRepository
	carRepo          *commandsmock.MockCarRepository
	notificationRepo *commandsmock.MockNotificationRepository
	gateway          *commandsmock.MockPaymentGateway
	bookingQueries   *queriesmock.MockBookingQueries
	txRunner         *commandsmock.MockTxRunner
	uc               commands.BookingCommands
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.carRepo = commandsmock.NewMockCarRepository(s.mockCtrl)
	s.notificationRepo = commandsmock.NewMockNotificationRepository(s.mockCtrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.bookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.txRunner = commandsmock.NewMockTxRunner(s.mockCtrl)

	s.uc = commands.NewBookingUseCase(
		s.bookingRepo,
		s.carRepo,
		s.notificationRepo,
		s.gateway,
		s.bookingQueries,
		s.txRunner,
		clock.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
		config.GatewayConfig{Currency: "NGN"},
	)
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

// requireIs matches against sentinels attached with errs.Mark, which the
// standard library's errors.Is cannot see.
func (s *BookingUseCaseTestSuite) requireIs(err, target error) {
	s.T().Helper()
	s.Require().Error(err)
	s.Require().True(errs.Is(err, target), "error %v does not match %v", err, target)
}

func (s *BookingUseCaseTestSuite) verifiedFor(b *builder.BookingBuilder) *gateway.VerifiedTransaction {
	return &gateway.VerifiedTransaction{
		TransactionID: b.TransactionID,
		TxRef:         b.TransactionRef,
		Amount:        b.TotalAmount(),
		Currency:      "NGN",
		Status:        "successful",
	}
}

// expectVerifiedCapture sets up the car lookup and gateway verification that
// every confirmation reaching the database has already passed.
func (s *BookingUseCaseTestSuite) expectVerifiedCapture(b *builder.BookingBuilder) {
	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)
	s.gateway.EXPECT().VerifyTransaction(gomock.Any(), b.TransactionID).Return(s.verifiedFor(b), nil)
}

// runTx makes the runner mock execute the write set with a nil handle, the
// way the real runner hands the closure its transaction.
func (s *BookingUseCaseTestSuite) runTx() {
	s.txRunner.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		},
	)
}

// ============================================================
// CreateBooking: rejection before any transaction
// ============================================================

func (s *BookingUseCaseTestSuite) TestCancelledPaymentShortCircuits() {
	b := builder.NewBookingBuilder().WithPaymentStatus("cancelled")

	// No expectations on any collaborator: a cancelled checkout must not
	// reach the car lookup, the gateway, or the database.
	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrPaymentCancelled)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestUnknownPaymentStatusIsUnresolved() {
	b := builder.NewBookingBuilder().WithPaymentStatus("pending")

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrPaymentUnresolved)
	s.Contains(err.Error(), "pending")
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestInvalidDateRange() {
	b := builder.NewBookingBuilder().WithDates(
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrInvalidDateRange)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestCarNotFound() {
	b := builder.NewBookingBuilder()
	s.carRepo.EXPECT().
		FindSnapshotByID(gomock.Any(), b.CarID).
		Return(nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound))

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrCarNotFound)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestCarNotAvailable() {
	b := builder.NewBookingBuilder()
	snapshot := b.BuildCarSnapshot()
	snapshot.Status = "RENTED"
	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(snapshot, nil)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrCarUnavailable)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestMissingTransactionIDIsUnresolved() {
	b := builder.NewBookingBuilder()
	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)

	req := b.BuildCreateRequestDTO()
	req.TransactionID = nil

	result, err := s.uc.CreateBooking(context.Background(), req, b.UserID)

	s.requireIs(err, commands.ErrPaymentUnresolved)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestGatewayVerificationFailureIsUnresolved() {
	b := builder.NewBookingBuilder()
	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)
	s.gateway.EXPECT().
		VerifyTransaction(gomock.Any(), b.TransactionID).
		Return(nil, gateway.ErrGatewayRequest)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrPaymentUnresolved)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestVerifiedReferenceMismatchIsUnresolved() {
	b := builder.NewBookingBuilder()
	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)

	verified := s.verifiedFor(b)
	verified.TxRef = "booking-1709999999999-654321"
	s.gateway.EXPECT().VerifyTransaction(gomock.Any(), b.TransactionID).Return(verified, nil)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrPaymentUnresolved)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestVerifiedStatusNotPaidIsUnresolved() {
	b := builder.NewBookingBuilder()
	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)

	verified := s.verifiedFor(b)
	verified.Status = "failed"
	s.gateway.EXPECT().VerifyTransaction(gomock.Any(), b.TransactionID).Return(verified, nil)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrPaymentUnresolved)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestVerifiedCurrencyMismatch() {
	b := builder.NewBookingBuilder()
	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)

	verified := s.verifiedFor(b)
	verified.Currency = "USD"
	s.gateway.EXPECT().VerifyTransaction(gomock.Any(), b.TransactionID).Return(verified, nil)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrChargeMismatch)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestVerifiedAmountMismatch() {
	b := builder.NewBookingBuilder()
	s.carRepo.EXPECT().FindSnapshotByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)

	verified := s.verifiedFor(b)
	verified.Amount = b.TotalAmount() - 1
	s.gateway.EXPECT().VerifyTransaction(gomock.Any(), b.TransactionID).Return(verified, nil)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrChargeMismatch)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestClientFigureMismatch() {
	b := builder.NewBookingBuilder()
	s.expectVerifiedCapture(b)

	// Gateway verification passes but the client computed its own figures
	// wrong; the server-side derivation wins.
	req := b.BuildCreateRequestDTO()
	req.NumberOfDays = 4
	req.TotalAmount = 200000

	result, err := s.uc.CreateBooking(context.Background(), req, b.UserID)

	s.requireIs(err, commands.ErrChargeMismatch)
	s.Nil(result)
}

// ============================================================
// CreateBooking: persistence and replay
// ============================================================

func (s *BookingUseCaseTestSuite) TestCreateBookingPersists() {
	b := builder.NewBookingBuilder()
	s.expectVerifiedCapture(b)
	s.runTx()

	bookingID := uuid.New()
	s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingID, nil)
	s.notificationRepo.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "email", "booking_confirmed", gomock.Any(), gomock.Any()).
		Return(nil)

	view := b.BuildView()
	s.bookingQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.Require().NoError(err)
	s.False(result.IsReplayed)
	s.Equal(view, result.Booking)
}

func (s *BookingUseCaseTestSuite) TestReplaySamePayloadReturnsStoredBooking() {
	b := builder.NewBookingBuilder()
	s.expectVerifiedCapture(b)
	s.txRunner.EXPECT().InTx(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("failed to create booking", nil, infra.KindDuplicateKey))

	stored := b.BuildView()
	s.bookingQueries.EXPECT().GetByTransactionRef(gomock.Any(), b.TransactionRef).Return(stored, nil)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.Require().NoError(err)
	s.True(result.IsReplayed)
	s.Equal(stored, result.Booking)
}

func (s *BookingUseCaseTestSuite) TestReusedReferenceWithDifferentPayloadRejected() {
	b := builder.NewBookingBuilder()
	s.expectVerifiedCapture(b)
	s.txRunner.EXPECT().InTx(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("failed to create booking", nil, infra.KindDuplicateKey))

	// Same reference, same total, but the stored booking covers a different
	// window. That is not a replay and must not come back as a success.
	stored := b.BuildView()
	stored.StartDate = stored.StartDate.AddDate(0, 1, 0)
	stored.EndDate = stored.EndDate.AddDate(0, 1, 0)
	s.bookingQueries.EXPECT().GetByTransactionRef(gomock.Any(), b.TransactionRef).Return(stored, nil)

	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrDuplicateTransactionRef)
	s.Nil(result)
}

func (s *BookingUseCaseTestSuite) TestSaveFailureAfterCaptureIsNotRecorded() {
	b := builder.NewBookingBuilder()
	s.expectVerifiedCapture(b)
	s.txRunner.EXPECT().InTx(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("failed to create booking", nil))

	// The money moved but no booking row exists: the caller gets the explicit
	// unresolved-save error and no replay lookup is attempted.
	result, err := s.uc.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)

	s.requireIs(err, commands.ErrBookingNotRecorded)
	s.Nil(result)
}

// ============================================================
// CancelBooking
// ============================================================

func (s *BookingUseCaseTestSuite) TestCancelBooking() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()
	s.bookingQueries.EXPECT().GetByID(gomock.Any(), b.UserID, "customer", view.ID).Return(view, nil)
	s.runTx()
	s.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).Return(nil)
	s.notificationRepo.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "email", "booking_cancelled", gomock.Any(), gomock.Any()).
		Return(nil)

	cancelled := *view
	cancelled.Status = "cancelled"
	s.bookingQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).Return(&cancelled, nil)

	got, err := s.uc.CancelBooking(context.Background(), b.UserID, "customer", view.ID)

	s.Require().NoError(err)
	s.Equal("cancelled", got.Status)
}

func (s *BookingUseCaseTestSuite) TestCancelStartedBookingRejected() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()
	view.Status = "ongoing"
	s.bookingQueries.EXPECT().GetByID(gomock.Any(), b.UserID, "customer", view.ID).Return(view, nil)

	got, err := s.uc.CancelBooking(context.Background(), b.UserID, "customer", view.ID)

	s.requireIs(err, commands.ErrBookingNotCancellable)
	s.Nil(got)
}

func (s *BookingUseCaseTestSuite) TestCancelMissingBooking() {
	actorID := uuid.New()
	bookingID := uuid.New()
	s.bookingQueries.EXPECT().
		GetByID(gomock.Any(), actorID, "customer", bookingID).
		Return(nil, queries.ErrBookingNotFound)

	got, err := s.uc.CancelBooking(context.Background(), actorID, "customer", bookingID)

	s.requireIs(err, queries.ErrBookingNotFound)
	s.Nil(got)
}
