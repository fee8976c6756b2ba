package commands

import (
	"context"
	"encoding/json"

	"moveit-backend/internal/domain/booking"
	"moveit-backend/internal/domain/car"
	reqdto "moveit-backend/internal/handler/dto/request"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/pkg/clock"
	"moveit-backend/internal/pkg/config"
	"moveit-backend/internal/pkg/errs"
	"moveit-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound             = errs.New("car not found")
	ErrCarUnavailable          = errs.New("car is not available for booking")
	ErrInvalidDateRange        = errs.New("invalid booking date range")
	ErrPaymentCancelled        = errs.New("payment was cancelled")
	ErrPaymentUnresolved       = errs.New("payment state could not be resolved")
	ErrChargeMismatch          = errs.New("submitted charge does not match server calculation")
	ErrBookingNotRecorded      = errs.New("payment captured but booking was not recorded")
	ErrDuplicateTransactionRef = errs.New("transaction reference already used by a different booking")
	ErrBookingNotCancellable   = errs.New("booking can no longer be cancelled")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, actorID uuid.UUID, actorRole string, bookingID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo      BookingRepository
	carRepo          CarRepository
	notificationRepo NotificationRepository
	gateway          PaymentGateway
	bookingQueries   queries.BookingQueries
	tx               TxRunner
	clock            clock.Clock
	gatewayCfg       config.GatewayConfig
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	notificationRepo NotificationRepository,
	gateway PaymentGateway,
	bookingQueries queries.BookingQueries,
	tx TxRunner,
	clock clock.Clock,
	gatewayCfg config.GatewayConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:      bookingRepo,
		carRepo:          carRepo,
		notificationRepo: notificationRepo,
		gateway:          gateway,
		bookingQueries:   bookingQueries,
		tx:               tx,
		clock:            clock,
		gatewayCfg:       gatewayCfg,
	}
}

// CreateBooking confirms a booking for a payment the client reports as
// captured. Cancelled payments are rejected before anything else happens, so
// a cancelled checkout never touches the gateway or the database. Anything
// the server cannot positively resolve to a captured payment is surfaced as
// an unresolved state rather than silently accepted or discarded.
func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*CreateBookingResult, error) {
	status := booking.ParsePaymentStatus(req.PaymentStatus)
	if status.Cancelled() {
		return nil, ErrPaymentCancelled
	}
	if !status.Paid() {
		// Anything outside the known vocabulary: keep the raw value in the
		// error for operators instead of guessing what the gateway meant.
		return nil, errs.Mark(errs.New("unrecognized payment status: "+status.Raw()), ErrPaymentUnresolved)
	}

	dates, err := req.ToDateRange()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	carSnapshot, err := validateAndGetCar(ctx, u.carRepo, req.CarID)
	if err != nil {
		return nil, err
	}

	if err := u.verifyCapture(ctx, req, dates, carSnapshot); err != nil {
		return nil, err
	}

	bookingEntity, err := booking.NewBooking(
		userID,
		booking.CarSpec{
			ID:          carSnapshot.ID,
			Name:        carSnapshot.Name,
			PricePerDay: carSnapshot.PricePerDay,
		},
		dates,
		status,
		req.GetTransactionID(),
		req.TransactionRef,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := bookingEntity.VerifyClientFigures(req.NumberOfDays, req.TotalAmount); err != nil {
		return nil, errs.Mark(err, ErrChargeMismatch)
	}

	view, replayed, err := u.recordBooking(ctx, bookingEntity)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, IsReplayed: replayed}, nil
}

// CancelBooking marks a booking cancelled before its rental window starts.
// Ownership follows the read side's rule: the owner or an admin. Once the
// window has opened the booking is past cancelling; refunds for cancelled
// upcoming bookings are an operator action, not something decided here.
func (u *bookingUseCaseImpl) CancelBooking(
	ctx context.Context,
	actorID uuid.UUID,
	actorRole string,
	bookingID uuid.UUID,
) (*queries.BookingView, error) {
	view, err := u.bookingQueries.GetByID(ctx, actorID, actorRole, bookingID)
	if err != nil {
		return nil, err
	}
	if view.Status != booking.StatusUpcoming.String() {
		return nil, ErrBookingNotCancellable
	}

	err = u.tx.InTx(ctx, func(tx db.DBTX) error {
		if updateErr := u.bookingRepo.UpdateStatus(ctx, tx, bookingID, booking.StatusCancelled); updateErr != nil {
			return updateErr
		}
		return u.createBookingJob(ctx, tx, bookingID, "booking_cancelled")
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.bookingQueries.GetByIDSystem(ctx, bookingID)
}

// validateAndGetCar loads the car snapshot and rejects cars that are rented
// out or in maintenance.
func validateAndGetCar(ctx context.Context, repo CarRepository, carID uuid.UUID) (*CarSnapshot, error) {
	snapshot, err := repo.FindSnapshotByID(ctx, carID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.Status != car.StatusAvailable.String() {
		return nil, ErrCarUnavailable
	}
	return snapshot, nil
}

// verifyCapture confirms with the gateway that the money actually moved and
// that it moved for this reference and this amount. A redirect parameter is a
// claim, not proof.
func (u *bookingUseCaseImpl) verifyCapture(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	dates booking.DateRange,
	carSnapshot *CarSnapshot,
) error {
	transactionID := req.GetTransactionID()
	if transactionID == nil {
		return errs.Mark(errs.New("successful status without a transaction ID"), ErrPaymentUnresolved)
	}

	verified, err := u.gateway.VerifyTransaction(ctx, *transactionID)
	if err != nil {
		return errs.Mark(err, ErrPaymentUnresolved)
	}

	if verified.TxRef != req.TransactionRef {
		return errs.Mark(errs.New("verified transaction belongs to a different reference"), ErrPaymentUnresolved)
	}
	if !booking.ParsePaymentStatus(verified.Status).Paid() {
		return errs.Mark(errs.New("gateway reports status "+verified.Status), ErrPaymentUnresolved)
	}
	if verified.Currency != u.gatewayCfg.Currency {
		return errs.Mark(errs.New("verified transaction in currency "+verified.Currency), ErrChargeMismatch)
	}
	if verified.Amount != dates.TotalAmount(carSnapshot.PricePerDay) {
		return errs.Mark(errs.New("verified amount does not cover the booking total"), ErrChargeMismatch)
	}

	return nil
}

// recordBooking persists the booking and its notification job atomically.
// A duplicate transaction reference is only replayed when the stored booking
// matches the submitted payload; the same reference arriving with different
// dates, car, or figures is rejected outright. Any other failure after a
// verified capture is the money-moved-booking-missing state; nothing is
// invented to paper over it, the caller gets an explicit error and can retry
// with the same reference.
func (u *bookingUseCaseImpl) recordBooking(
	ctx context.Context,
	bookingEntity *booking.Booking,
) (*queries.BookingView, bool, error) {
	var bookingID uuid.UUID
	err := u.tx.InTx(ctx, func(tx db.DBTX) error {
		id, createErr := u.bookingRepo.Create(ctx, tx, bookingEntity)
		if createErr != nil {
			return createErr
		}
		if notifyErr := u.createConfirmationJob(ctx, tx, id); notifyErr != nil {
			return notifyErr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			existing, replayErr := u.bookingQueries.GetByTransactionRef(ctx, bookingEntity.TransactionRef())
			if replayErr != nil {
				return nil, false, errs.Mark(replayErr, ErrBookingNotRecorded)
			}
			if !matchesStoredBooking(existing, bookingEntity) {
				return nil, false, errs.Mark(
					errs.New("stored booking under this reference has a different payload"),
					ErrDuplicateTransactionRef,
				)
			}
			return existing, true, nil
		}
		return nil, false, errs.Mark(err, ErrBookingNotRecorded)
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, false, nil
}

// matchesStoredBooking decides whether a resubmission under an already-used
// transaction reference is the same confirmation replayed or a different
// booking trying to ride on an old payment.
func matchesStoredBooking(stored *queries.BookingView, submitted *booking.Booking) bool {
	return stored.UserID == submitted.UserID() &&
		stored.CarID == submitted.CarID() &&
		stored.StartDate.Equal(submitted.Dates().Start()) &&
		stored.EndDate.Equal(submitted.Dates().End()) &&
		stored.TotalAmount == submitted.TotalAmount()
}

func (u *bookingUseCaseImpl) createConfirmationJob(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error {
	return u.createBookingJob(ctx, tx, bookingID, "booking_confirmed")
}

func (u *bookingUseCaseImpl) createBookingJob(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return u.notificationRepo.CreateJob(ctx, tx, "email", topic, payload, u.clock.Now())
}
