package commands

import (
	"context"

	"moveit-backend/internal/domain/booking"
	reqdto "moveit-backend/internal/handler/dto/request"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/gateway"
	"moveit-backend/internal/pkg/clock"
	"moveit-backend/internal/pkg/config"
	"moveit-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errs.New("customer not found")
	ErrPaymentInitFailed = errs.New("payment initialization failed")
)

type InitializePaymentResult struct {
	PaymentLink    string
	TransactionRef string
	NumberOfDays   int
	TotalAmount    int64
	Currency       string
}

type PaymentCommands interface {
	InitializePayment(ctx context.Context, req reqdto.InitializePaymentRequest, userID uuid.UUID) (*InitializePaymentResult, error)
}

type paymentUseCaseImpl struct {
	carRepo    CarRepository
	userRepo   UserRepository
	gateway    PaymentGateway
	clock      clock.Clock
	gatewayCfg config.GatewayConfig
}

func NewPaymentUseCase(
	carRepo CarRepository,
	userRepo UserRepository,
	gateway PaymentGateway,
	clock clock.Clock,
	gatewayCfg config.GatewayConfig,
) PaymentCommands {
	return &paymentUseCaseImpl{
		carRepo:    carRepo,
		userRepo:   userRepo,
		gateway:    gateway,
		clock:      clock,
		gatewayCfg: gatewayCfg,
	}
}

// InitializePayment prices the requested window, mints a fresh transaction
// reference and asks the gateway for a checkout link. The reference returned
// here is the one the confirmation endpoint later dedupes on.
func (u *paymentUseCaseImpl) InitializePayment(
	ctx context.Context,
	req reqdto.InitializePaymentRequest,
	userID uuid.UUID,
) (*InitializePaymentResult, error) {
	dates, err := req.ToDateRange()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}
	if err := dates.ValidateNotPast(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	carSnapshot, err := validateAndGetCar(ctx, u.carRepo, req.CarID)
	if err != nil {
		return nil, err
	}

	customer, err := u.userRepo.FindCustomerByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	txRef := booking.NewTransactionRef(u.clock.Now())
	amount := dates.TotalAmount(carSnapshot.PricePerDay)

	result, err := u.gateway.InitializePayment(ctx, gateway.InitializeRequest{
		TxRef:  txRef,
		Amount: amount,
		Customer: gateway.Customer{
			Email: customer.Email,
			Name:  customer.Name,
		},
		Title:     "MoveIt Car Rental",
		Narrative: carSnapshot.Name,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentInitFailed)
	}

	return &InitializePaymentResult{
		PaymentLink:    result.PaymentLink,
		TransactionRef: txRef,
		NumberOfDays:   dates.Days(),
		TotalAmount:    amount,
		Currency:       u.gatewayCfg.Currency,
	}, nil
}
