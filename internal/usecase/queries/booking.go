package queries

import (
	"context"

	"moveit-backend/internal/domain/booking"
	"moveit-backend/internal/domain/user"
	"moveit-backend/internal/infra"
	"moveit-backend/internal/pkg/clock"
	"moveit-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*BookingView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetByTransactionRef(ctx context.Context, txRef string) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByTransactionRef(ctx context.Context, txRef string) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	clock     clock.Clock
}

func NewBookingQueries(readStore BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	// Customers may only read their own bookings.
	if view.UserID != actorID && actorRole != user.RoleAdmin.String() {
		return nil, ErrBookingAccess
	}

	return q.withDerivedStatus(view), nil
}

// GetByIDSystem skips the ownership check. Used for read-after-write inside
// commands, never exposed through a handler directly.
func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return q.withDerivedStatus(view), nil
}

func (q *bookingQueriesImpl) GetByTransactionRef(ctx context.Context, txRef string) (*BookingView, error) {
	view, err := q.readStore.FindByTransactionRef(ctx, txRef)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return q.withDerivedStatus(view), nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.withDerivedStatus(v)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.withDerivedStatus(v)
	}
	return views, nil
}

// withDerivedStatus recomputes the display status from the booking window so
// a stored "upcoming" row reads as ongoing or completed once time has passed.
// Cancellation is sticky and never recomputed.
func (q *bookingQueriesImpl) withDerivedStatus(v *BookingView) *BookingView {
	r, err := booking.NewDateRange(v.StartDate, v.EndDate)
	if err != nil {
		return v
	}
	cancelled := v.Status == booking.StatusCancelled.String()
	v.Status = booking.DeriveStatus(r, q.clock.Now(), cancelled).String()
	return v
}
