package commands

import (
	"context"
	"time"

	"moveit-backend/internal/domain/booking"
	"moveit-backend/internal/domain/brand"
	"moveit-backend/internal/domain/car"
	"moveit-backend/internal/domain/user"
	"moveit-backend/internal/infra/db"
	"moveit-backend/internal/infra/gateway"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type CarSnapshot struct {
	ID          uuid.UUID
	Name        string
	Status      string
	PricePerDay int64
}

type BrandSnapshot struct {
	ID   uuid.UUID
	Name string
}

type CustomerSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// TxRunner opens a transaction around a command's write set. The production
// implementation retries transient serialization failures before giving up.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx db.DBTX) error) error
}

// Write-side repository ports. A transaction handle is passed explicitly so
// each command decides what runs atomically.
type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type CarRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *car.Car) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, c *car.Car) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindSnapshotByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
}

type BrandRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *brand.Brand) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, b *brand.Brand) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindSnapshotByID(ctx context.Context, id uuid.UUID) (*BrandSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// PaymentGateway is the external payment collaborator. Captured payments are
// re-verified against this port; redirect parameters alone are never trusted.
type PaymentGateway interface {
	InitializePayment(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error)
	VerifyTransaction(ctx context.Context, transactionID string) (*gateway.VerifiedTransaction, error)
}
