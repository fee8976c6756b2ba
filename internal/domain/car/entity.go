package car

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errors.New("car name must not be empty")
	ErrInvalidPlateNumber = errors.New("plate number must not be empty")
	ErrInvalidPrice       = errors.New("price per day must be positive")
	ErrInvalidCapacity    = errors.New("passenger capacity must be positive")
	ErrInvalidStatus      = errors.New("invalid car status")
)

type Car struct {
	id                uuid.UUID
	name              string
	plateNumber       string
	status            Status
	pricePerDay       int64
	passengerCapacity int
	description       string
	images            []string
	features          []string
	brandID           uuid.UUID
	createdAt         time.Time
	updatedAt         time.Time
}

func NewCar(
	name, plateNumber string,
	status Status,
	pricePerDay int64,
	passengerCapacity int,
	description string,
	images, features []string,
	brandID uuid.UUID,
) (*Car, error) {
	name = strings.TrimSpace(name)
	plateNumber = strings.TrimSpace(plateNumber)

	if name == "" {
		return nil, ErrInvalidName
	}
	if plateNumber == "" {
		return nil, ErrInvalidPlateNumber
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if pricePerDay <= 0 {
		return nil, ErrInvalidPrice
	}
	if passengerCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Car{
		id:                uuid.New(),
		name:              name,
		plateNumber:       plateNumber,
		status:            status,
		pricePerDay:       pricePerDay,
		passengerCapacity: passengerCapacity,
		description:       description,
		images:            images,
		features:          features,
		brandID:           brandID,
	}, nil
}

// Bookable reports whether customers may start a booking for this car.
func (c *Car) Bookable() bool {
	return c.status == StatusAvailable
}

func (c *Car) ID() uuid.UUID          { return c.id }
func (c *Car) Name() string           { return c.name }
func (c *Car) PlateNumber() string    { return c.plateNumber }
func (c *Car) Status() Status         { return c.status }
func (c *Car) PricePerDay() int64     { return c.pricePerDay }
func (c *Car) PassengerCapacity() int { return c.passengerCapacity }
func (c *Car) Description() string    { return c.description }
func (c *Car) Images() []string       { return c.images }
func (c *Car) Features() []string     { return c.features }
func (c *Car) BrandID() uuid.UUID     { return c.brandID }
func (c *Car) CreatedAt() time.Time   { return c.createdAt }
func (c *Car) UpdatedAt() time.Time   { return c.updatedAt }
