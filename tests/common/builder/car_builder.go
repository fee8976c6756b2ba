//go:build unit || e2e

package builder

import (
	"time"

	domcar "moveit-backend/internal/domain/car"
	reqdto "moveit-backend/internal/handler/dto/request"
	"moveit-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	Name              string
	PlateNumber       string
	Status            string
	PricePerDay       int64
	PassengerCapacity int
	Description       string
	Images            []string
	Features          []string
	BrandID           uuid.UUID
	BrandName         string
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		Name:              "Toyota Corolla",
		PlateNumber:       "LND-123-XY",
		Status:            "AVAILABLE",
		PricePerDay:       50000,
		PassengerCapacity: 4,
		Description:       "Reliable sedan",
		Images:            []string{"https://cdn.example.com/corolla.jpg"},
		Features:          []string{"AC", "Bluetooth"},
		BrandID:           uuid.New(),
		BrandName:         "Toyota",
	}
}

func (c *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(c)
	return c
}

func (c *CarBuilder) BuildDomain() (*domcar.Car, error) {
	status, err := domcar.NewStatus(c.Status)
	if err != nil {
		return nil, err
	}
	return domcar.NewCar(
		c.Name, c.PlateNumber, status, c.PricePerDay,
		c.PassengerCapacity, c.Description, c.Images, c.Features, c.BrandID,
	)
}

func (c *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Name:              c.Name,
		PlateNumber:       c.PlateNumber,
		Status:            c.Status,
		PricePerDay:       c.PricePerDay,
		PassengerCapacity: c.PassengerCapacity,
		Description:       c.Description,
		Images:            c.Images,
		Features:          c.Features,
		BrandID:           c.BrandID,
	}
}

func (c *CarBuilder) BuildView() *queries.CarView {
	now := time.Now()
	return &queries.CarView{
		ID:                uuid.New(),
		Name:              c.Name,
		PlateNumber:       c.PlateNumber,
		Status:            c.Status,
		PricePerDay:       c.PricePerDay,
		PassengerCapacity: int32(c.PassengerCapacity),
		Description:       c.Description,
		Images:            c.Images,
		Features:          c.Features,
		BrandID:           c.BrandID,
		BrandName:         c.BrandName,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Fluent builder methods
func (c *CarBuilder) WithStatus(status string) *CarBuilder {
	c.Status = status
	return c
}

func (c *CarBuilder) WithPlateNumber(plate string) *CarBuilder {
	c.PlateNumber = plate
	return c
}
