package brand

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("brand name must not be empty")

type Brand struct {
	id        uuid.UUID
	name      string
	image     *string
	createdAt time.Time
	updatedAt time.Time
}

func NewBrand(name string, image *string) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Brand{
		id:    uuid.New(),
		name:  name,
		image: image,
	}, nil
}

func (b *Brand) ID() uuid.UUID        { return b.id }
func (b *Brand) Name() string         { return b.name }
func (b *Brand) Image() *string       { return b.image }
func (b *Brand) CreatedAt() time.Time { return b.createdAt }
func (b *Brand) UpdatedAt() time.Time { return b.updatedAt }
