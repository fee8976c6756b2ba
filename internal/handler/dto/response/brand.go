package response

import (
	"time"

	"moveit-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BrandResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBrandView(view *queries.BrandView) *BrandResponse {
	return &BrandResponse{
		ID:        view.ID,
		Name:      view.Name,
		Image:     view.Image,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromBrandViews(views []*queries.BrandView) []*BrandResponse {
	result := make([]*BrandResponse, len(views))
	for i, v := range views {
		result[i] = FromBrandView(v)
	}
	return result
}
