package request

type CreateBrandRequest struct {
	Name  string  `json:"name" binding:"required"`
	Image *string `json:"image,omitempty"`
}

type UpdateBrandRequest struct {
	Name  *string `json:"name,omitempty"`
	Image *string `json:"image,omitempty"`
}
