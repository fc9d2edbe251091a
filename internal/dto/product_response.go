package dto

type ProductResponse struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       int64                  `json:"price"`
	Stock       int                    `json:"stock"`
	Sizes       []string               `json:"sizes"`
	Colors      []string               `json:"colors"`
	Images      []ProductImageResponse `json:"images"`
	CreatedAt   int64                  `json:"created_at"`
	UpdatedAt   int64                  `json:"updated_at"`
}

type ProductImageResponse struct {
	ID       int64  `json:"id"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

// ProductDetailResponse is the detail-page view: the stored product plus the
// orderable options (configured labels or the standard defaults) and the
// clamped carousel index.
type ProductDetailResponse struct {
	ProductResponse
	AvailableSizes  []string `json:"available_sizes"`
	AvailableColors []string `json:"available_colors"`
	SelectedImage   int      `json:"selected_image"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
