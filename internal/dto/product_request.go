package dto

// ProductRequest carries the scalar multipart fields of a create or update
// call. Numeric fields arrive as form strings and are parsed by the service;
// on update an empty field means "leave unchanged".
type ProductRequest struct {
	ID          int64  `form:"-"`
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Stock       string `form:"stock"`
	// Sizes and Colors are JSON-encoded string arrays, e.g. ["38","40"].
	Sizes  string `form:"sizes"`
	Colors string `form:"colors"`
	// RemovedImageIDs is a JSON-encoded array of image ids to drop before
	// the rest of the update is applied.
	RemovedImageIDs string `form:"removedImageIds"`
}

// Upload is an image file already read off the wire.
type Upload struct {
	FileName string
	Content  []byte
}

// CatalogQuery holds the optional filter/sort parameters of the list
// endpoint. Sizes and colors repeat, e.g. ?sizes=38&sizes=40.
type CatalogQuery struct {
	MinPrice   *int64   `query:"min_price"`
	MaxPrice   *int64   `query:"max_price"`
	Sizes      []string `query:"sizes"`
	Colors     []string `query:"colors"`
	InStock    bool     `query:"in_stock"`
	OutOfStock bool     `query:"out_of_stock"`
	Sort       string   `query:"sort"`
}
