package catalog

import "github.com/abdulbasset-benz/misskitty-api/internal/dto"

// Fallback options shown on the detail page when a product has none of its
// own configured.
var (
	DefaultSizes  = []string{"36", "38", "40", "42", "44"}
	DefaultColors = []string{"Black", "White", "Beige", "Red", "Bordeaux", "Navy", "Green", "Pink", "Brown"}
)

// EffectiveSizes returns the product's configured sizes, or the default list
// when none are set.
func EffectiveSizes(p dto.ProductResponse) []string {
	if len(p.Sizes) > 0 {
		return p.Sizes
	}
	return DefaultSizes
}

// EffectiveColors returns the product's configured colors, or the default
// list when none are set.
func EffectiveColors(p dto.ProductResponse) []string {
	if len(p.Colors) > 0 {
		return p.Colors
	}
	return DefaultColors
}

// ClampImageIndex maps any requested image index onto a valid one, so a
// selection kept across an image removal never lands out of bounds. Returns
// 0 when the product has no images.
func ClampImageIndex(p dto.ProductResponse, idx int) int {
	n := len(p.Images)
	if n == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
