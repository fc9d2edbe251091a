package catalog

import (
	"sort"

	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
)

// Filter is the set of criteria a catalog view is derived from. A nil price
// bound, an empty label selection, and the both/neither stock states all mean
// "no filtering on that axis".
type Filter struct {
	MinPrice   *int64
	MaxPrice   *int64
	Sizes      []string
	Colors     []string
	InStock    bool
	OutOfStock bool
}

const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// Apply derives a new list from products; the input slice is never mutated
// and relative order is preserved.
func Apply(products []dto.ProductResponse, f Filter) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if !passesPrice(p, f) {
			continue
		}
		if !intersects(p.Sizes, f.Sizes) {
			continue
		}
		if !intersects(p.Colors, f.Colors) {
			continue
		}
		if !passesStock(p, f) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders products by the given key. Sorting is stable; newest and any
// unknown key keep the input order. The input slice is not mutated.
func Sort(products []dto.ProductResponse, key string) []dto.ProductResponse {
	out := make([]dto.ProductResponse, len(products))
	copy(out, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}

	return out
}

// PriceBounds returns the min and max price over the loaded products, for
// seeding the price-range control. ok is false when the list is empty.
func PriceBounds(products []dto.ProductResponse) (min, max int64, ok bool) {
	if len(products) == 0 {
		return 0, 0, false
	}
	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max, true
}

func passesPrice(p dto.ProductResponse, f Filter) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// passesStock implements the checkbox pair: exactly one checked filters,
// both or neither pass everything through.
func passesStock(p dto.ProductResponse, f Filter) bool {
	if f.InStock == f.OutOfStock {
		return true
	}
	if f.InStock {
		return p.Stock > 0
	}
	return p.Stock <= 0
}

// intersects reports whether the product labels share at least one entry
// with the selection. An empty selection matches everything.
func intersects(labels, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		for _, l := range labels {
			if l == s {
				return true
			}
		}
	}
	return false
}
