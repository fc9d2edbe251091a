package catalog

import (
	"sort"
	"testing"

	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/stretchr/testify/assert"
)

func price(v int64) *int64 {
	return &v
}

func sampleProducts() []dto.ProductResponse {
	return []dto.ProductResponse{
		{ID: 1, Name: "Satin Gown", Price: 1000, Stock: 3, Sizes: []string{"38", "40"}, Colors: []string{"Red"}},
		{ID: 2, Name: "Linen Dress", Price: 5000, Stock: 0, Sizes: []string{"36"}, Colors: []string{"Black", "White"}},
		{ID: 3, Name: "Abaya", Price: 9000, Stock: 7, Sizes: []string{"42"}, Colors: []string{"Navy"}},
	}
}

func TestApply(t *testing.T) {
	type TestCase struct {
		Name        string
		Filter      Filter
		ExpectedIDs []int64
	}

	testCases := []TestCase{
		{
			Name:        "Empty filter keeps everything",
			Filter:      Filter{},
			ExpectedIDs: []int64{1, 2, 3},
		},
		{
			Name:        "Price range is inclusive",
			Filter:      Filter{MinPrice: price(2000), MaxPrice: price(9000)},
			ExpectedIDs: []int64{2, 3},
		},
		{
			Name:        "Size selection intersects product sizes",
			Filter:      Filter{Sizes: []string{"36", "38"}},
			ExpectedIDs: []int64{1, 2},
		},
		{
			Name:        "Color selection intersects product colors",
			Filter:      Filter{Colors: []string{"White"}},
			ExpectedIDs: []int64{2},
		},
		{
			Name:        "Only in stock",
			Filter:      Filter{InStock: true},
			ExpectedIDs: []int64{1, 3},
		},
		{
			Name:        "Only out of stock",
			Filter:      Filter{OutOfStock: true},
			ExpectedIDs: []int64{2},
		},
		{
			Name:        "Both stock boxes pass everything through",
			Filter:      Filter{InStock: true, OutOfStock: true},
			ExpectedIDs: []int64{1, 2, 3},
		},
		{
			Name:        "Combined axes",
			Filter:      Filter{MinPrice: price(0), MaxPrice: price(6000), InStock: true},
			ExpectedIDs: []int64{1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			input := sampleProducts()
			got := Apply(input, tc.Filter)

			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.ExpectedIDs, ids)

			// the input is never mutated
			assert.Equal(t, sampleProducts(), input)
		})
	}
}

func TestApplyReturnsSubset(t *testing.T) {
	input := sampleProducts()
	got := Apply(input, Filter{Sizes: []string{"38"}, InStock: true})

	known := map[int64]bool{}
	for _, p := range input {
		known[p.ID] = true
	}
	for _, p := range got {
		assert.True(t, known[p.ID])
	}
}

func TestApplyEmptySelectionIsIdentity(t *testing.T) {
	input := sampleProducts()

	assert.Equal(t, Apply(input, Filter{}), Apply(input, Filter{Sizes: []string{}, Colors: []string{}}))
}

func TestSort(t *testing.T) {
	type TestCase struct {
		Name        string
		Key         string
		ExpectedIDs []int64
	}

	products := []dto.ProductResponse{
		{ID: 1, Name: "Caftan", Price: 7000},
		{ID: 2, Name: "Abaya", Price: 2500},
		{ID: 3, Name: "Blazer", Price: 7000},
	}

	testCases := []TestCase{
		{Name: "Newest keeps input order", Key: SortNewest, ExpectedIDs: []int64{1, 2, 3}},
		{Name: "Unknown key keeps input order", Key: "whatever", ExpectedIDs: []int64{1, 2, 3}},
		{Name: "Price low is non-decreasing and stable", Key: SortPriceLow, ExpectedIDs: []int64{2, 1, 3}},
		{Name: "Price high is non-increasing and stable", Key: SortPriceHigh, ExpectedIDs: []int64{1, 3, 2}},
		{Name: "Name sorts lexicographically", Key: SortName, ExpectedIDs: []int64{2, 3, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := Sort(products, tc.Key)

			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.ExpectedIDs, ids)
		})
	}
}

func TestSortPriceMonotonic(t *testing.T) {
	input := sampleProducts()

	low := Sort(input, SortPriceLow)
	assert.True(t, sort.SliceIsSorted(low, func(i, j int) bool { return low[i].Price < low[j].Price }))

	high := Sort(input, SortPriceHigh)
	assert.True(t, sort.SliceIsSorted(high, func(i, j int) bool { return high[i].Price > high[j].Price }))
}

func TestPriceBounds(t *testing.T) {
	min, max, ok := PriceBounds(sampleProducts())
	assert.True(t, ok)
	assert.Equal(t, int64(1000), min)
	assert.Equal(t, int64(9000), max)

	_, _, ok = PriceBounds(nil)
	assert.False(t, ok)
}
