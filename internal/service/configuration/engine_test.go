package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/you-humble/bike-configurator/internal/model"
)

func TestSelectionViolations(t *testing.T) {
	t.Parallel()

	part := func(id, productID int64) *model.Part {
		return &model.Part{ID: id, ProductID: productID}
	}

	tests := []struct {
		name         string
		options      []model.Option
		restrictions []model.Restriction
		want         []string
	}{
		{
			name: "empty selection",
			want: []string{"No options selected."},
		},
		{
			name: "valid selection reports nothing",
			options: []model.Option{
				{ID: 1, Name: "Full-suspension", InStock: true, Part: part(1, 1)},
				{ID: 5, Name: "Shiny", InStock: true, Part: part(2, 1)},
			},
			want: nil,
		},
		{
			name: "stock violations come before restriction violations",
			options: []model.Option{
				{ID: 7, Name: "Mountain wheels", InStock: true, Part: part(3, 1)},
				{ID: 2, Name: "Diamond", InStock: true, Part: part(1, 1)},
				{ID: 13, Name: "8-speed chain", InStock: false, Part: part(5, 1)},
			},
			restrictions: []model.Restriction{
				{ID: 1, OptionID: 7, RestrictedOptionID: 2},
			},
			want: []string{
				"Option '8-speed chain' (ID: 13) is out of stock.",
				"Selection violates restriction: 'Mountain wheels' conflicts with 'Diamond'.",
			},
		},
		{
			name: "options from different products",
			options: []model.Option{
				{ID: 1, Name: "Full-suspension", InStock: true, Part: part(1, 1)},
				{ID: 20, Name: "Drop bars", InStock: true, Part: part(9, 2)},
			},
			want: []string{"Selected options must belong to the same product."},
		},
		{
			name: "duplicate restriction rows collapse to one message",
			options: []model.Option{
				{ID: 8, Name: "Fat bike wheels", InStock: true, Part: part(3, 1)},
				{ID: 9, Name: "Red", InStock: true, Part: part(4, 1)},
			},
			restrictions: []model.Restriction{
				{ID: 1, OptionID: 8, RestrictedOptionID: 9},
				{ID: 1, OptionID: 8, RestrictedOptionID: 9},
			},
			want: []string{
				"Selection violates restriction: 'Fat bike wheels' conflicts with 'Red'.",
			},
		},
		{
			name: "restriction naming falls back to the id when unresolved",
			options: []model.Option{
				{ID: 8, Name: "Fat bike wheels", InStock: true, Part: part(3, 1)},
			},
			restrictions: []model.Restriction{
				{ID: 1, OptionID: 8, RestrictedOptionID: 77},
			},
			want: []string{
				"Selection violates restriction: 'Fat bike wheels' conflicts with 'ID 77'.",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := selectionViolations(tc.options, tc.restrictions)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTotalPrice(t *testing.T) {
	t.Parallel()

	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	tests := []struct {
		name    string
		options []model.Option
		rules   []model.PriceRule
		want    string
	}{
		{
			name: "no options",
			want: "0.00",
		},
		{
			name: "base prices only",
			options: []model.Option{
				{ID: 1, Price: price("130.00")},
				{ID: 5, Price: price("30.00")},
			},
			want: "160.00",
		},
		{
			name: "premium applies on top of base prices",
			options: []model.Option{
				{ID: 1, Price: price("130.00")},
				{ID: 4, Price: price("35.00")},
			},
			rules: []model.PriceRule{
				{ID: 1, OptionAID: 1, OptionBID: 4, Premium: price("15.00")},
			},
			want: "180.00",
		},
		{
			name: "cent amounts stay exact",
			options: []model.Option{
				{ID: 1, Price: price("0.10")},
				{ID: 2, Price: price("0.20")},
			},
			want: "0.30",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := totalPrice(tc.options, tc.rules)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestDedupeIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int64{3, 1, 2}, dedupeIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupeIDs(nil))
}
