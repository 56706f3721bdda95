package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/you-humble/bike-configurator/internal/model"
)

// selectionViolations evaluates the configuration rules over an already
// resolved option set and returns the violation messages in a fixed order:
// stock first, then the same-product rule, then pair restrictions.
// Duplicates are dropped, preserving the first occurrence. A nil result
// means the selection is valid.
func selectionViolations(options []model.Option, restrictions []model.Restriction) []string {
	if len(options) == 0 {
		return []string{"No options selected."}
	}

	var violations []string

	for _, o := range options {
		if !o.InStock {
			violations = append(violations,
				fmt.Sprintf("Option '%s' (ID: %d) is out of stock.", o.Name, o.ID))
		}
	}

	products := make(map[int64]struct{}, 1)
	for _, o := range options {
		if o.Part == nil {
			// Unresolved part reference: skipped, not a violation.
			continue
		}
		products[o.Part.ProductID] = struct{}{}
	}
	if len(products) > 1 {
		violations = append(violations, "Selected options must belong to the same product.")
	}

	byID := make(map[int64]model.Option, len(options))
	for _, o := range options {
		byID[o.ID] = o
	}
	for _, rt := range restrictions {
		violations = append(violations,
			fmt.Sprintf("Selection violates restriction: '%s' conflicts with '%s'.",
				optionLabel(byID, rt.OptionID),
				optionLabel(byID, rt.RestrictedOptionID)))
	}

	return dedupeStrings(violations)
}

// totalPrice sums the option base prices and every applicable pairwise
// premium in exact decimal arithmetic.
func totalPrice(options []model.Option, rules []model.PriceRule) decimal.Decimal {
	total := decimal.Zero
	for _, o := range options {
		total = total.Add(o.Price)
	}
	for _, pr := range rules {
		total = total.Add(pr.Premium)
	}

	return total
}

func optionLabel(byID map[int64]model.Option, id int64) string {
	if o, ok := byID[id]; ok {
		return o.Name
	}
	return fmt.Sprintf("ID %d", id)
}

func dedupeStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

func dedupeIDs(in []int64) []int64 {
	seen := make(map[int64]struct{}, len(in))
	out := make([]int64, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
