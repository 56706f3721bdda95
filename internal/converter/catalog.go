package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/bike-configurator/internal/model"
)

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PartResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
}

type OptionResponse struct {
	ID      int64  `json:"id"`
	PartID  int64  `json:"part_id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	InStock bool   `json:"in_stock"`
}

type RestrictionResponse struct {
	ID                 int64 `json:"id"`
	PartOptionID       int64 `json:"part_option_id"`
	RestrictedOptionID int64 `json:"restricted_part_option_id"`
}

type PriceRuleResponse struct {
	ID            int64  `json:"id"`
	PartOptionAID int64  `json:"part_option_a_id"`
	PartOptionBID int64  `json:"part_option_b_id"`
	Premium       string `json:"premium"`
}

func ProductToResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

func ProductsToResponse(products []model.Product) []ProductResponse {
	return lo.Map(products, func(p model.Product, _ int) ProductResponse {
		return ProductToResponse(&p)
	})
}

func PartToResponse(p *model.Part) PartResponse {
	return PartResponse{
		ID:        p.ID,
		ProductID: p.ProductID,
		Name:      p.Name,
	}
}

func PartsToResponse(parts []model.Part) []PartResponse {
	return lo.Map(parts, func(p model.Part, _ int) PartResponse {
		return PartToResponse(&p)
	})
}

func OptionToResponse(o *model.Option) OptionResponse {
	return OptionResponse{
		ID:      o.ID,
		PartID:  o.PartID,
		Name:    o.Name,
		Price:   o.Price.StringFixed(2),
		InStock: o.InStock,
	}
}

func OptionsToResponse(options []model.Option) []OptionResponse {
	return lo.Map(options, func(o model.Option, _ int) OptionResponse {
		return OptionToResponse(&o)
	})
}

func RestrictionToResponse(rt *model.Restriction) RestrictionResponse {
	return RestrictionResponse{
		ID:                 rt.ID,
		PartOptionID:       rt.OptionID,
		RestrictedOptionID: rt.RestrictedOptionID,
	}
}

func RestrictionsToResponse(restrictions []model.Restriction) []RestrictionResponse {
	return lo.Map(restrictions, func(rt model.Restriction, _ int) RestrictionResponse {
		return RestrictionToResponse(&rt)
	})
}

func PriceRuleToResponse(pr *model.PriceRule) PriceRuleResponse {
	return PriceRuleResponse{
		ID:            pr.ID,
		PartOptionAID: pr.OptionAID,
		PartOptionBID: pr.OptionBID,
		Premium:       pr.Premium.StringFixed(2),
	}
}

func PriceRulesToResponse(rules []model.PriceRule) []PriceRuleResponse {
	return lo.Map(rules, func(pr model.PriceRule, _ int) PriceRuleResponse {
		return PriceRuleToResponse(&pr)
	})
}
