package model

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64
	Name        string
	Description string
}

type Part struct {
	ID        int64
	ProductID int64
	Name      string
}

type Option struct {
	ID      int64
	PartID  int64
	Name    string
	Price   decimal.Decimal
	InStock bool
	// Part is populated by catalog lookups that join the owning part;
	// plain CRUD reads leave it nil.
	Part *Part
}

// Restriction is an ordered pair: selecting OptionID forbids selecting
// RestrictedOptionID. The catalog guarantees the reverse pair is never
// stored, so the pair can be evaluated as symmetric.
type Restriction struct {
	ID                 int64
	OptionID           int64
	RestrictedOptionID int64
}

// PriceRule adds Premium to the total when both options of the pair are
// present in a selection.
type PriceRule struct {
	ID        int64
	OptionAID int64
	OptionBID int64
	Premium   decimal.Decimal
}

type ValidationResult struct {
	Valid  bool
	Errors []string
}

type CreateProductParams struct {
	Name        string
	Description string
}

type UpdateProductParams struct {
	Name        *string
	Description *string
}

type CreatePartParams struct {
	Name string
}

type UpdatePartParams struct {
	Name *string
}

type CreateOptionParams struct {
	Name    string
	Price   decimal.Decimal
	InStock bool
}

type UpdateOptionParams struct {
	Name    *string
	Price   *decimal.Decimal
	InStock *bool
}

type CreateRestrictionParams struct {
	OptionID           int64
	RestrictedOptionID int64
}

type CreatePriceRuleParams struct {
	OptionAID int64
	OptionBID int64
	Premium   decimal.Decimal
}
