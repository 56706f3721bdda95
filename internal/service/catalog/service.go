package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/you-humble/bike-configurator/internal/model"
	"github.com/you-humble/bike-configurator/platform/logger"
)

type CatalogRepository interface {
	CreateProduct(ctx context.Context, p *model.Product) (int64, error)
	ProductByID(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	CreatePart(ctx context.Context, p *model.Part) (int64, error)
	PartByID(ctx context.Context, productID, partID int64) (*model.Part, error)
	ListParts(ctx context.Context, productID int64) ([]model.Part, error)
	UpdatePart(ctx context.Context, p *model.Part) error
	DeletePart(ctx context.Context, productID, partID int64) error

	CreateOption(ctx context.Context, o *model.Option) (int64, error)
	OptionByID(ctx context.Context, partID, optionID int64) (*model.Option, error)
	ListOptions(ctx context.Context, partID int64) ([]model.Option, error)
	UpdateOption(ctx context.Context, o *model.Option) error
	DeleteOption(ctx context.Context, partID, optionID int64) error
	OptionsByIDs(ctx context.Context, ids []int64) ([]model.Option, error)

	CreateRestriction(ctx context.Context, rt *model.Restriction) (int64, error)
	RestrictionByID(ctx context.Context, id int64) (*model.Restriction, error)
	ListRestrictions(ctx context.Context) ([]model.Restriction, error)
	DeleteRestriction(ctx context.Context, id int64) error
	RestrictionExists(ctx context.Context, optionID, restrictedID int64) (bool, error)

	CreatePriceRule(ctx context.Context, pr *model.PriceRule) (int64, error)
	PriceRuleByID(ctx context.Context, id int64) (*model.PriceRule, error)
	ListPriceRules(ctx context.Context) ([]model.PriceRule, error)
	DeletePriceRule(ctx context.Context, id int64) error
	PriceRuleExists(ctx context.Context, aID, bID int64) (bool, error)
}

type service struct {
	repo           CatalogRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCatalogService(
	repo CatalogRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Products

func (svc *service) CreateProduct(ctx context.Context, params model.CreateProductParams) (*model.Product, error) {
	const op string = "catalog.service.CreateProduct"

	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%s: %w: name must be non-empty", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	p := &model.Product{Name: params.Name, Description: params.Description}
	id, err := svc.repo.CreateProduct(ctx, p)
	if err != nil {
		logger.Error(ctx, "repository create product", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.ID = id

	return p, nil
}

func (svc *service) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	const op string = "catalog.service.ProductByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.ProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (svc *service) ListProducts(ctx context.Context) ([]model.Product, error) {
	const op string = "catalog.service.ListProducts"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) UpdateProduct(ctx context.Context, id int64, params model.UpdateProductParams) (*model.Product, error) {
	const op string = "catalog.service.UpdateProduct"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	p, err := svc.repo.ProductByID(rdbCtx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, fmt.Errorf("%s: %w: name must be non-empty", op, model.ErrValidation)
		}
		p.Name = *params.Name
	}
	if params.Description != nil {
		p.Description = *params.Description
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdateProduct(wdbCtx, p); err != nil {
		logger.Error(ctx, "repository update product", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (svc *service) DeleteProduct(ctx context.Context, id int64) error {
	const op string = "catalog.service.DeleteProduct"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Parts

func (svc *service) CreatePart(ctx context.Context, productID int64, params model.CreatePartParams) (*model.Part, error) {
	const op string = "catalog.service.CreatePart"

	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%s: %w: name must be non-empty", op, model.ErrValidation)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	if _, err := svc.repo.ProductByID(rdbCtx, productID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	p := &model.Part{ProductID: productID, Name: params.Name}
	id, err := svc.repo.CreatePart(wdbCtx, p)
	if err != nil {
		logger.Error(ctx, "repository create part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.ID = id

	return p, nil
}

func (svc *service) PartByID(ctx context.Context, productID, partID int64) (*model.Part, error) {
	const op string = "catalog.service.PartByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.PartByID(ctx, productID, partID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (svc *service) ListParts(ctx context.Context, productID int64) ([]model.Part, error) {
	const op string = "catalog.service.ListParts"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	if _, err := svc.repo.ProductByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := svc.repo.ListParts(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) UpdatePart(ctx context.Context, productID, partID int64, params model.UpdatePartParams) (*model.Part, error) {
	const op string = "catalog.service.UpdatePart"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	p, err := svc.repo.PartByID(rdbCtx, productID, partID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, fmt.Errorf("%s: %w: name must be non-empty", op, model.ErrValidation)
		}
		p.Name = *params.Name
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdatePart(wdbCtx, p); err != nil {
		logger.Error(ctx, "repository update part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (svc *service) DeletePart(ctx context.Context, productID, partID int64) error {
	const op string = "catalog.service.DeletePart"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.DeletePart(ctx, productID, partID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Part options

func (svc *service) CreateOption(ctx context.Context, productID, partID int64, params model.CreateOptionParams) (*model.Option, error) {
	const op string = "catalog.service.CreateOption"

	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%s: %w: name must be non-empty", op, model.ErrValidation)
	}
	if params.Price.IsNegative() {
		return nil, fmt.Errorf("%s: %w: price must be non-negative", op, model.ErrValidation)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	if _, err := svc.repo.PartByID(rdbCtx, productID, partID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	o := &model.Option{
		PartID:  partID,
		Name:    params.Name,
		Price:   params.Price,
		InStock: params.InStock,
	}
	id, err := svc.repo.CreateOption(wdbCtx, o)
	if err != nil {
		logger.Error(ctx, "repository create option", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	o.ID = id

	return o, nil
}

func (svc *service) OptionByID(ctx context.Context, productID, partID, optionID int64) (*model.Option, error) {
	const op string = "catalog.service.OptionByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	if _, err := svc.repo.PartByID(ctx, productID, partID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	o, err := svc.repo.OptionByID(ctx, partID, optionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return o, nil
}

func (svc *service) ListOptions(ctx context.Context, productID, partID int64) ([]model.Option, error) {
	const op string = "catalog.service.ListOptions"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	if _, err := svc.repo.PartByID(ctx, productID, partID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := svc.repo.ListOptions(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) UpdateOption(ctx context.Context, productID, partID, optionID int64, params model.UpdateOptionParams) (*model.Option, error) {
	const op string = "catalog.service.UpdateOption"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	if _, err := svc.repo.PartByID(rdbCtx, productID, partID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	o, err := svc.repo.OptionByID(rdbCtx, partID, optionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, fmt.Errorf("%s: %w: name must be non-empty", op, model.ErrValidation)
		}
		o.Name = *params.Name
	}
	if params.Price != nil {
		if params.Price.IsNegative() {
			return nil, fmt.Errorf("%s: %w: price must be non-negative", op, model.ErrValidation)
		}
		o.Price = *params.Price
	}
	if params.InStock != nil {
		o.InStock = *params.InStock
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdateOption(wdbCtx, o); err != nil {
		logger.Error(ctx, "repository update option", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return o, nil
}

func (svc *service) DeleteOption(ctx context.Context, productID, partID, optionID int64) error {
	const op string = "catalog.service.DeleteOption"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	if _, err := svc.repo.PartByID(rdbCtx, productID, partID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.DeleteOption(wdbCtx, partID, optionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Restrictions

// CreateRestriction stores an incompatibility pair. The reverse pair is
// rejected at write time, which lets the engine treat the relation as
// symmetric without storing both orientations.
func (svc *service) CreateRestriction(ctx context.Context, params model.CreateRestrictionParams) (*model.Restriction, error) {
	const op string = "catalog.service.CreateRestriction"

	if params.OptionID == params.RestrictedOptionID {
		return nil, fmt.Errorf("%s: %w: a part option cannot restrict itself", op, model.ErrValidation)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	options, err := svc.repo.OptionsByIDs(rdbCtx, []int64{params.OptionID, params.RestrictedOptionID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(options) != 2 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrOptionNotFound)
	}

	exists, err := svc.repo.RestrictionExists(rdbCtx, params.OptionID, params.RestrictedOptionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w: restriction", op, model.ErrDuplicatePair)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	rt := &model.Restriction{
		OptionID:           params.OptionID,
		RestrictedOptionID: params.RestrictedOptionID,
	}
	id, err := svc.repo.CreateRestriction(wdbCtx, rt)
	if err != nil {
		logger.Error(ctx, "repository create restriction", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rt.ID = id

	return rt, nil
}

func (svc *service) RestrictionByID(ctx context.Context, id int64) (*model.Restriction, error) {
	const op string = "catalog.service.RestrictionByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	rt, err := svc.repo.RestrictionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rt, nil
}

func (svc *service) ListRestrictions(ctx context.Context) ([]model.Restriction, error) {
	const op string = "catalog.service.ListRestrictions"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.repo.ListRestrictions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) DeleteRestriction(ctx context.Context, id int64) error {
	const op string = "catalog.service.DeleteRestriction"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.DeleteRestriction(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Price rules

func (svc *service) CreatePriceRule(ctx context.Context, params model.CreatePriceRuleParams) (*model.PriceRule, error) {
	const op string = "catalog.service.CreatePriceRule"

	if params.OptionAID == params.OptionBID {
		return nil, fmt.Errorf("%s: %w: a price rule cannot apply to the same part option twice", op, model.ErrValidation)
	}
	if params.Premium.IsNegative() {
		return nil, fmt.Errorf("%s: %w: premium must be non-negative", op, model.ErrValidation)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	options, err := svc.repo.OptionsByIDs(rdbCtx, []int64{params.OptionAID, params.OptionBID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(options) != 2 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrOptionNotFound)
	}

	exists, err := svc.repo.PriceRuleExists(rdbCtx, params.OptionAID, params.OptionBID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w: price rule", op, model.ErrDuplicatePair)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	pr := &model.PriceRule{
		OptionAID: params.OptionAID,
		OptionBID: params.OptionBID,
		Premium:   params.Premium,
	}
	id, err := svc.repo.CreatePriceRule(wdbCtx, pr)
	if err != nil {
		logger.Error(ctx, "repository create price rule", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	pr.ID = id

	return pr, nil
}

func (svc *service) PriceRuleByID(ctx context.Context, id int64) (*model.PriceRule, error) {
	const op string = "catalog.service.PriceRuleByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	pr, err := svc.repo.PriceRuleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pr, nil
}

func (svc *service) ListPriceRules(ctx context.Context) ([]model.PriceRule, error) {
	const op string = "catalog.service.ListPriceRules"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.repo.ListPriceRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) DeletePriceRule(ctx context.Context, id int64) error {
	const op string = "catalog.service.DeletePriceRule"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.DeletePriceRule(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
