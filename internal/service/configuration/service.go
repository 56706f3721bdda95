package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you-humble/bike-configurator/internal/model"
	"github.com/you-humble/bike-configurator/platform/logger"
)

const invalidIDsMessage = "One or more selected part option IDs are invalid."

type CatalogRepository interface {
	OptionsByIDs(ctx context.Context, ids []int64) ([]model.Option, error)
	RestrictionsAmong(ctx context.Context, ids []int64) ([]model.Restriction, error)
	PriceRulesAmong(ctx context.Context, ids []int64) ([]model.PriceRule, error)
}

type OrderRepository interface {
	Create(ctx context.Context, ord *model.Order) (int64, error)
	OrderByID(ctx context.Context, id int64) (*model.Order, error)
}

type OrderCreatedSender interface {
	SendOrderCreated(ctx context.Context, event model.OrderCreated) error
}

type service struct {
	catalog        CatalogRepository
	orders         OrderRepository
	producer       OrderCreatedSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewConfigurationService(
	catalog CatalogRepository,
	orders OrderRepository,
	producer OrderCreatedSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		catalog:        catalog,
		orders:         orders,
		producer:       producer,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Validate resolves the selected option ids and runs the configuration
// rules over them. An unresolvable id makes the whole selection invalid
// without running any further rule. Validate never mutates anything.
func (svc *service) Validate(ctx context.Context, selectedIDs []int64) (*model.ValidationResult, error) {
	const op string = "configuration.service.Validate"
	log := logger.With(
		logger.Int("number_selected_ids", len(selectedIDs)),
	)

	ids := dedupeIDs(selectedIDs)
	if len(ids) == 0 {
		return &model.ValidationResult{
			Valid:  false,
			Errors: []string{"No options selected."},
		}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	options, err := svc.catalog.OptionsByIDs(ctx, ids)
	if err != nil {
		log.Error(ctx, "catalog options by ids", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(options) != len(ids) {
		return &model.ValidationResult{
			Valid:  false,
			Errors: []string{invalidIDsMessage},
		}, nil
	}

	restrictions, err := svc.catalog.RestrictionsAmong(ctx, ids)
	if err != nil {
		log.Error(ctx, "catalog restrictions among", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	violations := selectionViolations(options, restrictions)

	return &model.ValidationResult{
		Valid:  len(violations) == 0,
		Errors: violations,
	}, nil
}

// Price computes the deterministic total of a selection: base prices plus
// every pairwise premium whose two options are both selected. Pricing is
// independent of validity so callers can preview the price of a selection
// that still violates a restriction.
func (svc *service) Price(ctx context.Context, selectedIDs []int64) (decimal.Decimal, error) {
	const op string = "configuration.service.Price"
	log := logger.With(
		logger.Int("number_selected_ids", len(selectedIDs)),
	)

	ids := dedupeIDs(selectedIDs)

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	options, err := svc.catalog.OptionsByIDs(ctx, ids)
	if err != nil {
		log.Error(ctx, "catalog options by ids", logger.ErrorF(err))
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	if len(options) != len(ids) {
		log.Warn(ctx, "unresolved option ids",
			logger.Int("number_resolved", len(options)),
		)
		return decimal.Zero, fmt.Errorf("%s: %w", op, model.ErrOptionNotFound)
	}

	// A premium needs a pair; skip the rule lookup entirely below two
	// options.
	if len(options) < 2 {
		return totalPrice(options, nil), nil
	}

	rules, err := svc.catalog.PriceRulesAmong(ctx, ids)
	if err != nil {
		log.Error(ctx, "catalog price rules among", logger.ErrorF(err))
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	return totalPrice(options, rules), nil
}

// CreateOrder validates and prices the selection, then commits the order
// with its line items atomically. Any rule violation aborts the commit and
// no rows are written.
func (svc *service) CreateOrder(ctx context.Context, params model.CreateOrderParams) (*model.Order, error) {
	const op string = "configuration.service.CreateOrder"
	log := logger.With(
		logger.String("customer_email", params.CustomerEmail),
		logger.Int("number_selected_ids", len(params.SelectedOptionIDs)),
	)

	if strings.TrimSpace(params.CustomerName) == "" ||
		strings.TrimSpace(params.CustomerEmail) == "" ||
		len(params.SelectedOptionIDs) == 0 {
		log.Error(ctx, "wrong params")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ids := dedupeIDs(params.SelectedOptionIDs)

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	options, err := svc.catalog.OptionsByIDs(rdbCtx, ids)
	if err != nil {
		log.Error(ctx, "catalog options by ids", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(options) != len(ids) {
		log.Warn(ctx, "unresolved option ids",
			logger.Int("number_resolved", len(options)),
		)
		return nil, fmt.Errorf("%s: %w", op, model.ErrOptionNotFound)
	}

	restrictions, err := svc.catalog.RestrictionsAmong(rdbCtx, ids)
	if err != nil {
		log.Error(ctx, "catalog restrictions among", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if violations := selectionViolations(options, restrictions); len(violations) > 0 {
		log.Warn(ctx, "selection rejected", logger.Strings("violations", violations))
		return nil, fmt.Errorf("%s: %w", op, &model.ViolationsError{Violations: violations})
	}

	var rules []model.PriceRule
	if len(options) >= 2 {
		rules, err = svc.catalog.PriceRulesAmong(rdbCtx, ids)
		if err != nil {
			log.Error(ctx, "catalog price rules among", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	total := totalPrice(options, rules)

	lineItems := make([]model.OrderLineItem, 0, len(options))
	for _, o := range options {
		lineItems = append(lineItems, model.OrderLineItem{OptionID: o.ID})
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	ordID, err := svc.orders.Create(wdbCtx, &model.Order{
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		Status:        model.StatusPending,
		TotalPrice:    total,
		LineItems:     lineItems,
	})
	if err != nil {
		log.Error(ctx, "repository create order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ord, err := svc.orders.OrderByID(wdbCtx, ordID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// The order is committed at this point; event delivery is best effort.
	if err := svc.producer.SendOrderCreated(ctx, model.OrderCreated{
		EventID:       uuid.New(),
		OrderID:       ord.ID,
		CustomerEmail: ord.CustomerEmail,
		TotalPrice:    ord.TotalPrice,
		Status:        ord.Status,
	}); err != nil {
		log.Warn(ctx, "send order created event",
			logger.Int64("order_id", ord.ID),
			logger.ErrorF(err),
		)
	}

	return ord, nil
}
