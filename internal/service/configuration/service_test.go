package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/bike-configurator/internal/model"
	"github.com/you-humble/bike-configurator/internal/service/configuration/mocks"
)

const dbTimeout = 5 * time.Second

func bikePart(id int64) *model.Part {
	return &model.Part{ID: id, ProductID: 1, Name: gofakeit.ProductName()}
}

func TestServiceValidate(t *testing.T) {
	t.Parallel()

	type deps struct {
		catalog  *mocks.MockCatalogRepository
		orders   *mocks.MockOrderRepository
		producer *mocks.MockOrderCreatedSender
	}

	newSvc := func(d deps) *service {
		return NewConfigurationService(d.catalog, d.orders, d.producer, dbTimeout, dbTimeout)
	}

	type testCase struct {
		name        string
		selectedIDs []int64
		setup       func(d deps)
		assert      func(t *testing.T, res *model.ValidationResult, err error, d deps)
	}

	tests := []testCase{
		{
			name:        "empty selection is invalid without touching the catalog",
			selectedIDs: nil,
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res *model.ValidationResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.False(t, res.Valid)
				assert.Equal(t, []string{"No options selected."}, res.Errors)

				d.catalog.AssertNotCalled(t, "OptionsByIDs", mock.Anything, mock.Anything)
			},
		},
		{
			name:        "unresolved id invalidates the whole selection",
			selectedIDs: []int64{1, 999},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{1, 999}).
					Return([]model.Option{
						{ID: 1, Name: "Full-suspension", InStock: true, Part: bikePart(1)},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.ValidationResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.False(t, res.Valid)
				assert.Equal(t, []string{"One or more selected part option IDs are invalid."}, res.Errors)

				d.catalog.AssertNotCalled(t, "RestrictionsAmong", mock.Anything, mock.Anything)
			},
		},
		{
			name:        "duplicate ids are collapsed before resolution",
			selectedIDs: []int64{1, 1, 1},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{1}).
					Return([]model.Option{
						{ID: 1, Name: "Full-suspension", InStock: true, Part: bikePart(1)},
					}, nil).
					Once()
				d.catalog.
					On("RestrictionsAmong", mock.Anything, []int64{1}).
					Return(nil, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.ValidationResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.True(t, res.Valid)
				assert.Empty(t, res.Errors)
			},
		},
		{
			name:        "out of stock and restriction violations are both reported",
			selectedIDs: []int64{7, 2, 13},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{7, 2, 13}).
					Return([]model.Option{
						{ID: 7, Name: "Mountain wheels", InStock: true, Part: bikePart(3)},
						{ID: 2, Name: "Diamond", InStock: true, Part: bikePart(1)},
						{ID: 13, Name: "8-speed chain", InStock: false, Part: bikePart(5)},
					}, nil).
					Once()
				d.catalog.
					On("RestrictionsAmong", mock.Anything, []int64{7, 2, 13}).
					Return([]model.Restriction{
						{ID: 1, OptionID: 7, RestrictedOptionID: 2},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.ValidationResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.False(t, res.Valid)
				assert.Equal(t, []string{
					"Option '8-speed chain' (ID: 13) is out of stock.",
					"Selection violates restriction: 'Mountain wheels' conflicts with 'Diamond'.",
				}, res.Errors)
			},
		},
		{
			name:        "catalog failure is propagated",
			selectedIDs: []int64{1},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{1}).
					Return(nil, errors.New("db is down")).
					Once()
			},
			assert: func(t *testing.T, res *model.ValidationResult, err error, d deps) {
				require.Error(t, err)
				assert.Nil(t, res)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				catalog:  mocks.NewMockCatalogRepository(t),
				orders:   mocks.NewMockOrderRepository(t),
				producer: mocks.NewMockOrderCreatedSender(t),
			}
			tc.setup(d)

			res, err := newSvc(d).Validate(context.Background(), tc.selectedIDs)
			tc.assert(t, res, err, d)
		})
	}
}

func TestServicePrice(t *testing.T) {
	t.Parallel()

	type deps struct {
		catalog  *mocks.MockCatalogRepository
		orders   *mocks.MockOrderRepository
		producer *mocks.MockOrderCreatedSender
	}

	newSvc := func(d deps) *service {
		return NewConfigurationService(d.catalog, d.orders, d.producer, dbTimeout, dbTimeout)
	}

	type testCase struct {
		name        string
		selectedIDs []int64
		setup       func(d deps)
		assert      func(t *testing.T, total decimal.Decimal, err error, d deps)
	}

	tests := []testCase{
		{
			name:        "base prices plus matching pair premium",
			selectedIDs: []int64{1, 4},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{1, 4}).
					Return([]model.Option{
						{ID: 1, Name: "Full-suspension", Price: decimal.RequireFromString("130.00"), InStock: true, Part: bikePart(1)},
						{ID: 4, Name: "Matte", Price: decimal.RequireFromString("35.00"), InStock: true, Part: bikePart(2)},
					}, nil).
					Once()
				d.catalog.
					On("PriceRulesAmong", mock.Anything, []int64{1, 4}).
					Return([]model.PriceRule{
						{ID: 1, OptionAID: 1, OptionBID: 4, Premium: decimal.RequireFromString("15.00")},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, total decimal.Decimal, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, "180.00", total.StringFixed(2))
			},
		},
		{
			name:        "single option skips the rule lookup",
			selectedIDs: []int64{5},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{5}).
					Return([]model.Option{
						{ID: 5, Name: "Shiny", Price: decimal.RequireFromString("30.00"), InStock: true, Part: bikePart(2)},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, total decimal.Decimal, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, "30.00", total.StringFixed(2))

				d.catalog.AssertNotCalled(t, "PriceRulesAmong", mock.Anything, mock.Anything)
			},
		},
		{
			name:        "unresolved id is a not found error",
			selectedIDs: []int64{1, 999},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{1, 999}).
					Return([]model.Option{
						{ID: 1, Name: "Full-suspension", Price: decimal.RequireFromString("130.00"), InStock: true, Part: bikePart(1)},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, total decimal.Decimal, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrOptionNotFound)
				assert.True(t, total.IsZero())
			},
		},
		{
			name:        "price ignores stock and restriction state",
			selectedIDs: []int64{13, 12},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{13, 12}).
					Return([]model.Option{
						{ID: 13, Name: "8-speed chain", Price: decimal.RequireFromString("55.00"), InStock: false, Part: bikePart(5)},
						{ID: 12, Name: "Single-speed chain", Price: decimal.RequireFromString("43.00"), InStock: true, Part: bikePart(5)},
					}, nil).
					Once()
				d.catalog.
					On("PriceRulesAmong", mock.Anything, []int64{13, 12}).
					Return(nil, nil).
					Once()
			},
			assert: func(t *testing.T, total decimal.Decimal, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, "98.00", total.StringFixed(2))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				catalog:  mocks.NewMockCatalogRepository(t),
				orders:   mocks.NewMockOrderRepository(t),
				producer: mocks.NewMockOrderCreatedSender(t),
			}
			tc.setup(d)

			total, err := newSvc(d).Price(context.Background(), tc.selectedIDs)
			tc.assert(t, total, err, d)
		})
	}
}

func TestServicePriceOrderIndependent(t *testing.T) {
	t.Parallel()

	options := []model.Option{
		{ID: 1, Name: "Full-suspension", Price: decimal.RequireFromString("130.00"), InStock: true, Part: bikePart(1)},
		{ID: 4, Name: "Matte", Price: decimal.RequireFromString("35.00"), InStock: true, Part: bikePart(2)},
		{ID: 6, Name: "Road wheels", Price: decimal.RequireFromString("80.00"), InStock: true, Part: bikePart(3)},
	}
	rules := []model.PriceRule{
		{ID: 1, OptionAID: 1, OptionBID: 4, Premium: decimal.RequireFromString("15.00")},
	}

	permutations := [][]int64{
		{1, 4, 6},
		{6, 1, 4},
		{4, 6, 1},
	}

	totals := make([]decimal.Decimal, 0, len(permutations))
	for _, ids := range permutations {
		catalog := mocks.NewMockCatalogRepository(t)
		catalog.On("OptionsByIDs", mock.Anything, ids).Return(options, nil).Once()
		catalog.On("PriceRulesAmong", mock.Anything, ids).Return(rules, nil).Once()

		svc := NewConfigurationService(
			catalog,
			mocks.NewMockOrderRepository(t),
			mocks.NewMockOrderCreatedSender(t),
			dbTimeout, dbTimeout,
		)

		total, err := svc.Price(context.Background(), ids)
		require.NoError(t, err)
		totals = append(totals, total)
	}

	for _, total := range totals[1:] {
		assert.True(t, total.Equal(totals[0]),
			"expected %s, got %s", totals[0], total)
	}
	assert.Equal(t, "260.00", totals[0].StringFixed(2))
}

func TestServiceCreateOrder(t *testing.T) {
	t.Parallel()

	type deps struct {
		catalog  *mocks.MockCatalogRepository
		orders   *mocks.MockOrderRepository
		producer *mocks.MockOrderCreatedSender
	}

	newSvc := func(d deps) *service {
		return NewConfigurationService(d.catalog, d.orders, d.producer, dbTimeout, dbTimeout)
	}

	customerName := gofakeit.Name()
	customerEmail := gofakeit.Email()

	validOptions := []model.Option{
		{ID: 1, Name: "Full-suspension", Price: decimal.RequireFromString("130.00"), InStock: true, Part: bikePart(1)},
		{ID: 4, Name: "Matte", Price: decimal.RequireFromString("35.00"), InStock: true, Part: bikePart(2)},
	}
	storedOrder := &model.Order{
		ID:            42,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Status:        model.StatusPending,
		TotalPrice:    decimal.RequireFromString("180.00"),
		LineItems: []model.OrderLineItem{
			{ID: 1, OrderID: 42, OptionID: 1},
			{ID: 2, OrderID: 42, OptionID: 4},
		},
	}

	type testCase struct {
		name   string
		params model.CreateOrderParams
		setup  func(d deps)
		assert func(t *testing.T, ord *model.Order, err error, d deps)
	}

	tests := []testCase{
		{
			name: "validation error: empty customer name",
			params: model.CreateOrderParams{
				CustomerName:      "  ",
				CustomerEmail:     customerEmail,
				SelectedOptionIDs: []int64{1},
			},
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, ord *model.Order, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, ord)
			},
		},
		{
			name: "validation error: empty selection",
			params: model.CreateOrderParams{
				CustomerName:  customerName,
				CustomerEmail: customerEmail,
			},
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, ord *model.Order, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, ord)
			},
		},
		{
			name: "not found: selection contains an unknown id",
			params: model.CreateOrderParams{
				CustomerName:      customerName,
				CustomerEmail:     customerEmail,
				SelectedOptionIDs: []int64{1, 999},
			},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{1, 999}).
					Return(validOptions[:1], nil).
					Once()
			},
			assert: func(t *testing.T, ord *model.Order, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrOptionNotFound)
				assert.Nil(t, ord)

				d.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "violations abort the commit",
			params: model.CreateOrderParams{
				CustomerName:      customerName,
				CustomerEmail:     customerEmail,
				SelectedOptionIDs: []int64{7, 2},
			},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{7, 2}).
					Return([]model.Option{
						{ID: 7, Name: "Mountain wheels", Price: decimal.RequireFromString("120.00"), InStock: true, Part: bikePart(3)},
						{ID: 2, Name: "Diamond", Price: decimal.RequireFromString("90.00"), InStock: true, Part: bikePart(1)},
					}, nil).
					Once()
				d.catalog.
					On("RestrictionsAmong", mock.Anything, []int64{7, 2}).
					Return([]model.Restriction{
						{ID: 1, OptionID: 7, RestrictedOptionID: 2},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, ord *model.Order, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrSelectionInvalid)

				var violations *model.ViolationsError
				require.ErrorAs(t, err, &violations)
				assert.Equal(t, []string{
					"Selection violates restriction: 'Mountain wheels' conflicts with 'Diamond'.",
				}, violations.Violations)
				assert.Nil(t, ord)

				d.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				d.producer.AssertNotCalled(t, "SendOrderCreated", mock.Anything, mock.Anything)
			},
		},
		{
			name: "valid selection is committed and the event is emitted",
			params: model.CreateOrderParams{
				CustomerName:      customerName,
				CustomerEmail:     customerEmail,
				SelectedOptionIDs: []int64{1, 4},
			},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{1, 4}).
					Return(validOptions, nil).
					Once()
				d.catalog.
					On("RestrictionsAmong", mock.Anything, []int64{1, 4}).
					Return(nil, nil).
					Once()
				d.catalog.
					On("PriceRulesAmong", mock.Anything, []int64{1, 4}).
					Return([]model.PriceRule{
						{ID: 1, OptionAID: 1, OptionBID: 4, Premium: decimal.RequireFromString("15.00")},
					}, nil).
					Once()
				d.orders.
					On("Create", mock.Anything, mock.MatchedBy(func(ord *model.Order) bool {
						return ord.Status == model.StatusPending &&
							ord.TotalPrice.Equal(decimal.RequireFromString("180.00")) &&
							len(ord.LineItems) == 2
					})).
					Return(int64(42), nil).
					Once()
				d.orders.
					On("OrderByID", mock.Anything, int64(42)).
					Return(storedOrder, nil).
					Once()
				d.producer.
					On("SendOrderCreated", mock.Anything, mock.MatchedBy(func(ev model.OrderCreated) bool {
						return ev.OrderID == 42 && ev.Status == model.StatusPending
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, ord *model.Order, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, ord)
				assert.Equal(t, int64(42), ord.ID)
				assert.Equal(t, "180.00", ord.TotalPrice.StringFixed(2))
				assert.Len(t, ord.LineItems, 2)
			},
		},
		{
			name: "event failure does not fail the committed order",
			params: model.CreateOrderParams{
				CustomerName:      customerName,
				CustomerEmail:     customerEmail,
				SelectedOptionIDs: []int64{1, 4},
			},
			setup: func(d deps) {
				d.catalog.
					On("OptionsByIDs", mock.Anything, []int64{1, 4}).
					Return(validOptions, nil).
					Once()
				d.catalog.
					On("RestrictionsAmong", mock.Anything, []int64{1, 4}).
					Return(nil, nil).
					Once()
				d.catalog.
					On("PriceRulesAmong", mock.Anything, []int64{1, 4}).
					Return(nil, nil).
					Once()
				d.orders.
					On("Create", mock.Anything, mock.Anything).
					Return(int64(42), nil).
					Once()
				d.orders.
					On("OrderByID", mock.Anything, int64(42)).
					Return(storedOrder, nil).
					Once()
				d.producer.
					On("SendOrderCreated", mock.Anything, mock.Anything).
					Return(errors.New("kafka is down")).
					Once()
			},
			assert: func(t *testing.T, ord *model.Order, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, ord)
				assert.Equal(t, int64(42), ord.ID)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				catalog:  mocks.NewMockCatalogRepository(t),
				orders:   mocks.NewMockOrderRepository(t),
				producer: mocks.NewMockOrderCreatedSender(t),
			}
			tc.setup(d)

			ord, err := newSvc(d).CreateOrder(context.Background(), tc.params)
			tc.assert(t, ord, err, d)
		})
	}
}
