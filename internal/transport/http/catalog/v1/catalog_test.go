package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/bike-configurator/internal/model"
)

// fakeCatalogService implements CatalogService; only the fn fields a test
// sets are expected to be called.
type fakeCatalogService struct {
	productByIDFn       func(ctx context.Context, id int64) (*model.Product, error)
	createOptionFn      func(ctx context.Context, productID, partID int64, params model.CreateOptionParams) (*model.Option, error)
	createRestrictionFn func(ctx context.Context, params model.CreateRestrictionParams) (*model.Restriction, error)
	createPriceRuleFn   func(ctx context.Context, params model.CreatePriceRuleParams) (*model.PriceRule, error)
	deletePriceRuleFn   func(ctx context.Context, id int64) error
}

func (s fakeCatalogService) CreateProduct(ctx context.Context, params model.CreateProductParams) (*model.Product, error) {
	return nil, nil
}

func (s fakeCatalogService) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.productByIDFn(ctx, id)
}

func (s fakeCatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return nil, nil
}

func (s fakeCatalogService) UpdateProduct(ctx context.Context, id int64, params model.UpdateProductParams) (*model.Product, error) {
	return nil, nil
}

func (s fakeCatalogService) DeleteProduct(ctx context.Context, id int64) error { return nil }

func (s fakeCatalogService) CreatePart(ctx context.Context, productID int64, params model.CreatePartParams) (*model.Part, error) {
	return nil, nil
}

func (s fakeCatalogService) PartByID(ctx context.Context, productID, partID int64) (*model.Part, error) {
	return nil, nil
}

func (s fakeCatalogService) ListParts(ctx context.Context, productID int64) ([]model.Part, error) {
	return nil, nil
}

func (s fakeCatalogService) UpdatePart(ctx context.Context, productID, partID int64, params model.UpdatePartParams) (*model.Part, error) {
	return nil, nil
}

func (s fakeCatalogService) DeletePart(ctx context.Context, productID, partID int64) error {
	return nil
}

func (s fakeCatalogService) CreateOption(ctx context.Context, productID, partID int64, params model.CreateOptionParams) (*model.Option, error) {
	return s.createOptionFn(ctx, productID, partID, params)
}

func (s fakeCatalogService) OptionByID(ctx context.Context, productID, partID, optionID int64) (*model.Option, error) {
	return nil, nil
}

func (s fakeCatalogService) ListOptions(ctx context.Context, productID, partID int64) ([]model.Option, error) {
	return nil, nil
}

func (s fakeCatalogService) UpdateOption(ctx context.Context, productID, partID, optionID int64, params model.UpdateOptionParams) (*model.Option, error) {
	return nil, nil
}

func (s fakeCatalogService) DeleteOption(ctx context.Context, productID, partID, optionID int64) error {
	return nil
}

func (s fakeCatalogService) CreateRestriction(ctx context.Context, params model.CreateRestrictionParams) (*model.Restriction, error) {
	return s.createRestrictionFn(ctx, params)
}

func (s fakeCatalogService) RestrictionByID(ctx context.Context, id int64) (*model.Restriction, error) {
	return nil, nil
}

func (s fakeCatalogService) ListRestrictions(ctx context.Context) ([]model.Restriction, error) {
	return nil, nil
}

func (s fakeCatalogService) DeleteRestriction(ctx context.Context, id int64) error { return nil }

func (s fakeCatalogService) CreatePriceRule(ctx context.Context, params model.CreatePriceRuleParams) (*model.PriceRule, error) {
	return s.createPriceRuleFn(ctx, params)
}

func (s fakeCatalogService) PriceRuleByID(ctx context.Context, id int64) (*model.PriceRule, error) {
	return nil, nil
}

func (s fakeCatalogService) ListPriceRules(ctx context.Context) ([]model.PriceRule, error) {
	return nil, nil
}

func (s fakeCatalogService) DeletePriceRule(ctx context.Context, id int64) error {
	return s.deletePriceRuleFn(ctx, id)
}

func newCatalogRouter(svc CatalogService) chi.Router {
	r := chi.NewRouter()
	NewCatalogHandler(svc).Register(r)
	return r
}

func TestHandlerCatalogStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		svc        fakeCatalogService
		wantStatus int
		wantBody   string
	}{
		{
			name:   "unknown product",
			method: http.MethodGet,
			target: "/products/999",
			svc: fakeCatalogService{
				productByIDFn: func(_ context.Context, _ int64) (*model.Product, error) {
					return nil, model.ErrProductNotFound
				},
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"product not found"}`,
		},
		{
			name:       "non-numeric product id",
			method:     http.MethodGet,
			target:     "/products/bike",
			svc:        fakeCatalogService{},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"product not found"}`,
		},
		{
			name:   "option created under part",
			method: http.MethodPost,
			target: "/products/1/parts/5/part_options",
			body:   `{"name":"Single-speed chain","price":"43.00"}`,
			svc: fakeCatalogService{
				createOptionFn: func(_ context.Context, productID, partID int64, params model.CreateOptionParams) (*model.Option, error) {
					require.Equal(t, int64(1), productID)
					require.Equal(t, int64(5), partID)
					require.True(t, params.InStock)
					return &model.Option{
						ID:      12,
						PartID:  partID,
						Name:    params.Name,
						Price:   params.Price,
						InStock: true,
					}, nil
				},
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":12,"part_id":5,"name":"Single-speed chain","price":"43.00","in_stock":true}`,
		},
		{
			name:   "negative option price rejected",
			method: http.MethodPost,
			target: "/products/1/parts/5/part_options",
			body:   `{"name":"Chain","price":"-1.00"}`,
			svc: fakeCatalogService{
				createOptionFn: func(_ context.Context, _, _ int64, _ model.CreateOptionParams) (*model.Option, error) {
					return nil, model.ErrValidation
				},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"validation error"}`,
		},
		{
			name:   "duplicate restriction pair rejected",
			method: http.MethodPost,
			target: "/restrictions",
			body:   `{"part_option_id":7,"restricted_part_option_id":2}`,
			svc: fakeCatalogService{
				createRestrictionFn: func(_ context.Context, _ model.CreateRestrictionParams) (*model.Restriction, error) {
					return nil, model.ErrDuplicatePair
				},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"pair already exists"}`,
		},
		{
			name:   "price rule created",
			method: http.MethodPost,
			target: "/price_rules",
			body:   `{"part_option_a_id":1,"part_option_b_id":4,"premium":"15.00"}`,
			svc: fakeCatalogService{
				createPriceRuleFn: func(_ context.Context, params model.CreatePriceRuleParams) (*model.PriceRule, error) {
					require.True(t, params.Premium.Equal(decimal.RequireFromString("15.00")))
					return &model.PriceRule{
						ID:        1,
						OptionAID: params.OptionAID,
						OptionBID: params.OptionBID,
						Premium:   params.Premium,
					}, nil
				},
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":1,"part_option_a_id":1,"part_option_b_id":4,"premium":"15.00"}`,
		},
		{
			name:   "price rule deleted",
			method: http.MethodDelete,
			target: "/price_rules/1",
			svc: fakeCatalogService{
				deletePriceRuleFn: func(_ context.Context, id int64) error {
					require.Equal(t, int64(1), id)
					return nil
				},
			},
			wantStatus: http.StatusNoContent,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))

			newCatalogRouter(tt.svc).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
