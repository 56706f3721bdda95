package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/you-humble/bike-configurator/internal/converter"
	"github.com/you-humble/bike-configurator/internal/model"
	"github.com/you-humble/bike-configurator/internal/transport/http/response"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, params model.CreateProductParams) (*model.Product, error)
	ProductByID(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, params model.UpdateProductParams) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreatePart(ctx context.Context, productID int64, params model.CreatePartParams) (*model.Part, error)
	PartByID(ctx context.Context, productID, partID int64) (*model.Part, error)
	ListParts(ctx context.Context, productID int64) ([]model.Part, error)
	UpdatePart(ctx context.Context, productID, partID int64, params model.UpdatePartParams) (*model.Part, error)
	DeletePart(ctx context.Context, productID, partID int64) error

	CreateOption(ctx context.Context, productID, partID int64, params model.CreateOptionParams) (*model.Option, error)
	OptionByID(ctx context.Context, productID, partID, optionID int64) (*model.Option, error)
	ListOptions(ctx context.Context, productID, partID int64) ([]model.Option, error)
	UpdateOption(ctx context.Context, productID, partID, optionID int64, params model.UpdateOptionParams) (*model.Option, error)
	DeleteOption(ctx context.Context, productID, partID, optionID int64) error

	CreateRestriction(ctx context.Context, params model.CreateRestrictionParams) (*model.Restriction, error)
	RestrictionByID(ctx context.Context, id int64) (*model.Restriction, error)
	ListRestrictions(ctx context.Context) ([]model.Restriction, error)
	DeleteRestriction(ctx context.Context, id int64) error

	CreatePriceRule(ctx context.Context, params model.CreatePriceRuleParams) (*model.PriceRule, error)
	PriceRuleByID(ctx context.Context, id int64) (*model.PriceRule, error)
	ListPriceRules(ctx context.Context) ([]model.PriceRule, error)
	DeletePriceRule(ctx context.Context, id int64) error
}

type productRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type partRequest struct {
	Name *string `json:"name"`
}

type optionRequest struct {
	Name    *string          `json:"name"`
	Price   *decimal.Decimal `json:"price"`
	InStock *bool            `json:"in_stock"`
}

type restrictionRequest struct {
	PartOptionID       int64 `json:"part_option_id"`
	RestrictedOptionID int64 `json:"restricted_part_option_id"`
}

type priceRuleRequest struct {
	PartOptionAID int64           `json:"part_option_a_id"`
	PartOptionBID int64           `json:"part_option_b_id"`
	Premium       decimal.Decimal `json:"premium"`
}

type handler struct {
	svc CatalogService
}

func NewCatalogHandler(service CatalogService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", h.ProductByID)
			r.Patch("/", h.UpdateProduct)
			r.Delete("/", h.DeleteProduct)

			r.Route("/parts", func(r chi.Router) {
				r.Post("/", h.CreatePart)
				r.Get("/", h.ListParts)
				r.Route("/{partID}", func(r chi.Router) {
					r.Get("/", h.PartByID)
					r.Patch("/", h.UpdatePart)
					r.Delete("/", h.DeletePart)

					r.Route("/part_options", func(r chi.Router) {
						r.Post("/", h.CreateOption)
						r.Get("/", h.ListOptions)
						r.Route("/{optionID}", func(r chi.Router) {
							r.Get("/", h.OptionByID)
							r.Patch("/", h.UpdateOption)
							r.Delete("/", h.DeleteOption)
						})
					})
				})
			})
		})
	})

	r.Route("/restrictions", func(r chi.Router) {
		r.Post("/", h.CreateRestriction)
		r.Get("/", h.ListRestrictions)
		r.Route("/{restrictionID}", func(r chi.Router) {
			r.Get("/", h.RestrictionByID)
			r.Delete("/", h.DeleteRestriction)
		})
	})

	r.Route("/price_rules", func(r chi.Router) {
		r.Post("/", h.CreatePriceRule)
		r.Get("/", h.ListPriceRules)
		r.Route("/{priceRuleID}", func(r chi.Router) {
			r.Get("/", h.PriceRuleByID)
			r.Delete("/", h.DeletePriceRule)
		})
	})
}

// Products

func (h *handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	params := model.CreateProductParams{}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Description != nil {
		params.Description = *req.Description
	}

	p, err := h.svc.CreateProduct(r.Context(), params)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, converter.ProductToResponse(p))
}

func (h *handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.ProductsToResponse(products))
}

func (h *handler) ProductByID(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}

	p, err := h.svc.ProductByID(r.Context(), productID)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.ProductToResponse(p))
}

func (h *handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	p, err := h.svc.UpdateProduct(r.Context(), productID, model.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.ProductToResponse(p))
}

func (h *handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), productID); err != nil {
		mapCatalogError(w, err)
		return
	}

	response.NoContent(w)
}

// Parts

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}

	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	params := model.CreatePartParams{}
	if req.Name != nil {
		params.Name = *req.Name
	}

	p, err := h.svc.CreatePart(r.Context(), productID, params)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, converter.PartToResponse(p))
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}

	parts, err := h.svc.ListParts(r.Context(), productID)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.PartsToResponse(parts))
}

func (h *handler) PartByID(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}
	partID, ok := idFromURL(w, r, "partID", model.ErrPartNotFound)
	if !ok {
		return
	}

	p, err := h.svc.PartByID(r.Context(), productID, partID)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.PartToResponse(p))
}

func (h *handler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}
	partID, ok := idFromURL(w, r, "partID", model.ErrPartNotFound)
	if !ok {
		return
	}

	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	p, err := h.svc.UpdatePart(r.Context(), productID, partID, model.UpdatePartParams{
		Name: req.Name,
	})
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.PartToResponse(p))
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}
	partID, ok := idFromURL(w, r, "partID", model.ErrPartNotFound)
	if !ok {
		return
	}

	if err := h.svc.DeletePart(r.Context(), productID, partID); err != nil {
		mapCatalogError(w, err)
		return
	}

	response.NoContent(w)
}

// Part options

func (h *handler) CreateOption(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}
	partID, ok := idFromURL(w, r, "partID", model.ErrPartNotFound)
	if !ok {
		return
	}

	var req optionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	params := model.CreateOptionParams{InStock: true}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Price != nil {
		params.Price = *req.Price
	}
	if req.InStock != nil {
		params.InStock = *req.InStock
	}

	o, err := h.svc.CreateOption(r.Context(), productID, partID, params)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, converter.OptionToResponse(o))
}

func (h *handler) ListOptions(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}
	partID, ok := idFromURL(w, r, "partID", model.ErrPartNotFound)
	if !ok {
		return
	}

	options, err := h.svc.ListOptions(r.Context(), productID, partID)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.OptionsToResponse(options))
}

func (h *handler) OptionByID(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}
	partID, ok := idFromURL(w, r, "partID", model.ErrPartNotFound)
	if !ok {
		return
	}
	optionID, ok := idFromURL(w, r, "optionID", model.ErrOptionNotFound)
	if !ok {
		return
	}

	o, err := h.svc.OptionByID(r.Context(), productID, partID, optionID)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.OptionToResponse(o))
}

func (h *handler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}
	partID, ok := idFromURL(w, r, "partID", model.ErrPartNotFound)
	if !ok {
		return
	}
	optionID, ok := idFromURL(w, r, "optionID", model.ErrOptionNotFound)
	if !ok {
		return
	}

	var req optionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	o, err := h.svc.UpdateOption(r.Context(), productID, partID, optionID, model.UpdateOptionParams{
		Name:    req.Name,
		Price:   req.Price,
		InStock: req.InStock,
	})
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.OptionToResponse(o))
}

func (h *handler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	productID, ok := idFromURL(w, r, "productID", model.ErrProductNotFound)
	if !ok {
		return
	}
	partID, ok := idFromURL(w, r, "partID", model.ErrPartNotFound)
	if !ok {
		return
	}
	optionID, ok := idFromURL(w, r, "optionID", model.ErrOptionNotFound)
	if !ok {
		return
	}

	if err := h.svc.DeleteOption(r.Context(), productID, partID, optionID); err != nil {
		mapCatalogError(w, err)
		return
	}

	response.NoContent(w)
}

// Restrictions

func (h *handler) CreateRestriction(w http.ResponseWriter, r *http.Request) {
	var req restrictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	rt, err := h.svc.CreateRestriction(r.Context(), model.CreateRestrictionParams{
		OptionID:           req.PartOptionID,
		RestrictedOptionID: req.RestrictedOptionID,
	})
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, converter.RestrictionToResponse(rt))
}

func (h *handler) ListRestrictions(w http.ResponseWriter, r *http.Request) {
	restrictions, err := h.svc.ListRestrictions(r.Context())
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.RestrictionsToResponse(restrictions))
}

func (h *handler) RestrictionByID(w http.ResponseWriter, r *http.Request) {
	restrictionID, ok := idFromURL(w, r, "restrictionID", model.ErrRestrictionNotFound)
	if !ok {
		return
	}

	rt, err := h.svc.RestrictionByID(r.Context(), restrictionID)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.RestrictionToResponse(rt))
}

func (h *handler) DeleteRestriction(w http.ResponseWriter, r *http.Request) {
	restrictionID, ok := idFromURL(w, r, "restrictionID", model.ErrRestrictionNotFound)
	if !ok {
		return
	}

	if err := h.svc.DeleteRestriction(r.Context(), restrictionID); err != nil {
		mapCatalogError(w, err)
		return
	}

	response.NoContent(w)
}

// Price rules

func (h *handler) CreatePriceRule(w http.ResponseWriter, r *http.Request) {
	var req priceRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	pr, err := h.svc.CreatePriceRule(r.Context(), model.CreatePriceRuleParams{
		OptionAID: req.PartOptionAID,
		OptionBID: req.PartOptionBID,
		Premium:   req.Premium,
	})
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, converter.PriceRuleToResponse(pr))
}

func (h *handler) ListPriceRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.ListPriceRules(r.Context())
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.PriceRulesToResponse(rules))
}

func (h *handler) PriceRuleByID(w http.ResponseWriter, r *http.Request) {
	priceRuleID, ok := idFromURL(w, r, "priceRuleID", model.ErrPriceRuleNotFound)
	if !ok {
		return
	}

	pr, err := h.svc.PriceRuleByID(r.Context(), priceRuleID)
	if err != nil {
		mapCatalogError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.PriceRuleToResponse(pr))
}

func (h *handler) DeletePriceRule(w http.ResponseWriter, r *http.Request) {
	priceRuleID, ok := idFromURL(w, r, "priceRuleID", model.ErrPriceRuleNotFound)
	if !ok {
		return
	}

	if err := h.svc.DeletePriceRule(r.Context(), priceRuleID); err != nil {
		mapCatalogError(w, err)
		return
	}

	response.NoContent(w)
}

func idFromURL(w http.ResponseWriter, r *http.Request, name string, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		response.Error(w, http.StatusNotFound, notFound.Error())
		return 0, false
	}
	return id, true
}

func mapCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrOptionNotFound),
		errors.Is(err, model.ErrRestrictionNotFound),
		errors.Is(err, model.ErrPriceRuleNotFound): // 404
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrDuplicatePair): // 422
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	default: // 500
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
