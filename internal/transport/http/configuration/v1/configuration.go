package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/you-humble/bike-configurator/internal/model"
	"github.com/you-humble/bike-configurator/internal/transport/http/response"
)

type ConfigurationService interface {
	Validate(ctx context.Context, optionIDs []int64) (*model.ValidationResult, error)
	Price(ctx context.Context, optionIDs []int64) (decimal.Decimal, error)
}

type selectionRequest struct {
	// A pointer distinguishes an absent or null field from a present
	// empty array; only the latter is a well-formed selection.
	SelectedOptionIDs *[]int64 `json:"selected_option_ids"`
}

type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type priceResponse struct {
	TotalPrice string `json:"total_price"`
}

type handler struct {
	svc ConfigurationService
}

func NewConfigurationHandler(service ConfigurationService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/configuration", func(r chi.Router) {
		r.Post("/validate", h.Validate)
		r.Post("/calculate_price", h.CalculatePrice)
	})
}

func (h *handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SelectedOptionIDs == nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	res, err := h.svc.Validate(r.Context(), *req.SelectedOptionIDs)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	response.JSON(w, http.StatusOK, validateResponse{Valid: res.Valid, Errors: errs})
}

func (h *handler) CalculatePrice(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SelectedOptionIDs == nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	total, err := h.svc.Price(r.Context(), *req.SelectedOptionIDs)
	if err != nil {
		mapPriceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, priceResponse{TotalPrice: total.StringFixed(2)})
}

func mapPriceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrOptionNotFound): // 404
		response.Error(w, http.StatusNotFound, model.ErrOptionNotFound.Error())
	default: // 500
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
