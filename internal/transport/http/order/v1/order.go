package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/bike-configurator/internal/converter"
	"github.com/you-humble/bike-configurator/internal/model"
	"github.com/you-humble/bike-configurator/internal/transport/http/response"
)

type ConfigurationService interface {
	CreateOrder(ctx context.Context, params model.CreateOrderParams) (*model.Order, error)
}

type OrderService interface {
	OrderByID(ctx context.Context, ordID int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, ordID int64, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, ordID int64) error
}

type createOrderRequest struct {
	CustomerName          string  `json:"customer_name"`
	CustomerEmail         string  `json:"customer_email"`
	SelectedPartOptionIDs []int64 `json:"selected_part_option_ids"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type handler struct {
	cfgSvc ConfigurationService
	ordSvc OrderService
}

func NewOrderHandler(cfgService ConfigurationService, ordService OrderService) *handler {
	return &handler{cfgSvc: cfgService, ordSvc: ordService}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Route("/{orderID}", func(r chi.Router) {
			r.Get("/", h.OrderByID)
			r.Patch("/", h.UpdateStatus)
			r.Delete("/", h.Delete)
		})
	})
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	ord, err := h.cfgSvc.CreateOrder(r.Context(), model.CreateOrderParams{
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		SelectedOptionIDs: req.SelectedPartOptionIDs,
	})
	if err != nil {
		mapCreateOrderError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, converter.OrderToResponse(ord))
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ordSvc.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(w, http.StatusOK, converter.OrdersToResponse(orders))
}

func (h *handler) OrderByID(w http.ResponseWriter, r *http.Request) {
	ordID, ok := orderIDFromURL(w, r)
	if !ok {
		return
	}

	ord, err := h.ordSvc.OrderByID(r.Context(), ordID)
	if err != nil {
		mapOrderError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.OrderToResponse(ord))
}

func (h *handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ordID, ok := orderIDFromURL(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	ord, err := h.ordSvc.UpdateStatus(r.Context(), ordID, model.OrderStatus(req.Status))
	if err != nil {
		mapOrderError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, converter.OrderToResponse(ord))
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	ordID, ok := orderIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.ordSvc.Delete(r.Context(), ordID); err != nil {
		mapOrderError(w, err)
		return
	}

	response.NoContent(w)
}

func orderIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ordID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusNotFound, model.ErrOrderNotFound.Error())
		return 0, false
	}
	return ordID, true
}

func mapCreateOrderError(w http.ResponseWriter, err error) {
	var violations *model.ViolationsError
	switch {
	case errors.As(err, &violations): // 422
		response.Errors(w, http.StatusUnprocessableEntity, violations.Violations)
	case errors.Is(err, model.ErrOptionNotFound): // 404
		response.Error(w, http.StatusNotFound, model.ErrOptionNotFound.Error())
	case errors.Is(err, model.ErrValidation): // 422
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	default: // 500
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func mapOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrOrderNotFound): // 404
		response.Error(w, http.StatusNotFound, model.ErrOrderNotFound.Error())
	case errors.Is(err, model.ErrUnknownStatus): // 422
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	default: // 500
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
