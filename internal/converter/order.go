package converter

import (
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/bike-configurator/internal/model"
)

type OrderLineItemResponse struct {
	ID         int64          `json:"id"`
	PartOption OptionResponse `json:"part_option"`
}

type OrderResponse struct {
	ID             int64                   `json:"id"`
	CustomerName   string                  `json:"customer_name"`
	CustomerEmail  string                  `json:"customer_email"`
	Status         string                  `json:"status"`
	TotalPrice     string                  `json:"total_price"`
	CreatedAt      string                  `json:"created_at"`
	OrderLineItems []OrderLineItemResponse `json:"order_line_items"`
}

func OrderToResponse(ord *model.Order) OrderResponse {
	return OrderResponse{
		ID:             ord.ID,
		CustomerName:   ord.CustomerName,
		CustomerEmail:  ord.CustomerEmail,
		Status:         string(ord.Status),
		TotalPrice:     ord.TotalPrice.StringFixed(2),
		CreatedAt:      ord.CreatedAt.UTC().Format(time.RFC3339),
		OrderLineItems: lo.Map(ord.LineItems, func(li model.OrderLineItem, _ int) OrderLineItemResponse {
			return lineItemToResponse(li)
		}),
	}
}

func OrdersToResponse(orders []model.Order) []OrderResponse {
	return lo.Map(orders, func(ord model.Order, _ int) OrderResponse {
		return OrderToResponse(&ord)
	})
}

func lineItemToResponse(li model.OrderLineItem) OrderLineItemResponse {
	resp := OrderLineItemResponse{ID: li.ID}
	if li.Option != nil {
		resp.PartOption = OptionToResponse(li.Option)
	} else {
		resp.PartOption = OptionResponse{ID: li.OptionID}
	}
	return resp
}
