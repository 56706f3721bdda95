package converter

import (
	"encoding/json"
	"fmt"

	"github.com/you-humble/bike-configurator/internal/model"
)

type orderCreatedRecord struct {
	EventID       string `json:"event_id"`
	OrderID       int64  `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	TotalPrice    string `json:"total_price"`
	Status        string `json:"status"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) OrderCreatedToPayload(event model.OrderCreated) ([]byte, error) {
	rec := orderCreatedRecord{
		EventID:       event.EventID.String(),
		OrderID:       event.OrderID,
		CustomerEmail: event.CustomerEmail,
		TotalPrice:    event.TotalPrice.StringFixed(2),
		Status:        string(event.Status),
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order created record: %w", err)
	}

	return payload, nil
}
