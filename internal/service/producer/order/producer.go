package ordproducer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/you-humble/bike-configurator/internal/model"
	"github.com/you-humble/bike-configurator/platform/kafka"
)

type Converter interface {
	OrderCreatedToPayload(event model.OrderCreated) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewOrderProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendOrderCreated(ctx context.Context, event model.OrderCreated) error {
	payload, err := s.conv.OrderCreatedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter order_created_to_payload error: %w", err)
	}

	key := []byte(strconv.FormatInt(event.OrderID, 10))
	if err := s.producer.Send(ctx, key, payload); err != nil {
		return fmt.Errorf("producer to order.created topic error: %w", err)
	}

	return nil
}
