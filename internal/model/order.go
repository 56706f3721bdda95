package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a member of the status enumeration. No
// transition graph is enforced beyond membership.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type Order struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	Status        OrderStatus
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
	LineItems     []OrderLineItem
}

type OrderLineItem struct {
	ID       int64
	OrderID  int64
	OptionID int64
	Option   *Option
}

type CreateOrderParams struct {
	CustomerName      string
	CustomerEmail     string
	SelectedOptionIDs []int64
}

// OrderCreated is the event emitted after an order has been committed.
type OrderCreated struct {
	EventID       uuid.UUID
	OrderID       int64
	CustomerEmail string
	TotalPrice    decimal.Decimal
	Status        OrderStatus
}
