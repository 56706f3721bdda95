package service

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/bike-configurator/internal/model"
	"github.com/you-humble/bike-configurator/platform/logger"
)

type OrderRepository interface {
	OrderByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo           OrderRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewOrderService(
	repository OrderRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) OrderByID(ctx context.Context, ordID int64) (*model.Order, error) {
	const op string = "order.service.OrderByID"
	log := logger.With(
		logger.Int64("order_id", ordID),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	ord, err := svc.repo.OrderByID(ctx, ordID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

func (svc *service) List(ctx context.Context) ([]model.Order, error) {
	const op string = "order.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	orders, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

func (svc *service) UpdateStatus(
	ctx context.Context,
	ordID int64,
	status model.OrderStatus,
) (*model.Order, error) {
	const op string = "order.service.UpdateStatus"
	log := logger.With(
		logger.Int64("order_id", ordID),
		logger.String("status", string(status)),
	)

	if !status.Valid() {
		log.Error(ctx, "unknown order status")
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownStatus)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdateStatus(wdbCtx, ordID, status); err != nil {
		log.Error(ctx, "repository update status", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	ord, err := svc.repo.OrderByID(rdbCtx, ordID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

func (svc *service) Delete(ctx context.Context, ordID int64) error {
	const op string = "order.service.Delete"
	log := logger.With(
		logger.Int64("order_id", ordID),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, ordID); err != nil {
		log.Error(ctx, "repository delete order", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
