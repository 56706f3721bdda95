package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/bike-configurator/internal/model"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewOrderRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create persists the order row and every line item in one transaction.
// Either all rows are committed or none are.
func (r *repository) Create(ctx context.Context, ord *model.Order) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := r.sb.
		Insert("orders").
		Columns("customer_name", "customer_email", "status", "total_price").
		Values(ord.CustomerName, ord.CustomerEmail, ord.Status, ord.TotalPrice).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var orderID int64
	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&orderID); err != nil {
		return 0, err
	}

	for _, li := range ord.LineItems {
		iq := r.sb.
			Insert("order_line_items").
			Columns("order_id", "part_option_id").
			Values(orderID, li.OptionID)

		sqlStr, args, err := iq.ToSql()
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}

func (r *repository) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	q := r.sb.
		Select("id", "customer_name", "customer_email", "status", "total_price", "created_at").
		From("orders").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var ord model.Order
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&ord.ID,
		&ord.CustomerName,
		&ord.CustomerEmail,
		&ord.Status,
		&ord.TotalPrice,
		&ord.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}

	items, err := r.lineItems(ctx, []int64{ord.ID})
	if err != nil {
		return nil, err
	}
	ord.LineItems = items[ord.ID]

	return &ord, nil
}

// List returns all orders, newest first, with their line items hydrated.
func (r *repository) List(ctx context.Context) ([]model.Order, error) {
	q := r.sb.
		Select("id", "customer_name", "customer_email", "status", "total_price", "created_at").
		From("orders").
		OrderBy("created_at DESC", "id DESC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var ord model.Order
		if err := rows.Scan(
			&ord.ID,
			&ord.CustomerName,
			&ord.CustomerEmail,
			&ord.Status,
			&ord.TotalPrice,
			&ord.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ord)
		ids = append(ids, ord.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.lineItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].LineItems = items[out[i].ID]
	}

	return out, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	q := r.sb.
		Update("orders").
		Set("status", status).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

// Delete removes the order; line items go with it via ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id int64) error {
	q := r.sb.Delete("orders").Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func (r *repository) lineItems(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderLineItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	q := r.sb.
		Select(
			"li.id", "li.order_id", "li.part_option_id",
			"o.id", "o.part_id", "o.name", "o.price", "o.in_stock",
		).
		From("order_line_items li").
		Join("part_options o ON o.id = li.part_option_id").
		Where(sq.Eq{"li.order_id": orderIDs}).
		OrderBy("li.id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]model.OrderLineItem, len(orderIDs))
	for rows.Next() {
		var (
			li  model.OrderLineItem
			opt model.Option
		)
		if err := rows.Scan(
			&li.ID, &li.OrderID, &li.OptionID,
			&opt.ID, &opt.PartID, &opt.Name, &opt.Price, &opt.InStock,
		); err != nil {
			return nil, err
		}
		li.Option = &opt
		out[li.OrderID] = append(out[li.OrderID], li)
	}

	return out, rows.Err()
}
