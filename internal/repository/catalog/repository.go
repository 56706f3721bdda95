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

func NewCatalogRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// OptionsByIDs resolves part options together with their owning part, so
// callers can reach the product id without extra round trips. Unknown ids
// are simply absent from the result.
func (r *repository) OptionsByIDs(ctx context.Context, ids []int64) ([]model.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := r.sb.
		Select(
			"o.id", "o.part_id", "o.name", "o.price", "o.in_stock",
			"p.id", "p.product_id", "p.name",
		).
		From("part_options o").
		Join("parts p ON p.id = o.part_id").
		Where(sq.Eq{"o.id": ids}).
		OrderBy("o.id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Option, 0, len(ids))
	for rows.Next() {
		var (
			opt model.Option
			prt model.Part
		)
		if err := rows.Scan(
			&opt.ID, &opt.PartID, &opt.Name, &opt.Price, &opt.InStock,
			&prt.ID, &prt.ProductID, &prt.Name,
		); err != nil {
			return nil, err
		}
		opt.Part = &prt
		out = append(out, opt)
	}

	return out, rows.Err()
}

// RestrictionsAmong returns every restriction whose two referenced options
// are both members of ids, whichever way round the pair was stored.
func (r *repository) RestrictionsAmong(ctx context.Context, ids []int64) ([]model.Restriction, error) {
	if len(ids) < 2 {
		return nil, nil
	}

	q := r.sb.
		Select("id", "part_option_id", "restricted_part_option_id").
		From("part_restrictions").
		Where(sq.Eq{"part_option_id": ids, "restricted_part_option_id": ids}).
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Restriction
	for rows.Next() {
		var rt model.Restriction
		if err := rows.Scan(&rt.ID, &rt.OptionID, &rt.RestrictedOptionID); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}

	return out, rows.Err()
}

// PriceRulesAmong returns every price rule whose two referenced options are
// both members of ids.
func (r *repository) PriceRulesAmong(ctx context.Context, ids []int64) ([]model.PriceRule, error) {
	if len(ids) < 2 {
		return nil, nil
	}

	q := r.sb.
		Select("id", "part_option_a_id", "part_option_b_id", "price_premium").
		From("price_rules").
		Where(sq.Eq{"part_option_a_id": ids, "part_option_b_id": ids}).
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PriceRule
	for rows.Next() {
		var pr model.PriceRule
		if err := rows.Scan(&pr.ID, &pr.OptionAID, &pr.OptionBID, &pr.Premium); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}

	return out, rows.Err()
}

// Products

func (r *repository) CreateProduct(ctx context.Context, p *model.Product) (int64, error) {
	q := r.sb.
		Insert("products").
		Columns("name", "description").
		Values(p.Name, p.Description).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	q := r.sb.
		Select("id", "name", "description").
		From("products").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Product
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &p.Name, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListProducts(ctx context.Context) ([]model.Product, error) {
	q := r.sb.
		Select("id", "name", "description").
		From("products").
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *repository) UpdateProduct(ctx context.Context, p *model.Product) error {
	q := r.sb.
		Update("products").
		SetMap(sq.Eq{"name": p.Name, "description": p.Description}).
		Where(sq.Eq{"id": p.ID})

	return r.exec(ctx, q, model.ErrProductNotFound)
}

func (r *repository) DeleteProduct(ctx context.Context, id int64) error {
	q := r.sb.Delete("products").Where(sq.Eq{"id": id})
	return r.exec(ctx, q, model.ErrProductNotFound)
}

// Parts

func (r *repository) CreatePart(ctx context.Context, p *model.Part) (int64, error) {
	q := r.sb.
		Insert("parts").
		Columns("product_id", "name").
		Values(p.ProductID, p.Name).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) PartByID(ctx context.Context, productID, partID int64) (*model.Part, error) {
	q := r.sb.
		Select("id", "product_id", "name").
		From("parts").
		Where(sq.Eq{"id": partID, "product_id": productID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Part
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &p.ProductID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListParts(ctx context.Context, productID int64) ([]model.Part, error) {
	q := r.sb.
		Select("id", "product_id", "name").
		From("parts").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Part, 0)
	for rows.Next() {
		var p model.Part
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *repository) UpdatePart(ctx context.Context, p *model.Part) error {
	q := r.sb.
		Update("parts").
		SetMap(sq.Eq{"name": p.Name}).
		Where(sq.Eq{"id": p.ID, "product_id": p.ProductID})

	return r.exec(ctx, q, model.ErrPartNotFound)
}

func (r *repository) DeletePart(ctx context.Context, productID, partID int64) error {
	q := r.sb.Delete("parts").Where(sq.Eq{"id": partID, "product_id": productID})
	return r.exec(ctx, q, model.ErrPartNotFound)
}

// Part options

func (r *repository) CreateOption(ctx context.Context, o *model.Option) (int64, error) {
	q := r.sb.
		Insert("part_options").
		Columns("part_id", "name", "price", "in_stock").
		Values(o.PartID, o.Name, o.Price, o.InStock).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) OptionByID(ctx context.Context, partID, optionID int64) (*model.Option, error) {
	q := r.sb.
		Select("id", "part_id", "name", "price", "in_stock").
		From("part_options").
		Where(sq.Eq{"id": optionID, "part_id": partID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var o model.Option
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&o.ID, &o.PartID, &o.Name, &o.Price, &o.InStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOptionNotFound
		}
		return nil, err
	}

	return &o, nil
}

func (r *repository) ListOptions(ctx context.Context, partID int64) ([]model.Option, error) {
	q := r.sb.
		Select("id", "part_id", "name", "price", "in_stock").
		From("part_options").
		Where(sq.Eq{"part_id": partID}).
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Option, 0)
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.PartID, &o.Name, &o.Price, &o.InStock); err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *repository) UpdateOption(ctx context.Context, o *model.Option) error {
	q := r.sb.
		Update("part_options").
		SetMap(sq.Eq{"name": o.Name, "price": o.Price, "in_stock": o.InStock}).
		Where(sq.Eq{"id": o.ID, "part_id": o.PartID})

	return r.exec(ctx, q, model.ErrOptionNotFound)
}

func (r *repository) DeleteOption(ctx context.Context, partID, optionID int64) error {
	q := r.sb.Delete("part_options").Where(sq.Eq{"id": optionID, "part_id": partID})
	return r.exec(ctx, q, model.ErrOptionNotFound)
}

// Restrictions

func (r *repository) CreateRestriction(ctx context.Context, rt *model.Restriction) (int64, error) {
	q := r.sb.
		Insert("part_restrictions").
		Columns("part_option_id", "restricted_part_option_id").
		Values(rt.OptionID, rt.RestrictedOptionID).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) RestrictionByID(ctx context.Context, id int64) (*model.Restriction, error) {
	q := r.sb.
		Select("id", "part_option_id", "restricted_part_option_id").
		From("part_restrictions").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rt model.Restriction
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&rt.ID, &rt.OptionID, &rt.RestrictedOptionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRestrictionNotFound
		}
		return nil, err
	}

	return &rt, nil
}

func (r *repository) ListRestrictions(ctx context.Context) ([]model.Restriction, error) {
	q := r.sb.
		Select("id", "part_option_id", "restricted_part_option_id").
		From("part_restrictions").
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Restriction, 0)
	for rows.Next() {
		var rt model.Restriction
		if err := rows.Scan(&rt.ID, &rt.OptionID, &rt.RestrictedOptionID); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}

	return out, rows.Err()
}

func (r *repository) DeleteRestriction(ctx context.Context, id int64) error {
	q := r.sb.Delete("part_restrictions").Where(sq.Eq{"id": id})
	return r.exec(ctx, q, model.ErrRestrictionNotFound)
}

// RestrictionExists reports whether the pair is stored in either
// orientation.
func (r *repository) RestrictionExists(ctx context.Context, optionID, restrictedID int64) (bool, error) {
	q := r.sb.
		Select("1").
		From("part_restrictions").
		Where(sq.Or{
			sq.Eq{"part_option_id": optionID, "restricted_part_option_id": restrictedID},
			sq.Eq{"part_option_id": restrictedID, "restricted_part_option_id": optionID},
		}).
		Limit(1)

	return r.exists(ctx, q)
}

// Price rules

func (r *repository) CreatePriceRule(ctx context.Context, pr *model.PriceRule) (int64, error) {
	q := r.sb.
		Insert("price_rules").
		Columns("part_option_a_id", "part_option_b_id", "price_premium").
		Values(pr.OptionAID, pr.OptionBID, pr.Premium).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) PriceRuleByID(ctx context.Context, id int64) (*model.PriceRule, error) {
	q := r.sb.
		Select("id", "part_option_a_id", "part_option_b_id", "price_premium").
		From("price_rules").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var pr model.PriceRule
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&pr.ID, &pr.OptionAID, &pr.OptionBID, &pr.Premium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPriceRuleNotFound
		}
		return nil, err
	}

	return &pr, nil
}

func (r *repository) ListPriceRules(ctx context.Context) ([]model.PriceRule, error) {
	q := r.sb.
		Select("id", "part_option_a_id", "part_option_b_id", "price_premium").
		From("price_rules").
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.PriceRule, 0)
	for rows.Next() {
		var pr model.PriceRule
		if err := rows.Scan(&pr.ID, &pr.OptionAID, &pr.OptionBID, &pr.Premium); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}

	return out, rows.Err()
}

func (r *repository) DeletePriceRule(ctx context.Context, id int64) error {
	q := r.sb.Delete("price_rules").Where(sq.Eq{"id": id})
	return r.exec(ctx, q, model.ErrPriceRuleNotFound)
}

// PriceRuleExists reports whether the unordered pair already has a rule.
func (r *repository) PriceRuleExists(ctx context.Context, aID, bID int64) (bool, error) {
	q := r.sb.
		Select("1").
		From("price_rules").
		Where(sq.Or{
			sq.Eq{"part_option_a_id": aID, "part_option_b_id": bID},
			sq.Eq{"part_option_a_id": bID, "part_option_b_id": aID},
		}).
		Limit(1)

	return r.exists(ctx, q)
}

func (r *repository) exec(ctx context.Context, q sq.Sqlizer, notFound error) error {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return notFound
	}

	return nil
}

func (r *repository) exists(ctx context.Context, q sq.SelectBuilder) (bool, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
