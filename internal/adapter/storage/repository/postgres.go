package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypdiscount/internal/adapter/storage"
	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/currency"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	statement := r.db.QueryBuilder.
		Insert("customers").
		Columns("name", "tier", "created_at").
		Values(customer.Name, customer.Tier, customer.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return customer, nil
}

func (r *Repository) ReadCustomer(ctx context.Context, customerID uint64) (*domain.Customer, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "tier", "created_at").
		From("customers").
		Where(sq.Eq{"id": customerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	customer := domain.Customer{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Tier,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &customer, nil
}

func (r *Repository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "tier", "created_at").
		From("customers").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Tier,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &customer)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	statement := r.db.QueryBuilder.
		Insert("quotes").
		Columns("customer_id", "tier", "currency", "total", "discount",
			"discounted_total", "summary", "created_at").
		Values(quote.CustomerID, quote.Tier, quote.Total.Currency.String(), quote.Total.Amount,
			quote.Discount.Amount, quote.DiscountedTotal.Amount, quote.Summary, quote.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&quote.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return quote, nil
}

func (r *Repository) ListQuotesByCustomer(ctx context.Context, customerID uint64) ([]*domain.Quote, error) {
	statement := r.db.QueryBuilder.
		Select("q.id", "q.customer_id", "c.name", "q.tier", "q.currency", "q.total",
			"q.discount", "q.discounted_total", "q.summary", "q.created_at").
		From("quotes q").
		Join("customers c ON c.id = q.customer_id").
		Where(sq.Eq{"q.customer_id": customerID}).
		OrderBy("q.created_at DESC", "q.id DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Quote, 0)
	for rows.Next() {
		quote := domain.Quote{}
		var code string
		err := rows.Scan(
			&quote.ID,
			&quote.CustomerID,
			&quote.CustomerName,
			&quote.Tier,
			&code,
			&quote.Total.Amount,
			&quote.Discount.Amount,
			&quote.DiscountedTotal.Amount,
			&quote.Summary,
			&quote.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("quote %d has bad currency %q: %w", quote.ID, code, err)
		}
		quote.Total.Currency = unit
		quote.Discount.Currency = unit
		quote.DiscountedTotal.Currency = unit

		list = append(list, &quote)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
