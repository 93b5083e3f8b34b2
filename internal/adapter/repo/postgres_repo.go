package repo

import (
	"context"

	"github.com/example/customer-page-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresOrderRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresOrderRepo(pool *pgxpool.Pool) *PostgresOrderRepo {
	return &PostgresOrderRepo{Pool: pool}
}

func (r *PostgresOrderRepo) Upsert(ctx context.Context, id, customerID int64, raw []byte) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO sales_orders(id_sales_order, fk_customer, payload) VALUES($1, $2, $3)
        ON CONFLICT (id_sales_order) DO UPDATE SET fk_customer = EXCLUDED.fk_customer, payload = EXCLUDED.payload`,
		id, customerID, raw)
	return err
}

func (r *PostgresOrderRepo) LoadAll(ctx context.Context, fn func(raw []byte) error) error {
	rows, err := r.Pool.Query(ctx, `SELECT payload FROM sales_orders ORDER BY id_sales_order`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return err
		}
		if err := fn(raw); err != nil {
			return err
		}
	}
	return rows.Err()
}

var _ domain.OrderRepository = (*PostgresOrderRepo)(nil)

// EnsureSchema создаёт необходимые таблицы, если они отсутствуют.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS sales_orders (
  id_sales_order bigint PRIMARY KEY,
  fk_customer bigint NOT NULL,
  payload jsonb NOT NULL
);
CREATE INDEX IF NOT EXISTS sales_orders_fk_customer_idx ON sales_orders (fk_customer);`)
	return err
}
