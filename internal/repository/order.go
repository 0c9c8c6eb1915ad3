package repository

import (
	"context"
	"time"

	"github.com/patramworks/patram/internal/database"
	"github.com/patramworks/patram/internal/models"
)

type OrderRepository struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, client, client_id, order_date, status, items, discount, message, created_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(&order.ID, &order.Client, &order.ClientID, &order.OrderDate,
		&order.Status, &order.Items, &order.Discount, &order.Message, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// ListSince returns orders with order_date on or after the given time,
// newest first.
func (r *OrderRepository) ListSince(ctx context.Context, since time.Time) ([]*models.Order, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_date >= $1 ORDER BY order_date DESC`,
		since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// ListByClientName matches the client display name ignoring case and
// surrounding whitespace, newest first. Used for the order history dialog.
func (r *OrderRepository) ListByClientName(ctx context.Context, clientName string) ([]*models.Order, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE LOWER(TRIM(client)) = LOWER(TRIM($1))
		 ORDER BY order_date DESC`,
		clientName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO orders (id, client, client_id, order_date, status, items, discount, message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		order.ID, order.Client, order.ClientID, order.OrderDate, order.Status,
		order.Items, order.Discount, order.Message,
	).Scan(&order.CreatedAt)
}

func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE orders SET client = $1, client_id = $2, order_date = $3, status = $4,
		 items = $5, discount = $6, message = $7
		 WHERE id = $8`,
		order.Client, order.ClientID, order.OrderDate, order.Status,
		order.Items, order.Discount, order.Message, order.ID,
	)
	return err
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	return err
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}
