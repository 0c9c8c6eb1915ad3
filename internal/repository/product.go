package repository

import (
	"context"

	"github.com/patramworks/patram/internal/database"
	"github.com/patramworks/patram/internal/models"
)

type ProductRepository struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, name, price, mrp, category, description, photo_url, created_at
		 FROM products ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.MRP,
			&product.Category, &product.Description, &product.PhotoURL, &product.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO products (id, name, price, mrp, category, description, photo_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		product.ID, product.Name, product.Price, product.MRP,
		product.Category, product.Description, product.PhotoURL,
	).Scan(&product.CreatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE products SET name = $1, price = $2, mrp = $3, category = $4,
		 description = $5, photo_url = $6
		 WHERE id = $7`,
		product.Name, product.Price, product.MRP, product.Category,
		product.Description, product.PhotoURL, product.ID,
	)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}
