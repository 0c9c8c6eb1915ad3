package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/patramworks/patram/internal/database"
	"github.com/patramworks/patram/internal/models"
)

type ClientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, name, phone, created_at FROM clients ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client := &models.Client{}
		if err := rows.Scan(&client.ID, &client.Name, &client.Phone, &client.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	client := &models.Client{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, phone, created_at FROM clients WHERE id = $1`,
		id,
	).Scan(&client.ID, &client.Name, &client.Phone, &client.CreatedAt)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO clients (id, name, phone) VALUES ($1, $2, $3)
		 RETURNING created_at`,
		client.ID, client.Name, client.Phone,
	).Scan(&client.CreatedAt)
}

func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE clients SET name = $1, phone = $2 WHERE id = $3`,
		client.Name, client.Phone, client.ID,
	)
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return err
}

func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n)
	return n, err
}
