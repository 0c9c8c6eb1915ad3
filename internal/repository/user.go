package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/patramworks/patram/internal/database"
	"github.com/patramworks/patram/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, name, phone, role, created_at FROM users ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Phone, &user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetByPhone includes the password hash, for credential checks only.
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, phone, role, password_hash, created_at FROM users WHERE phone = $1`,
		phone,
	).Scan(&user.ID, &user.Name, &user.Phone, &user.Role, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO users (id, name, phone, role, password_hash) VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		user.ID, user.Name, user.Phone, user.Role, user.PasswordHash,
	).Scan(&user.CreatedAt)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
