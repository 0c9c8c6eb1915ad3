package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/patramworks/patram/internal/database"
	"github.com/patramworks/patram/internal/models"
)

type VisitRepository struct {
	db *database.DB
}

func NewVisitRepository(db *database.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) List(ctx context.Context) ([]*models.Visit, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, client, date, phone, address, created_at FROM visits ORDER BY date ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*models.Visit
	for rows.Next() {
		visit := &models.Visit{}
		if err := rows.Scan(&visit.ID, &visit.Client, &visit.Date,
			&visit.Phone, &visit.Address, &visit.CreatedAt); err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}
	return visits, rows.Err()
}

func (r *VisitRepository) Create(ctx context.Context, visit *models.Visit) error {
	if visit.ID == uuid.Nil {
		visit.ID = uuid.New()
	}
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO visits (id, client, date, phone, address) VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		visit.ID, visit.Client, visit.Date, visit.Phone, visit.Address,
	).Scan(&visit.CreatedAt)
}

func (r *VisitRepository) Update(ctx context.Context, visit *models.Visit) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE visits SET client = $1, date = $2, phone = $3, address = $4 WHERE id = $5`,
		visit.Client, visit.Date, visit.Phone, visit.Address, visit.ID,
	)
	return err
}

func (r *VisitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM visits WHERE id = $1`, id)
	return err
}

func (r *VisitRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM visits`).Scan(&n)
	return n, err
}
