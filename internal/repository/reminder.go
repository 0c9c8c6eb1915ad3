package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/patramworks/patram/internal/database"
	"github.com/patramworks/patram/internal/models"
)

type ReminderPrefRepository struct {
	db *database.DB
}

func NewReminderPrefRepository(db *database.DB) *ReminderPrefRepository {
	return &ReminderPrefRepository{db: db}
}

func (r *ReminderPrefRepository) List(ctx context.Context) ([]*models.ReminderPref, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT client_id, every_days, last_reminded_at FROM client_reminders`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prefs []*models.ReminderPref
	for rows.Next() {
		pref := &models.ReminderPref{}
		if err := rows.Scan(&pref.ClientID, &pref.EveryDays, &pref.LastRemindedAt); err != nil {
			return nil, err
		}
		prefs = append(prefs, pref)
	}
	return prefs, rows.Err()
}

// Upsert writes the preference and returns the row as the database stored it.
func (r *ReminderPrefRepository) Upsert(ctx context.Context, pref *models.ReminderPref) (*models.ReminderPref, error) {
	stored := &models.ReminderPref{}
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO client_reminders (client_id, every_days, last_reminded_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (client_id) DO UPDATE
		 SET every_days = EXCLUDED.every_days, last_reminded_at = EXCLUDED.last_reminded_at
		 RETURNING client_id, every_days, last_reminded_at`,
		pref.ClientID, pref.EveryDays, pref.LastRemindedAt,
	).Scan(&stored.ClientID, &stored.EveryDays, &stored.LastRemindedAt)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *ReminderPrefRepository) Get(ctx context.Context, clientID uuid.UUID) (*models.ReminderPref, error) {
	pref := &models.ReminderPref{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT client_id, every_days, last_reminded_at FROM client_reminders WHERE client_id = $1`,
		clientID,
	).Scan(&pref.ClientID, &pref.EveryDays, &pref.LastRemindedAt)
	if err != nil {
		return nil, err
	}
	return pref, nil
}
