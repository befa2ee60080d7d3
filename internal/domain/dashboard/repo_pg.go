package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentix/clinic/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) StatsRepository {
	return &repoPG{pool: pool}
}

func (r *repoPG) PatientsCount(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&n)
	return n, db.Classify(err)
}

func (r *repoPG) AppointmentsOn(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointment WHERE date_time::date = $1::date`, day).Scan(&n)
	return n, db.Classify(err)
}

func (r *repoPG) RevenueForMonth(ctx context.Context, year int, month time.Month) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(t.cost * at.quantity), 0)
		FROM appointment_treatment at
		JOIN appointment a ON a.id = at.appointment_id
		JOIN treatment t ON t.id = at.treatment_id
		WHERE a.status = 'completed'
		  AND EXTRACT(YEAR FROM a.date_time) = $1
		  AND EXTRACT(MONTH FROM a.date_time) = $2`,
		year, int(month)).Scan(&total)
	return total, db.Classify(err)
}

func (r *repoPG) TopTreatment(ctx context.Context) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `
		SELECT t.name
		FROM appointment_treatment at
		JOIN treatment t ON t.id = at.treatment_id
		GROUP BY t.name
		ORDER BY COUNT(*) DESC, t.name
		LIMIT 1`).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", db.ErrNotFound
		}
		return "", db.Classify(err)
	}
	return name, nil
}

func (r *repoPG) LowStockCount(ctx context.Context, threshold int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM material WHERE quantity < $1`, threshold).Scan(&n)
	return n, db.Classify(err)
}
