package staff

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// -- Dentists --

type dentistRepoPG struct{ pool *pgxpool.Pool }

func NewDentistRepoPG(pool *pgxpool.Pool) DentistRepository {
	return &dentistRepoPG{pool: pool}
}

func (r *dentistRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const dentistCols = `id, first_name, last_name, specialization, experience_years, license_number, schedule, created_at`

func scanDentist(row pgx.Row) (*Dentist, error) {
	var d Dentist
	err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Specialization,
		&d.ExperienceYears, &d.LicenseNumber, &d.Schedule, &d.CreatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return &d, nil
}

func (r *dentistRepoPG) Create(ctx context.Context, d *Dentist) error {
	d.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO dentist (id, first_name, last_name, specialization, experience_years, license_number, schedule)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		d.ID, d.FirstName, d.LastName, d.Specialization, d.ExperienceYears, d.LicenseNumber, d.Schedule).
		Scan(&d.CreatedAt)
	return db.Classify(err)
}

func (r *dentistRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Dentist, error) {
	return scanDentist(r.conn(ctx).QueryRow(ctx,
		`SELECT `+dentistCols+` FROM dentist WHERE id = $1`, id))
}

func (r *dentistRepoPG) Update(ctx context.Context, d *Dentist) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE dentist SET first_name=$2, last_name=$3, specialization=$4,
			experience_years=$5, license_number=$6, schedule=$7
		WHERE id = $1`,
		d.ID, d.FirstName, d.LastName, d.Specialization, d.ExperienceYears, d.LicenseNumber, d.Schedule)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *dentistRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM dentist WHERE id = $1`, id)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *dentistRepoPG) List(ctx context.Context, search string, lp listing.Params) ([]*Dentist, error) {
	query := `SELECT ` + dentistCols + ` FROM dentist`
	var args []interface{}
	if search != "" {
		query += ` WHERE last_name ILIKE '%' || $1 || '%' OR specialization ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY last_name, first_name` + lp.SQL()

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	var items []*Dentist
	for rows.Next() {
		d, err := scanDentist(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// -- Assistants --

type assistantRepoPG struct{ pool *pgxpool.Pool }

func NewAssistantRepoPG(pool *pgxpool.Pool) AssistantRepository {
	return &assistantRepoPG{pool: pool}
}

func (r *assistantRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const assistantCols = `id, first_name, last_name, position, experience_years, created_at`

func scanAssistant(row pgx.Row) (*Assistant, error) {
	var a Assistant
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Position, &a.ExperienceYears, &a.CreatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return &a, nil
}

func (r *assistantRepoPG) Create(ctx context.Context, a *Assistant) error {
	a.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO assistant (id, first_name, last_name, position, experience_years)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		a.ID, a.FirstName, a.LastName, a.Position, a.ExperienceYears).
		Scan(&a.CreatedAt)
	return db.Classify(err)
}

func (r *assistantRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assistant, error) {
	return scanAssistant(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assistantCols+` FROM assistant WHERE id = $1`, id))
}

func (r *assistantRepoPG) Update(ctx context.Context, a *Assistant) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE assistant SET first_name=$2, last_name=$3, position=$4, experience_years=$5
		WHERE id = $1`,
		a.ID, a.FirstName, a.LastName, a.Position, a.ExperienceYears)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *assistantRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM assistant WHERE id = $1`, id)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *assistantRepoPG) List(ctx context.Context, lp listing.Params) ([]*Assistant, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+assistantCols+` FROM assistant ORDER BY last_name, first_name`+lp.SQL())
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	var items []*Assistant
	for rows.Next() {
		a, err := scanAssistant(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
