package patient

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

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientCols = `id, first_name, last_name, birth_date, gender, address, phone, email, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.BirthDate.Time, &p.Gender,
		&p.Address, &p.Phone, &p.Email, &p.CreatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patient (id, first_name, last_name, birth_date, gender, address, phone, email)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		p.ID, p.FirstName, p.LastName, p.BirthDate.Time, p.Gender, p.Address, p.Phone, p.Email).
		Scan(&p.CreatedAt)
	return db.Classify(err)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE patient SET first_name=$2, last_name=$3, birth_date=$4, gender=$5,
			address=$6, phone=$7, email=$8
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.BirthDate.Time, p.Gender, p.Address, p.Phone, p.Email)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, search string, lp listing.Params) ([]*Patient, error) {
	query := `SELECT ` + patientCols + ` FROM patient`
	var args []interface{}
	if search != "" {
		query += ` WHERE last_name ILIKE '%' || $1 || '%'
			OR first_name ILIKE '%' || $1 || '%'
			OR phone ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY created_at DESC, id DESC` + lp.SQL()

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) GetRecord(ctx context.Context, patientID uuid.UUID) (*MedicalRecord, error) {
	var rec MedicalRecord
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, patient_id, diagnosis, allergies, updated_at
		FROM medical_record WHERE patient_id = $1`, patientID).
		Scan(&rec.ID, &rec.PatientID, &rec.Diagnosis, &rec.Allergies, &rec.UpdatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return &rec, nil
}

// UpsertRecord relies on the unique patient_id constraint so the record is
// created on first write and updated in place afterwards.
func (r *repoPG) UpsertRecord(ctx context.Context, rec *MedicalRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medical_record (id, patient_id, diagnosis, allergies)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (patient_id)
		DO UPDATE SET diagnosis = EXCLUDED.diagnosis, allergies = EXCLUDED.allergies, updated_at = NOW()
		RETURNING id, updated_at`,
		rec.ID, rec.PatientID, rec.Diagnosis, rec.Allergies).
		Scan(&rec.ID, &rec.UpdatedAt)
	return db.ClassifyInput(err)
}
