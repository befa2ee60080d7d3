package appointment

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

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointment (id, date_time, status, patient_id, dentist_id, assistant_id, room_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		a.ID, a.DateTime, a.Status, a.PatientID, a.DentistID, a.AssistantID, a.RoomID).
		Scan(&a.CreatedAt)
	return db.ClassifyInput(err)
}

func (r *repoPG) List(ctx context.Context, lp listing.Params) ([]*ListItem, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT a.id, a.date_time, a.status, a.patient_id, a.dentist_id, a.assistant_id, a.room_id, a.created_at,
		       p.last_name || ' ' || p.first_name,
		       d.last_name || ' ' || d.first_name,
		       r.number
		FROM appointment a
		JOIN patient p ON p.id = a.patient_id
		JOIN dentist d ON d.id = a.dentist_id
		JOIN room r ON r.id = a.room_id
		ORDER BY a.date_time ASC`+lp.SQL())
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	var items []*ListItem
	for rows.Next() {
		var it ListItem
		err := rows.Scan(&it.ID, &it.DateTime, &it.Status, &it.PatientID, &it.DentistID,
			&it.AssistantID, &it.RoomID, &it.CreatedAt,
			&it.PatientName, &it.DentistName, &it.RoomNumber)
		if err != nil {
			return nil, db.Classify(err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *repoPG) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	var d Detail
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT a.id, a.date_time, a.status, a.patient_id, a.dentist_id, a.assistant_id, a.room_id, a.created_at,
		       p.last_name || ' ' || p.first_name,
		       dn.last_name || ' ' || dn.first_name,
		       r.number
		FROM appointment a
		JOIN patient p ON p.id = a.patient_id
		JOIN dentist dn ON dn.id = a.dentist_id
		JOIN room r ON r.id = a.room_id
		WHERE a.id = $1`, id).
		Scan(&d.ID, &d.DateTime, &d.Status, &d.PatientID, &d.DentistID,
			&d.AssistantID, &d.RoomID, &d.CreatedAt,
			&d.PatientName, &d.DentistName, &d.RoomNumber)
	if err != nil {
		return nil, db.Classify(err)
	}

	d.Treatments = []RenderedTreatment{}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT at.treatment_id, t.name, t.cost, at.quantity
		FROM appointment_treatment at
		JOIN treatment t ON t.id = at.treatment_id
		WHERE at.appointment_id = $1
		ORDER BY t.name`, id)
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()
	for rows.Next() {
		var rt RenderedTreatment
		if err := rows.Scan(&rt.TreatmentID, &rt.Name, &rt.Cost, &rt.Quantity); err != nil {
			return nil, db.Classify(err)
		}
		d.Treatments = append(d.Treatments, rt)
		d.InvoiceTotal += rt.Cost
	}
	return &d, rows.Err()
}

func (r *repoPG) SetStatus(ctx context.Context, id uuid.UUID, status string, treatments []uuid.UUID, replace bool) error {
	return db.RunInTx(ctx, r.pool, func(ctx context.Context) error {
		tag, err := r.conn(ctx).Exec(ctx,
			`UPDATE appointment SET status = $2 WHERE id = $1`, id, status)
		if err != nil {
			return db.Classify(err)
		}
		if tag.RowsAffected() == 0 {
			return db.ErrNotFound
		}
		if !replace {
			return nil
		}
		if _, err := r.conn(ctx).Exec(ctx,
			`DELETE FROM appointment_treatment WHERE appointment_id = $1`, id); err != nil {
			return db.Classify(err)
		}
		for _, tid := range treatments {
			_, err := r.conn(ctx).Exec(ctx, `
				INSERT INTO appointment_treatment (appointment_id, treatment_id, quantity)
				VALUES ($1,$2,1)
				ON CONFLICT (appointment_id, treatment_id) DO UPDATE SET quantity = 1`,
				id, tid)
			if err != nil {
				return db.ClassifyInput(err)
			}
		}
		return nil
	})
}
