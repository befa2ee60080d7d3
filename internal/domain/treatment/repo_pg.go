package treatment

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

const treatmentCols = `id, name, description, duration_minutes, cost, created_at`

func scanTreatment(row pgx.Row) (*Treatment, error) {
	var t Treatment
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.DurationMinutes, &t.Cost, &t.CreatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return &t, nil
}

func (r *repoPG) Create(ctx context.Context, t *Treatment, materials []MaterialReq, equipment []uuid.UUID) error {
	t.ID = uuid.New()
	return db.RunInTx(ctx, r.pool, func(ctx context.Context) error {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO treatment (id, name, description, duration_minutes, cost)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING created_at`,
			t.ID, t.Name, t.Description, t.DurationMinutes, t.Cost).
			Scan(&t.CreatedAt)
		if err != nil {
			return db.Classify(err)
		}
		return r.insertAssociations(ctx, t.ID, materials, equipment)
	})
}

func (r *repoPG) Update(ctx context.Context, t *Treatment, materials []MaterialReq, equipment []uuid.UUID) error {
	return db.RunInTx(ctx, r.pool, func(ctx context.Context) error {
		tag, err := r.conn(ctx).Exec(ctx, `
			UPDATE treatment SET name=$2, description=$3, duration_minutes=$4, cost=$5
			WHERE id = $1`,
			t.ID, t.Name, t.Description, t.DurationMinutes, t.Cost)
		if err != nil {
			return db.Classify(err)
		}
		if tag.RowsAffected() == 0 {
			return db.ErrNotFound
		}
		// Full replace: both sets are cleared and rewritten from the input.
		if _, err := r.conn(ctx).Exec(ctx,
			`DELETE FROM treatment_material WHERE treatment_id = $1`, t.ID); err != nil {
			return db.Classify(err)
		}
		if _, err := r.conn(ctx).Exec(ctx,
			`DELETE FROM treatment_equipment WHERE treatment_id = $1`, t.ID); err != nil {
			return db.Classify(err)
		}
		return r.insertAssociations(ctx, t.ID, materials, equipment)
	})
}

// insertAssociations writes the requirement sets. Duplicate ids in the input
// collapse to the last occurrence via upsert.
func (r *repoPG) insertAssociations(ctx context.Context, id uuid.UUID, materials []MaterialReq, equipment []uuid.UUID) error {
	for _, m := range materials {
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO treatment_material (treatment_id, material_id, quantity_needed)
			VALUES ($1,$2,$3)
			ON CONFLICT (treatment_id, material_id) DO UPDATE SET quantity_needed = EXCLUDED.quantity_needed`,
			id, m.MaterialID, m.Quantity)
		if err != nil {
			return db.ClassifyInput(err)
		}
	}
	for _, eq := range equipment {
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO treatment_equipment (treatment_id, equipment_id)
			VALUES ($1,$2)
			ON CONFLICT (treatment_id, equipment_id) DO NOTHING`,
			id, eq)
		if err != nil {
			return db.ClassifyInput(err)
		}
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return db.RunInTx(ctx, r.pool, func(ctx context.Context) error {
		// Own association rows go first; rendered appointment rows stay and
		// surface the delete as a foreign-key conflict.
		if _, err := r.conn(ctx).Exec(ctx,
			`DELETE FROM treatment_material WHERE treatment_id = $1`, id); err != nil {
			return db.Classify(err)
		}
		if _, err := r.conn(ctx).Exec(ctx,
			`DELETE FROM treatment_equipment WHERE treatment_id = $1`, id); err != nil {
			return db.Classify(err)
		}
		tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM treatment WHERE id = $1`, id)
		if err != nil {
			return db.Classify(err)
		}
		if tag.RowsAffected() == 0 {
			return db.ErrNotFound
		}
		return nil
	})
}

func (r *repoPG) List(ctx context.Context, search string, lp listing.Params) ([]*Treatment, error) {
	query := `SELECT ` + treatmentCols + ` FROM treatment`
	var args []interface{}
	if search != "" {
		query += ` WHERE name ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY name ASC` + lp.SQL()

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	var items []*Treatment
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *repoPG) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	t, err := scanTreatment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+treatmentCols+` FROM treatment WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	d := &Detail{Treatment: *t, Materials: []MaterialReq{}, Equipment: []uuid.UUID{}}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT material_id, quantity_needed FROM treatment_material
		WHERE treatment_id = $1`, id)
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()
	for rows.Next() {
		var m MaterialReq
		if err := rows.Scan(&m.MaterialID, &m.Quantity); err != nil {
			return nil, db.Classify(err)
		}
		d.Materials = append(d.Materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Classify(err)
	}

	eqRows, err := r.conn(ctx).Query(ctx, `
		SELECT equipment_id FROM treatment_equipment
		WHERE treatment_id = $1`, id)
	if err != nil {
		return nil, db.Classify(err)
	}
	defer eqRows.Close()
	for eqRows.Next() {
		var eq uuid.UUID
		if err := eqRows.Scan(&eq); err != nil {
			return nil, db.Classify(err)
		}
		d.Equipment = append(d.Equipment, eq)
	}
	return d, eqRows.Err()
}
