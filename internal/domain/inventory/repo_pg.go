package inventory

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

// -- Materials --

type materialRepoPG struct{ pool *pgxpool.Pool }

func NewMaterialRepoPG(pool *pgxpool.Pool) MaterialRepository {
	return &materialRepoPG{pool: pool}
}

func (r *materialRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const materialCols = `id, name, quantity, expiration_date, created_at`

func scanMaterial(row pgx.Row) (*Material, error) {
	var m Material
	err := row.Scan(&m.ID, &m.Name, &m.Quantity, &m.ExpirationDate.Time, &m.CreatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return &m, nil
}

func (r *materialRepoPG) Create(ctx context.Context, m *Material) error {
	m.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO material (id, name, quantity, expiration_date)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		m.ID, m.Name, m.Quantity, m.ExpirationDate.Time).
		Scan(&m.CreatedAt)
	return db.Classify(err)
}

func (r *materialRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Material, error) {
	return scanMaterial(r.conn(ctx).QueryRow(ctx,
		`SELECT `+materialCols+` FROM material WHERE id = $1`, id))
}

func (r *materialRepoPG) Update(ctx context.Context, m *Material) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE material SET name=$2, quantity=$3, expiration_date=$4
		WHERE id = $1`,
		m.ID, m.Name, m.Quantity, m.ExpirationDate.Time)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *materialRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM material WHERE id = $1`, id)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// List orders by expiration so the soonest-to-expire stock surfaces first.
func (r *materialRepoPG) List(ctx context.Context, lp listing.Params) ([]*Material, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+materialCols+` FROM material ORDER BY expiration_date ASC, name`+lp.SQL())
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	var items []*Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// -- Equipment --

type equipmentRepoPG struct{ pool *pgxpool.Pool }

func NewEquipmentRepoPG(pool *pgxpool.Pool) EquipmentRepository {
	return &equipmentRepoPG{pool: pool}
}

func (r *equipmentRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func scanEquipment(row pgx.Row) (*Equipment, error) {
	var e Equipment
	err := row.Scan(&e.ID, &e.Name, &e.SerialNumber, &e.PurchaseDate.Time,
		&e.Status, &e.RoomID, &e.RoomNumber)
	if err != nil {
		return nil, db.Classify(err)
	}
	return &e, nil
}

func (r *equipmentRepoPG) Create(ctx context.Context, e *Equipment) error {
	e.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO equipment (id, name, serial_number, purchase_date, status, room_id)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		e.ID, e.Name, e.SerialNumber, e.PurchaseDate.Time, e.Status, e.RoomID)
	return db.ClassifyInput(err)
}

func (r *equipmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Equipment, error) {
	return scanEquipment(r.conn(ctx).QueryRow(ctx, `
		SELECT e.id, e.name, e.serial_number, e.purchase_date, e.status, e.room_id, r.number
		FROM equipment e
		JOIN room r ON r.id = e.room_id
		WHERE e.id = $1`, id))
}

func (r *equipmentRepoPG) Update(ctx context.Context, e *Equipment) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE equipment SET name=$2, serial_number=$3, purchase_date=$4, status=$5, room_id=$6
		WHERE id = $1`,
		e.ID, e.Name, e.SerialNumber, e.PurchaseDate.Time, e.Status, e.RoomID)
	if err != nil {
		return db.ClassifyInput(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *equipmentRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *equipmentRepoPG) List(ctx context.Context, lp listing.Params) ([]*Equipment, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT e.id, e.name, e.serial_number, e.purchase_date, e.status, e.room_id, r.number
		FROM equipment e
		JOIN room r ON r.id = e.room_id
		ORDER BY e.name`+lp.SQL())
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	var items []*Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// -- Rooms --

type roomRepoPG struct{ pool *pgxpool.Pool }

func NewRoomRepoPG(pool *pgxpool.Pool) RoomRepository {
	return &roomRepoPG{pool: pool}
}

func (r *roomRepoPG) List(ctx context.Context) ([]*Room, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, number FROM room ORDER BY number`)
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	var items []*Room
	for rows.Next() {
		var rm Room
		if err := rows.Scan(&rm.ID, &rm.Number); err != nil {
			return nil, db.Classify(err)
		}
		items = append(items, &rm)
	}
	return items, rows.Err()
}
