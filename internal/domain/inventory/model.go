package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/dentix/clinic/pkg/types"
)

// Material maps to the material table. Quantity below the low-stock
// threshold is a derived classification, never stored.
type Material struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Quantity       int        `db:"quantity" json:"quantity"`
	ExpirationDate types.Date `db:"expiration_date" json:"expiration_date"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// Equipment statuses.
const (
	StatusWorking    = "working"
	StatusRepair     = "repair"
	StatusOutOfOrder = "out_of_order"
)

// Equipment maps to the equipment table. RoomNumber is populated from the
// room join on reads and ignored on writes.
type Equipment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	SerialNumber string     `db:"serial_number" json:"serial_number"`
	PurchaseDate types.Date `db:"purchase_date" json:"purchase_date"`
	Status       string     `db:"status" json:"status"`
	RoomID       uuid.UUID  `db:"room_id" json:"room_id"`
	RoomNumber   string     `db:"room_number" json:"room_number,omitempty"`
}

// Room is a read-only catalog entry.
type Room struct {
	ID     uuid.UUID `db:"id" json:"id"`
	Number string    `db:"number" json:"number"`
}
