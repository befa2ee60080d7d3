package treatment

import (
	"time"

	"github.com/google/uuid"
)

// Treatment maps to the treatment table. Cost is the price billed per
// rendered unit.
type Treatment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description,omitempty"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Cost            float64   `db:"cost" json:"cost"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// MaterialReq is one row of a treatment's material requirement set.
type MaterialReq struct {
	MaterialID uuid.UUID `json:"material_id"`
	Quantity   int       `json:"quantity"`
}

// Detail is a treatment together with its full association sets.
type Detail struct {
	Treatment
	Materials []MaterialReq `json:"materials"`
	Equipment []uuid.UUID   `json:"equipment"`
}
