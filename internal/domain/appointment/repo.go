package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/pkg/listing"
)

// Repository persists appointments and their rendered treatment lines.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	List(ctx context.Context, lp listing.Params) ([]*ListItem, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error)
	// SetStatus updates the status column and, when replace is set, swaps
	// the rendered treatment lines for one quantity-1 line per supplied id,
	// all in a single transaction.
	SetStatus(ctx context.Context, id uuid.UUID, status string, treatments []uuid.UUID, replace bool) error
}
