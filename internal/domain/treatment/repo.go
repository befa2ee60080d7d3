package treatment

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/pkg/listing"
)

// Repository persists treatments and their requirement associations.
// Create and Update write the treatment row and both association sets in a
// single transaction.
type Repository interface {
	Create(ctx context.Context, t *Treatment, materials []MaterialReq, equipment []uuid.UUID) error
	Update(ctx context.Context, t *Treatment, materials []MaterialReq, equipment []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, lp listing.Params) ([]*Treatment, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error)
}
